package main

import (
	"bytes"
	"testing"
)

func TestOtoFeedDrainsPackets(t *testing.T) {
	dev := &OtoDevice{
		pending: [][]byte{{1, 2, 3, 4}, {5, 6, 7, 8}},
		queued:  8,
	}
	feed := otoFeed{dev}
	p := make([]byte, 8)
	n, err := feed.Read(p)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if n != 8 {
		t.Fatalf("Read = %d bytes, want 8", n)
	}
	if !bytes.Equal(p, []byte{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Fatalf("Read returned %v", p)
	}
	if dev.queued != 0 || len(dev.pending) != 0 {
		t.Errorf("queue not drained: queued=%d pending=%d", dev.queued, len(dev.pending))
	}
}

func TestOtoFeedPartialRead(t *testing.T) {
	dev := &OtoDevice{
		pending: [][]byte{{1, 2, 3, 4}},
		queued:  4,
	}
	feed := otoFeed{dev}
	p := make([]byte, 3)
	n, err := feed.Read(p)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if n != 3 || !bytes.Equal(p, []byte{1, 2, 3}) {
		t.Fatalf("Read = %d %v, want 3 [1 2 3]", n, p)
	}
	if dev.queued != 1 {
		t.Errorf("queued = %d, want 1", dev.queued)
	}
	// The tail of the packet must come out on the next read.
	n, err = feed.Read(p)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if n != 1 || p[0] != 4 {
		t.Fatalf("Read = %d %v, want the remaining byte 4", n, p[:n])
	}
}

func TestOtoFeedEmptyReturnsNoData(t *testing.T) {
	feed := otoFeed{&OtoDevice{}}
	p := make([]byte, 16)
	n, err := feed.Read(p)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("Read = %d bytes from empty queue, want 0", n)
	}
}

func TestOtoFeedKeepsPacketIntact(t *testing.T) {
	pkt := []byte{9, 8, 7, 6}
	orig := bytes.Clone(pkt)
	dev := &OtoDevice{pending: [][]byte{pkt}, queued: len(pkt)}
	feed := otoFeed{dev}
	p := make([]byte, 2)
	feed.Read(p)
	feed.Read(p)
	if !bytes.Equal(pkt, orig) {
		t.Errorf("sealed packet mutated by reads: %v", pkt)
	}
}
