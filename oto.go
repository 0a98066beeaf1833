package main

import (
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// OtoDevice plays sealed packets through an oto player. Packets wait
// in a small FIFO that the player's read callback drains; the FIFO is
// the only structure shared with oto's mixer goroutine and is guarded
// by a mutex. When the FIFO is empty the reader reports no data and
// the mixer emits silence, so starvation is audible as a gap but
// never blocks the frame loop.
type OtoDevice struct {
	player *oto.Player

	mu      sync.Mutex
	pending [][]byte
	queued  int
}

// CreateOtoDevice opens the default audio output at the given rate in
// signed 16-bit stereo. The device buffer is kept near one packet so
// IsBusy tracks what is actually still audible instead of a long
// pull-ahead.
func CreateOtoDevice(sampleRate int) (*OtoDevice, error) {
	options := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   packetMillis * time.Millisecond,
	}
	ctx, readyChan, err := oto.NewContext(options)
	if err != nil {
		return nil, err
	}
	<-readyChan
	dev := &OtoDevice{}
	dev.player = ctx.NewPlayer(otoFeed{dev})
	return dev, nil
}

// otoFeed adapts the packet FIFO to the io.Reader the player pulls
// from. A separate type keeps Read off the device's public face.
type otoFeed struct {
	dev *OtoDevice
}

func (f otoFeed) Read(p []byte) (int, error) {
	d := f.dev
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for n < len(p) && len(d.pending) > 0 {
		head := d.pending[0]
		c := copy(p[n:], head)
		n += c
		d.queued -= c
		if c == len(head) {
			d.pending = d.pending[1:]
		} else {
			d.pending[0] = head[c:]
		}
	}
	return n, nil
}

func (d *OtoDevice) Enqueue(pkt []byte) {
	d.mu.Lock()
	d.pending = append(d.pending, pkt)
	d.queued += len(pkt)
	d.mu.Unlock()
	d.ensurePlaying()
}

// PlayNow drops the pending FIFO and starts pkt. Bytes the player
// already pulled into its own buffer cannot be recalled, but a
// restart only ever happens when that buffer has drained.
func (d *OtoDevice) PlayNow(pkt []byte) {
	d.mu.Lock()
	d.pending = d.pending[:0]
	d.pending = append(d.pending, pkt)
	d.queued = len(pkt)
	d.mu.Unlock()
	d.ensurePlaying()
}

func (d *OtoDevice) ensurePlaying() {
	if !d.player.IsPlaying() {
		d.player.Play()
	}
}

// IsBusy reports whether any submitted audio is still waiting in the
// FIFO or sitting unplayed in the player's own buffer.
func (d *OtoDevice) IsBusy() bool {
	d.mu.Lock()
	queued := d.queued
	d.mu.Unlock()
	return queued > 0 || d.player.BufferedSize() > 0
}

func (d *OtoDevice) Close() error {
	return d.player.Close()
}

var _ AudioDevice = (*OtoDevice)(nil)
var _ io.Reader = otoFeed{}
