package main

import "encoding/binary"

const (
	packetMillis    = 60
	packetMinFrames = 256
	packetFrameSize = 4 // two int16 channels, little endian
)

// packetFrames is the packet length in stereo frames at the given
// sample rate: packetMillis worth of audio, floored so very low rates
// still produce packets big enough to schedule.
func packetFrames(sampleRate int) int {
	frames := sampleRate * packetMillis / 1000
	if frames < packetMinFrames {
		frames = packetMinFrames
	}
	return frames
}

// PacketWriter accumulates interleaved stereo int16 frames and seals
// a packet whenever the target length is reached. Sealed packets are
// handed off whole and never touched again by the writer; every
// packet is a fresh allocation.
type PacketWriter struct {
	target int
	buf    []byte
}

func CreatePacketWriter(sampleRate int) *PacketWriter {
	target := packetFrames(sampleRate) * packetFrameSize
	return &PacketWriter{
		target: target,
		buf:    make([]byte, 0, target),
	}
}

// TargetBytes returns the sealed packet size in bytes.
func (w *PacketWriter) TargetBytes() int { return w.target }

// WriteFrame appends one stereo frame. When this frame completes a
// packet the sealed packet is returned and a fresh one begins;
// otherwise pkt is nil.
func (w *PacketWriter) WriteFrame(left, right int16) (pkt []byte, sealed bool) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, uint16(left))
	w.buf = binary.LittleEndian.AppendUint16(w.buf, uint16(right))
	if len(w.buf) < w.target {
		return nil, false
	}
	pkt = w.buf
	w.buf = make([]byte, 0, w.target)
	return pkt, true
}
