package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WavRecorder tees sealed packets into a 16-bit stereo WAV file at
// the machine sample rate. A failed write disarms the recorder with a
// warning instead of killing the session; the capture is a souvenir,
// not the product.
type WavRecorder struct {
	file   *os.File
	enc    *wav.Encoder
	buf    *audio.IntBuffer
	broken bool
}

func CreateWavRecorder(path string, sampleRate int) (*WavRecorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("wav capture: %w", err)
	}
	return &WavRecorder{
		file: f,
		enc:  wav.NewEncoder(f, sampleRate, 16, 2, 1),
		buf: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: 2, SampleRate: sampleRate},
			SourceBitDepth: 16,
		},
	}, nil
}

// WritePacket appends one sealed packet to the file.
func (r *WavRecorder) WritePacket(pkt []byte) {
	if r.broken {
		return
	}
	n := len(pkt) / 2
	if cap(r.buf.Data) < n {
		r.buf.Data = make([]int, n)
	}
	r.buf.Data = r.buf.Data[:n]
	for i := 0; i < n; i++ {
		r.buf.Data[i] = int(int16(binary.LittleEndian.Uint16(pkt[i*2:])))
	}
	if err := r.enc.Write(r.buf); err != nil {
		logger.Warn("wav capture failed, capture stopped", "error", err)
		r.broken = true
	}
}

// Close finalizes the WAV header and closes the file.
func (r *WavRecorder) Close() error {
	if err := r.enc.Close(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}
