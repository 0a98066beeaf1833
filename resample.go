package main

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/dh1tw/gosamplerate"
)

// ResamplingDevice wraps another AudioDevice and converts every
// packet from the machine sample rate to the device rate on its way
// through. It uses the streaming converter API so filter state
// carries across packet boundaries; each conversion yields a fresh
// slice, keeping sealed packets immutable on both sides.
type ResamplingDevice struct {
	dev   AudioDevice
	src   gosamplerate.Src
	ratio float64
}

// resampleBufferLen sizes the converter's working buffer. The
// library allocates both its input and its output side at this one
// length and rejects input slices that outgrow it, so the buffer must
// hold a whole machine-rate packet as well as the converted result,
// whichever is larger, padded a little because the converter does not
// emit exactly ratio*n samples per call.
func resampleBufferLen(machineRate int, ratio float64) int {
	inFrames := packetFrames(machineRate)
	outFrames := int(math.Ceil(float64(inFrames) * ratio))
	return (max(inFrames, outFrames) + 64) * 2
}

func CreateResamplingDevice(dev AudioDevice, machineRate, deviceRate int) (*ResamplingDevice, error) {
	ratio := float64(deviceRate) / float64(machineRate)
	if !gosamplerate.IsValidRatio(ratio) {
		return nil, fmt.Errorf("unsupported rate conversion %d -> %d", machineRate, deviceRate)
	}
	src, err := gosamplerate.New(gosamplerate.SRC_SINC_FASTEST, 2, resampleBufferLen(machineRate, ratio))
	if err != nil {
		return nil, fmt.Errorf("samplerate converter: %w", err)
	}
	return &ResamplingDevice{dev: dev, src: src, ratio: ratio}, nil
}

func (rd *ResamplingDevice) convert(pkt []byte) []byte {
	out, err := rd.src.Process(packetToFloats(pkt), rd.ratio, false)
	if err != nil {
		logger.Warn("resampling failed, passing packet through", "error", err)
		return pkt
	}
	return floatsToPacket(out)
}

func (rd *ResamplingDevice) Enqueue(pkt []byte) { rd.dev.Enqueue(rd.convert(pkt)) }
func (rd *ResamplingDevice) PlayNow(pkt []byte) { rd.dev.PlayNow(rd.convert(pkt)) }
func (rd *ResamplingDevice) IsBusy() bool       { return rd.dev.IsBusy() }

func (rd *ResamplingDevice) Close() error {
	err := gosamplerate.Delete(rd.src)
	if cerr := rd.dev.Close(); err == nil {
		err = cerr
	}
	return err
}

func packetToFloats(pkt []byte) []float32 {
	out := make([]float32, len(pkt)/2)
	for i := range out {
		out[i] = float32(int16(binary.LittleEndian.Uint16(pkt[i*2:]))) / 32768
	}
	return out
}

func floatsToPacket(samples []float32) []byte {
	out := make([]byte, len(samples)*2)
	for i, f := range samples {
		v := int32(f * 32768)
		if v > math.MaxInt16 {
			v = math.MaxInt16
		} else if v < math.MinInt16 {
			v = math.MinInt16
		}
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(v)))
	}
	return out
}

var _ AudioDevice = (*ResamplingDevice)(nil)
