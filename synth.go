package main

// Amplitude encoding of a tape bit. Silence sits at zero and a set
// bit jumps to a fixed level well below int16 full scale, so the two
// channels can be mixed downstream without clipping.
const (
	sampleHigh int16 = 12000
	sampleLow  int16 = 0
)

func bitSample(b Symbol) int16 {
	if b == 1 {
		return sampleHigh
	}
	return sampleLow
}

// Synth turns one machine step into one stereo sample pair: the left
// channel carries the symbol read, the right channel the symbol
// written, run through the delay line. One step, one frame; the
// machine's step rate is the sample rate.
type Synth struct {
	delay    *DelayLine
	maxDelay int
}

func CreateSynth(initialDelay, maxDelay int) *Synth {
	s := &Synth{
		delay:    CreateDelayLine(0),
		maxDelay: maxDelay,
	}
	s.SetDelay(initialDelay)
	return s
}

// Render synthesizes the sample pair for one step event.
func (s *Synth) Render(ev StepEvent) (left, right int16) {
	left = bitSample(ev.Read)
	right = s.delay.PushPop(bitSample(ev.Wrote))
	return left, right
}

// Delay returns the current right-channel delay in samples.
func (s *Synth) Delay() int { return s.delay.Cap() }

// SetDelay clamps the requested delay and resizes the delay line.
// Re-setting the current length is a no-op, so repeated presses
// against a clamp do not wipe the line's history.
func (s *Synth) SetDelay(samples int) {
	if samples < 0 {
		samples = 0
	}
	if samples > s.maxDelay {
		samples = s.maxDelay
	}
	if samples == s.delay.Cap() {
		return
	}
	s.delay.Resize(samples)
}
