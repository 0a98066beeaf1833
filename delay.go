package main

// DelayLine is a fixed-capacity ring of int16 samples. It always
// holds exactly Cap() elements: PushPop trades the incoming sample
// for the one pushed Cap() calls earlier, which makes the output the
// input delayed by exactly Cap() samples, with Cap() samples of
// leading silence after a resize.
type DelayLine struct {
	buf []int16
	pos int
}

func CreateDelayLine(capacity int) *DelayLine {
	dl := &DelayLine{}
	dl.Resize(capacity)
	return dl
}

// Cap returns the delay length in samples.
func (dl *DelayLine) Cap() int { return len(dl.buf) }

// Resize sets a new delay length, discarding all history. Negative
// lengths collapse to zero.
func (dl *DelayLine) Resize(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	dl.buf = make([]int16, capacity)
	dl.pos = 0
}

// PushPop stores v and returns the sample stored Cap() pushes ago.
// With zero capacity it returns v unchanged.
func (dl *DelayLine) PushPop(v int16) int16 {
	if len(dl.buf) == 0 {
		return v
	}
	out := dl.buf[dl.pos]
	dl.buf[dl.pos] = v
	dl.pos++
	if dl.pos == len(dl.buf) {
		dl.pos = 0
	}
	return out
}
