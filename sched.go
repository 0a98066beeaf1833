package main

// StepScheduler spreads sampleRate machine steps over frameRate
// frames using pure integer arithmetic: each frame gets the integer
// quotient and the remainder is paid out through an accumulator, one
// extra step at a time. Over any frameRate consecutive frames the
// steps sum to exactly sampleRate, so audio production never drifts
// from the machine sample rate the way a floating point ratio would
// over a long session.
type StepScheduler struct {
	base int
	rem  int
	fps  int
	acc  int
}

func CreateStepScheduler(sampleRate, frameRate int) *StepScheduler {
	return &StepScheduler{
		base: sampleRate / frameRate,
		rem:  sampleRate % frameRate,
		fps:  frameRate,
	}
}

// StepsForFrame returns the step budget for the next frame. The
// result can be zero when the sample rate is below the frame rate;
// the frame loop floors its budget at one to keep the machine moving,
// which trades a little extra audio for liveness in that corner.
func (ss *StepScheduler) StepsForFrame() int {
	steps := ss.base
	ss.acc += ss.rem
	if ss.acc >= ss.fps {
		steps++
		ss.acc -= ss.fps
	}
	return steps
}
