package main

import "testing"

func TestSynthChannels(t *testing.T) {
	s := CreateSynth(0, 22000)
	tests := []struct {
		ev          StepEvent
		left, right int16
	}{
		{StepEvent{Read: 0, Wrote: 0}, sampleLow, sampleLow},
		{StepEvent{Read: 1, Wrote: 0}, sampleHigh, sampleLow},
		{StepEvent{Read: 0, Wrote: 1}, sampleLow, sampleHigh},
		{StepEvent{Read: 1, Wrote: 1}, sampleHigh, sampleHigh},
		{StepEvent{Read: 2, Wrote: 2}, sampleLow, sampleLow},
	}
	for i, tt := range tests {
		left, right := s.Render(tt.ev)
		if left != tt.left || right != tt.right {
			t.Errorf("case %d: Render = (%d, %d), want (%d, %d)",
				i, left, right, tt.left, tt.right)
		}
	}
}

func TestSynthDelayedRight(t *testing.T) {
	s := CreateSynth(2, 22000)
	// Left must track reads instantly while the right channel lags
	// the writes by two samples.
	events := []StepEvent{
		{Read: 1, Wrote: 1},
		{Read: 0, Wrote: 1},
		{Read: 0, Wrote: 0},
		{Read: 0, Wrote: 0},
	}
	wantLeft := []int16{sampleHigh, sampleLow, sampleLow, sampleLow}
	wantRight := []int16{sampleLow, sampleLow, sampleHigh, sampleHigh}
	for i, ev := range events {
		left, right := s.Render(ev)
		if left != wantLeft[i] {
			t.Errorf("step %d: left = %d, want %d", i, left, wantLeft[i])
		}
		if right != wantRight[i] {
			t.Errorf("step %d: right = %d, want %d", i, right, wantRight[i])
		}
	}
}

func TestSynthSetDelayClamps(t *testing.T) {
	s := CreateSynth(0, 100)
	s.SetDelay(-5)
	if got := s.Delay(); got != 0 {
		t.Errorf("Delay() after SetDelay(-5) = %d, want 0", got)
	}
	s.SetDelay(1000)
	if got := s.Delay(); got != 100 {
		t.Errorf("Delay() after SetDelay(1000) = %d, want 100", got)
	}
}

func TestSynthSetDelaySameIsNoop(t *testing.T) {
	s := CreateSynth(2, 2)
	s.Render(StepEvent{Wrote: 1})
	// Requests clamped back to the current length must not wipe the
	// sample still traveling through the line.
	s.SetDelay(500)
	s.SetDelay(2)
	s.Render(StepEvent{Wrote: 0})
	_, right := s.Render(StepEvent{Wrote: 0})
	if right != sampleHigh {
		t.Fatalf("right = %d, want %d", right, sampleHigh)
	}
}
