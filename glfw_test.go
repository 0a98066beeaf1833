package main

import "testing"

func TestWaitUntilOutlastsEarlyWakeups(t *testing.T) {
	clock := 0.0
	calls := 0
	now := func() float64 { return clock }
	wait := func(timeout float64) {
		calls++
		if calls < 5 {
			// An input event cuts the sleep short.
			clock += 0.0625
			return
		}
		clock += timeout
	}
	waitUntil(1.0, now, wait)
	// Early wakeups must not end the frame: the wait is re-armed
	// until the deadline, so event bursts cannot raise the frame
	// rate and with it the machine's step rate.
	if clock < 1.0 {
		t.Fatalf("waitUntil returned at %v, want the deadline reached", clock)
	}
	if calls != 5 {
		t.Errorf("wait re-armed %d times, want 5", calls)
	}
}

func TestWaitUntilRequestsRemainingTime(t *testing.T) {
	clock := 0.0
	var timeouts []float64
	waitUntil(1.0, func() float64 { return clock }, func(timeout float64) {
		timeouts = append(timeouts, timeout)
		clock += 0.25
	})
	want := []float64{1.0, 0.75, 0.5, 0.25}
	if len(timeouts) != len(want) {
		t.Fatalf("timeouts = %v, want %v", timeouts, want)
	}
	for i := range want {
		if timeouts[i] != want[i] {
			t.Fatalf("timeouts = %v, want %v", timeouts, want)
		}
	}
}

func TestWaitUntilPastDeadline(t *testing.T) {
	calls := 0
	waitUntil(1.0, func() float64 { return 1.0 }, func(float64) { calls++ })
	if calls != 0 {
		t.Errorf("wait ran %d times at the deadline, want 0", calls)
	}
}
