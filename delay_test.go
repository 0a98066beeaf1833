package main

import "testing"

func TestDelayLinePushPop(t *testing.T) {
	dl := CreateDelayLine(5)
	var got []int16
	for v := int16(1); v <= 7; v++ {
		got = append(got, dl.PushPop(v))
	}
	want := []int16{0, 0, 0, 0, 0, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("output[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestDelayLineZeroCapacity(t *testing.T) {
	dl := CreateDelayLine(0)
	for v := int16(1); v <= 3; v++ {
		if got := dl.PushPop(v); got != v {
			t.Errorf("PushPop(%d) = %d, want %d", v, got, v)
		}
	}
}

func TestDelayLineExactDistance(t *testing.T) {
	// Whatever the capacity, the sample pushed at step i must come
	// back out at step i+cap.
	for _, capacity := range []int{1, 2, 17, 100} {
		dl := CreateDelayLine(capacity)
		for i := 0; i < 4*capacity; i++ {
			got := dl.PushPop(int16(i))
			want := int16(0)
			if i >= capacity {
				want = int16(i - capacity)
			}
			if got != want {
				t.Fatalf("cap %d step %d: got %d, want %d", capacity, i, got, want)
			}
		}
	}
}

func TestDelayLineResizeDiscardsHistory(t *testing.T) {
	dl := CreateDelayLine(3)
	for v := int16(1); v <= 3; v++ {
		dl.PushPop(v)
	}
	dl.Resize(2)
	if got := dl.Cap(); got != 2 {
		t.Fatalf("Cap() = %d, want 2", got)
	}
	if got := dl.PushPop(9); got != 0 {
		t.Errorf("first PushPop after Resize = %d, want 0", got)
	}
	if got := dl.PushPop(10); got != 0 {
		t.Errorf("second PushPop after Resize = %d, want 0", got)
	}
	if got := dl.PushPop(11); got != 9 {
		t.Errorf("third PushPop after Resize = %d, want 9", got)
	}
}

func TestDelayLineNegativeCapacity(t *testing.T) {
	dl := CreateDelayLine(-4)
	if got := dl.Cap(); got != 0 {
		t.Errorf("Cap() = %d, want 0", got)
	}
	if got := dl.PushPop(5); got != 5 {
		t.Errorf("PushPop(5) = %d, want 5", got)
	}
}
