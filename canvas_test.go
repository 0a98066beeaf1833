package main

import "testing"

func TestCanvasPlotAccumulates(t *testing.T) {
	c := CreateCanvas(4, defaultBrightness, defaultFade)
	ev := StepEvent{Row: 1, Col: 2, Wrote: 1}
	c.Plot(ev)
	if got := c.ink[1*4+2]; got != defaultBrightness {
		t.Fatalf("ink = %d, want %d", got, defaultBrightness)
	}
	c.Plot(ev)
	if got := c.ink[1*4+2]; got != 2*defaultBrightness {
		t.Fatalf("ink = %d, want %d", got, 2*defaultBrightness)
	}
}

func TestCanvasPlotSaturates(t *testing.T) {
	c := CreateCanvas(2, 200, defaultFade)
	ev := StepEvent{Row: 0, Col: 0, Wrote: 1}
	c.Plot(ev)
	c.Plot(ev)
	if got := c.ink[0]; got != 255 {
		t.Fatalf("ink = %d, want 255", got)
	}
}

func TestCanvasPlotIgnoresZeroWrites(t *testing.T) {
	c := CreateCanvas(2, defaultBrightness, defaultFade)
	c.Plot(StepEvent{Row: 0, Col: 1, Wrote: 0})
	c.Plot(StepEvent{Row: 1, Col: 0, Wrote: 2})
	for i, v := range c.ink {
		if v != 0 {
			t.Fatalf("ink[%d] = %d, want 0", i, v)
		}
	}
}

func TestCanvasFadeTick(t *testing.T) {
	c := CreateCanvas(2, defaultBrightness, defaultFade)
	c.ink[0] = 100
	c.ink[1] = 2
	c.ink[2] = 1
	c.FadeTick()
	if got := c.ink[0]; got != 98 {
		t.Errorf("ink[0] = %d, want 98", got)
	}
	// Values at or below the fade amount clamp to zero instead of
	// wrapping.
	if got := c.ink[1]; got != 0 {
		t.Errorf("ink[1] = %d, want 0", got)
	}
	if got := c.ink[2]; got != 0 {
		t.Errorf("ink[2] = %d, want 0", got)
	}
}

func TestCanvasFadeZeroKeepsTrace(t *testing.T) {
	c := CreateCanvas(2, defaultBrightness, 0)
	c.ink[3] = 42
	c.FadeTick()
	if got := c.ink[3]; got != 42 {
		t.Fatalf("ink[3] = %d, want 42", got)
	}
}

func TestCanvasAdjustClamps(t *testing.T) {
	c := CreateCanvas(2, defaultBrightness, defaultFade)
	c.AdjustBrightness(-1000)
	if got := c.Brightness(); got != 0 {
		t.Errorf("Brightness() = %d, want 0", got)
	}
	c.AdjustBrightness(1000)
	if got := c.Brightness(); got != maxBrightness {
		t.Errorf("Brightness() = %d, want %d", got, maxBrightness)
	}
	c.AdjustFade(-1000)
	if got := c.Fade(); got != 0 {
		t.Errorf("Fade() = %d, want 0", got)
	}
	c.AdjustFade(1000)
	if got := c.Fade(); got != maxFade {
		t.Errorf("Fade() = %d, want %d", got, maxFade)
	}
}

func TestCanvasClear(t *testing.T) {
	c := CreateCanvas(3, defaultBrightness, defaultFade)
	for i := range c.ink {
		c.ink[i] = 9
	}
	c.Clear()
	for i, v := range c.ink {
		if v != 0 {
			t.Fatalf("ink[%d] = %d, want 0", i, v)
		}
	}
}
