package main

const (
	defaultBrightness = 6
	defaultFade       = 2
	maxBrightness     = 255
	maxFade           = 50
)

// Canvas accumulates ink intensity, one byte per cell of the square
// trace image: writing a 1 brightens the touched cell, and the whole
// image decays a little every frame so stale activity fades while
// hot spots saturate toward full ink. The canvas knows nothing about
// GL; the display uploads it as a texture.
type Canvas struct {
	side       int
	ink        []uint8
	brightness int
	fade       int
}

func CreateCanvas(side, brightness, fade int) *Canvas {
	return &Canvas{
		side:       side,
		ink:        make([]uint8, side*side),
		brightness: brightness,
		fade:       fade,
	}
}

// Plot brightens the cell a step event touched. Only written ones
// leave ink; zero writes leave the decay to erase the cell.
func (c *Canvas) Plot(ev StepEvent) {
	if ev.Wrote != 1 {
		return
	}
	i := ev.Row*c.side + ev.Col
	c.ink[i] = uint8(min(int(c.ink[i])+c.brightness, 255))
}

// FadeTick dims every cell by the fade amount. Runs once per frame.
func (c *Canvas) FadeTick() {
	if c.fade <= 0 {
		return
	}
	fade := uint8(c.fade)
	for i, v := range c.ink {
		if v <= fade {
			c.ink[i] = 0
		} else {
			c.ink[i] = v - fade
		}
	}
}

// Clear wipes all ink. Used when the machine resets.
func (c *Canvas) Clear() {
	for i := range c.ink {
		c.ink[i] = 0
	}
}

func (c *Canvas) Brightness() int { return c.brightness }
func (c *Canvas) Fade() int       { return c.fade }

func (c *Canvas) AdjustBrightness(delta int) {
	c.brightness = min(max(c.brightness+delta, 0), maxBrightness)
}

func (c *Canvas) AdjustFade(delta int) {
	c.fade = min(max(c.fade+delta, 0), maxFade)
}
