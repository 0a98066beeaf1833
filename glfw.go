package main

import (
	"runtime"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var fbWidth, fbHeight int

func init() {
	runtime.LockOSThread()
}

type GlfwApp interface {
	Init() error
	IsRunning() bool
	Caption() string
	OnKey(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey)
	Render() error
	Update() error
	Close() error
}

// WithGL opens a fixed-size window with a GLES2 context and runs the
// app's frame loop in it at the requested rate: render, swap, wait
// out the frame's remaining time (handling input events meanwhile),
// then update. Update runs strictly after the swap so a slow render
// steals from the wait, not from the machine's step budget.
func WithGL(title string, width, height, fps int, app GlfwApp) error {
	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return err
	}
	defer window.Destroy()

	framebufferSizeCallback := func(w *glfw.Window, width, height int) {
		fbWidth = width
		fbHeight = height
		gl.Viewport(0, 0, int32(width), int32(height))
	}
	window.SetFramebufferSizeCallback(framebufferSizeCallback)
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		app.OnKey(key, scancode, action, mods)
	})
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return err
	}
	// The canvas texture is one byte per pixel at arbitrary widths.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	w, h := glfw.GetCurrentContext().GetFramebufferSize()
	framebufferSizeCallback(nil, w, h)

	if err := app.Init(); err != nil {
		return err
	}
	defer app.Close()

	caption := title
	frameSeconds := 1.0 / float64(fps)
	for app.IsRunning() && !window.ShouldClose() {
		start := glfw.GetTime()
		gl.Clear(gl.COLOR_BUFFER_BIT)
		if err := app.Render(); err != nil {
			return err
		}
		window.SwapBuffers()
		if c := app.Caption(); c != caption {
			window.SetTitle(c)
			caption = c
		}
		elapsedSeconds := glfw.GetTime() - start
		if frameSeconds > elapsedSeconds {
			waitUntil(start+frameSeconds, glfw.GetTime, glfw.WaitEventsTimeout)
		} else {
			glfw.PollEvents()
		}
		if err := app.Update(); err != nil {
			return err
		}
	}
	return nil
}

// waitUntil blocks until deadline on the given clock, re-arming the
// wait for the remaining time whenever it returns early. Input events
// wake WaitEventsTimeout before the timeout runs out, so one call is
// not a frame limiter; the loop is.
func waitUntil(deadline float64, now func() float64, wait func(timeout float64)) {
	for t := now(); t < deadline; t = now() {
		wait(deadline - t)
	}
}
