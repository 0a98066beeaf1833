package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const delayCoarseStep = 64

// App owns one session: the machine with its audio pipeline, the ink
// canvas with its GL display, and the key bindings that steer both.
// Everything runs on the main thread; only the audio device drains
// its queue elsewhere.
type App struct {
	cfg        *Config
	machine    *Machine
	synth      *Synth
	sched      *StepScheduler
	packets    *PacketWriter
	driver     *PlaybackDriver
	recorder   *WavRecorder
	canvas     *Canvas
	display    *CanvasDisplay
	hud        *HUD
	keymap     KeyMap
	caption    string
	shouldExit bool
}

// CreateApp wires the machine to its observers. The audio device and
// the optional recorder are owned by the caller; the GL side is
// created later in Init once a context exists.
func CreateApp(cfg *Config, rules *RuleTable, dev AudioDevice, recorder *WavRecorder) *App {
	app := &App{
		cfg:      cfg,
		machine:  CreateMachine(rules, cfg.TapeCells),
		synth:    CreateSynth(cfg.DelaySamples, cfg.SampleRate),
		sched:    CreateStepScheduler(cfg.SampleRate, cfg.FrameRate),
		packets:  CreatePacketWriter(cfg.SampleRate),
		driver:   CreatePlaybackDriver(dev),
		recorder: recorder,
		canvas:   CreateCanvas(cfg.TapeCells, cfg.Brightness, cfg.Fade),
	}
	app.bindKeys()
	app.refreshCaption()
	return app
}

func (app *App) bindKeys() {
	keymap := CreateKeyMap()
	keymap.Bind("Escape", app.Quit)
	keymap.Bind("q", app.Quit)
	keymap.Bind("r", app.ResetMachine)
	keymap.Bind("-", func() { app.adjustDelay(-delayCoarseStep) })
	keymap.Bind("=", func() { app.adjustDelay(delayCoarseStep) })
	keymap.Bind("+", func() { app.adjustDelay(delayCoarseStep) })
	keymap.Bind("[", func() { app.adjustDelay(-1) })
	keymap.Bind("]", func() { app.adjustDelay(1) })
	keymap.Bind(",", func() { app.canvas.AdjustFade(-1) })
	keymap.Bind(".", func() { app.canvas.AdjustFade(1) })
	keymap.Bind(";", func() { app.canvas.AdjustBrightness(-1) })
	keymap.Bind("'", func() { app.canvas.AdjustBrightness(1) })
	keymap.Bind("c", app.copySessionCommand)
	app.keymap = keymap
}

func (app *App) Init() error {
	display, err := CreateCanvasDisplay(app.canvas)
	if err != nil {
		return err
	}
	hud, err := CreateHUD()
	if err != nil {
		display.Close()
		return err
	}
	app.display = display
	app.hud = hud
	return nil
}

func (app *App) IsRunning() bool {
	return !app.shouldExit
}

func (app *App) Quit() {
	app.shouldExit = true
}

// ResetMachine restores the canonical start state and wipes the
// trace. The delay line and visual knobs keep their settings.
func (app *App) ResetMachine() {
	app.machine.Reset()
	app.canvas.Clear()
	logger.Info("machine reset")
}

func (app *App) adjustDelay(delta int) {
	app.synth.SetDelay(app.synth.Delay() + delta)
	logger.Debug("delay changed", "samples", app.synth.Delay())
}

// sessionCommand reproduces the command line that restores the
// current session, including knobs changed since startup.
func (app *App) sessionCommand() string {
	return fmt.Sprintf("ftmp -rules %s -n %d -fps %d -rate %d -scale %d -delay %d -brightness %d -fade %d",
		app.cfg.RulePath, app.cfg.TapeCells, app.cfg.FrameRate,
		app.cfg.SampleRate, app.cfg.Scale, app.synth.Delay(),
		app.canvas.Brightness(), app.canvas.Fade())
}

func (app *App) copySessionCommand() {
	cmd := app.sessionCommand()
	if err := clipboard.WriteAll(cmd); err != nil {
		logger.Warn("clipboard copy failed", "error", err)
		return
	}
	logger.Info("session command copied", "command", cmd)
}

func (app *App) refreshCaption() {
	delay := app.synth.Delay()
	delayMillis := 1000 * float64(delay) / float64(app.cfg.SampleRate)
	app.caption = fmt.Sprintf("FTMp N=%d %dHz delay=%d (%.1fms) brightness=%d fade=%d",
		app.cfg.TapeCells, app.cfg.SampleRate, delay, delayMillis,
		app.canvas.Brightness(), app.canvas.Fade())
}

func (app *App) Caption() string {
	return app.caption
}

func (app *App) OnKey(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	var keyName string
	switch key {
	case glfw.KeyLeftShift, glfw.KeyLeftControl, glfw.KeyLeftAlt, glfw.KeyLeftSuper:
		return
	case glfw.KeyRightShift, glfw.KeyRightControl, glfw.KeyRightAlt, glfw.KeyRightSuper:
		return
	case glfw.KeyEscape:
		keyName = "Escape"
	case glfw.KeyKPAdd:
		keyName = "+"
	case glfw.KeyKPSubtract:
		keyName = "-"
	default:
		keyName = glfw.GetKeyName(key, scancode)
	}
	if keyName == "" {
		return
	}
	app.keymap.HandleKey(keyName)
}

// RunFrame advances the machine by this frame's step budget, feeding
// the synthesizer, the canvas and the packetizer, then applies the
// decay tick. The budget is floored at one step so the machine keeps
// moving even when the sample rate is below the frame rate.
func (app *App) RunFrame() {
	steps := max(app.sched.StepsForFrame(), 1)
	for i := 0; i < steps; i++ {
		ev := app.machine.Step()
		left, right := app.synth.Render(ev)
		app.canvas.Plot(ev)
		pkt, sealed := app.packets.WriteFrame(left, right)
		if !sealed {
			continue
		}
		app.driver.Submit(pkt)
		if app.recorder != nil {
			app.recorder.WritePacket(pkt)
		}
	}
	app.canvas.FadeTick()
	app.refreshCaption()
}

func (app *App) Render() error {
	app.display.Render()
	app.hud.Render(app.caption)
	return nil
}

func (app *App) Update() error {
	app.RunFrame()
	return nil
}

func (app *App) Close() error {
	logger.Debug("closing app")
	if app.hud != nil {
		app.hud.Close()
	}
	if app.display != nil {
		app.display.Close()
	}
	return nil
}
