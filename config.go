package main

import (
	"flag"
	"fmt"

	homedir "github.com/mitchellh/go-homedir"
)

// Config carries the startup parameters for one session. They are
// fixed for the lifetime of the process: tape length sizes the canvas
// and the window, the sample rate sets the machine step rate, and the
// frame rate drives the scheduler.
type Config struct {
	TapeCells    int
	FrameRate    int
	SampleRate   int
	RulePath     string
	Scale        int
	DelaySamples int
	Brightness   int
	Fade         int
	RecordPath   string
	DeviceRate   int
	LogLevel     string
}

func ParseConfig(args []string) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet("ftmp", flag.ContinueOnError)
	fs.IntVar(&cfg.TapeCells, "n", 1024, "tape length in cells (the canvas is n x n)")
	fs.IntVar(&cfg.FrameRate, "fps", 60, "target frame rate")
	fs.IntVar(&cfg.SampleRate, "rate", 22000, "sample rate, one machine step per sample")
	fs.StringVar(&cfg.RulePath, "rules", "program.csv", "rule table CSV file")
	fs.IntVar(&cfg.Scale, "scale", 1, "window pixels per tape cell")
	fs.IntVar(&cfg.DelaySamples, "delay", 0, "initial right channel delay in samples")
	fs.IntVar(&cfg.Brightness, "brightness", defaultBrightness, "ink added per written cell")
	fs.IntVar(&cfg.Fade, "fade", defaultFade, "ink faded per frame")
	fs.StringVar(&cfg.RecordPath, "record", "", "capture the session into this WAV file")
	fs.IntVar(&cfg.DeviceRate, "device-rate", 0, "audio device rate, 0 means same as -rate")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.TapeCells < 1 {
		return fmt.Errorf("-n must be at least 1, got %d", cfg.TapeCells)
	}
	if cfg.FrameRate < 1 {
		return fmt.Errorf("-fps must be at least 1, got %d", cfg.FrameRate)
	}
	if cfg.SampleRate < 1 {
		return fmt.Errorf("-rate must be at least 1, got %d", cfg.SampleRate)
	}
	if cfg.Scale < 1 {
		return fmt.Errorf("-scale must be at least 1, got %d", cfg.Scale)
	}
	if cfg.Brightness < 0 || cfg.Brightness > maxBrightness {
		return fmt.Errorf("-brightness must be between 0 and %d, got %d", maxBrightness, cfg.Brightness)
	}
	if cfg.Fade < 0 || cfg.Fade > maxFade {
		return fmt.Errorf("-fade must be between 0 and %d, got %d", maxFade, cfg.Fade)
	}
	if cfg.DeviceRate < 0 {
		return fmt.Errorf("-device-rate must not be negative, got %d", cfg.DeviceRate)
	}
	return nil
}

func (cfg *Config) expandPaths() error {
	path, err := homedir.Expand(cfg.RulePath)
	if err != nil {
		return fmt.Errorf("rules path: %w", err)
	}
	cfg.RulePath = path
	if cfg.RecordPath != "" {
		path, err := homedir.Expand(cfg.RecordPath)
		if err != nil {
			return fmt.Errorf("record path: %w", err)
		}
		cfg.RecordPath = path
	}
	return nil
}
