package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "ftmp:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := ParseConfig(args)
	if err != nil {
		return err
	}
	if err := InitLogger(cfg.LogLevel); err != nil {
		return err
	}
	// The rule table is validated before any device comes up, so a
	// broken table fails fast without flashing a window.
	rules, err := LoadRuleTableFile(cfg.RulePath)
	if err != nil {
		return err
	}
	logger.Info("rule table loaded",
		"path", cfg.RulePath, "states", rules.NumStates(), "rules", rules.NumRules())

	deviceRate := cfg.DeviceRate
	if deviceRate == 0 {
		deviceRate = cfg.SampleRate
	}
	var dev AudioDevice
	dev, err = CreateOtoDevice(deviceRate)
	if err != nil {
		return fmt.Errorf("audio device: %w", err)
	}
	if deviceRate != cfg.SampleRate {
		resampling, err := CreateResamplingDevice(dev, cfg.SampleRate, deviceRate)
		if err != nil {
			dev.Close()
			return err
		}
		dev = resampling
		logger.Info("resampling output", "rate", cfg.SampleRate, "deviceRate", deviceRate)
	}
	defer dev.Close()

	var recorder *WavRecorder
	if cfg.RecordPath != "" {
		recorder, err = CreateWavRecorder(cfg.RecordPath, cfg.SampleRate)
		if err != nil {
			return err
		}
		defer func() {
			if err := recorder.Close(); err != nil {
				logger.Warn("closing wav capture failed", "error", err)
			}
		}()
		logger.Info("capturing session", "path", cfg.RecordPath)
	}

	app := CreateApp(cfg, rules, dev, recorder)
	side := cfg.TapeCells * cfg.Scale
	logger.Info("starting",
		"n", cfg.TapeCells, "fps", cfg.FrameRate, "rate", cfg.SampleRate,
		"delay", cfg.DelaySamples, "window", side)
	return WithGL(app.Caption(), side, side, cfg.FrameRate, app)
}
