package main

import (
	"log/slog"
	"testing"
)

func TestResolveLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ResolveLogLevel(tt.in)
		if err != nil {
			t.Errorf("ResolveLogLevel(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolveLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ResolveLogLevel("loud"); err == nil {
		t.Error("ResolveLogLevel(\"loud\") succeeded, want error")
	}
}
