package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected slog.Level
	}{
		{name: "debug", expected: slog.LevelDebug},
		{name: "info", expected: slog.LevelInfo},
		{name: "warn", expected: slog.LevelWarn},
		{name: "ERROR", expected: slog.LevelError},
		{name: "", expected: slog.LevelInfo},
		{name: "loud", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.name))
		})
	}
}
