// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// captureGlobal points the global logger at a buffer for the duration of t.
func captureGlobal(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Init(Config{Level: level, Format: "json", Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })
	return &buf
}

func decodeLine(t *testing.T, line string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", line, err)
	}
	return m
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"INFO", zerolog.InfoLevel},
		{" warn ", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"disabled", zerolog.Disabled},
		{"off", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLevel(tt.in); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInit_JSONOutput(t *testing.T) {
	buf := captureGlobal(t, "info")

	Info().Str("recipe_id", "r1").Msg("hello")

	m := decodeLine(t, strings.TrimSpace(buf.String()))
	if m["message"] != "hello" {
		t.Errorf("message = %v, want hello", m["message"])
	}
	if m["level"] != "info" {
		t.Errorf("level = %v, want info", m["level"])
	}
	if m["recipe_id"] != "r1" {
		t.Errorf("recipe_id = %v, want r1", m["recipe_id"])
	}
}

func TestInit_LevelFilters(t *testing.T) {
	buf := captureGlobal(t, "warn")

	Debug().Msg("dropped")
	Info().Msg("dropped")
	Warn().Msg("kept")
	Error().Msg("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	for _, line := range lines {
		if decodeLine(t, line)["message"] != "kept" {
			t.Errorf("unexpected line %q", line)
		}
	}
}

func TestInit_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "console", Output: &buf})
	t.Cleanup(func() { Init(DefaultConfig()) })

	Info().Msg("console line")

	out := buf.String()
	if !strings.Contains(out, "console line") {
		t.Errorf("output %q does not contain message", out)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("console output should not be JSON: %q", out)
	}
}

func TestWithComponent(t *testing.T) {
	buf := captureGlobal(t, "info")

	l := WithComponent("catalog")
	l.Info().Msg("loaded")

	m := decodeLine(t, strings.TrimSpace(buf.String()))
	if m["component"] != "catalog" {
		t.Errorf("component = %v, want catalog", m["component"])
	}
}

func TestErr(t *testing.T) {
	buf := captureGlobal(t, "info")

	Err(errors.New("boom")).Msg("failed")

	m := decodeLine(t, strings.TrimSpace(buf.String()))
	if m["level"] != "error" {
		t.Errorf("level = %v, want error", m["level"])
	}
	if m["error"] != "boom" {
		t.Errorf("error = %v, want boom", m["error"])
	}
}

func TestSetLogger(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))

	Info().Msg("swapped")

	if !strings.Contains(buf.String(), "swapped") {
		t.Errorf("SetLogger did not redirect output: %q", buf.String())
	}
}
