// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestToZerologLevel(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			if got := toZerologLevel(tt.in); got != tt.want {
				t.Errorf("toZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlogHandler_Attributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(NewTestLogger(&buf)))

	logger.Info("service started",
		"service", "catalog-refresh",
		"attempt", 3,
		"healthy", true,
		"ratio", 0.5,
		"backoff", 2*time.Second,
		"err", errors.New("transient"),
	)

	m := decodeLine(t, strings.TrimSpace(buf.String()))
	checks := map[string]any{
		"message": "service started",
		"level":   "info",
		"service": "catalog-refresh",
		"attempt": float64(3),
		"healthy": true,
		"ratio":   0.5,
		"err":     "transient",
	}
	for k, want := range checks {
		if m[k] != want {
			t.Errorf("%s = %v, want %v", k, m[k], want)
		}
	}
	if _, ok := m["backoff"]; !ok {
		t.Error("duration attribute missing")
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(NewTestLogger(&buf))).
		With("supervisor", "root").
		WithGroup("event")

	logger.Warn("restart", "count", 2, slog.Group("svc", "name", "http"))

	m := decodeLine(t, strings.TrimSpace(buf.String()))
	if m["level"] != "warn" {
		t.Errorf("level = %v, want warn", m["level"])
	}
	if m["supervisor"] != "root" {
		t.Errorf("supervisor = %v, want root", m["supervisor"])
	}
	if m["event.count"] != float64(2) {
		t.Errorf("event.count = %v, want 2", m["event.count"])
	}
	if m["event.svc.name"] != "http" {
		t.Errorf("event.svc.name = %v, want http", m["event.svc.name"])
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	h := NewSlogHandler(zerolog.New(&bytes.Buffer{}).Level(zerolog.WarnLevel))

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled for a warn-level logger")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled for a warn-level logger")
	}
}

func TestNewSlogLogger_Component(t *testing.T) {
	buf := captureGlobal(t, "info")

	NewSlogLogger("supervisor").Info("tree started")

	m := decodeLine(t, strings.TrimSpace(buf.String()))
	if m["component"] != "supervisor" {
		t.Errorf("component = %v, want supervisor", m["component"])
	}
}
