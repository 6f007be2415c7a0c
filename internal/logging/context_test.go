// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateIDs(t *testing.T) {
	for name, gen := range map[string]func() string{
		"request":     GenerateRequestID,
		"correlation": GenerateCorrelationID,
	} {
		t.Run(name, func(t *testing.T) {
			a, b := gen(), gen()
			if a == b {
				t.Errorf("generated IDs should differ, both %q", a)
			}
			if _, err := uuid.Parse(a); err != nil {
				t.Errorf("%q is not a UUID: %v", a, err)
			}
		})
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("empty context request ID = %q, want empty", got)
	}

	ctx = ContextWithRequestID(ctx, "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext = %q, want req-1", got)
	}
}

func TestCorrelationIDContext(t *testing.T) {
	ctx := ContextWithCorrelationID(context.Background(), "corr-1")
	if got := CorrelationIDFromContext(ctx); got != "corr-1" {
		t.Errorf("CorrelationIDFromContext = %q, want corr-1", got)
	}

	ctx = ContextWithNewCorrelationID(context.Background())
	if got := CorrelationIDFromContext(ctx); got == "" {
		t.Error("ContextWithNewCorrelationID should set an ID")
	}
}

func TestLoggerFromContext_FallsBackToGlobal(t *testing.T) {
	buf := captureGlobal(t, "info")

	l := LoggerFromContext(context.Background())
	l.Info().Msg("global")

	if !strings.Contains(buf.String(), "global") {
		t.Errorf("expected global logger output, got %q", buf.String())
	}
}

func TestCtx_AddsIDs(t *testing.T) {
	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	ctx = ContextWithRequestID(ctx, "req-42")
	ctx = ContextWithCorrelationID(ctx, "corr-42")

	Ctx(ctx).Info().Msg("scoped")

	m := decodeLine(t, strings.TrimSpace(buf.String()))
	if m["request_id"] != "req-42" {
		t.Errorf("request_id = %v, want req-42", m["request_id"])
	}
	if m["correlation_id"] != "corr-42" {
		t.Errorf("correlation_id = %v, want corr-42", m["correlation_id"])
	}
}
