// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/larder/internal/logging"
)

// readyTimeout bounds the readiness store check.
const readyTimeout = 2 * time.Second

// snapshotAger is implemented by stores that cache the recipe snapshot.
type snapshotAger interface {
	SnapshotAge() time.Duration
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the recipe store answers a ping.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness check failed")
		rw.ServiceUnavailable("Recipe store is not reachable")
		return
	}
	body := map[string]interface{}{
		"ready":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}
	// -1 until the first load.
	if ager, ok := h.store.(snapshotAger); ok {
		body["snapshot_age_seconds"] = ager.SnapshotAge().Seconds()
	}
	rw.Success(body)
}
