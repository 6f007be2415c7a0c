// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/larder/internal/catalog"
	"github.com/tomtom215/larder/internal/config"
	"github.com/tomtom215/larder/internal/logging"
	"github.com/tomtom215/larder/internal/recommend"
)

// Handler serves the API endpoints from a catalog store.
type Handler struct {
	store     catalog.Store
	cfg       *config.Config
	engineCfg *recommend.Config
	logger    zerolog.Logger
	startTime time.Time

	// now is the evaluation clock for scoring and interaction timestamps.
	now func() time.Time
}

// NewHandler creates a handler over store. The store is normally a
// catalog.CachedStore so request-time loads hit the snapshot.
func NewHandler(store catalog.Store, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		cfg:       cfg,
		engineCfg: cfg.Recommend.EngineConfig(),
		logger:    logging.WithComponent("api"),
		startTime: time.Now(),
		now:       time.Now,
	}
}

// requestContext bounds a request by recommend.request_timeout.
func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.cfg.Recommend.RequestTimeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.cfg.Recommend.RequestTimeout)
}

// writeStoreError maps store errors onto HTTP responses.
func (h *Handler) writeStoreError(rw *ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		rw.NotFound(notFound)
	case errors.Is(err, catalog.ErrUnavailable):
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Catalog unavailable")
		rw.ServiceUnavailable("Recipe catalog is temporarily unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Request timed out")
		rw.ServiceUnavailable("Request timed out")
	default:
		logging.Ctx(r.Context()).Error().Err(err).Msg("Catalog error")
		rw.InternalError("An internal error occurred")
	}
}
