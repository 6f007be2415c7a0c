// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// defaultRefreshInterval applies when the configured interval is not positive.
const defaultRefreshInterval = 5 * time.Minute

// CatalogRefresher reloads the recipe snapshot. Satisfied by
// *catalog.CachedStore.
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// CatalogRefreshService keeps the cached recipe snapshot warm. It loads
// once on start and then on every tick. Failed loads are logged and retried
// on the next tick; the service itself only returns on shutdown.
type CatalogRefreshService struct {
	refresher CatalogRefresher
	interval  time.Duration
	logger    zerolog.Logger
	name      string
}

// NewCatalogRefreshService creates the refresh service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogRefreshService(refresher CatalogRefresher, interval time.Duration, logger zerolog.Logger) *CatalogRefreshService {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &CatalogRefreshService{
		refresher: refresher,
		interval:  interval,
		logger:    logger.With().Str("service", "catalog-refresh").Logger(),
		name:      "catalog-refresh",
	}
}

// Serve implements suture.Service.
func (s *CatalogRefreshService) Serve(ctx context.Context) error {
	s.logger.Info().Dur("interval", s.interval).Msg("catalog refresh service starting")
	s.refresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog refresh service shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *CatalogRefreshService) refresh(ctx context.Context) {
	start := time.Now()
	if err := s.refresher.Refresh(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Warn().Err(err).Msg("catalog refresh failed (will retry on schedule)")
		return
	}
	s.logger.Debug().Dur("duration", time.Since(start)).Msg("catalog snapshot refreshed")
}

// String names the service in supervisor logs.
func (s *CatalogRefreshService) String() string {
	return s.name
}
