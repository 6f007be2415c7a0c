// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

// Package logging provides the process-wide zerolog logger for Larder.
//
// Initialize once from main, then log through the package helpers or a
// component logger:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//
//	log := logging.WithComponent("catalog")
//	log.Debug().Int("recipes", n).Msg("snapshot refreshed")
//
// Inside request handlers use Ctx so request_id and correlation_id are
// attached automatically:
//
//	logging.Ctx(ctx).Warn().Err(err).Msg("profile load failed")
//
// Libraries that expect log/slog (the suture supervisor event hook) get a
// slog.Logger backed by the same zerolog output via NewSlogLogger.
//
// Always terminate event chains with Msg or Send, otherwise nothing is
// written.
package logging
