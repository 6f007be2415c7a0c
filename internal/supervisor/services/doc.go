// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

// Package services adapts Larder components to suture.Service.
//
// HTTPServerService turns http.Server's blocking ListenAndServe into a
// context-aware Serve with graceful shutdown. CatalogRefreshService reloads
// the cached recipe snapshot on a fixed interval so request handlers rarely
// pay for a database read.
package services
