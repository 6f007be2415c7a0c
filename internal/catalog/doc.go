// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

/*
Package catalog defines the recipe and user-profile store the recommendation
API reads from, plus the layers stacked in front of it.

# Layers

A production store is assembled from the inside out:

	db, _ := database.New(&cfg.Database)           // DuckDB, implements Store
	guarded := catalog.NewBreakerStore(db, "duckdb", cfg.Catalog.Breaker)
	cached := catalog.NewCachedStore(guarded, cfg.Catalog, logger)

BreakerStore stops calling a failing database and reports ErrUnavailable
instead. CachedStore keeps the recipe snapshot in memory, coalesces
concurrent reloads, caches user profiles in an LRU, and serves the previous
snapshot when a reload fails.

MemoryStore implements Store without a database and backs the tests.

# Errors

ErrNotFound marks writes against a recipe that does not exist.
ErrUnavailable marks reads rejected because the store is known to be down.
Both are checked with errors.Is.
*/
package catalog
