// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

/*
Package database provides the DuckDB-backed recipe store.

DB implements catalog.Store. It owns four tables:

  - recipes: the catalog, one row per recipe
  - ratings: one 1-5 rating per (user, recipe), replaced on re-rating
  - recipe_views: an append-only view log
  - user_preferences: stated preferences, list fields stored as JSON text

Rating aggregates are never stored. Recipes computes AverageRating and
RatingsCount with a LEFT JOIN over ratings on every load, so a recipe with
no ratings reports 0 and 0.

# Schema

The schema is applied through versioned migrations tracked in the
schema_migrations table. Migrations are append-only.

# Usage

	db, err := database.New(&cfg.Database)
	if err != nil {
	    return err
	}
	defer db.Close()

	if cfg.Database.SeedDemoData {
	    if err := db.Seed(ctx, time.Now()); err != nil {
	        return err
	    }
	}

# Metrics

Every query is timed through metrics.RecordDBQuery, labeled by operation
and table.

# Testing

Tests use an in-memory database (Path ":memory:"). DuckDB CGO calls are
serialized across tests with a package-level semaphore.
*/
package database
