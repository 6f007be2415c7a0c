// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

/*
Package metrics defines the Prometheus metrics exported by Larder.

All collectors are registered with the default registry through promauto and
served by promhttp at /metrics.

# Available Metrics

Recommendation Metrics:
  - recommendation_requests_total: Queries answered (counter)
    Labels: type, outcome
  - recommendation_duration_seconds: Engine build plus ranking time (histogram)
    Labels: type
  - recommendation_results: Recipes returned per query (histogram)
    Labels: type
  - recipe_interactions_total: Views and ratings recorded (counter)
    Labels: kind

Catalog Metrics:
  - catalog_load_duration_seconds: Published recipe snapshot load time (histogram)
  - catalog_load_errors_total: Failed snapshot loads (counter)
  - catalog_recipes: Recipes in the current snapshot (gauge)
  - catalog_last_refresh_timestamp_seconds: Unix time of the last good load (gauge)

Cache Metrics:
  - cache_hits_total, cache_misses_total, cache_evictions_total (counter)
    Labels: cache
  - cache_entries: Current entries (gauge)
    Labels: cache

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Labels: name, result
  - circuit_breaker_consecutive_failures (gauge)
  - circuit_breaker_state_transitions_total: Labels: name, from_state, to_state

Database Metrics:
  - duckdb_query_duration_seconds: Labels: operation, table
  - duckdb_query_errors_total: Labels: operation, table, error_type

API Metrics:
  - api_requests_total: Labels: method, endpoint, status_code
  - api_request_duration_seconds: Labels: method, endpoint
  - api_active_requests (gauge)
*/
package metrics
