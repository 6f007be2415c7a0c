// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

/*
Package api provides the HTTP interface for recommendations and user
interactions, routed with Chi.

# Endpoints

	GET  /api/v1/recommendations              ranked recipes (see below)
	GET  /api/v1/recommendations/occasions    known occasion tags
	GET  /api/v1/recommendations/categories   known category tags
	POST /api/v1/recipes/{id}/views           record a view
	POST /api/v1/recipes/{id}/ratings         rate a recipe 1-5
	PUT  /api/v1/preferences                  replace stated preferences
	GET  /api/v1/health/live                  liveness probe
	GET  /api/v1/health/ready                 readiness probe (store reachable)
	GET  /metrics                             Prometheus metrics

The requesting user is identified by the X-User-ID header. Requests without
it are anonymous: recommendations use an empty profile and writes are
rejected.

# Recommendation Types

The type query parameter selects the ranking:

  - personalized (default): preference and history based scoring
  - similar: likeness to baseRecipeId
  - trending: trend score, with period daily, weekly or monthly
  - occasion: keyword relevance to occasion
  - category: trend score within category
  - new_users: well-established recipes for users with no history

limit defaults to recommend.default_limit and is capped at
recommend.max_limit. exclude takes a comma-separated list of recipe IDs;
exclude_viewed=true also excludes the user's view history. Unknown base
recipes, occasions and categories produce an empty list, not an error.

# Response Format

Every response uses the APIResponse envelope:

	{"success": true, "data": [...], "meta": {"request_id": "...", "timestamp": "...", "count": 6}}
	{"success": false, "error": {"code": "VALIDATION_FAILED", "message": "..."}, "meta": {...}}

Store errors map to status codes: catalog.ErrUnavailable and timeouts to
503, catalog.ErrNotFound to 404, anything else to 500.
*/
package api
