// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

/*
Package middleware provides HTTP middleware for request tracking, user
identification, access logging and Prometheus instrumentation.

All middleware uses the http.HandlerFunc form; the api package adapts it
to chi with chiMiddleware.

Key Components:

  - RequestID: X-Request-ID propagation plus logging context IDs
  - UserID: reads the caller from X-User-ID into the request context
  - AccessLog: one structured log line per request
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern

The router applies them in this order:

	RequestID -> UserID -> AccessLog -> PrometheusMetrics -> handler
*/
package middleware
