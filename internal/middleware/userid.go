// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package middleware

import (
	"context"
	"net/http"
	"strings"
)

// UserIDHeader names the requesting user. Authentication happens upstream;
// the header is trusted as-is.
const UserIDHeader = "X-User-ID"

const maxUserIDLength = 128

// UserID stores the trimmed X-User-ID header in the request context.
// Missing or oversized values leave the request anonymous.
func UserID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if userID == "" || len(userID) > maxUserIDLength {
			next(w, r)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), UserIDKey, userID)))
	}
}

// GetUserID returns the requesting user, or "" for anonymous requests.
func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}
