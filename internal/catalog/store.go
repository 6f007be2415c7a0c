// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/larder/internal/recommend"
)

var (
	// ErrNotFound is returned when a write names an unknown recipe.
	ErrNotFound = errors.New("recipe not found")

	// ErrUnavailable is returned when the store refuses work, for example
	// while its circuit breaker is open.
	ErrUnavailable = errors.New("catalog unavailable")
)

// Profile is everything the engine knows about one user.
type Profile struct {
	Preferences recommend.Preferences `json:"preferences"`

	// ViewHistory lists viewed recipe IDs, most recent first, without repeats.
	ViewHistory []string `json:"viewHistory"`

	// Ratings maps recipe ID to the 1-5 rating the user gave.
	Ratings map[string]int `json:"ratings"`
}

// Store reads and writes recipes and user interactions.
//
// Recipes returns every recipe, published or not, with AverageRating and
// RatingsCount filled from the ratings. Callers must treat the returned
// slice as read-only. Profile returns an empty profile for unknown users.
type Store interface {
	Recipes(ctx context.Context) ([]recommend.Recipe, error)
	Profile(ctx context.Context, userID string) (Profile, error)

	RecordView(ctx context.Context, userID, recipeID string, at time.Time) error
	Rate(ctx context.Context, userID, recipeID string, rating int, at time.Time) error
	SetPreferences(ctx context.Context, userID string, prefs recommend.Preferences, at time.Time) error

	Ping(ctx context.Context) error
}

// dedupeRecent drops repeated IDs, keeping the first occurrence.
func dedupeRecent(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
