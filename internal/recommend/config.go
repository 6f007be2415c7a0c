// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package recommend

import (
	"fmt"
	"time"
)

// Config contains the tunable parts of personalized scoring.
// Trending, similarity and new-user formulas are fixed.
type Config struct {
	// Weights are the points awarded per personalized signal.
	Weights SignalWeights `json:"weights"`

	// Thresholds gate the popularity, recency and affinity signals.
	Thresholds SignalThresholds `json:"thresholds"`
}

// SignalWeights are the points each personalized signal adds.
type SignalWeights struct {
	// Rating multiplies the recipe's average rating.
	Rating float64 `json:"rating"`

	Cuisine        float64 `json:"cuisine"`
	Dietary        float64 `json:"dietary"`
	CookTime       float64 `json:"cook_time"`
	MealType       float64 `json:"meal_type"`
	Popularity     float64 `json:"popularity"`
	Recency        float64 `json:"recency"`
	RatingAffinity float64 `json:"rating_affinity"`
}

// SignalThresholds gate the non-preference signals.
type SignalThresholds struct {
	// HighlyRated is the average rating that earns the "highly rated" reason.
	HighlyRated float64 `json:"highly_rated"`

	// PopularRatings is the rating count a recipe must exceed to be popular.
	PopularRatings int `json:"popular_ratings"`

	// RecentWindow is how new a recipe must be for the recency bonus.
	RecentWindow time.Duration `json:"recent_window"`

	// AffinityRating is the minimum for both the user's mean given rating
	// and the recipe's average rating.
	AffinityRating float64 `json:"affinity_rating"`
}

// DefaultConfig returns the standard scoring configuration.
func DefaultConfig() *Config {
	return &Config{
		Weights: SignalWeights{
			Rating:         10,
			Cuisine:        25,
			Dietary:        20,
			CookTime:       15,
			MealType:       15,
			Popularity:     10,
			Recency:        8,
			RatingAffinity: 10,
		},
		Thresholds: SignalThresholds{
			HighlyRated:    4.5,
			PopularRatings: 10,
			RecentWindow:   7 * 24 * time.Hour,
			AffinityRating: 4.0,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	w := c.Weights
	for name, v := range map[string]float64{
		"rating":          w.Rating,
		"cuisine":         w.Cuisine,
		"dietary":         w.Dietary,
		"cook_time":       w.CookTime,
		"meal_type":       w.MealType,
		"popularity":      w.Popularity,
		"recency":         w.Recency,
		"rating_affinity": w.RatingAffinity,
	} {
		if v < 0 {
			return fmt.Errorf("weights.%s must be non-negative, got %f", name, v)
		}
	}

	t := c.Thresholds
	if t.HighlyRated < 0 || t.HighlyRated > 5 {
		return fmt.Errorf("thresholds.highly_rated must be in [0, 5], got %f", t.HighlyRated)
	}
	if t.AffinityRating < 0 || t.AffinityRating > 5 {
		return fmt.Errorf("thresholds.affinity_rating must be in [0, 5], got %f", t.AffinityRating)
	}
	if t.PopularRatings < 0 {
		return fmt.Errorf("thresholds.popular_ratings must be non-negative, got %d", t.PopularRatings)
	}
	if t.RecentWindow < 0 {
		return fmt.Errorf("thresholds.recent_window must be non-negative, got %v", t.RecentWindow)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	// Value-only fields.
	clone := *c
	return &clone
}
