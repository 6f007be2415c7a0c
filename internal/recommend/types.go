// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package recommend

import (
	"time"
)

// Recipe is a recipe enriched with its rating aggregates.
// Optional numeric fields are zero when unknown.
type Recipe struct {
	// ID is the unique recipe identifier.
	ID string `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// Description is optional; an empty string means no description.
	Description string `json:"description,omitempty"`

	// CreatedAt is when the recipe was created.
	CreatedAt time.Time `json:"created_at"`

	// IsPublished reports whether the recipe is visible to other users.
	IsPublished bool `json:"is_published"`

	// PrepTime is the preparation time in minutes.
	PrepTime int `json:"prep_time,omitempty"`

	// CookTime is the cooking time in minutes.
	CookTime int `json:"cook_time,omitempty"`

	// Servings is the number of servings the recipe yields.
	Servings int `json:"servings,omitempty"`

	// AverageRating is the mean of all ratings, or 0 if unrated.
	AverageRating float64 `json:"average_rating"`

	// RatingsCount is the number of ratings received.
	RatingsCount int `json:"ratings_count"`
}

// TotalTime returns prep time plus cook time in minutes.
func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// Preferences are the signals a user has stated about what they like.
// Every field is optional.
type Preferences struct {
	// FavoriteCuisines are cuisine tags such as "italian" or "thai".
	FavoriteCuisines []string `json:"favorite_cuisines,omitempty"`

	// DietaryRestrictions are dietary tags such as "vegan" or "gluten-free".
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty"`

	// CookingTime is the maximum total time in minutes. Zero means no preference.
	CookingTime int `json:"cooking_time,omitempty"`

	// MealTypes are meal tags such as "breakfast" or "dinner".
	MealTypes []string `json:"meal_types,omitempty"`
}

// IsEmpty reports whether no preference signal is set.
func (p *Preferences) IsEmpty() bool {
	return len(p.FavoriteCuisines) == 0 &&
		len(p.DietaryRestrictions) == 0 &&
		p.CookingTime <= 0 &&
		len(p.MealTypes) == 0
}

// Input is the snapshot an Engine is built from.
type Input struct {
	// Recipes is the catalog. Unpublished recipes are ignored by every query.
	Recipes []Recipe

	// Preferences are the requesting user's preferences.
	Preferences Preferences

	// ViewHistory lists recipe IDs the user has viewed, most recent first.
	ViewHistory []string

	// Ratings maps recipe ID to the 1-5 rating the user gave.
	Ratings map[string]int

	// Now is the evaluation time. Zero means the wall clock at construction.
	Now time.Time
}

// ScoredRecipe is a recipe with the score that ranked it.
type ScoredRecipe struct {
	Recipe  Recipe   `json:"recipe"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons,omitempty"`
}

// Period selects the lookback window for trending recipes.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Window returns the lookback duration for the period.
// Unknown periods use the weekly window.
func (p Period) Window() time.Duration {
	switch p {
	case PeriodDaily:
		return 24 * time.Hour
	case PeriodMonthly:
		return 30 * 24 * time.Hour
	default:
		return 7 * 24 * time.Hour
	}
}

// IsValid reports whether p is one of the known periods.
func (p Period) IsValid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	default:
		return false
	}
}

// Reason labels attached to personalized recommendations.
const (
	ReasonHighlyRated    = "Highly rated"
	ReasonCuisine        = "Matches your favorite cuisines"
	ReasonDietary        = "Fits your dietary preferences"
	ReasonCookTime       = "Fits your cooking time"
	ReasonMealType       = "Matches your preferred meal types"
	ReasonPopular        = "Popular with the community"
	ReasonRecent         = "Recently added"
	ReasonRatingAffinity = "Similar to recipes you rated highly"
)
