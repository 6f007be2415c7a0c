// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/larder/internal/catalog"
	"github.com/tomtom215/larder/internal/metrics"
	"github.com/tomtom215/larder/internal/recommend"
)

var _ catalog.Store = (*DB)(nil)

const recipesQuery = `
SELECT
	r.id, r.title, r.description, r.created_at, r.is_published,
	r.prep_time, r.cook_time, r.servings,
	COALESCE(AVG(rt.rating), 0)::DOUBLE AS average_rating,
	COUNT(rt.rating) AS ratings_count
FROM recipes r
LEFT JOIN ratings rt ON rt.recipe_id = r.id
GROUP BY r.id, r.title, r.description, r.created_at, r.is_published,
	r.prep_time, r.cook_time, r.servings
ORDER BY r.created_at DESC, r.id`

// Recipes returns every recipe with its rating aggregates, newest first.
func (db *DB) Recipes(ctx context.Context) ([]recommend.Recipe, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	recipes, err := db.queryRecipes(ctx)
	metrics.RecordDBQuery("select", "recipes", time.Since(start), err)
	return recipes, err
}

func (db *DB) queryRecipes(ctx context.Context) ([]recommend.Recipe, error) {
	rows, err := db.conn.QueryContext(ctx, recipesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer closeRows(rows)

	recipes := []recommend.Recipe{}
	for rows.Next() {
		var r recommend.Recipe
		if err := rows.Scan(
			&r.ID, &r.Title, &r.Description, &r.CreatedAt, &r.IsPublished,
			&r.PrepTime, &r.CookTime, &r.Servings,
			&r.AverageRating, &r.RatingsCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}
	return recipes, nil
}

// InsertRecipe stores a new recipe. Rating aggregates on r are ignored.
func (db *DB) InsertRecipe(ctx context.Context, r *recommend.Recipe) error {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	_, err := db.conn.ExecContext(ctx, `
INSERT INTO recipes (id, title, description, created_at, is_published, prep_time, cook_time, servings)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Title, r.Description, r.CreatedAt.UTC(), r.IsPublished, r.PrepTime, r.CookTime, r.Servings)
	metrics.RecordDBQuery("insert", "recipes", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to insert recipe %s: %w", r.ID, err)
	}
	return nil
}

func (db *DB) recipeExists(ctx context.Context, recipeID string) error {
	var n int
	start := time.Now()
	err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM recipes WHERE id = ?", recipeID).Scan(&n)
	metrics.RecordDBQuery("select", "recipes", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to look up recipe %s: %w", recipeID, err)
	}
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// RecordView appends a view of recipeID by userID.
func (db *DB) RecordView(ctx context.Context, userID, recipeID string, at time.Time) error {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	if err := db.recipeExists(ctx, recipeID); err != nil {
		return err
	}

	start := time.Now()
	_, err := db.conn.ExecContext(ctx,
		"INSERT INTO recipe_views (user_id, recipe_id, viewed_at) VALUES (?, ?, ?)",
		userID, recipeID, at.UTC())
	metrics.RecordDBQuery("insert", "recipe_views", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}
	return nil
}

// Rate stores the user's rating of recipeID, replacing any earlier one.
func (db *DB) Rate(ctx context.Context, userID, recipeID string, rating int, at time.Time) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating %d out of range 1-5", rating)
	}
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	if err := db.recipeExists(ctx, recipeID); err != nil {
		return err
	}

	start := time.Now()
	_, err := db.conn.ExecContext(ctx, `
INSERT INTO ratings (user_id, recipe_id, rating, rated_at) VALUES (?, ?, ?, ?)
ON CONFLICT (user_id, recipe_id) DO UPDATE SET rating = excluded.rating, rated_at = excluded.rated_at`,
		userID, recipeID, rating, at.UTC())
	metrics.RecordDBQuery("upsert", "ratings", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to store rating: %w", err)
	}
	return nil
}

// SetPreferences replaces the user's stated preferences.
func (db *DB) SetPreferences(ctx context.Context, userID string, prefs recommend.Preferences, at time.Time) error {
	cuisines, err := encodeTags(prefs.FavoriteCuisines)
	if err != nil {
		return err
	}
	dietary, err := encodeTags(prefs.DietaryRestrictions)
	if err != nil {
		return err
	}
	meals, err := encodeTags(prefs.MealTypes)
	if err != nil {
		return err
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	_, err = db.conn.ExecContext(ctx, `
INSERT INTO user_preferences (user_id, favorite_cuisines, dietary_restrictions, cooking_time, meal_types, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id) DO UPDATE SET
	favorite_cuisines = excluded.favorite_cuisines,
	dietary_restrictions = excluded.dietary_restrictions,
	cooking_time = excluded.cooking_time,
	meal_types = excluded.meal_types,
	updated_at = excluded.updated_at`,
		userID, cuisines, dietary, prefs.CookingTime, meals, at.UTC())
	metrics.RecordDBQuery("upsert", "user_preferences", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to store preferences: %w", err)
	}
	return nil
}

// Profile loads the user's preferences, view history and ratings.
// Unknown users get an empty profile.
func (db *DB) Profile(ctx context.Context, userID string) (catalog.Profile, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	prefs, err := db.preferences(ctx, userID)
	if err != nil {
		return catalog.Profile{}, err
	}
	views, err := db.viewHistory(ctx, userID)
	if err != nil {
		return catalog.Profile{}, err
	}
	ratings, err := db.userRatings(ctx, userID)
	if err != nil {
		return catalog.Profile{}, err
	}
	return catalog.Profile{Preferences: prefs, ViewHistory: views, Ratings: ratings}, nil
}

func (db *DB) preferences(ctx context.Context, userID string) (recommend.Preferences, error) {
	var (
		prefs                    recommend.Preferences
		cuisines, dietary, meals string
	)
	start := time.Now()
	err := db.conn.QueryRowContext(ctx, `
SELECT favorite_cuisines, dietary_restrictions, cooking_time, meal_types
FROM user_preferences WHERE user_id = ?`, userID).
		Scan(&cuisines, &dietary, &prefs.CookingTime, &meals)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordDBQuery("select", "user_preferences", time.Since(start), nil)
		return recommend.Preferences{}, nil
	}
	metrics.RecordDBQuery("select", "user_preferences", time.Since(start), err)
	if err != nil {
		return recommend.Preferences{}, fmt.Errorf("failed to query preferences: %w", err)
	}

	if prefs.FavoriteCuisines, err = decodeTags(cuisines); err != nil {
		return recommend.Preferences{}, err
	}
	if prefs.DietaryRestrictions, err = decodeTags(dietary); err != nil {
		return recommend.Preferences{}, err
	}
	if prefs.MealTypes, err = decodeTags(meals); err != nil {
		return recommend.Preferences{}, err
	}
	return prefs, nil
}

// viewHistory returns distinct viewed recipe IDs, most recently viewed first.
func (db *DB) viewHistory(ctx context.Context, userID string) ([]string, error) {
	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, `
SELECT recipe_id, MAX(viewed_at) AS last_viewed
FROM recipe_views
WHERE user_id = ?
GROUP BY recipe_id
ORDER BY last_viewed DESC, recipe_id`, userID)
	metrics.RecordDBQuery("select", "recipe_views", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query view history: %w", err)
	}
	defer closeRows(rows)

	ids := []string{}
	for rows.Next() {
		var (
			id   string
			last time.Time
		)
		if err := rows.Scan(&id, &last); err != nil {
			return nil, fmt.Errorf("failed to scan view: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (db *DB) userRatings(ctx context.Context, userID string) (map[string]int, error) {
	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, "SELECT recipe_id, rating FROM ratings WHERE user_id = ?", userID)
	metrics.RecordDBQuery("select", "ratings", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings: %w", err)
	}
	defer closeRows(rows)

	ratings := make(map[string]int)
	for rows.Next() {
		var (
			id     string
			rating int
		)
		if err := rows.Scan(&id, &rating); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings[id] = rating
	}
	return ratings, rows.Err()
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode preference tags: %w", err)
	}
	return string(b), nil
}

// decodeTags returns nil for an empty list so unset preferences round-trip
// to the zero value.
func decodeTags(s string) ([]string, error) {
	var tags []string
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		return nil, fmt.Errorf("failed to decode preference tags: %w", err)
	}
	if len(tags) == 0 {
		return nil, nil
	}
	return tags, nil
}
