// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package database

import (
	"context"
	"testing"

	"github.com/tomtom215/larder/internal/recommend"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	if err := db.Seed(ctx, baseTime); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	recipes, err := db.Recipes(ctx)
	if err != nil {
		t.Fatalf("Recipes() error = %v", err)
	}
	if len(recipes) != len(demoRecipes) {
		t.Fatalf("len(Recipes()) = %d, want %d", len(recipes), len(demoRecipes))
	}

	byID := make(map[string]recommend.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}
	lasagna := byID[DemoRecipeID("lasagna")]
	if lasagna.RatingsCount != 7 {
		t.Errorf("lasagna RatingsCount = %d, want 7", lasagna.RatingsCount)
	}
	if draft := byID[DemoRecipeID("draft-risotto")]; draft.IsPublished {
		t.Error("draft recipe seeded as published")
	}

	alice, err := db.Profile(ctx, demoUserID("alice"))
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if len(alice.ViewHistory) == 0 || alice.ViewHistory[0] != DemoRecipeID("carbonara") {
		t.Errorf("alice ViewHistory = %v, want carbonara first", alice.ViewHistory)
	}
	if len(alice.Preferences.FavoriteCuisines) != 1 {
		t.Errorf("alice Preferences = %+v", alice.Preferences)
	}
}

func TestSeed_SkipsWhenNotEmpty(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	insertTestRecipes(t, db)

	if err := db.Seed(ctx, baseTime); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	recipes, _ := db.Recipes(ctx)
	if len(recipes) != 3 {
		t.Errorf("len(Recipes()) = %d, want 3", len(recipes))
	}
}

func TestDemoRecipeID_Stable(t *testing.T) {
	if DemoRecipeID("carbonara") != DemoRecipeID("carbonara") {
		t.Error("DemoRecipeID() not deterministic")
	}
	if DemoRecipeID("carbonara") == DemoRecipeID("lasagna") {
		t.Error("DemoRecipeID() collided")
	}
}
