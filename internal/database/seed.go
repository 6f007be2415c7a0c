// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/larder/internal/logging"
	"github.com/tomtom215/larder/internal/recommend"
)

// seedNamespace derives stable recipe IDs from demo slugs, so reseeding a
// fresh database yields the same IDs.
var seedNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/tomtom215/larder/demo"))

type demoRecipe struct {
	slug        string
	title       string
	description string
	ageDays     int
	published   bool
	prep, cook  int
	servings    int
}

var demoRecipes = []demoRecipe{
	{"carbonara", "Quick Spaghetti Carbonara", "A classic Italian pasta with eggs, parmesan and crispy pancetta. Easy weeknight dinner.", 2, true, 10, 15, 4},
	{"green-curry", "Thai Green Curry", "Fragrant green curry with chicken, lemongrass and coconut milk.", 5, true, 20, 25, 4},
	{"lasagna", "Family Lasagna", "Hearty baked lasagna layered with beef ragu and creamy bechamel. A crowd-pleaser.", 12, true, 40, 60, 8},
	{"buddha-bowl", "Vegan Buddha Bowl", "Healthy plant-based bowl with quinoa, roasted chickpeas and tahini dressing.", 1, true, 15, 20, 2},
	{"brownies", "Fudgy Chocolate Brownies", "Rich chocolate dessert baked in one pan.", 20, true, 15, 30, 12},
	{"tacos", "Weeknight Fish Tacos", "Grilled fish tacos with lime slaw and fresh salsa.", 3, true, 15, 10, 4},
	{"pho", "Beef Pho", "Vietnamese noodle soup simmered slowly with star anise and cinnamon.", 40, true, 30, 180, 6},
	{"shakshuka", "Shakshuka", "Eggs poached in spiced tomato sauce, a Middle Eastern brunch favorite.", 8, true, 10, 20, 3},
	{"wings", "Buffalo Wings Platter", "Crispy party wings with blue cheese dip for a crowd.", 15, true, 15, 45, 6},
	{"steak", "Steak for Two", "Elegant pan-seared steak with red wine sauce for date night.", 25, true, 10, 20, 2},
	{"pancakes", "Fluffy Pancakes", "Simple American breakfast pancakes with maple syrup.", 60, true, 10, 15, 4},
	{"salad", "Greek Salad", "Fresh salad with feta, olives, cucumber and a lemon vinaigrette.", 6, true, 15, 0, 4},
	{"stew", "Slow Cooker Beef Stew", "Comfort food stew braised all weekend with root vegetables.", 30, true, 20, 240, 6},
	{"bread", "Homemade Sourdough Bread", "A weekend baking project with a crackling crust.", 90, true, 60, 45, 10},
	{"draft-risotto", "Mushroom Risotto (draft)", "Creamy risotto, still testing the stock ratio.", 1, false, 10, 30, 4},
}

type demoRating struct {
	user   string
	slug   string
	rating int
}

var demoRatings = []demoRating{
	{"alice", "carbonara", 5}, {"bob", "carbonara", 4}, {"carol", "carbonara", 5}, {"dave", "carbonara", 4},
	{"erin", "carbonara", 5}, {"frank", "carbonara", 5},
	{"alice", "green-curry", 4}, {"bob", "green-curry", 5}, {"carol", "green-curry", 4},
	{"alice", "lasagna", 5}, {"bob", "lasagna", 5}, {"carol", "lasagna", 4}, {"dave", "lasagna", 5},
	{"erin", "lasagna", 4}, {"frank", "lasagna", 5}, {"grace", "lasagna", 5},
	{"bob", "buddha-bowl", 4}, {"grace", "buddha-bowl", 5},
	{"alice", "brownies", 5}, {"dave", "brownies", 5}, {"erin", "brownies", 4}, {"frank", "brownies", 5},
	{"carol", "tacos", 3}, {"dave", "tacos", 4},
	{"bob", "pho", 5}, {"frank", "pho", 4},
	{"erin", "shakshuka", 4},
	{"alice", "wings", 3}, {"bob", "wings", 4}, {"carol", "wings", 3},
	{"dave", "steak", 5}, {"grace", "steak", 4},
	{"alice", "pancakes", 4}, {"bob", "pancakes", 3}, {"carol", "pancakes", 4}, {"erin", "pancakes", 4},
	{"frank", "salad", 4},
	{"grace", "stew", 5}, {"dave", "stew", 4}, {"carol", "stew", 5},
	{"bob", "bread", 2},
}

type demoView struct {
	user     string
	slug     string
	hoursAgo int
}

var demoViews = []demoView{
	{"alice", "carbonara", 3}, {"alice", "lasagna", 30}, {"alice", "brownies", 50}, {"alice", "carbonara", 1},
	{"bob", "green-curry", 5}, {"bob", "pho", 12},
	{"grace", "buddha-bowl", 2}, {"grace", "salad", 8},
}

var demoPreferences = map[string]recommend.Preferences{
	"alice": {FavoriteCuisines: []string{"italian"}, CookingTime: 45, MealTypes: []string{"dinner"}},
	"grace": {FavoriteCuisines: []string{"mediterranean"}, DietaryRestrictions: []string{"vegan"}, CookingTime: 30},
}

// DemoRecipeID returns the ID Seed assigns to the demo recipe slug.
func DemoRecipeID(slug string) string {
	return uuid.NewSHA1(seedNamespace, []byte(slug)).String()
}

// Seed loads the demo catalog, ratings, views and preferences relative to
// now. It does nothing if the recipes table already has rows.
func (db *DB) Seed(ctx context.Context, now time.Time) error {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	var existing int
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM recipes").Scan(&existing); err != nil {
		return fmt.Errorf("failed to count recipes: %w", err)
	}
	if existing > 0 {
		logging.Debug().Int("recipes", existing).Msg("Catalog not empty, skipping demo seed")
		return nil
	}

	logging.Info().Int("recipes", len(demoRecipes)).Msg("Seeding demo catalog")

	for i := range demoRecipes {
		d := &demoRecipes[i]
		r := recommend.Recipe{
			ID:          DemoRecipeID(d.slug),
			Title:       d.title,
			Description: d.description,
			CreatedAt:   now.Add(-time.Duration(d.ageDays) * 24 * time.Hour),
			IsPublished: d.published,
			PrepTime:    d.prep,
			CookTime:    d.cook,
			Servings:    d.servings,
		}
		if err := db.InsertRecipe(ctx, &r); err != nil {
			return err
		}
	}

	for i, r := range demoRatings {
		at := now.Add(-time.Duration(i) * time.Hour)
		if err := db.Rate(ctx, demoUserID(r.user), DemoRecipeID(r.slug), r.rating, at); err != nil {
			return fmt.Errorf("seed rating %s/%s: %w", r.user, r.slug, err)
		}
	}

	for _, v := range demoViews {
		at := now.Add(-time.Duration(v.hoursAgo) * time.Hour)
		if err := db.RecordView(ctx, demoUserID(v.user), DemoRecipeID(v.slug), at); err != nil {
			return fmt.Errorf("seed view %s/%s: %w", v.user, v.slug, err)
		}
	}

	for user, prefs := range demoPreferences {
		if err := db.SetPreferences(ctx, demoUserID(user), prefs, now); err != nil {
			return fmt.Errorf("seed preferences %s: %w", user, err)
		}
	}

	return db.Checkpoint(ctx)
}

func demoUserID(name string) string {
	return "demo-" + name
}
