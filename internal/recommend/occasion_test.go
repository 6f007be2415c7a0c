// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package recommend

import (
	"reflect"
	"testing"
)

func TestForOccasion(t *testing.T) {
	t.Parallel()

	recipes := []Recipe{
		{ID: "ribs", Title: "Slow Braised Short Ribs", IsPublished: true},
		{ID: "pancakes", Title: "Easy Pancakes", IsPublished: true},
		{ID: "stirfry", Title: "Quick Weeknight Stir Fry", Description: "An easy one-pot dinner", IsPublished: true},
		{ID: "draft", Title: "Quick Easy Fast Simple", IsPublished: false},
	}
	e := newTestEngine(recipes, Preferences{}, nil)

	t.Run("scores title hits above description hits", func(t *testing.T) {
		got := e.ForOccasion(OccasionQuickMeals, 10)
		if want := []string{"stirfry", "pancakes"}; !reflect.DeepEqual(ids(got), want) {
			t.Fatalf("order = %v, want %v", ids(got), want)
		}
		if got[0].Score != 30 {
			t.Errorf("stirfry relevance = %v, want 30", got[0].Score)
		}
		if got[1].Score != 10 {
			t.Errorf("pancakes relevance = %v, want 10", got[1].Score)
		}
	})

	t.Run("occasion tag is case insensitive", func(t *testing.T) {
		if got := e.ForOccasion("QUICK_MEALS", 10); len(got) != 2 {
			t.Errorf("len = %d, want 2", len(got))
		}
	})

	t.Run("recipes without hits are dropped", func(t *testing.T) {
		got := e.ForOccasion(OccasionRomantic, 10)
		if len(got) != 0 {
			t.Errorf("romantic = %v, want none", ids(got))
		}
	})

	t.Run("unknown occasion returns empty list", func(t *testing.T) {
		got := e.ForOccasion("not-a-real-tag", 10)
		if got == nil || len(got) != 0 {
			t.Errorf("got %v, want []", got)
		}
	})

	t.Run("respects limit", func(t *testing.T) {
		if got := e.ForOccasion(OccasionQuickMeals, 1); len(got) != 1 {
			t.Errorf("len = %d, want 1", len(got))
		}
	})
}
