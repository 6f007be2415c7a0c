// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package recommend

import (
	"reflect"
	"strings"
	"testing"
)

func TestKeywordLookups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{name: "unknown cuisine falls back to tag", got: CuisineKeywords("  Peruvian "), want: []string{"peruvian"}},
		{name: "unknown diet falls back to tag", got: DietaryKeywords("Halal"), want: []string{"halal"}},
		{name: "unknown meal type falls back to tag", got: MealTypeKeywords("Supper"), want: []string{"supper"}},
		{name: "empty cuisine has no keywords", got: CuisineKeywords(""), want: nil},
		{name: "unknown occasion has no keywords", got: OccasionKeywords("graduation"), want: nil},
		{name: "unknown category has no keywords", got: CategoryKeywords("charcuterie"), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	t.Run("known tags resolve case insensitively", func(t *testing.T) {
		if kw := CuisineKeywords("Italian"); len(kw) == 0 || kw[0] != "italian" {
			t.Errorf("CuisineKeywords(Italian) = %v", kw)
		}
		if kw := CategoryKeywords("main_course"); len(kw) == 0 {
			t.Error("CategoryKeywords(main_course) is empty")
		}
	})
}

func TestKeywordTablesAreLowercase(t *testing.T) {
	t.Parallel()

	tables := map[string]map[string][]string{
		"cuisine":   cuisineKeywords,
		"dietary":   dietaryKeywords,
		"meal type": mealTypeKeywords,
		"occasion":  occasionKeywords,
		"category":  categoryKeywords,
	}
	for name, table := range tables {
		for tag, keywords := range table {
			if tag != strings.ToLower(tag) {
				t.Errorf("%s tag %q is not lowercase", name, tag)
			}
			for _, kw := range keywords {
				if kw == "" || kw != strings.ToLower(kw) {
					t.Errorf("%s keyword %q for %q is empty or not lowercase", name, kw, tag)
				}
			}
		}
	}
}

func TestOccasionsAndCategories(t *testing.T) {
	t.Parallel()

	want := []string{"comfort_food", "family", "healthy", "party", "quick_meals", "romantic", "weekend"}
	if got := Occasions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Occasions() = %v, want %v", got, want)
	}
	if got := Categories(); len(got) != len(categoryKeywords) {
		t.Errorf("Categories() len = %d, want %d", len(got), len(categoryKeywords))
	}
}

func TestSearchText(t *testing.T) {
	t.Parallel()

	text := newSearchText(&Recipe{Title: "Gluten-Free Brownies", Description: "Fudgy and rich, perfect for a party"})

	if !text.matchesAny([]string{"gluten-free"}) {
		t.Error("matchesAny(gluten-free) = false, want true")
	}
	if !text.matchesAny([]string{"nothing", "party"}) {
		t.Error("matchesAny(party) = false, want true")
	}
	if text.matchesAny([]string{"vegan", ""}) {
		t.Error("matchesAny(vegan) = true, want false")
	}

	title, desc := text.hits([]string{"brownie", "party", "rich", "salad"})
	if title != 1 || desc != 2 {
		t.Errorf("hits() = (%d, %d), want (1, 2)", title, desc)
	}
}
