// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/larder/internal/catalog"
	"github.com/tomtom215/larder/internal/recommend"
)

func TestRecommendations_DefaultPersonalized(t *testing.T) {
	h, _ := newTestServer(t)

	w, resp := do(t, h, http.MethodGet, "/api/v1/recommendations", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
	items := decodeScored(t, resp)
	if len(items) != 4 {
		t.Errorf("len = %d, want 4 published recipes", len(items))
	}
	if contains(ids(items), "draft") {
		t.Error("unpublished recipe returned")
	}
	if resp.Meta == nil || resp.Meta.Count == nil || *resp.Meta.Count != len(items) {
		t.Fatalf("meta.count = %v, want %d", resp.Meta, len(items))
	}
	if resp.Meta.RequestID == "" || resp.Meta.RequestID != w.Header().Get("X-Request-ID") {
		t.Errorf("meta.request_id = %q, header = %q", resp.Meta.RequestID, w.Header().Get("X-Request-ID"))
	}
}

func TestRecommendations_Types(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    []string // exact IDs in order, when set
		include string
		exclude string
		count   int // -1 skips the check
	}{
		{name: "limit", query: "type=trending&limit=1", count: 1},
		{name: "trending exclude", query: "type=trending&exclude=carbonara,+", exclude: "carbonara", count: 3},
		{name: "similar skips base", query: "type=similar&baseRecipeId=carbonara", exclude: "carbonara", count: 3},
		{name: "similar to unpublished base", query: "type=similar&baseRecipeId=draft", exclude: "draft", count: 4},
		{name: "similar unknown base", query: "type=similar&baseRecipeId=missing", want: []string{}, count: 0},
		{name: "occasion", query: "type=occasion&occasion=quick_meals", include: "salad", count: -1},
		{name: "unknown occasion", query: "type=occasion&occasion=funeral", want: []string{}, count: 0},
		{name: "category", query: "type=category&category=desserts", want: []string{"brownies"}, count: 1},
		{name: "unknown category", query: "type=category&category=gadgets", want: []string{}, count: 0},
		{name: "new users", query: "type=new_users", exclude: "salad", count: 3},
		{name: "period is case-insensitive", query: "type=trending&period=DAILY", count: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestServer(t)
			w, resp := do(t, h, http.MethodGet, "/api/v1/recommendations?"+tt.query, "", "")
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
			}
			if string(resp.Data) == "null" {
				t.Fatal("data = null, want a list")
			}
			got := ids(decodeScored(t, resp))
			if tt.want != nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ids = %v, want %v", got, tt.want)
			}
			if tt.include != "" && !contains(got, tt.include) {
				t.Errorf("ids = %v, want to include %s", got, tt.include)
			}
			if tt.exclude != "" && contains(got, tt.exclude) {
				t.Errorf("ids = %v, want to exclude %s", got, tt.exclude)
			}
			if tt.count >= 0 && len(got) != tt.count {
				t.Errorf("len = %d, want %d (%v)", len(got), tt.count, got)
			}
		})
	}
}

func TestRecommendations_BadRequests(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantCode string
	}{
		{"unknown type", "type=random", ErrCodeValidationFailed},
		{"similar without base", "type=similar", ErrCodeValidationFailed},
		{"occasion without tag", "type=occasion", ErrCodeValidationFailed},
		{"category without tag", "type=category", ErrCodeValidationFailed},
		{"negative limit", "limit=-1", ErrCodeValidationFailed},
		{"bad period", "type=trending&period=yearly", ErrCodeValidationFailed},
		{"base with whitespace", "type=similar&baseRecipeId=a+b", ErrCodeValidationFailed},
		{"non-numeric limit", "limit=abc", ErrCodeBadRequest},
		{"bad exclude_viewed", "exclude_viewed=maybe", ErrCodeBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestServer(t)
			w, resp := do(t, h, http.MethodGet, "/api/v1/recommendations?"+tt.query, "", "")
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if resp.Success || resp.Error == nil {
				t.Fatalf("response = %+v, want error envelope", resp)
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", resp.Error.Code, tt.wantCode)
			}
			if resp.Error.Message == "" {
				t.Error("empty error message")
			}
		})
	}
}

func TestRecommendations_LimitClamped(t *testing.T) {
	store := catalog.NewMemoryStore()
	for i := 0; i < 80; i++ {
		store.PutRecipe(recommend.Recipe{
			ID:          fmt.Sprintf("r%02d", i),
			Title:       "Recipe",
			CreatedAt:   testNow,
			IsPublished: true,
		})
	}
	cfg := testConfig()
	h := newTestServerWith(t, store, cfg)

	tests := []struct {
		query string
		want  int
	}{
		{"", cfg.Recommend.DefaultLimit},
		{"limit=0", cfg.Recommend.DefaultLimit},
		{"limit=10", 10},
		{"limit=1000", cfg.Recommend.MaxLimit},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			_, resp := do(t, h, http.MethodGet, "/api/v1/recommendations?type=trending&"+tt.query, "", "")
			if got := len(decodeScored(t, resp)); got != tt.want {
				t.Errorf("len = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRecommendations_ExcludeViewed(t *testing.T) {
	h, store := newTestServer(t)
	if err := store.RecordView(context.Background(), "u1", "carbonara", testNow); err != nil {
		t.Fatal(err)
	}

	for _, typ := range []string{"personalized", "trending"} {
		t.Run(typ, func(t *testing.T) {
			_, resp := do(t, h, http.MethodGet, "/api/v1/recommendations?exclude_viewed=true&type="+typ, "u1", "")
			got := ids(decodeScored(t, resp))
			if contains(got, "carbonara") {
				t.Errorf("ids = %v, viewed recipe not excluded", got)
			}
			if len(got) != 3 {
				t.Errorf("len = %d, want 3", len(got))
			}
		})
	}

	_, resp := do(t, h, http.MethodGet, "/api/v1/recommendations", "u1", "")
	if !contains(ids(decodeScored(t, resp)), "carbonara") {
		t.Error("viewed recipe excluded without exclude_viewed")
	}
}

func TestRecommendations_UsesPreferences(t *testing.T) {
	h, store := newTestServer(t)
	prefs := recommend.Preferences{FavoriteCuisines: []string{"italian"}}
	if err := store.SetPreferences(context.Background(), "u1", prefs, testNow); err != nil {
		t.Fatal(err)
	}

	_, resp := do(t, h, http.MethodGet, "/api/v1/recommendations", "u1", "")
	items := decodeScored(t, resp)
	if len(items) == 0 || items[0].Recipe.ID != "carbonara" {
		t.Fatalf("ids = %v, want carbonara first", ids(items))
	}
	if !contains(items[0].Reasons, recommend.ReasonCuisine) {
		t.Errorf("reasons = %v, want %q", items[0].Reasons, recommend.ReasonCuisine)
	}

	// Anonymous users never see u1's preferences.
	_, anon := do(t, h, http.MethodGet, "/api/v1/recommendations", "", "")
	for _, item := range decodeScored(t, anon) {
		if contains(item.Reasons, recommend.ReasonCuisine) {
			t.Errorf("anonymous result %s has cuisine reason", item.Recipe.ID)
		}
	}
}

func TestRecommendations_NewUsersLeadWithProvenRecipes(t *testing.T) {
	day := 24 * time.Hour
	store := catalog.NewMemoryStore(
		recommend.Recipe{ID: "fresh", Title: "Fresh", CreatedAt: testNow.Add(-day), IsPublished: true,
			AverageRating: 5, RatingsCount: 1},
		recommend.Recipe{ID: "proven", Title: "Proven", CreatedAt: testNow.Add(-90 * day), IsPublished: true,
			AverageRating: 4, RatingsCount: 3},
	)
	prefs := recommend.Preferences{FavoriteCuisines: []string{"mexican"}}
	if err := store.SetPreferences(context.Background(), "returning", prefs, testNow); err != nil {
		t.Fatal(err)
	}
	h := newTestServerWith(t, store, testConfig())

	tests := []struct {
		name   string
		userID string
		query  string
		want   []string
	}{
		{"anonymous", "", "", []string{"proven", "fresh"}},
		{"anonymous limit", "", "?limit=1", []string{"proven"}},
		{"anonymous exclude", "", "?exclude=proven", []string{"fresh"}},
		{"user with preferences", "returning", "", []string{"fresh", "proven"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := do(t, h, http.MethodGet, "/api/v1/recommendations"+tt.query, tt.userID, "")
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (%s)", w.Code, w.Body.String())
			}
			if got := ids(decodeScored(t, resp)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecommendations_StoreErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unavailable", fmt.Errorf("%w: circuit open", catalog.ErrUnavailable), http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"timeout", fmt.Errorf("load: %w", context.DeadlineExceeded), http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"other", errors.New("disk on fire"), http.StatusInternalServerError, ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestServerWith(t, failingStore{err: tt.err}, testConfig())
			w, resp := do(t, h, http.MethodGet, "/api/v1/recommendations?type=trending", "", "")
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", resp.Error, tt.wantCode)
			}
		})
	}
}

func TestTagLists(t *testing.T) {
	h, _ := newTestServer(t)

	tests := []struct {
		path string
		want []string
	}{
		{"/api/v1/recommendations/occasions", recommend.Occasions()},
		{"/api/v1/recommendations/categories", recommend.Categories()},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w, resp := do(t, h, http.MethodGet, tt.path, "", "")
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			var got []string
			if err := json.Unmarshal(resp.Data, &got); err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tags = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterExcluded(t *testing.T) {
	ranked := []recommend.ScoredRecipe{
		{Recipe: recommend.Recipe{ID: "a"}},
		{Recipe: recommend.Recipe{ID: "b"}},
		{Recipe: recommend.Recipe{ID: "c"}},
	}
	tests := []struct {
		name    string
		exclude []string
		limit   int
		want    []string
	}{
		{"no exclude truncates", nil, 2, []string{"a", "b"}},
		{"skips excluded", []string{"a"}, 2, []string{"b", "c"}},
		{"unknown excluded id", []string{"z"}, 5, []string{"a", "b", "c"}},
		{"all excluded", []string{"a", "b", "c"}, 2, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]recommend.ScoredRecipe(nil), ranked...)
			if got := ids(filterExcluded(in, tt.exclude, tt.limit)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("filterExcluded() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{" a , b ,,c ", []string{"a", "b", "c"}},
		{",", nil},
	}
	for _, tt := range tests {
		if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
