// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/larder/internal/catalog"
	"github.com/tomtom215/larder/internal/config"
	"github.com/tomtom215/larder/internal/middleware"
	"github.com/tomtom215/larder/internal/recommend"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func testRecipes() []recommend.Recipe {
	day := 24 * time.Hour
	return []recommend.Recipe{
		{ID: "carbonara", Title: "Spaghetti Carbonara", Description: "Creamy Italian pasta", CreatedAt: testNow.Add(-2 * day),
			IsPublished: true, PrepTime: 10, CookTime: 15, Servings: 4, AverageRating: 4.8, RatingsCount: 12},
		{ID: "curry", Title: "Thai Green Curry", Description: "Fragrant coconut curry", CreatedAt: testNow.Add(-20 * day),
			IsPublished: true, PrepTime: 20, CookTime: 25, Servings: 4, AverageRating: 4.2, RatingsCount: 5},
		{ID: "brownies", Title: "Chocolate Brownies", Description: "Fudgy dessert", CreatedAt: testNow.Add(-40 * day),
			IsPublished: true, PrepTime: 15, CookTime: 30, Servings: 12, AverageRating: 4.6, RatingsCount: 8},
		{ID: "draft", Title: "Secret Pasta", CreatedAt: testNow.Add(-day), IsPublished: false, AverageRating: 5, RatingsCount: 1},
		{ID: "salad", Title: "Quick Green Salad", Description: "Fresh and healthy", CreatedAt: testNow.Add(-day),
			IsPublished: true, PrepTime: 10, Servings: 2, AverageRating: 3.9, RatingsCount: 2},
	}
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Security.RateLimitDisabled = true
	return cfg
}

// newTestServer returns a router over a MemoryStore seeded with testRecipes.
func newTestServer(t *testing.T) (http.Handler, *catalog.MemoryStore) {
	t.Helper()
	store := catalog.NewMemoryStore(testRecipes()...)
	return newTestServerWith(t, store, testConfig()), store
}

func newTestServerWith(t *testing.T, store catalog.Store, cfg *config.Config) http.Handler {
	t.Helper()
	h := NewHandler(store, cfg)
	h.now = func() time.Time { return testNow }
	return NewRouter(h, ChiMiddlewareConfigFromSecurity(&cfg.Security)).Setup()
}

type testResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func do(t *testing.T, h http.Handler, method, target, userID, body string) (*httptest.ResponseRecorder, testResponse) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp testResponse
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode %s %s: %v (body %q)", method, target, err, w.Body.String())
		}
	}
	return w, resp
}

func decodeScored(t *testing.T, resp testResponse) []recommend.ScoredRecipe {
	t.Helper()
	var items []recommend.ScoredRecipe
	if err := json.Unmarshal(resp.Data, &items); err != nil {
		t.Fatalf("decode data: %v (%s)", err, resp.Data)
	}
	return items
}

func ids(items []recommend.ScoredRecipe) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].Recipe.ID
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// failingStore fails every call with err.
type failingStore struct {
	err error
}

func (f failingStore) Recipes(context.Context) ([]recommend.Recipe, error) { return nil, f.err }
func (f failingStore) Profile(context.Context, string) (catalog.Profile, error) {
	return catalog.Profile{}, f.err
}
func (f failingStore) RecordView(context.Context, string, string, time.Time) error { return f.err }
func (f failingStore) Rate(context.Context, string, string, int, time.Time) error  { return f.err }
func (f failingStore) SetPreferences(context.Context, string, recommend.Preferences, time.Time) error {
	return f.err
}
func (f failingStore) Ping(context.Context) error { return f.err }
