// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package catalog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tomtom215/larder/internal/recommend"
)

type memoryView struct {
	recipeID string
	at       time.Time
}

// MemoryStore is an in-memory Store. Recipes keep insertion order.
type MemoryStore struct {
	mu sync.RWMutex

	recipes []recommend.Recipe
	index   map[string]int

	ratings map[string]map[string]int // user -> recipe -> rating
	views   map[string][]memoryView
	prefs   map[string]recommend.Preferences
}

// NewMemoryStore returns a store holding recipes. AverageRating and
// RatingsCount on the given recipes are kept until the first Rate call
// touches that recipe.
func NewMemoryStore(recipes ...recommend.Recipe) *MemoryStore {
	s := &MemoryStore{
		index:   make(map[string]int),
		ratings: make(map[string]map[string]int),
		views:   make(map[string][]memoryView),
		prefs:   make(map[string]recommend.Preferences),
	}
	for i := range recipes {
		s.PutRecipe(recipes[i])
	}
	return s
}

// PutRecipe inserts or replaces a recipe.
func (s *MemoryStore) PutRecipe(r recommend.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[r.ID]; ok {
		s.recipes[i] = r
		return
	}
	s.index[r.ID] = len(s.recipes)
	s.recipes = append(s.recipes, r)
}

// Recipes implements Store.
func (s *MemoryStore) Recipes(_ context.Context) ([]recommend.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]recommend.Recipe(nil), s.recipes...), nil
}

// Profile implements Store.
func (s *MemoryStore) Profile(_ context.Context, userID string) (Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := Profile{
		Preferences: s.prefs[userID],
		Ratings:     make(map[string]int, len(s.ratings[userID])),
	}
	for id, v := range s.ratings[userID] {
		p.Ratings[id] = v
	}

	views := append([]memoryView(nil), s.views[userID]...)
	sort.SliceStable(views, func(i, j int) bool { return views[i].at.After(views[j].at) })
	ids := make([]string, len(views))
	for i, v := range views {
		ids[i] = v.recipeID
	}
	p.ViewHistory = dedupeRecent(ids)
	return p, nil
}

// RecordView implements Store.
func (s *MemoryStore) RecordView(_ context.Context, userID, recipeID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[recipeID]; !ok {
		return ErrNotFound
	}
	s.views[userID] = append(s.views[userID], memoryView{recipeID: recipeID, at: at})
	return nil
}

// Rate stores or replaces the user's rating and recomputes the recipe's
// average and count over all users.
func (s *MemoryStore) Rate(_ context.Context, userID, recipeID string, rating int, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[recipeID]
	if !ok {
		return ErrNotFound
	}
	if s.ratings[userID] == nil {
		s.ratings[userID] = make(map[string]int)
	}
	s.ratings[userID][recipeID] = rating

	sum, count := 0, 0
	for _, byRecipe := range s.ratings {
		if v, ok := byRecipe[recipeID]; ok {
			sum += v
			count++
		}
	}
	s.recipes[i].AverageRating = float64(sum) / float64(count)
	s.recipes[i].RatingsCount = count
	return nil
}

// SetPreferences implements Store.
func (s *MemoryStore) SetPreferences(_ context.Context, userID string, prefs recommend.Preferences, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[userID] = prefs
	return nil
}

// Ping implements Store.
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}
