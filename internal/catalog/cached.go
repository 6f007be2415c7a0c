// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/larder/internal/cache"
	"github.com/tomtom215/larder/internal/config"
	"github.com/tomtom215/larder/internal/metrics"
	"github.com/tomtom215/larder/internal/recommend"
)

const (
	snapshotCache = "recipe_snapshot"
	profileCache  = "profiles"
	snapshotKey   = "recipes"

	// loadTimeout bounds a shared reload, which outlives the request that
	// started it.
	loadTimeout = 30 * time.Second
)

// CachedStore serves recipes from an in-memory snapshot and profiles from
// an LRU. Concurrent misses for the same data share one underlying load.
type CachedStore struct {
	store  Store
	logger zerolog.Logger
	ttl    time.Duration
	now    func() time.Time

	// gen is bumped by every rating. The snapshot is fresh only while
	// snapGen, the gen its load started at, still equals gen.
	mu       sync.RWMutex
	recipes  []recommend.Recipe
	loadedAt time.Time
	gen      uint64
	snapGen  uint64

	group singleflight.Group

	// profileGen is bumped by every Invalidate; a profile load only caches
	// its result if no invalidation happened while it ran.
	profileMu  sync.Mutex
	profileGen uint64
	profiles   *cache.LRU[Profile]
}

// NewCachedStore wraps store using the snapshot and profile settings in cfg.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func NewCachedStore(store Store, cfg config.CatalogConfig, logger zerolog.Logger) *CachedStore {
	profiles := cache.NewLRU[Profile](cfg.ProfileCacheSize, cfg.ProfileCacheTTL)
	profiles.OnEvict(func(string) { metrics.RecordCacheEviction(profileCache) })

	return &CachedStore{
		store:    store,
		logger:   logger.With().Str("component", "catalog").Logger(),
		ttl:      cfg.SnapshotTTL,
		now:      time.Now,
		profiles: profiles,
	}
}

// Recipes returns the current snapshot, reloading it when it is older than
// the snapshot TTL or was marked stale by a rating. If the reload fails and
// a previous snapshot exists, the previous snapshot is returned.
func (c *CachedStore) Recipes(ctx context.Context) ([]recommend.Recipe, error) {
	c.mu.RLock()
	recipes, fresh := c.recipes, c.freshLocked()
	c.mu.RUnlock()

	if fresh {
		metrics.RecordCacheHit(snapshotCache)
		return recipes, nil
	}
	metrics.RecordCacheMiss(snapshotCache)

	loaded, err := c.load(ctx)
	if err == nil {
		return loaded, nil
	}
	if recipes != nil && ctx.Err() == nil {
		c.logger.Warn().Err(err).Int("recipes", len(recipes)).Msg("Recipe reload failed, serving previous snapshot")
		return recipes, nil
	}
	return nil, err
}

// Refresh reloads the snapshot now. Concurrent callers share the load.
func (c *CachedStore) Refresh(ctx context.Context) error {
	_, err := c.load(ctx)
	return err
}

// SnapshotAge returns how long ago the snapshot was loaded, or -1 if it
// never was.
func (c *CachedStore) SnapshotAge() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.loadedAt.IsZero() {
		return -1
	}
	return c.now().Sub(c.loadedAt)
}

// freshLocked must be called with mu held.
func (c *CachedStore) freshLocked() bool {
	return c.recipes != nil && c.snapGen == c.gen && c.now().Sub(c.loadedAt) < c.ttl
}

func (c *CachedStore) load(ctx context.Context) ([]recommend.Recipe, error) {
	ch := c.group.DoChan(snapshotKey, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		c.mu.RLock()
		gen := c.gen
		c.mu.RUnlock()

		start := time.Now()
		recipes, err := c.store.Recipes(loadCtx)
		metrics.RecordCatalogLoad(len(recipes), time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("load recipes: %w", err)
		}
		if recipes == nil {
			recipes = []recommend.Recipe{}
		}

		// A load that started before a newer one finished must not
		// replace it. A rating during this load leaves the result stale.
		c.mu.Lock()
		if gen >= c.snapGen {
			c.recipes = recipes
			c.loadedAt = c.now()
			c.snapGen = gen
		}
		c.mu.Unlock()

		c.logger.Debug().Int("recipes", len(recipes)).Dur("duration", time.Since(start)).Msg("Recipe snapshot loaded")
		return recipes, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]recommend.Recipe), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Profile returns the cached profile for userID, loading it on a miss.
// The empty user ID is anonymous and always has an empty profile.
func (c *CachedStore) Profile(ctx context.Context, userID string) (Profile, error) {
	if userID == "" {
		return Profile{}, nil
	}
	if p, ok := c.profiles.Get(userID); ok {
		metrics.RecordCacheHit(profileCache)
		return p, nil
	}
	metrics.RecordCacheMiss(profileCache)

	ch := c.group.DoChan(profileKey(userID), func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		c.profileMu.Lock()
		gen := c.profileGen
		c.profileMu.Unlock()

		p, err := c.store.Profile(loadCtx, userID)
		if err != nil {
			return Profile{}, err
		}

		c.profileMu.Lock()
		if gen == c.profileGen {
			c.profiles.Add(userID, p)
		}
		c.profileMu.Unlock()
		metrics.SetCacheEntries(profileCache, c.profiles.Len())
		return p, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return Profile{}, fmt.Errorf("load profile: %w", res.Err)
		}
		return res.Val.(Profile), nil
	case <-ctx.Done():
		return Profile{}, ctx.Err()
	}
}

func profileKey(userID string) string {
	return "profile:" + userID
}

// Invalidate drops the cached profile for userID. A profile load already
// in flight will not cache its result, and later callers start a new load.
func (c *CachedStore) Invalidate(userID string) {
	c.profileMu.Lock()
	c.profileGen++
	c.profiles.Remove(userID)
	c.profileMu.Unlock()
	c.group.Forget(profileKey(userID))
}

// markStale forces the next Recipes call to reload, including when a load
// is already in flight.
func (c *CachedStore) markStale() {
	c.mu.Lock()
	c.gen++
	c.mu.Unlock()
	c.group.Forget(snapshotKey)
}

// RecordView implements Store and drops the user's cached profile.
func (c *CachedStore) RecordView(ctx context.Context, userID, recipeID string, at time.Time) error {
	if err := c.store.RecordView(ctx, userID, recipeID, at); err != nil {
		return err
	}
	c.Invalidate(userID)
	return nil
}

// Rate implements Store. It also marks the snapshot stale, since the
// recipe's average changed.
func (c *CachedStore) Rate(ctx context.Context, userID, recipeID string, rating int, at time.Time) error {
	if err := c.store.Rate(ctx, userID, recipeID, rating, at); err != nil {
		return err
	}
	c.Invalidate(userID)
	c.markStale()
	return nil
}

// SetPreferences implements Store and drops the user's cached profile.
func (c *CachedStore) SetPreferences(ctx context.Context, userID string, prefs recommend.Preferences, at time.Time) error {
	if err := c.store.SetPreferences(ctx, userID, prefs, at); err != nil {
		return err
	}
	c.Invalidate(userID)
	return nil
}

// Ping implements Store.
func (c *CachedStore) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}
