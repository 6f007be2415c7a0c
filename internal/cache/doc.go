// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

/*
Package cache provides a generic, thread-safe LRU cache with per-entry TTL.

The catalog package uses it to hold user profiles between requests:

	profiles := cache.NewLRU[catalog.Profile](10000, 2*time.Minute)
	profiles.OnEvict(func(key string) { metrics.RecordCacheEviction("profiles") })

	if p, ok := profiles.Get(userID); ok {
	    return p, nil
	}

Expired entries are dropped lazily on access or eagerly with CleanupExpired.
Get, Add and Remove are O(1).
*/
package cache
