// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/larder/internal/logging"
	"github.com/tomtom215/larder/internal/recommend"
)

// Config is the root configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = runtime.NumCPU()

	// SeedDemoData loads the demo catalog when the recipes table is empty.
	SeedDemoData bool `koanf:"seed_demo_data"`
}

// CatalogConfig controls how recipe and profile data is cached in front of
// the database.
type CatalogConfig struct {
	// RefreshInterval is how often the background service reloads the
	// published recipe snapshot.
	RefreshInterval time.Duration `koanf:"refresh_interval"`

	// SnapshotTTL is how long a snapshot is served before a request
	// triggers a reload.
	SnapshotTTL time.Duration `koanf:"snapshot_ttl"`

	ProfileCacheSize int           `koanf:"profile_cache_size"`
	ProfileCacheTTL  time.Duration `koanf:"profile_cache_ttl"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig mirrors gobreaker.Settings.
type BreakerConfig struct {
	Enabled bool `koanf:"enabled"`

	// MaxRequests is the number of trial requests allowed while half-open.
	MaxRequests uint32 `koanf:"max_requests"`

	// Interval clears the closed-state counts; 0 never clears them.
	Interval time.Duration `koanf:"interval"`

	// Timeout is how long the breaker stays open before going half-open.
	Timeout time.Duration `koanf:"timeout"`

	// FailureThreshold trips the breaker after this many consecutive failures.
	FailureThreshold uint32 `koanf:"failure_threshold"`
}

// RecommendConfig holds recommendation settings.
type RecommendConfig struct {
	DefaultLimit   int           `koanf:"default_limit"`
	MaxLimit       int           `koanf:"max_limit"`
	RequestTimeout time.Duration `koanf:"request_timeout"`

	Weights    WeightsConfig    `koanf:"weights"`
	Thresholds ThresholdsConfig `koanf:"thresholds"`
}

// WeightsConfig holds the personalized scoring weights.
type WeightsConfig struct {
	Rating         float64 `koanf:"rating"`
	Cuisine        float64 `koanf:"cuisine"`
	Dietary        float64 `koanf:"dietary"`
	CookTime       float64 `koanf:"cook_time"`
	MealType       float64 `koanf:"meal_type"`
	Popularity     float64 `koanf:"popularity"`
	Recency        float64 `koanf:"recency"`
	RatingAffinity float64 `koanf:"rating_affinity"`
}

// ThresholdsConfig holds the personalized scoring thresholds.
type ThresholdsConfig struct {
	HighlyRated    float64       `koanf:"highly_rated"`
	PopularRatings int           `koanf:"popular_ratings"`
	RecentWindow   time.Duration `koanf:"recent_window"`
	AffinityRating float64       `koanf:"affinity_rating"`
}

// EngineConfig converts the recommend section into a recommend.Config.
func (r RecommendConfig) EngineConfig() *recommend.Config {
	return &recommend.Config{
		Weights: recommend.SignalWeights{
			Rating:         r.Weights.Rating,
			Cuisine:        r.Weights.Cuisine,
			Dietary:        r.Weights.Dietary,
			CookTime:       r.Weights.CookTime,
			MealType:       r.Weights.MealType,
			Popularity:     r.Weights.Popularity,
			Recency:        r.Weights.Recency,
			RatingAffinity: r.Weights.RatingAffinity,
		},
		Thresholds: recommend.SignalThresholds{
			HighlyRated:    r.Thresholds.HighlyRated,
			PopularRatings: r.Thresholds.PopularRatings,
			RecentWindow:   r.Thresholds.RecentWindow,
			AffinityRating: r.Thresholds.AffinityRating,
		},
	}
}

// ClampLimit applies the default to non-positive limits and caps the rest
// at MaxLimit.
func (r RecommendConfig) ClampLimit(limit int) int {
	if limit <= 0 {
		return r.DefaultLimit
	}
	if limit > r.MaxLimit {
		return r.MaxLimit
	}
	return limit
}

// SecurityConfig holds CORS and rate limit settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller adds file:line to log events.
	Caller bool `koanf:"caller"`
}

// ToLoggingConfig converts the section into a logging.Config writing to stderr.
func (l LoggingConfig) ToLoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	return cfg
}
