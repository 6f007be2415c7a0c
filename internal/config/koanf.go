// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/larder/internal/recommend"
)

// DefaultConfigPaths lists the paths searched for a config file, in order.
// The first file found is used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/larder/config.yaml",
	"/etc/larder/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Default returns the built-in defaults without reading files or the
// environment.
func Default() *Config {
	return defaultConfig()
}

// defaultConfig returns the built-in defaults. They are loaded first and
// overridden by the config file and environment.
func defaultConfig() *Config {
	engine := recommend.DefaultConfig()

	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Path:         "/data/larder.duckdb",
			MaxMemory:    "1GB",
			Threads:      0,
			SeedDemoData: false,
		},
		Catalog: CatalogConfig{
			RefreshInterval:  5 * time.Minute,
			SnapshotTTL:      10 * time.Minute,
			ProfileCacheSize: 10000,
			ProfileCacheTTL:  2 * time.Minute,
			Breaker: BreakerConfig{
				Enabled:          true,
				MaxRequests:      3,
				Interval:         time.Minute,
				Timeout:          30 * time.Second,
				FailureThreshold: 5,
			},
		},
		Recommend: RecommendConfig{
			DefaultLimit:   6,
			MaxLimit:       50,
			RequestTimeout: 5 * time.Second,
			Weights: WeightsConfig{
				Rating:         engine.Weights.Rating,
				Cuisine:        engine.Weights.Cuisine,
				Dietary:        engine.Weights.Dietary,
				CookTime:       engine.Weights.CookTime,
				MealType:       engine.Weights.MealType,
				Popularity:     engine.Weights.Popularity,
				Recency:        engine.Weights.Recency,
				RatingAffinity: engine.Weights.RatingAffinity,
			},
			Thresholds: ThresholdsConfig{
				HighlyRated:    engine.Thresholds.HighlyRated,
				PopularRatings: engine.Thresholds.PopularRatings,
				RecentWindow:   engine.Thresholds.RecentWindow,
				AffinityRating: engine.Thresholds.AffinityRating,
			},
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// the environment, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// DUCKDB_PATH -> database.path, etc.
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns CONFIG_PATH if it exists, else the first existing
// entry of DefaultConfigPaths, else "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed as comma-separated lists when they arrive as strings.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma-separated string values of slice fields.
// Values already loaded as lists from YAML are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to config paths.
var envMappings = map[string]string{
	// Server
	"http_host":        "server.host",
	"http_port":        "server.port",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",

	// Database
	"duckdb_path":       "database.path",
	"duckdb_max_memory": "database.max_memory",
	"duckdb_threads":    "database.threads",
	"seed_demo_data":    "database.seed_demo_data",

	// Catalog
	"catalog_refresh_interval":  "catalog.refresh_interval",
	"catalog_snapshot_ttl":      "catalog.snapshot_ttl",
	"profile_cache_size":        "catalog.profile_cache_size",
	"profile_cache_ttl":         "catalog.profile_cache_ttl",
	"breaker_enabled":           "catalog.breaker.enabled",
	"breaker_max_requests":      "catalog.breaker.max_requests",
	"breaker_interval":          "catalog.breaker.interval",
	"breaker_timeout":           "catalog.breaker.timeout",
	"breaker_failure_threshold": "catalog.breaker.failure_threshold",

	// Recommend
	"recommend_default_limit":          "recommend.default_limit",
	"recommend_max_limit":              "recommend.max_limit",
	"recommend_request_timeout":        "recommend.request_timeout",
	"recommend_weight_rating":          "recommend.weights.rating",
	"recommend_weight_cuisine":         "recommend.weights.cuisine",
	"recommend_weight_dietary":         "recommend.weights.dietary",
	"recommend_weight_cook_time":       "recommend.weights.cook_time",
	"recommend_weight_meal_type":       "recommend.weights.meal_type",
	"recommend_weight_popularity":      "recommend.weights.popularity",
	"recommend_weight_recency":         "recommend.weights.recency",
	"recommend_weight_rating_affinity": "recommend.weights.rating_affinity",
	"recommend_highly_rated":           "recommend.thresholds.highly_rated",
	"recommend_popular_ratings":        "recommend.thresholds.popular_ratings",
	"recommend_recent_window":          "recommend.thresholds.recent_window",
	"recommend_affinity_rating":        "recommend.thresholds.affinity_rating",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_requests",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its config path.
// Unmapped names return "" so koanf skips them.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
