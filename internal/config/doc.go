// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

/*
Package config loads and validates Larder configuration.

# Configuration Sources

Configuration is layered with koanf, later layers overriding earlier ones:

 1. Built-in defaults (see defaultConfig)
 2. An optional YAML file, from CONFIG_PATH or the first of DefaultConfigPaths
 3. Environment variables listed in envMappings

Environment variables that are not in the mapping table are ignored.

# Configuration Structure

  - ServerConfig: HTTP listen address and timeouts
  - DatabaseConfig: DuckDB file path and tuning, demo seeding
  - CatalogConfig: snapshot refresh, profile cache, circuit breaker
  - RecommendConfig: result limits, request timeout, scoring weights
  - SecurityConfig: CORS origins and rate limiting
  - LoggingConfig: zerolog level and format

# Example

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	engineCfg := cfg.Recommend.EngineConfig()

Slice fields such as security.cors_origins accept comma-separated strings
when set from the environment:

	CORS_ORIGINS=https://larder.example,https://admin.larder.example
*/
package config
