// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

// Package main is the entry point for the Larder server.
//
// Larder serves recipe recommendations over HTTP. Recipes, ratings, views
// and preferences live in DuckDB; a cached snapshot of the catalog feeds
// the in-memory recommendation engine on every request.
//
// # Startup
//
//  1. Configuration: defaults, optional config.yaml, then environment (Koanf v2)
//  2. Database: open DuckDB, apply migrations, optionally seed demo recipes
//  3. Catalog: circuit breaker (if enabled) and snapshot/profile cache
//  4. Supervisor tree: catalog refresher in the data layer, HTTP server in
//     the api layer
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
// in-flight requests for up to SHUTDOWN_TIMEOUT, then the database is
// checkpointed and closed.
//
// # Example Usage
//
//	export DUCKDB_PATH=/data/larder.duckdb
//	export SEED_DEMO_DATA=true
//	./larder
//
//	curl -H 'X-User-ID: demo-alice' 'http://localhost:8080/api/v1/recommendations/?type=personalized&limit=5'
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/larder/internal/api"
	"github.com/tomtom215/larder/internal/catalog"
	"github.com/tomtom215/larder/internal/config"
	"github.com/tomtom215/larder/internal/database"
	"github.com/tomtom215/larder/internal/logging"
	"github.com/tomtom215/larder/internal/supervisor"
	"github.com/tomtom215/larder/internal/supervisor/services"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Larder stopped with an error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Init(cfg.Logging.ToLoggingConfig())

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("addr", cfg.Server.Addr()).
		Bool("breaker", cfg.Catalog.Breaker.Enabled).
		Msg("Configuration loaded")

	db, err := database.New(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Database.SeedDemoData {
		logging.Info().Msg("Demo data seeding enabled (SEED_DEMO_DATA=true)")
		if err := db.Seed(ctx, time.Now()); err != nil {
			return err
		}
	}

	var store catalog.Store = db
	if cfg.Catalog.Breaker.Enabled {
		store = catalog.NewBreakerStore(db, "duckdb", cfg.Catalog.Breaker)
	}
	cached := catalog.NewCachedStore(store, cfg.Catalog, logging.Logger())

	handler := api.NewHandler(cached, cfg)
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFromSecurity(&cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), treeCfg)
	if err != nil {
		return err
	}

	tree.AddDataService(services.NewCatalogRefreshService(cached, cfg.Catalog.RefreshInterval, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
	return nil
}
