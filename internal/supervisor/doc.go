// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

/*
Package supervisor runs Larder's long-lived services under suture v4.

The tree has two layers so a failing background refresh never takes the
HTTP server down with it:

	RootSupervisor ("larder")
	├── DataSupervisor ("data-layer")
	│   └── CatalogRefreshService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Canceling the
context passed to Serve stops every layer, waiting up to
TreeConfig.ShutdownTimeout for each service.

Supervisor events are logged through sutureslog, using a slog.Logger
backed by the zerolog logger (see logging.NewSlogLogger).

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewCatalogRefreshService(cached, cfg.Catalog.RefreshInterval, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	return tree.Serve(ctx)
*/
package supervisor
