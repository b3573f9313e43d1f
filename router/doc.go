// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the name generator.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(cfg, upstream.New(cfg, nil))

NewHandler adds CORS and request IDs on top and is what main serves:

	server := http.Server{Handler: router.NewHandler(cfg, client)}

# Endpoints

	GET  /health          - Health check
	POST /generate-names  - Generation proxy
	GET  /                - index.html
	GET  /{path}          - Static file under cfg.StaticDir
	OPTIONS *             - 204, CORS headers only

Any other method or path returns 404.
*/
package router
