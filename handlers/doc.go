// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the name generator.

# Handler Types

Each handler is a struct with its config and collaborators injected:

  - GenerateHandler: proxies a NameRequest to the chat completions API
  - StaticHandler: serves the browser client from the static root

Example:

	api := upstream.New(cfg, &http.Client{})
	gen := handlers.NewGenerateHandler(cfg, api)
	mux.HandleFunc("POST /generate-names", gen.GenerateNames)

# Generation

GenerateNames moves through body_receiving, body_parsed, prompt_built,
upstream_pending and response_sent. Any failure ends the request with a 500
and a JSON body:

	{"error": "request timeout"}

On success the upstream bytes are relayed unchanged. When suggestion
validation is enabled the body is decoded first so a malformed envelope is
reported here instead of in the browser.

# Static Files

ServeStatic maps "/" to index.html and every other path to the same relative
file under the root. Paths are cleaned before joining and anything that would
leave the root, including through a symlink, is reported as 404 File not found.
*/
package handlers
