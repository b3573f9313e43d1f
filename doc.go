// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Chinese name generator server.

The server hosts a single page that collects an English name, gender and
free-text requirements, and proxies them to a chat completions API that
suggests culturally themed Chinese names.

# Starting the Server

The upstream API key is required and has no default:

	API_KEY=... go run .

Or with flags:

	go run . -p 3000 -api-key ... -static ./web

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - API_KEY (-api-key): Upstream bearer credential

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - API_URL (-api-url), MODEL (-model): Upstream endpoint and model
  - STATIC_DIR (-static): Static root (default: web)
  - UPSTREAM_TIMEOUT (-timeout): Upstream deadline (default: 60s)
  - MAX_BODY_SIZE (-max-body): Request body cap (default: 1MiB)
  - VALIDATE_SUGGESTIONS (-validate): Check upstream payload shape (default: true)
  - LOG_LEVEL (-log-level): debug, info, warn, error

# Architecture

  - handlers: Generation proxy and static files
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request IDs, logging, JSON helpers
  - upstream: Chat completions client
  - prompt: Prompt template
  - envelope: Two-stage response decoding
  - models: Request/response types
  - auth: Credential validation and masking
  - cliparse: Configuration parsing
  - client, cmd/namegen: Go client and CLI

See package documentation for each component.
*/
package main
