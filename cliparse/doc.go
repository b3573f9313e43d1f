// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns an immutable Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Request handling never reads the process environment; everything it needs
travels in Config.

# Config Fields

  - Port: Server listen port (default: 3000)
  - APIKey: Upstream bearer credential (required, no default)
  - APIURL: Chat completions endpoint
  - Model: Model identifier sent upstream
  - StaticDir: Root directory for static files (default: web)
  - UpstreamTimeout: Upstream deadline (default: 60s)
  - MaxBodyBytes: Request body cap (default: 1MiB, 0 disables)
  - ValidateSuggestions: Check the upstream payload shape before relaying (default: true)
  - LogLevel: slog level (default: info)

# CLI Flags

	-p           Server port
	-api-key     Upstream API key
	-api-url     Chat completions endpoint
	-model       Model identifier
	-static      Static file root
	-timeout     Upstream timeout (Go duration)
	-max-body    Body size cap (e.g. 512KiB)
	-validate    true/false
	-log-level   debug, info, warn, error
	-env         Dotenv file (default: .env, missing file is ignored)

# Environment Variables

Flags fall back to environment variables:

	PORT                 → -p
	API_KEY              → -api-key
	API_URL              → -api-url
	MODEL                → -model
	STATIC_DIR           → -static
	UPSTREAM_TIMEOUT     → -timeout
	MAX_BODY_SIZE        → -max-body
	VALIDATE_SUGGESTIONS → -validate
	LOG_LEVEL            → -log-level

CLI flags take precedence over environment variables, and variables already
set in the environment take precedence over the dotenv file.

# Validation

ParseFlags returns an error if API_KEY is missing or malformed, or if any
value fails to parse.
*/
package cliparse
