// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request IDs

Every request gets a UUID, available to handlers and echoed as X-Request-ID:

	handler := middleware.WithRequestID(mux)
	id := middleware.RequestID(r.Context())

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("POST /generate-names", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms).

# CORS Middleware

Every response carries permissive cross-origin headers:

	Access-Control-Allow-Origin:  *
	Access-Control-Allow-Methods: GET, POST, OPTIONS
	Access-Control-Allow-Headers: Content-Type

OPTIONS requests short-circuit with 204 and no body.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())

Errors are written as {"error": "<message>"}.

Parse JSON request bodies, optionally capped:

	middleware.LimitBody(w, r, cfg.MaxBodyBytes)
	var req models.NameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		...
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
