// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/chinese-namegen/cliparse"
	"github.com/danielhkuo/chinese-namegen/handlers"
	"github.com/danielhkuo/chinese-namegen/middleware"
)

func NewRouter(cfg cliparse.Config, upstream handlers.Completer) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	generateHandler := handlers.NewGenerateHandler(cfg, upstream)
	staticHandler := handlers.NewStaticHandler(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Generation proxy
	mux.HandleFunc("POST /generate-names", middleware.WithLogging(generateHandler.GenerateNames))

	// Static files; every other method and path ends here and gets 404
	mux.HandleFunc("/", middleware.WithLogging(staticHandler.ServeStatic))

	return mux
}

// NewHandler wraps the router with CORS and request IDs for serving
func NewHandler(cfg cliparse.Config, upstream handlers.Completer) http.Handler {
	return middleware.WithRequestID(middleware.CORS(NewRouter(cfg, upstream)))
}
