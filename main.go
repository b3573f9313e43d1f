package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/chinese-namegen/cliparse"
	"github.com/danielhkuo/chinese-namegen/router"
	"github.com/danielhkuo/chinese-namegen/upstream"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))
	slog.Info("Configuration loaded", "config", cfg.String())

	if _, err := os.Stat(cfg.StaticDir); err != nil {
		slog.Warn("static root unavailable, pages will 404", "dir", cfg.StaticDir, "error", err)
	}

	// Upstream client; the deadline is applied per request
	client := upstream.New(cfg, &http.Client{})

	// Create server
	server := http.Server{
		Handler:           router.NewHandler(cfg, client),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Server running", "url", "http://localhost:"+strconv.Itoa(cfg.Port))
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
