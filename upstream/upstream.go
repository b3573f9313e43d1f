// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/chinese-namegen/auth"
	"github.com/danielhkuo/chinese-namegen/cliparse"
	"github.com/danielhkuo/chinese-namegen/models"
)

var (
	ErrTimeout  = errors.New("request timeout")
	ErrUpstream = errors.New("upstream request failed")
)

// Client sends one chat completion request per call. It never retries.
type Client struct {
	url     string
	apiKey  string
	model   string
	timeout time.Duration
	http    *http.Client
}

// New creates a client from config. A nil httpClient uses http.DefaultClient;
// the deadline comes from cfg.UpstreamTimeout, not the http.Client.
func New(cfg cliparse.Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		url:     cfg.APIURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		timeout: cfg.UpstreamTimeout,
		http:    httpClient,
	}
}

// Complete posts the messages and returns the raw response body
func (c *Client) Complete(ctx context.Context, messages []models.ChatMessage) ([]byte, error) {
	body, err := json.Marshal(models.ChatRequest{Model: c.model, Messages: messages})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", auth.BearerToken(c.apiKey))

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.classify(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.classify(ctx, err)
	}

	slog.Debug("upstream responded",
		"status", resp.StatusCode,
		"size", humanize.Bytes(uint64(len(raw))),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %s", ErrUpstream, resp.Status)
	}

	return raw, nil
}

// classify maps a transport error to ErrTimeout when our deadline fired
func (c *Client) classify(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w after %s", ErrTimeout, c.timeout)
	}
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}
