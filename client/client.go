// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/danielhkuo/chinese-namegen/envelope"
	"github.com/danielhkuo/chinese-namegen/models"
)

var (
	ErrValidation    = errors.New("english name is required")
	ErrRequestFailed = errors.New("网络请求失败")
)

// GeneratePath is the proxy route on the server
const GeneratePath = "/generate-names"

// Indicator is shown while a request is in flight
type Indicator interface {
	Show()
	Hide()
}

type noopIndicator struct{}

func (noopIndicator) Show() {}
func (noopIndicator) Hide() {}

type Client struct {
	baseURL   string
	http      *http.Client
	indicator Indicator
}

type Option func(*Client)

// WithIndicator sets the loading indicator
func WithIndicator(ind Indicator) Option {
	return func(c *Client) { c.indicator = ind }
}

// New creates a client for the server at baseURL. A nil httpClient uses
// http.DefaultClient.
func New(baseURL string, httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      httpClient,
		indicator: noopIndicator{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Normalize trims the free-text fields the way the form does
func Normalize(req models.NameRequest) models.NameRequest {
	req.EnglishName = strings.TrimSpace(req.EnglishName)
	req.Requirements = strings.TrimSpace(req.Requirements)
	return req
}

// Validate rejects a request with no english name
func Validate(req models.NameRequest) error {
	if strings.TrimSpace(req.EnglishName) == "" {
		return ErrValidation
	}
	return nil
}

// Generate submits the request and returns the decoded suggestions.
// Validation failures return before any network I/O.
func (c *Client) Generate(ctx context.Context, req models.NameRequest) ([]models.NameSuggestion, error) {
	req = Normalize(req)
	if err := Validate(req); err != nil {
		return nil, err
	}

	c.indicator.Show()
	defer c.indicator.Hide()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+GeneratePath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp models.ErrorResponse
		if json.Unmarshal(raw, &errResp) == nil && errResp.Error != "" {
			return nil, fmt.Errorf("%w: %s", ErrRequestFailed, errResp.Error)
		}
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, resp.Status)
	}

	return envelope.Decode(raw)
}
