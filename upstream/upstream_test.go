// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielhkuo/chinese-namegen/models"
	"github.com/danielhkuo/chinese-namegen/testutil"
)

var testMessages = []models.ChatMessage{
	{Role: models.RoleSystem, Content: "persona"},
	{Role: models.RoleUser, Content: "prompt"},
}

func TestComplete_RelaysBodyVerbatim(t *testing.T) {
	stub := testutil.NewStubUpstream(t, http.StatusOK, testutil.JamesEnvelope)
	client := New(testutil.GetTestConfig(stub.URL+"/api/v3/chat/completions"), stub.Client())

	raw, err := client.Complete(context.Background(), testMessages)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if string(raw) != testutil.JamesEnvelope {
		t.Errorf("Expected body relayed verbatim, got %s", raw)
	}
}

func TestComplete_RequestShape(t *testing.T) {
	stub := testutil.NewStubUpstream(t, http.StatusOK, testutil.JamesEnvelope)
	cfg := testutil.GetTestConfig(stub.URL + "/api/v3/chat/completions")
	client := New(cfg, stub.Client())

	if _, err := client.Complete(context.Background(), testMessages); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	reqs := stub.Requests()
	if len(reqs) != 1 {
		t.Fatalf("Expected exactly 1 upstream request, got %d", len(reqs))
	}
	got := reqs[0]

	if got.Method != http.MethodPost {
		t.Errorf("Expected POST, got %s", got.Method)
	}
	if got.Path != "/api/v3/chat/completions" {
		t.Errorf("Expected chat completions path, got %s", got.Path)
	}
	if auth := got.Header.Get("Authorization"); auth != "Bearer "+testutil.TestAPIKey {
		t.Errorf("Expected bearer credential, got %q", auth)
	}
	if ct := got.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %q", ct)
	}

	var body models.ChatRequest
	if err := json.Unmarshal(got.Body, &body); err != nil {
		t.Fatalf("Failed to decode upstream body: %v", err)
	}
	if body.Model != cfg.Model {
		t.Errorf("Expected model %s, got %s", cfg.Model, body.Model)
	}
	if len(body.Messages) != 2 || body.Messages[0].Role != "system" || body.Messages[1].Role != "user" {
		t.Errorf("Expected system+user messages, got %+v", body.Messages)
	}
}

func TestComplete_NonOKStatus(t *testing.T) {
	testCases := []struct {
		name   string
		status int
	}{
		{"unauthorized", http.StatusUnauthorized},
		{"rate limited", http.StatusTooManyRequests},
		{"server error", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stub := testutil.NewStubUpstream(t, tc.status, `{"error":{"message":"nope"}}`)
			client := New(testutil.GetTestConfig(stub.URL), stub.Client())

			_, err := client.Complete(context.Background(), testMessages)
			if !errors.Is(err, ErrUpstream) {
				t.Errorf("Expected ErrUpstream, got %v", err)
			}
			if len(stub.Requests()) != 1 {
				t.Errorf("Expected no retries, got %d requests", len(stub.Requests()))
			}
		})
	}
}

func TestComplete_TransportError(t *testing.T) {
	stub := testutil.NewStubUpstream(t, http.StatusOK, "{}")
	url := stub.URL
	stub.Close()

	client := New(testutil.GetTestConfig(url), nil)

	_, err := client.Complete(context.Background(), testMessages)
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("Expected ErrUpstream, got %v", err)
	}
	if errors.Is(err, ErrTimeout) {
		t.Error("Connection refused should not be reported as a timeout")
	}
}

func TestComplete_Timeout(t *testing.T) {
	stub := testutil.NewBlockingUpstream(t)
	cfg := testutil.GetTestConfig(stub.URL)
	cfg.UpstreamTimeout = 300 * time.Millisecond
	client := New(cfg, stub.Client())

	start := time.Now()
	_, err := client.Complete(context.Background(), testMessages)
	elapsed := time.Since(start)

	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("Expected ErrTimeout, got %v", err)
	}
	if elapsed < cfg.UpstreamTimeout {
		t.Errorf("Timed out early after %s", elapsed)
	}
	if elapsed > cfg.UpstreamTimeout+time.Second {
		t.Errorf("Timed out late after %s", elapsed)
	}
}

func TestComplete_CallerCancel(t *testing.T) {
	stub := testutil.NewBlockingUpstream(t)
	client := New(testutil.GetTestConfig(stub.URL), stub.Client())

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	_, err := client.Complete(ctx, testMessages)
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("Expected ErrUpstream on caller cancel, got %v", err)
	}
	if errors.Is(err, ErrTimeout) {
		t.Error("Caller cancel should not be reported as a timeout")
	}
}

func TestNew_DefaultTimeoutIsSixtySeconds(t *testing.T) {
	cfg := testutil.GetTestConfig("http://example.invalid")
	cfg.UpstreamTimeout = 60 * time.Second

	client := New(cfg, nil)
	if client.timeout != 60*time.Second {
		t.Errorf("Expected 60s timeout, got %s", client.timeout)
	}
	if client.http != http.DefaultClient {
		t.Error("Expected nil http client to fall back to http.DefaultClient")
	}
}
