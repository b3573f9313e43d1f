// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/chinese-namegen/cliparse"
)

// TestAPIKey is the credential every test config carries
const TestAPIKey = "test-api-key-1234"

// JamesEnvelope is an upstream response carrying one suggestion for "James"
const JamesEnvelope = `{"choices":[{"message":{"content":"{\"names\":[{\"chinese\":\"杰明\",\"meaning\":{\"chinese\":\"杰出光明\",\"english\":\"outstanding and bright\"}}]}"}}]}`

// IndexHTML is the index document written by WriteStaticFixtures
const IndexHTML = "<!DOCTYPE html>\n<html><head><title>中文名字生成器</title></head><body><div id=\"results\"></div></body></html>\n"

// GetTestConfig returns a standard test configuration pointed at apiURL
func GetTestConfig(apiURL string) cliparse.Config {
	return cliparse.Config{
		Port:                3000,
		APIKey:              TestAPIKey,
		APIURL:              apiURL,
		Model:               cliparse.DefaultModel,
		StaticDir:           "",
		UpstreamTimeout:     2 * time.Second,
		MaxBodyBytes:        1 << 20,
		ValidateSuggestions: true,
	}
}

// CapturedRequest is one request received by a StubUpstream
type CapturedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// StubUpstream is a fake chat completions API
type StubUpstream struct {
	*httptest.Server

	mu       sync.Mutex
	requests []CapturedRequest
}

// NewStubUpstream replies to every request with status and body
func NewStubUpstream(t *testing.T, status int, body string) *StubUpstream {
	t.Helper()

	stub := &StubUpstream{}
	stub.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.record(r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(stub.Close)

	return stub
}

// NewBlockingUpstream never replies; handlers return once the caller gives
// up or the test ends
func NewBlockingUpstream(t *testing.T) *StubUpstream {
	t.Helper()

	release := make(chan struct{})
	stub := &StubUpstream{}
	stub.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.record(r)
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	// Cleanups run last-in first-out: release handlers, then close
	t.Cleanup(stub.Close)
	t.Cleanup(func() { close(release) })

	return stub
}

func (s *StubUpstream) record(r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, CapturedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Header: r.Header.Clone(),
		Body:   body,
	})
}

// Requests returns a copy of everything received so far
func (s *StubUpstream) Requests() []CapturedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CapturedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// WriteStaticFixtures creates a static root with an index document, assets,
// and a secret file next to (outside) the root. Returns the root directory.
func WriteStaticFixtures(t *testing.T) string {
	t.Helper()

	base := t.TempDir()
	root := filepath.Join(base, "web")

	files := map[string]string{
		filepath.Join(root, "index.html"):          IndexHTML,
		filepath.Join(root, "app.js"):              "function generateNames() {}\n",
		filepath.Join(root, "style.css"):           "body { margin: 0; }\n",
		filepath.Join(root, "notes.txt"):           "plain notes\n",
		filepath.Join(root, "pages", "about.html"): "<p>about</p>\n",
		filepath.Join(base, "secret.txt"):          "do not serve\n",
	}
	for path, content := range files {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("Failed to create fixture dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write fixture %s: %v", path, err)
		}
	}

	return root
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
