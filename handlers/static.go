// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/danielhkuo/chinese-namegen/cliparse"
)

var ErrNotFound = errors.New("not found")

// IndexDocument is served for "/"
const IndexDocument = "index.html"

var contentTypes = map[string]string{
	".html": "text/html",
	".js":   "text/javascript",
	".css":  "text/css",
}

type StaticHandler struct {
	root string
}

func NewStaticHandler(cfg cliparse.Config) *StaticHandler {
	return &StaticHandler{root: cfg.StaticDir}
}

// ServeStatic handles GET /{path...}
// Anything other than GET falls through to 404
func (h *StaticHandler) ServeStatic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		plainResponse(w, http.StatusNotFound, "Not found")
		return
	}

	filePath, err := ResolvePath(h.root, r.URL.Path)
	if err != nil {
		slog.Debug("static path rejected", "path", r.URL.Path)
		plainResponse(w, http.StatusNotFound, "File not found")
		return
	}

	// Missing, unreadable, and directory paths all look the same
	content, err := os.ReadFile(filePath)
	if err != nil {
		slog.Debug("static file unavailable", "path", r.URL.Path, "error", err)
		plainResponse(w, http.StatusNotFound, "File not found")
		return
	}

	w.Header().Set("Content-Type", ContentType(filePath))
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}

// ContentType picks the Content-Type from the file extension
func ContentType(name string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "text/plain"
}

// ResolvePath maps a URL path to a file under root. Paths that resolve
// outside root, including through symlinks, return ErrNotFound.
func ResolvePath(root, urlPath string) (string, error) {
	if strings.ContainsRune(urlPath, 0) {
		return "", ErrNotFound
	}
	if urlPath == "" || urlPath == "/" {
		urlPath = "/" + IndexDocument
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", ErrNotFound
	}

	// Clean against a rooted path so ".." can never climb above "/"
	cleaned := path.Clean("/" + urlPath)
	full := filepath.Join(absRoot, filepath.FromSlash(cleaned))
	if !within(absRoot, full) {
		return "", ErrNotFound
	}

	// Follow symlinks when the target exists; a missing file is left for
	// the read to report
	if resolved, err := filepath.EvalSymlinks(full); err == nil {
		realRoot, err := filepath.EvalSymlinks(absRoot)
		if err != nil || !within(realRoot, resolved) {
			return "", ErrNotFound
		}
	}

	return full, nil
}

func within(root, p string) bool {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func plainResponse(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(statusCode)
	w.Write([]byte(body))
}
