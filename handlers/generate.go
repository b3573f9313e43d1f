// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/chinese-namegen/cliparse"
	"github.com/danielhkuo/chinese-namegen/envelope"
	"github.com/danielhkuo/chinese-namegen/middleware"
	"github.com/danielhkuo/chinese-namegen/models"
	"github.com/danielhkuo/chinese-namegen/prompt"
)

var ErrMalformedRequest = errors.New("malformed request")

// ProxyState names each step of a generation request, for logs
type ProxyState string

const (
	StateBodyReceiving   ProxyState = "body_receiving"
	StateBodyParsed      ProxyState = "body_parsed"
	StatePromptBuilt     ProxyState = "prompt_built"
	StateUpstreamPending ProxyState = "upstream_pending"
	StateUpstreamSuccess ProxyState = "upstream_success"
	StateResponseSent    ProxyState = "response_sent"
)

// Completer sends one chat completion request and returns the raw body
type Completer interface {
	Complete(ctx context.Context, messages []models.ChatMessage) ([]byte, error)
}

type GenerateHandler struct {
	cfg      cliparse.Config
	upstream Completer
	validate *validator.Validate
}

func NewGenerateHandler(cfg cliparse.Config, upstream Completer) *GenerateHandler {
	return &GenerateHandler{
		cfg:      cfg,
		upstream: upstream,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// GenerateNames handles POST /generate-names
// Forwards the built prompt upstream and relays the response body unchanged
func (h *GenerateHandler) GenerateNames(w http.ResponseWriter, r *http.Request) {
	log := slog.With("request_id", middleware.RequestID(r.Context()))

	log.Debug("proxy state", "state", StateBodyReceiving)
	middleware.LimitBody(w, r, h.cfg.MaxBodyBytes)

	var req models.NameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		h.fail(w, log, StateBodyReceiving, fmt.Errorf("%w: %v", ErrMalformedRequest, err))
		return
	}
	req.EnglishName = strings.TrimSpace(req.EnglishName)
	if err := h.validate.Struct(req); err != nil {
		h.fail(w, log, StateBodyParsed, fmt.Errorf("%w: %s", ErrMalformedRequest, describeRequestError(err)))
		return
	}
	log.Debug("proxy state", "state", StateBodyParsed, "gender", req.Gender)

	messages := prompt.Messages(req)
	log.Debug("proxy state", "state", StatePromptBuilt, "prompt_chars", len([]rune(messages[1].Content)))

	log.Debug("proxy state", "state", StateUpstreamPending)
	raw, err := h.upstream.Complete(r.Context(), messages)
	if err != nil {
		h.fail(w, log, StateUpstreamPending, err)
		return
	}
	log.Debug("proxy state", "state", StateUpstreamSuccess)

	if h.cfg.ValidateSuggestions {
		if _, err := envelope.Decode(raw); err != nil {
			h.fail(w, log, StateUpstreamSuccess, err)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(raw); err != nil {
		log.Error("failed to relay upstream response", "error", err)
		return
	}
	log.Debug("proxy state", "state", StateResponseSent)
}

// fail ends the request; every proxy failure is a 500 carrying the message
func (h *GenerateHandler) fail(w http.ResponseWriter, log *slog.Logger, state ProxyState, err error) {
	log.Error("name generation failed", "state", state, "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
}

func describeRequestError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	switch verrs[0].Field() {
	case "EnglishName":
		return "englishName is required"
	case "Gender":
		return "gender must be male or female"
	}
	return verrs[0].Error()
}
