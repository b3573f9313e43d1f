// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package envelope

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/chinese-namegen/models"
)

var (
	ErrEnvelope = errors.New("invalid upstream envelope")
	ErrPayload  = errors.New("invalid suggestion payload")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeEnvelope extracts choices[0].message.content from an upstream response
func DecodeEnvelope(raw []byte) (string, error) {
	var completion models.ChatCompletion
	if err := json.Unmarshal(bytes.TrimSpace(raw), &completion); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEnvelope, err)
	}
	if err := validate.Struct(completion); err != nil {
		return "", fmt.Errorf("%w: no choices", ErrEnvelope)
	}

	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: empty message content", ErrEnvelope)
	}
	return content, nil
}

// DecodeSuggestions parses the string-encoded payload and checks its shape
func DecodeSuggestions(content string) (models.SuggestionPayload, error) {
	var payload models.SuggestionPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return models.SuggestionPayload{}, fmt.Errorf("%w: %v", ErrPayload, err)
	}
	if err := validate.Struct(payload); err != nil {
		return models.SuggestionPayload{}, fmt.Errorf("%w: %s", ErrPayload, describe(err))
	}
	return payload, nil
}

// Decode runs both stages and returns the suggestions
func Decode(raw []byte) ([]models.NameSuggestion, error) {
	content, err := DecodeEnvelope(raw)
	if err != nil {
		return nil, err
	}
	payload, err := DecodeSuggestions(content)
	if err != nil {
		return nil, err
	}
	return payload.Names, nil
}

// describe turns validator errors into a short field list
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Namespace()+" "+fe.Tag())
	}
	return strings.Join(fields, ", ")
}
