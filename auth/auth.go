// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrMissingCredential = errors.New("API credential required")
	ErrInvalidCredential = errors.New("invalid credential format")
)

// ValidateCredential checks that an upstream API key was supplied and
// can be sent in a header without mangling
func ValidateCredential(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrMissingCredential
	}
	for _, r := range key {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return ErrInvalidCredential
		}
	}
	return nil
}

// BearerToken formats the Authorization header value for the upstream API
func BearerToken(key string) string {
	return "Bearer " + key
}

// MaskSecret hides all but the last 4 characters of a secret
// Short secrets are masked entirely
func MaskSecret(s string) string {
	runes := []rune(s)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-4:])
}
