// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth handles the upstream API credential.

# Validation

The credential is a required, externally supplied secret. There is no
built-in default:

	if err := auth.ValidateCredential(cfg.APIKey); err != nil {
		return err
	}

ErrMissingCredential is returned for an empty key, ErrInvalidCredential for a
key containing whitespace or control characters.

# Header

	req.Header.Set("Authorization", auth.BearerToken(cfg.APIKey))

# Masking

Secrets are never logged in full:

	auth.MaskSecret("e4818a78-97e6")  // "*********97e6"
*/
package auth
