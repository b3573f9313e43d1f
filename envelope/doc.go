// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package envelope decodes upstream chat completion responses.

The upstream returns a JSON envelope whose first choice carries the
suggestions as a JSON-encoded string:

	{"choices":[{"message":{"content":"{\"names\":[...]}"}}]}

Decoding is two explicit stages, each with its own error:

	content, err := envelope.DecodeEnvelope(raw)      // ErrEnvelope
	payload, err := envelope.DecodeSuggestions(content) // ErrPayload

Decode runs both. An empty names list is valid; a missing one is not, and
every suggestion needs chinese, meaning.chinese and meaning.english.
*/
package envelope
