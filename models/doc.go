// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - NameRequest: englishName, gender, requirements

# Upstream Types

Types for the chat completions exchange:

  - ChatRequest: model, messages
  - ChatMessage: role, content
  - ChatCompletion: choices[].message.content (decode view only)

# Domain Types

  - SuggestionPayload: the names list encoded inside the first choice
  - NameSuggestion: chinese name plus meaning
  - Meaning: chinese and english explanations

# Error Response

	{"error": "request timeout"}

# Constants

Gender values:

	GenderMale   = "male"
	GenderFemale = "female"

Chat roles:

	RoleSystem = "system"
	RoleUser   = "user"
*/
package models
