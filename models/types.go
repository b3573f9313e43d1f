package models

// Gender values accepted from the form
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Chat roles sent upstream
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Request types

type NameRequest struct {
	EnglishName  string `json:"englishName" validate:"required"`
	Gender       string `json:"gender" validate:"omitempty,oneof=male female"`
	Requirements string `json:"requirements,omitempty"`
}

// Upstream chat completion types

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

// ChatCompletion is the subset of the upstream envelope the decoders read.
// The proxy relays the raw bytes, never a re-encoded ChatCompletion.
type ChatCompletion struct {
	Choices []ChatChoice `json:"choices" validate:"required,min=1"`
}

type ChatChoice struct {
	Message ChatMessage `json:"message"`
}

// Domain types

type Meaning struct {
	Chinese string `json:"chinese" validate:"required"`
	English string `json:"english" validate:"required"`
}

type NameSuggestion struct {
	Chinese string  `json:"chinese" validate:"required"`
	Meaning Meaning `json:"meaning"`
}

// SuggestionPayload is the JSON document carried, string-encoded, in
// choices[0].message.content
type SuggestionPayload struct {
	Names []NameSuggestion `json:"names" validate:"required,dive"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
