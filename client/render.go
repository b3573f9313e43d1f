// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"io"
	"text/template"

	"github.com/danielhkuo/chinese-namegen/models"
)

var cardTemplate = template.Must(template.New("cards").Parse(`{{range .}}┌ {{.Chinese}}
│ 中文寓意：{{.Meaning.Chinese}}
└ English Meaning: {{.Meaning.English}}

{{end}}`))

// RenderCards writes one card per suggestion. No suggestions writes nothing.
func RenderCards(w io.Writer, names []models.NameSuggestion) error {
	return cardTemplate.Execute(w, names)
}
