// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client is the Go counterpart of the browser page.

	c := client.New("http://localhost:3000", nil, client.WithIndicator(spinner))
	names, err := c.Generate(ctx, models.NameRequest{EnglishName: "James", Gender: "male"})
	if err != nil {
		...
	}
	client.RenderCards(os.Stdout, names)

Generate trims the input, returns ErrValidation without touching the network
when the english name is blank, then issues exactly one POST. The indicator
is shown after validation and hidden on every return path. Non-2xx responses
and transport failures are ErrRequestFailed; a malformed body surfaces the
envelope package's stage errors.
*/
package client
