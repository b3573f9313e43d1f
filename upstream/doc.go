// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package upstream calls the external chat completions API.

	client := upstream.New(cfg, nil)
	raw, err := client.Complete(ctx, prompt.Messages(req))

Each call issues exactly one POST with a bearer credential and a body of the
form:

	{"model": "<cfg.Model>", "messages": [{"role":"system",...},{"role":"user",...}]}

The whole exchange, including reading the body, is bounded by
cfg.UpstreamTimeout (60s by default). When that deadline fires the request is
aborted and ErrTimeout is returned. Any other transport failure, or a non-2xx
status, returns ErrUpstream. Nothing is retried.

The response body is returned as-is for relaying.
*/
package upstream
