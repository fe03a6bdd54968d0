// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP client shared by the document and alias
// fetchers.
package httputil

import (
	"context"
	"net/http"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/pdiddy/gene-summarizer/pkg/types"
)

// Client wraps an *http.Client with a User-Agent header and an optional
// outbound rate limit. It never retries: a failed request is returned to the
// caller as is.
type Client struct {
	http      *http.Client
	userAgent string
	limiter   *rate.Limiter
}

// New builds a Client from cfg. When base is nil a new *http.Client with
// cfg.Timeout is used. A zero RequestsPerSecond disables rate limiting.
func New(base *http.Client, cfg types.HTTPConfig) *Client {
	if base == nil {
		base = &http.Client{Timeout: cfg.Timeout}
	}
	c := &Client{http: base, userAgent: cfg.UserAgent}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return c
}

// Do waits for the rate limiter, then sends req with ctx attached. If the
// context is cancelled while waiting, Do returns the context error wrapped.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "waiting for rate limiter")
		}
	}

	req = req.Clone(ctx)
	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return c.http.Do(req)
}
