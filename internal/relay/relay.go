// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package relay fetches JSON from origins that block direct cross-origin
// access by routing the request through public CORS relay endpoints.
// Endpoints are tried in a fixed priority order; the first parseable JSON
// body wins. This is a fallback chain, not a retry loop: each endpoint
// gets exactly one request per fetch.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/proposal-engine/internal/httputil"
	"github.com/pdiddy/proposal-engine/pkg/types"
)

// ErrAllRelaysExhausted reports that every relay endpoint failed. The last
// underlying error is attached for diagnostics.
var ErrAllRelaysExhausted = errors.New("all relays exhausted")

// Endpoint wraps a target URL in one relay's encoding convention.
type Endpoint struct {
	// Name identifies the relay in logs.
	Name string

	// Wrap returns the relay URL that proxies target.
	Wrap func(target string) string
}

// DefaultEndpoints returns the stock relay chain in priority order.
func DefaultEndpoints() []Endpoint {
	return []Endpoint{
		{
			Name: "corsproxy.io",
			Wrap: func(target string) string {
				return "https://corsproxy.io/?" + url.QueryEscape(target)
			},
		},
		{
			Name: "allorigins.win",
			Wrap: func(target string) string {
				return "https://api.allorigins.win/raw?url=" + url.QueryEscape(target)
			},
		},
		{
			Name: "cors.eu.org",
			Wrap: func(target string) string {
				return "https://cors.eu.org/" + target
			},
		},
	}
}

// Client issues GET requests through an ordered relay chain.
type Client struct {
	HTTP      *http.Client
	Endpoints []Endpoint
	UserAgent string
}

// NewClient builds a Client with the default endpoint chain.
func NewClient(cfg types.RelayConfig) *Client {
	return &Client{
		HTTP:      httputil.NewClient(cfg.Timeout),
		Endpoints: DefaultEndpoints(),
		UserAgent: cfg.UserAgent,
	}
}

// FetchJSON requests target through each relay in order and returns the
// first body that parses as JSON. A transport error, non-2xx status, or
// malformed body moves on to the next relay. When the chain is exhausted
// the result wraps ErrAllRelaysExhausted together with the last failure.
func (c *Client) FetchJSON(ctx context.Context, target string) (json.RawMessage, error) {
	if len(c.Endpoints) == 0 {
		return nil, fmt.Errorf("%w: no endpoints configured", ErrAllRelaysExhausted)
	}

	var lastErr error
	for _, ep := range c.Endpoints {
		body, err := c.fetchOnce(ctx, ep, target)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logrus.WithField("relay", ep.Name).Debugf("relay failed: %v", err)
			lastErr = err
			continue
		}
		return body, nil
	}
	return nil, fmt.Errorf("%w: last error: %v", ErrAllRelaysExhausted, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, ep Endpoint, target string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ep.Wrap(target), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: creating request: %w", ep.Name, err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ep.Name, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httputil.DrainClose(resp.Body)
		return nil, fmt.Errorf("%s: HTTP %d", ep.Name, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: reading body: %w", ep.Name, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%s: body is not valid JSON", ep.Name)
	}
	return json.RawMessage(data), nil
}
