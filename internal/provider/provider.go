// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package provider dispatches a compiled prompt to one LLM backend and
// returns its raw text completion. Exactly one backend is used per
// generation; there is no cross-provider fallback, a failed dispatch
// surfaces to the caller.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/proposal-engine/internal/httputil"
	"github.com/pdiddy/proposal-engine/pkg/types"
)

var (
	// ErrMissingCredential is returned when the selected provider has no
	// API key configured.
	ErrMissingCredential = errors.New("provider credential not configured")

	// ErrAllCredentialsExhausted is returned when every configured key
	// for a multi-key provider failed.
	ErrAllCredentialsExhausted = errors.New("all provider credentials exhausted")

	// ErrEmptyCompletion is returned when the backend answered but the
	// response carried no text.
	ErrEmptyCompletion = errors.New("provider returned empty completion")
)

// HTTPError is a non-2xx response from a provider backend. The body is
// kept for diagnostics; provider error payloads explain quota and auth
// failures in detail.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("provider returned HTTP %d: %s", e.Status, httputil.Clip(e.Body, 150))
}

// Provider generates a text completion for one prompt.
type Provider interface {
	// Name identifies the provider variant.
	Name() string

	// Generate sends the prompt and returns the raw completion text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// New builds the provider variant selected by cfg.Name. The credential
// for the selected variant must be present in cfg.Credentials.
func New(cfg types.ProviderConfig) (Provider, error) {
	client := httputil.NewClient(cfg.Timeout)

	switch cfg.Name {
	case "groq":
		key := cfg.Credentials["groq"]
		if key == "" {
			return nil, fmt.Errorf("groq: %w", ErrMissingCredential)
		}
		return &Groq{Key: key, Model: cfg.Model, MaxTokens: cfg.MaxTokens, Client: client}, nil
	case "gemini":
		keys := geminiKeys(cfg.Credentials["gemini"])
		if len(keys) == 0 {
			return nil, fmt.Errorf("gemini: %w", ErrMissingCredential)
		}
		return &Gemini{Keys: keys, Model: cfg.Model, Client: client}, nil
	case "claude":
		key := cfg.Credentials["claude"]
		if key == "" {
			return nil, fmt.Errorf("claude: %w", ErrMissingCredential)
		}
		return &Claude{Key: key, Model: cfg.Model, MaxTokens: cfg.MaxTokens, Client: client}, nil
	case "openrouter":
		key := cfg.Credentials["openrouter"]
		if key == "" {
			return nil, fmt.Errorf("openrouter: %w", ErrMissingCredential)
		}
		return &OpenRouter{Key: key, Model: cfg.Model, MaxTokens: cfg.MaxTokens, Referer: cfg.Referer, Client: client}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Name)
	}
}

// Names lists the selectable provider variants.
func Names() []string {
	return []string{"gemini", "groq", "claude", "openrouter"}
}

// chatMessage is one turn in an OpenAI-style chat request. Groq and
// OpenRouter share this wire shape.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the OpenAI-compatible chat completion request body.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// postJSON sends a JSON POST and returns the raw response body. Non-2xx
// statuses become *HTTPError.
func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{Status: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}
