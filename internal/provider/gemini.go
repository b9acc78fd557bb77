// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// geminiAPIURL is the Gemini generateContent endpoint, parameterized by
// model. Package-level var for test substitution.
var geminiAPIURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

const (
	geminiDefaultModel = "gemini-2.0-flash"
	geminiKeyPrefix    = "AIza"
)

// Gemini calls the Google Gemini API. Several keys can be configured
// (one per line); they are tried in order until one succeeds, which
// stretches free-tier quotas across keys.
type Gemini struct {
	Keys   []string
	Model  string
	Client *http.Client
}

func (g *Gemini) Name() string { return "gemini" }

// geminiKeys splits a newline-separated credential blob into usable
// keys. Lines that do not look like Gemini keys are dropped.
func geminiKeys(blob string) []string {
	var keys []string
	for _, line := range strings.Split(blob, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, geminiKeyPrefix) {
			keys = append(keys, line)
		}
	}
	return keys
}

// geminiRequest is the generateContent request body. The response MIME
// type pins the output to JSON so no extraction pass is needed on a
// well-behaved completion.
type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		ResponseMimeType string `json:"responseMimeType"`
	} `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// Generate tries each configured key in order. A key failure is logged
// and the next key tried; only when every key has failed does the
// dispatch fail, wrapping the last error.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	model := g.Model
	if model == "" {
		model = geminiDefaultModel
	}
	endpoint := fmt.Sprintf(geminiAPIURL, model)

	body := geminiRequest{Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}}}
	body.GenerationConfig.ResponseMimeType = "application/json"

	var lastErr error
	for i, key := range g.Keys {
		data, err := postJSON(ctx, g.Client, endpoint+"?key="+key, nil, body)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			log.WithFields(log.Fields{"key": i + 1, "keys": len(g.Keys)}).
				WithError(err).Warn("gemini key failed")
			lastErr = err
			continue
		}

		text := gjson.GetBytes(data, "candidates.0.content.parts.0.text").String()
		if text == "" {
			lastErr = ErrEmptyCompletion
			continue
		}
		return text, nil
	}

	if lastErr != nil {
		return "", fmt.Errorf("%w: %w", ErrAllCredentialsExhausted, lastErr)
	}
	return "", errors.New("gemini: no credentials configured")
}
