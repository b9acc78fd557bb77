// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"net/http"

	"github.com/tidwall/gjson"
)

// claudeAPIURL is the Anthropic Messages endpoint. Package-level var
// for test substitution.
var claudeAPIURL = "https://api.anthropic.com/v1/messages"

const (
	claudeDefaultModel     = "claude-3-5-sonnet-20241022"
	claudeDefaultMaxTokens = 8000
	claudeAPIVersion       = "2023-06-01"
)

// Claude calls the Anthropic Messages API.
type Claude struct {
	Key       string
	Model     string
	MaxTokens int
	Client    *http.Client
}

func (c *Claude) Name() string { return "claude" }

// claudeRequest is the Messages API request body.
type claudeRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Messages  []chatMessage `json:"messages"`
}

// Generate sends the prompt as a single user message.
func (c *Claude) Generate(ctx context.Context, prompt string) (string, error) {
	model := c.Model
	if model == "" {
		model = claudeDefaultModel
	}
	maxTokens := c.MaxTokens
	if maxTokens <= 0 {
		maxTokens = claudeDefaultMaxTokens
	}

	body := claudeRequest{
		Model:     model,
		MaxTokens: maxTokens,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
	}
	headers := map[string]string{
		"x-api-key":         c.Key,
		"anthropic-version": claudeAPIVersion,
	}

	data, err := postJSON(ctx, c.Client, claudeAPIURL, headers, body)
	if err != nil {
		return "", err
	}

	text := gjson.GetBytes(data, "content.0.text").String()
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
