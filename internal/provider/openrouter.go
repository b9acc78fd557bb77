// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"net/http"

	"github.com/tidwall/gjson"
)

// openRouterAPIURL is the OpenRouter chat completion endpoint.
// Package-level var for test substitution.
var openRouterAPIURL = "https://openrouter.ai/api/v1/chat/completions"

const (
	openRouterDefaultModel     = "deepseek/deepseek-chat"
	openRouterDefaultMaxTokens = 16000
	openRouterTemperature      = 0.7
	openRouterTitle            = "Proposal Generator"
)

// OpenRouter calls the OpenRouter chat API, by default routed to
// DeepSeek. The model can be overridden to any OpenRouter model slug.
type OpenRouter struct {
	Key       string
	Model     string
	MaxTokens int
	Referer   string
	Client    *http.Client
}

func (o *OpenRouter) Name() string { return "openrouter" }

// Generate sends the prompt as a single user message.
func (o *OpenRouter) Generate(ctx context.Context, prompt string) (string, error) {
	model := o.Model
	if model == "" {
		model = openRouterDefaultModel
	}
	maxTokens := o.MaxTokens
	if maxTokens <= 0 {
		maxTokens = openRouterDefaultMaxTokens
	}

	body := chatRequest{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: openRouterTemperature,
		MaxTokens:   maxTokens,
	}
	headers := map[string]string{
		"Authorization": "Bearer " + o.Key,
		"X-Title":       openRouterTitle,
	}
	if o.Referer != "" {
		headers["HTTP-Referer"] = o.Referer
	}

	data, err := postJSON(ctx, o.Client, openRouterAPIURL, headers, body)
	if err != nil {
		return "", err
	}

	text := gjson.GetBytes(data, "choices.0.message.content").String()
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
