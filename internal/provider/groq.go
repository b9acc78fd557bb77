// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"net/http"

	"github.com/tidwall/gjson"
)

// groqAPIURL is the Groq chat completion endpoint. Package-level var
// for test substitution.
var groqAPIURL = "https://api.groq.com/openai/v1/chat/completions"

const (
	groqDefaultModel     = "llama-3.3-70b-versatile"
	groqDefaultMaxTokens = 8000
	groqTemperature      = 0.7
)

// Groq calls the Groq OpenAI-compatible chat API.
type Groq struct {
	Key       string
	Model     string
	MaxTokens int
	Client    *http.Client
}

func (g *Groq) Name() string { return "groq" }

// Generate sends the prompt as a single user message.
func (g *Groq) Generate(ctx context.Context, prompt string) (string, error) {
	model := g.Model
	if model == "" {
		model = groqDefaultModel
	}
	maxTokens := g.MaxTokens
	if maxTokens <= 0 {
		maxTokens = groqDefaultMaxTokens
	}

	body := chatRequest{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: groqTemperature,
		MaxTokens:   maxTokens,
	}
	headers := map[string]string{"Authorization": "Bearer " + g.Key}

	data, err := postJSON(ctx, g.Client, groqAPIURL, headers, body)
	if err != nil {
		return "", err
	}

	text := gjson.GetBytes(data, "choices.0.message.content").String()
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
