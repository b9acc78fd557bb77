// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrNoJSONFound is returned when a completion carries no JSON
	// object at all.
	ErrNoJSONFound = errors.New("no JSON object in completion")

	// ErrMalformedJSON is returned when the extracted object still does
	// not parse after repair. Usually the completion was truncated.
	ErrMalformedJSON = errors.New("malformed JSON in completion")
)

var (
	controlChars   = regexp.MustCompile(`[\x00-\x1f]+`)
	trailingComma  = regexp.MustCompile(`,\s*}`)
	trailingCommaA = regexp.MustCompile(`,\s*]`)
)

// ExtractJSON cuts the JSON object out of a completion. Models wrap the
// object in prose or markdown fences despite instructions, so the slice
// runs from the first "{" to the last "}".
func ExtractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSONFound
	}
	return text[start : end+1], nil
}

// Repair fixes the JSON defects models commonly produce: raw control
// characters inside string values and trailing commas before a closing
// brace or bracket.
func Repair(jsonStr string) string {
	jsonStr = controlChars.ReplaceAllString(jsonStr, " ")
	jsonStr = trailingComma.ReplaceAllString(jsonStr, "}")
	jsonStr = trailingCommaA.ReplaceAllString(jsonStr, "]")
	return jsonStr
}

// ParseFields extracts, repairs, and decodes a completion into a flat
// field map. Non-string values are rejected by the decode; the document
// schema is strings only.
func ParseFields(text string) (map[string]string, error) {
	raw, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}

	var fields map[string]string
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		// One repair pass, then give up.
		if err := json.Unmarshal([]byte(Repair(raw)), &fields); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
		}
	}
	return fields, nil
}

// Dispatch runs one generation against p and parses the completion into
// a field map.
func Dispatch(ctx context.Context, p Provider, prompt string) (map[string]string, error) {
	text, err := p.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name(), err)
	}
	return ParseFields(text)
}
