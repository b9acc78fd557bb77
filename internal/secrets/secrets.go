// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys and credentials from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key name and the
// file contents (trimmed) are the value.
//
// Supported key files: serpapi-api-key, gemini-api-key, groq-api-key,
// anthropic-api-key, openrouter-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// providerKeyFiles maps a provider name to its secret file.
var providerKeyFiles = map[string]string{
	"gemini":     "gemini-api-key",
	"groq":       "groq-api-key",
	"claude":     "anthropic-api-key",
	"openrouter": "openrouter-api-key",
}

// SerpAPIKeyFile is the secret file holding the Google Scholar search credential.
const SerpAPIKeyFile = "serpapi-api-key"

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// Credentials extracts per-provider API keys from a loaded secret map,
// keyed by provider name as the dispatch stage expects. The gemini file
// may hold several keys, one per line; the value is passed through intact.
func Credentials(secrets map[string]string) map[string]string {
	creds := make(map[string]string)
	for provider, file := range providerKeyFiles {
		if v, ok := secrets[file]; ok {
			creds[provider] = v
		}
	}
	return creds
}
