// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  map[string]string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "serpapi-api-key", "  serp_abc123  \n")
				writeFile(t, dir, "groq-api-key", "gsk_xyz789")
				writeFile(t, dir, "openrouter-api-key", "sk-or-v1-aaa\n")
				return dir
			},
			want: map[string]string{
				"serpapi-api-key":    "serp_abc123",
				"groq-api-key":       "gsk_xyz789",
				"openrouter-api-key": "sk-or-v1-aaa",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty files and dotfiles",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "anthropic-api-key", "valid-key")
				writeFile(t, dir, "empty-key", "")
				writeFile(t, dir, ".gitignore", "*")
				return dir
			},
			want: map[string]string{"anthropic-api-key": "valid-key"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCredentials(t *testing.T) {
	secrets := map[string]string{
		"gemini-api-key":     "AIzaOne\nAIzaTwo",
		"openrouter-api-key": "sk-or-v1-aaa",
		"serpapi-api-key":    "serp_abc123",
		"unrelated":          "ignored",
	}

	creds := Credentials(secrets)
	assert.Equal(t, map[string]string{
		"gemini":     "AIzaOne\nAIzaTwo",
		"openrouter": "sk-or-v1-aaa",
	}, creds)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}
