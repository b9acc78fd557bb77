// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"io"
	"net/http"
	"time"
)

// snippetLimit bounds error-body excerpts surfaced to the user.
const snippetLimit = 150

// NewClient returns an HTTP client with the given timeout. A zero timeout
// falls back to 30 seconds so a stalled relay can never hang a session.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// Snippet reads at most snippetLimit bytes of r for use in error messages.
// Read errors are ignored; whatever was read is returned.
func Snippet(r io.Reader) string {
	buf := make([]byte, snippetLimit)
	n, _ := io.ReadFull(r, buf)
	return string(buf[:n])
}

// Clip truncates s to at most max bytes for error messages.
func Clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// DrainClose discards any unread body and closes it, keeping the
// underlying connection reusable.
func DrainClose(body io.ReadCloser) {
	io.Copy(io.Discard, body)
	body.Close()
}
