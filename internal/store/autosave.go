// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/pdiddy/proposal-engine/pkg/types"
)

// Autosaver coalesces draft writes: rapid successive updates produce a
// single database write after a quiet period. Writes are
// fire-and-forget; failures are logged, not surfaced.
type Autosaver struct {
	store *Store
	delay time.Duration

	mu      sync.Mutex
	pending *types.Draft
	timer   *time.Timer
}

// NewAutosaver wraps s with a debounce of cfg.AutosaveDelay (default 1s).
func NewAutosaver(s *Store, cfg types.StoreConfig) *Autosaver {
	delay := cfg.AutosaveDelay
	if delay <= 0 {
		delay = time.Second
	}
	return &Autosaver{store: s, delay: delay}
}

// Update schedules draft to be written once the quiet period elapses.
// A newer draft replaces a pending one.
func (a *Autosaver) Update(draft types.Draft) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.pending = &draft
	if a.timer == nil {
		a.timer = time.AfterFunc(a.delay, a.flush)
		return
	}
	a.timer.Reset(a.delay)
}

// Flush writes any pending draft immediately.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
	}
	a.mu.Unlock()
	a.flush()
}

func (a *Autosaver) flush() {
	a.mu.Lock()
	draft := a.pending
	a.pending = nil
	a.mu.Unlock()

	if draft == nil {
		return
	}
	if err := a.store.SaveDraft(*draft); err != nil {
		log.WithError(err).Warn("draft autosave failed")
	}
}
