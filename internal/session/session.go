// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session runs one proposal generation end to end: reference
// aggregation, prompt compilation, provider dispatch, and the atomic
// merge of the result into the stored draft.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/pdiddy/proposal-engine/internal/prompt"
	"github.com/pdiddy/proposal-engine/internal/proposal"
	"github.com/pdiddy/proposal-engine/internal/provider"
	"github.com/pdiddy/proposal-engine/internal/scholar"
	"github.com/pdiddy/proposal-engine/pkg/types"
)

var (
	// ErrIncompleteInput is returned when the title, problem, or
	// solution is missing.
	ErrIncompleteInput = errors.New("judul, masalah, and solusi are required")

	// ErrSessionActive is returned when Run is called while another
	// session is in flight. Overlapping sessions are rejected, not
	// queued.
	ErrSessionActive = errors.New("a generation session is already running")
)

// State labels the phase a session is in.
type State string

const (
	StateIdle        State = "idle"
	StateSearching   State = "searching_references"
	StateCompiling   State = "compiling"
	StateDispatching State = "dispatching"
	StateMerged      State = "merged"
	StateFailed      State = "failed"
)

// ReferenceSource aggregates scholar references for a proposal title.
// Satisfied by *scholar.Aggregator.
type ReferenceSource interface {
	Aggregate(ctx context.Context, title string, method types.Methodology) ([]types.ReferenceEntry, error)
}

// DraftStore persists the current draft. Satisfied by *store.Store.
type DraftStore interface {
	LoadDraft() (types.Draft, error)
	SaveDraft(draft types.Draft) error
}

// Controller coordinates one generation session at a time.
type Controller struct {
	Refs     ReferenceSource
	Provider provider.Provider
	Store    DraftStore

	// OnProgress, when set, receives coarse progress updates. Percent
	// is monotonically non-decreasing within a session and reaches 100
	// only on success.
	OnProgress func(percent int, status string)

	// Now stamps the bibliography access date. Defaults to time.Now.
	Now func() time.Time

	mu     sync.Mutex
	active bool
	state  State
}

// State returns the phase of the last or current session.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == "" {
		return StateIdle
	}
	return c.state
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

func (c *Controller) progress(percent int, status string) {
	if c.OnProgress != nil {
		c.OnProgress(percent, status)
	}
}

// Run executes a full generation session for input and returns the
// updated draft. The stored draft is only written when the whole
// session succeeds; any failure leaves it untouched.
func (c *Controller) Run(ctx context.Context, input types.ProposalInput) (types.Draft, error) {
	if !input.Complete() {
		return types.Draft{}, ErrIncompleteInput
	}

	c.mu.Lock()
	if c.active {
		c.mu.Unlock()
		return types.Draft{}, ErrSessionActive
	}
	c.active = true
	c.state = StateSearching
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.active = false
		c.mu.Unlock()
	}()

	draft, err := c.run(ctx, input)
	if err != nil {
		c.setState(StateFailed)
		return types.Draft{}, err
	}
	c.setState(StateMerged)
	c.progress(100, "selesai")
	return draft, nil
}

func (c *Controller) run(ctx context.Context, input types.ProposalInput) (types.Draft, error) {
	c.progress(10, "mencari referensi Google Scholar")
	refs, err := c.Refs.Aggregate(ctx, input.Title, input.Method)
	if err != nil {
		// Reference aggregation is advisory: the proposal can be
		// generated without references. Cancellation still aborts.
		if ctx.Err() != nil {
			return types.Draft{}, err
		}
		log.WithError(err).Warn("reference aggregation failed, continuing without references")
		refs = nil
	}

	c.setState(StateCompiling)
	c.progress(25, "menyusun prompt")
	p, err := prompt.Compile(input, refs)
	if err != nil {
		return types.Draft{}, err
	}

	c.setState(StateDispatching)
	c.progress(50, "menghubungkan ke "+c.Provider.Name())
	fields, err := provider.Dispatch(ctx, c.Provider, p)
	if err != nil {
		return types.Draft{}, err
	}

	c.progress(75, "menggabungkan hasil")
	return c.commit(input, refs, fields)
}

// commit merges reference-derived fields and provider output into the
// stored draft and writes it back in one step. Provider fields win over
// the reference-derived fills; the title and institution always come
// from the input.
func (c *Controller) commit(input types.ProposalInput, refs []types.ReferenceEntry, fields map[string]string) (types.Draft, error) {
	draft, err := c.Store.LoadDraft()
	if err != nil {
		return types.Draft{}, fmt.Errorf("loading draft: %w", err)
	}
	if draft.Fields == nil {
		draft = proposal.NewDraft()
	}

	update := make(map[string]string, len(fields)+2)
	if len(refs) > 0 {
		update["bab2_3_penelitian_terdahulu"] = scholar.PriorWork(refs)
		update["daftar_pustaka"] = scholar.Bibliography(refs, c.now())
	}
	for k, v := range fields {
		update[k] = v
	}

	draft.Input = input
	proposal.Merge(draft.Fields, update, input)

	if err := c.Store.SaveDraft(draft); err != nil {
		return types.Draft{}, fmt.Errorf("saving draft: %w", err)
	}
	return draft, nil
}

func (c *Controller) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
