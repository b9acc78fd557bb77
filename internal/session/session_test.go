// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/proposal-engine/internal/proposal"
	"github.com/pdiddy/proposal-engine/pkg/types"
)

type fakeRefs struct {
	refs []types.ReferenceEntry
	err  error
}

func (f *fakeRefs) Aggregate(ctx context.Context, title string, method types.Methodology) ([]types.ReferenceEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.refs, f.err
}

type fakeProvider struct {
	text    string
	err     error
	gate    chan struct{} // when set, Generate blocks until closed
	prompts []string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type memStore struct {
	mu    sync.Mutex
	draft types.Draft
	saves int
}

func newMemStore() *memStore {
	return &memStore{draft: proposal.NewDraft()}
}

func (m *memStore) LoadDraft() (types.Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft, nil
}

func (m *memStore) SaveDraft(draft types.Draft) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft = draft
	m.saves++
	return nil
}

func sessionInput() types.ProposalInput {
	return types.ProposalInput{
		Title:        "Perancangan Sistem Informasi Kos",
		Problem:      "Pencatatan manual",
		Solution:     "Sistem berbasis web",
		Method:       types.MethodWaterfall,
		Organization: "Kos Melati",
	}
}

func sessionRefs() []types.ReferenceEntry {
	return []types.ReferenceEntry{
		{Index: 1, Title: "Paper Satu", Author: "A Pratama", Year: "2023", Publisher: "Jurnal TI", Link: "https://example.com/1"},
	}
}

func TestRunSuccess(t *testing.T) {
	store := newMemStore()
	c := &Controller{
		Refs:     &fakeRefs{refs: sessionRefs()},
		Provider: &fakeProvider{text: `{"bab1_par1_tekno":"Teknologi berkembang.","judul":"karangan model"}`},
		Store:    store,
		Now:      func() time.Time { return time.Date(2025, time.August, 17, 0, 0, 0, 0, time.UTC) },
	}

	draft, err := c.Run(context.Background(), sessionInput())
	require.NoError(t, err)

	assert.Equal(t, "Teknologi berkembang.", draft.Fields["bab1_par1_tekno"])
	assert.Equal(t, "Perancangan Sistem Informasi Kos", draft.Fields["judul"], "input title wins over provider output")
	assert.Contains(t, draft.Fields["daftar_pustaka"], "DAFTAR PUSTAKA", "bibliography auto-filled from references")
	assert.Contains(t, draft.Fields["bab2_3_penelitian_terdahulu"], "A Pratama")
	assert.Equal(t, sessionInput(), draft.Input)
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, StateMerged, c.State())
}

func TestRunProviderFieldsWinOverReferenceFills(t *testing.T) {
	store := newMemStore()
	c := &Controller{
		Refs:     &fakeRefs{refs: sessionRefs()},
		Provider: &fakeProvider{text: `{"bab2_3_penelitian_terdahulu":"Versi model."}`},
		Store:    store,
	}

	draft, err := c.Run(context.Background(), sessionInput())
	require.NoError(t, err)
	assert.Equal(t, "Versi model.", draft.Fields["bab2_3_penelitian_terdahulu"])
	assert.Contains(t, draft.Fields["daftar_pustaka"], "DAFTAR PUSTAKA")
}

func TestRunIncompleteInput(t *testing.T) {
	store := newMemStore()
	c := &Controller{Refs: &fakeRefs{}, Provider: &fakeProvider{}, Store: store}

	_, err := c.Run(context.Background(), types.ProposalInput{Title: "hanya judul"})
	assert.ErrorIs(t, err, ErrIncompleteInput)
	assert.Zero(t, store.saves)
}

func TestRunRejectsOverlap(t *testing.T) {
	gate := make(chan struct{})
	p := &fakeProvider{text: `{"judul":"x"}`, gate: gate}
	c := &Controller{Refs: &fakeRefs{}, Provider: p, Store: newMemStore()}

	done := make(chan error, 1)
	go func() {
		_, err := c.Run(context.Background(), sessionInput())
		done <- err
	}()

	// Wait for the first session to reach the provider.
	require.Eventually(t, func() bool {
		return c.State() == StateDispatching
	}, time.Second, time.Millisecond)

	_, err := c.Run(context.Background(), sessionInput())
	assert.ErrorIs(t, err, ErrSessionActive)

	close(gate)
	require.NoError(t, <-done)

	// Once finished, a new session is accepted again.
	_, err = c.Run(context.Background(), sessionInput())
	require.NoError(t, err)
}

func TestRunDispatchFailureLeavesStoreUntouched(t *testing.T) {
	store := newMemStore()
	c := &Controller{
		Refs:     &fakeRefs{refs: sessionRefs()},
		Provider: &fakeProvider{err: errors.New("quota exceeded")},
		Store:    store,
	}

	_, err := c.Run(context.Background(), sessionInput())
	require.Error(t, err)
	assert.Zero(t, store.saves, "failed sessions must not write the draft")
	assert.Equal(t, StateFailed, c.State())
	assert.Empty(t, store.draft.Fields["daftar_pustaka"], "reference fills commit only with a successful merge")
}

func TestRunSearchFailureIsAdvisory(t *testing.T) {
	store := newMemStore()
	p := &fakeProvider{text: `{"bab1_par1_tekno":"Isi."}`}
	c := &Controller{
		Refs:     &fakeRefs{err: errors.New("all relays down")},
		Provider: p,
		Store:    store,
	}

	draft, err := c.Run(context.Background(), sessionInput())
	require.NoError(t, err)

	require.Len(t, p.prompts, 1)
	assert.Contains(t, p.prompts[0], "TIDAK ADA REFERENSI DARI GOOGLE SCHOLAR")
	assert.Empty(t, draft.Fields["daftar_pustaka"], "no reference fill without references")
	assert.Equal(t, 1, store.saves)
}

func TestRunCancelledDuringSearch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := newMemStore()
	c := &Controller{Refs: &fakeRefs{}, Provider: &fakeProvider{}, Store: store}

	_, err := c.Run(ctx, sessionInput())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, store.saves)
	assert.Equal(t, StateFailed, c.State())
}

func TestRunProgressMonotonic(t *testing.T) {
	var percents []int
	var statuses []string
	c := &Controller{
		Refs:     &fakeRefs{refs: sessionRefs()},
		Provider: &fakeProvider{text: `{"judul":"x"}`},
		Store:    newMemStore(),
		OnProgress: func(p int, s string) {
			percents = append(percents, p)
			statuses = append(statuses, s)
		},
	}

	_, err := c.Run(context.Background(), sessionInput())
	require.NoError(t, err)

	for i := 1; i < len(percents); i++ {
		assert.GreaterOrEqual(t, percents[i], percents[i-1], "progress must not go backwards")
	}
	require.NotEmpty(t, percents)
	assert.Equal(t, 100, percents[len(percents)-1])
	assert.True(t, strings.Contains(statuses[len(statuses)-1], "selesai"))
}

func TestRunNoHundredOnFailure(t *testing.T) {
	var percents []int
	c := &Controller{
		Refs:       &fakeRefs{},
		Provider:   &fakeProvider{err: errors.New("boom")},
		Store:      newMemStore(),
		OnProgress: func(p int, s string) { percents = append(percents, p) },
	}

	_, err := c.Run(context.Background(), sessionInput())
	require.Error(t, err)
	assert.NotContains(t, percents, 100)
}
