// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/proposal-engine/pkg/types"
)

// fakeFetcher scripts relay responses per target URL substring.
type fakeFetcher struct {
	calls     []string
	responses map[string]string // query fragment -> JSON body
	err       error
}

func (f *fakeFetcher) FetchJSON(_ context.Context, target string) (json.RawMessage, error) {
	f.calls = append(f.calls, target)
	if f.err != nil {
		return nil, f.err
	}
	u, _ := url.Parse(target)
	q := u.Query().Get("q")
	for frag, body := range f.responses {
		if strings.Contains(q, frag) {
			return json.RawMessage(body), nil
		}
	}
	return json.RawMessage(`{"organic_results":[]}`), nil
}

func testSearchCfg() types.SearchConfig {
	return types.SearchConfig{
		APIKey:          "test-key",
		Language:        "id",
		YearFrom:        2020,
		YearTo:          2024,
		ResultsPerQuery: 5,
		MaxReferences:   20,
		QueryDelay:      0,
		RetryDelay:      time.Millisecond,
	}
}

func scholarBody(titles ...string) string {
	var results []string
	for _, t := range titles {
		results = append(results, fmt.Sprintf(
			`{"title":%q,"link":"https://example.com/p","publication_info":{"summary":"A Penulis - Jurnal Contoh, 2023"}}`, t))
	}
	return `{"organic_results":[` + strings.Join(results, ",") + `]}`
}

func TestAggregateMergesAcrossQueries(t *testing.T) {
	f := &fakeFetcher{responses: map[string]string{
		"sistem informasi indonesia": scholarBody("Paper Alpha tentang manajemen kos modern"),
		"PIECES":                     scholarBody("Paper Beta tentang analisis PIECES terapan"),
	}}
	a := &Aggregator{Fetcher: f, Config: testSearchCfg()}

	refs, err := a.Aggregate(context.Background(), "Perancangan Sistem Informasi Manajemen Kos Harapan", types.MethodWaterfall)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("len(refs) = %d, want 2", len(refs))
	}
	if len(f.calls) != 10 {
		t.Errorf("issued %d queries, want 10", len(f.calls))
	}
	if refs[0].Index != 1 || refs[1].Index != 2 {
		t.Errorf("indices = %d,%d, want 1,2", refs[0].Index, refs[1].Index)
	}
}

func TestAggregateSkipsFailedQueries(t *testing.T) {
	fail := errors.New("relay down")
	f := &fakeFetcher{responses: map[string]string{
		"PIECES": scholarBody("Satu-satunya paper yang berhasil ditemukan"),
	}}
	// Fail everything except the PIECES query by scripting the error for
	// the first call only: simpler to flip err per call via a wrapper.
	var n int
	wrapped := fetcherFunc(func(ctx context.Context, target string) (json.RawMessage, error) {
		n++
		if n != 5 { // the PIECES query is the fifth in the battery
			return nil, fail
		}
		return f.FetchJSON(ctx, target)
	})

	a := &Aggregator{Fetcher: wrapped, Config: testSearchCfg()}
	refs, err := a.Aggregate(context.Background(), "Perancangan Sistem Informasi Arsip Digital Kantor", types.MethodAgile)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(refs) != 1 {
		t.Fatalf("len(refs) = %d, want 1 (failed queries skipped, not fatal)", len(refs))
	}
}

type fetcherFunc func(ctx context.Context, target string) (json.RawMessage, error)

func (fn fetcherFunc) FetchJSON(ctx context.Context, target string) (json.RawMessage, error) {
	return fn(ctx, target)
}

func TestAggregateAllQueriesFailedReturnsEmpty(t *testing.T) {
	var calls int
	f := fetcherFunc(func(context.Context, string) (json.RawMessage, error) {
		calls++
		return nil, errors.New("relay down")
	})

	a := &Aggregator{Fetcher: f, Config: testSearchCfg()}
	refs, err := a.Aggregate(context.Background(), "Perancangan Sistem Informasi Apotek Sehat", types.MethodWaterfall)
	if err != nil {
		t.Fatalf("Aggregate() error = %v, want nil (empty is a valid outcome)", err)
	}
	if len(refs) != 0 {
		t.Errorf("len(refs) = %d, want 0", len(refs))
	}
	// Ten battery queries plus the single bounded retry.
	if calls != 11 {
		t.Errorf("calls = %d, want 11", calls)
	}
}

func TestAggregateRetrySucceeds(t *testing.T) {
	var calls int
	f := fetcherFunc(func(_ context.Context, target string) (json.RawMessage, error) {
		calls++
		if calls <= 10 {
			return nil, errors.New("relay down")
		}
		return json.RawMessage(scholarBody("Paper dari percobaan ulang terakhir")), nil
	})

	a := &Aggregator{Fetcher: f, Config: testSearchCfg()}
	refs, err := a.Aggregate(context.Background(), "Perancangan Sistem Informasi Apotek Sehat", types.MethodWaterfall)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(refs) != 1 {
		t.Fatalf("len(refs) = %d, want 1 from the bounded retry", len(refs))
	}
}

func TestAggregateWithoutAPIKey(t *testing.T) {
	f := fetcherFunc(func(context.Context, string) (json.RawMessage, error) {
		t.Fatal("no network call expected without an API key")
		return nil, nil
	})
	cfg := testSearchCfg()
	cfg.APIKey = ""

	a := &Aggregator{Fetcher: f, Config: cfg}
	refs, err := a.Aggregate(context.Background(), "Perancangan Sistem Informasi Kos", types.MethodWaterfall)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if refs != nil {
		t.Errorf("refs = %v, want nil", refs)
	}
}

func TestAggregateCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	f := fetcherFunc(func(context.Context, string) (json.RawMessage, error) {
		cancel()
		return nil, ctx.Err()
	})

	a := &Aggregator{Fetcher: f, Config: testSearchCfg()}
	_, err := a.Aggregate(ctx, "Perancangan Sistem Informasi Kos Melati", types.MethodWaterfall)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Aggregate() error = %v, want context.Canceled", err)
	}
}

func TestSearchURLParameters(t *testing.T) {
	a := &Aggregator{Config: testSearchCfg()}
	raw := a.searchURL("manajemen kos sistem informasi indonesia")

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parsing search URL: %v", err)
	}
	q := u.Query()
	checks := map[string]string{
		"engine":  "google_scholar",
		"hl":      "id",
		"as_ylo":  "2020",
		"as_yhi":  "2024",
		"num":     "5",
		"api_key": "test-key",
		"q":       "manajemen kos sistem informasi indonesia",
	}
	for k, want := range checks {
		if got := q.Get(k); got != want {
			t.Errorf("param %s = %q, want %q", k, got, want)
		}
	}
}

func TestOnQueryHook(t *testing.T) {
	f := fetcherFunc(func(context.Context, string) (json.RawMessage, error) {
		return json.RawMessage(scholarBody("Paper untuk uji progress hook")), nil
	})

	var seen []string
	a := &Aggregator{Fetcher: f, Config: testSearchCfg(), OnQuery: func(i, n int, q string) {
		seen = append(seen, fmt.Sprintf("%d/%d", i+1, n))
	}}

	if _, err := a.Aggregate(context.Background(), "Perancangan Sistem Informasi Toko Buku", types.MethodRAD); err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(seen) != 10 || seen[0] != "1/10" || seen[9] != "10/10" {
		t.Errorf("hook calls = %v", seen)
	}
}
