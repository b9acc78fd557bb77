// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholar aggregates Google Scholar results into a bounded,
// deduplicated reference list for the prompt compiler. Queries go through
// the SerpAPI Scholar endpoint via the CORS relay chain, one query at a
// time with a pause between them; individual query failures degrade the
// reference list instead of failing the session.
package scholar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/proposal-engine/pkg/types"
)

// serpAPIBase is the SerpAPI search endpoint. Declared as a var so tests
// can substitute a local target.
var serpAPIBase = "https://serpapi.com/search.json"

// Fetcher retrieves a JSON document from a cross-origin URL. Satisfied by
// the relay client.
type Fetcher interface {
	FetchJSON(ctx context.Context, target string) (json.RawMessage, error)
}

// Aggregator runs the fixed query battery and normalizes the results.
type Aggregator struct {
	Fetcher Fetcher
	Config  types.SearchConfig

	// OnQuery, when set, is told about each query before it is issued.
	// Used by the session controller for progress reporting.
	OnQuery func(index, total int, query string)
}

// organicResult mirrors one entry of SerpAPI's organic_results array.
type organicResult struct {
	Title           string `json:"title"`
	Link            string `json:"link"`
	ResultID        string `json:"result_id"`
	Snippet         string `json:"snippet"`
	PublicationInfo struct {
		Summary string `json:"summary"`
	} `json:"publication_info"`
	InlineLinks struct {
		CitedBy struct {
			Total int `json:"total"`
		} `json:"cited_by"`
	} `json:"inline_links"`
	Resources []struct {
		Link string `json:"link"`
	} `json:"resources"`
}

type searchResponse struct {
	OrganicResults []organicResult `json:"organic_results"`
}

// Aggregate issues the query battery for the given title and methodology
// and returns up to Config.MaxReferences normalized entries. An empty list
// is a valid outcome: every query may fail without Aggregate returning an
// error. The only error surfaced is context cancellation.
func (a *Aggregator) Aggregate(ctx context.Context, title string, method types.Methodology) ([]types.ReferenceEntry, error) {
	if a.Config.APIKey == "" {
		logrus.Warn("scholar: no SerpAPI key configured, skipping reference search")
		return nil, nil
	}

	queries := BuildQueries(title, method)
	var raw []organicResult
	failures := 0

	for i, q := range queries {
		if i > 0 {
			if err := pause(ctx, a.Config.QueryDelay); err != nil {
				return nil, err
			}
		}
		if a.OnQuery != nil {
			a.OnQuery(i, len(queries), q)
		}

		results, err := a.runQuery(ctx, q)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			failures++
			logrus.WithField("query", q).Warnf("scholar: query skipped: %v", err)
			continue
		}
		raw = append(raw, results...)
	}

	// Best-effort single retry with the bare keyword phrase when the whole
	// battery came back empty-handed.
	if len(raw) == 0 && failures > 0 {
		if err := pause(ctx, a.Config.RetryDelay); err != nil {
			return nil, err
		}
		results, err := a.runQuery(ctx, KeywordPhrase(title))
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logrus.Warnf("scholar: retry failed: %v", err)
			return nil, nil
		}
		raw = results
	}

	max := a.Config.MaxReferences
	if max <= 0 {
		max = 20
	}
	return normalize(raw, max), nil
}

// runQuery fetches one Scholar query through the relay chain.
func (a *Aggregator) runQuery(ctx context.Context, q string) ([]organicResult, error) {
	body, err := a.Fetcher.FetchJSON(ctx, a.searchURL(q))
	if err != nil {
		return nil, err
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("parsing scholar response: %w", err)
	}
	return sr.OrganicResults, nil
}

// searchURL builds the SerpAPI Google Scholar URL for one query.
func (a *Aggregator) searchURL(q string) string {
	num := a.Config.ResultsPerQuery
	if num <= 0 {
		num = 5
	}
	lang := a.Config.Language
	if lang == "" {
		lang = "id"
	}

	params := url.Values{
		"engine":  {"google_scholar"},
		"q":       {q},
		"hl":      {lang},
		"num":     {strconv.Itoa(num)},
		"api_key": {a.Config.APIKey},
	}
	if a.Config.YearFrom > 0 {
		params.Set("as_ylo", strconv.Itoa(a.Config.YearFrom))
	}
	if a.Config.YearTo > 0 {
		params.Set("as_yhi", strconv.Itoa(a.Config.YearTo))
	}
	return serpAPIBase + "?" + params.Encode()
}

// pause sleeps for d, returning early if the context is cancelled.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
