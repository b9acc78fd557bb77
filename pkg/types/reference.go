// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ReferenceEntry is a normalized citation candidate derived from one
// Google Scholar organic result. Entries are immutable once created and
// live for the duration of a single generation session.
type ReferenceEntry struct {
	// Index is the 1-based position in the aggregated reference list. The
	// prompt's citation allowlist refers to entries by this number.
	Index int `json:"id" yaml:"id"`

	// Title is the result title.
	Title string `json:"title" yaml:"title"`

	// Author is the first author, normalized from the publication summary.
	Author string `json:"authors" yaml:"authors"`

	// Year is the 4-digit publication year ("2022" when unparseable).
	Year string `json:"year" yaml:"year"`

	// Publisher is the journal or source label ("Jurnal Ilmiah" when unknown).
	Publisher string `json:"publisher" yaml:"publisher"`

	// Link is the best available URL: direct link, then resource link,
	// then the scholar cluster page, then a constructed title search.
	Link string `json:"link" yaml:"link"`

	// CitedBy is the citation count (0 when absent).
	CitedBy int `json:"cited_by" yaml:"cited_by"`

	// Snippet is the raw result snippet.
	Snippet string `json:"snippet" yaml:"snippet"`
}
