// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/pdiddy/proposal-engine/pkg/types"
)

// Defaults used when the publication summary cannot be parsed.
const (
	defaultAuthor    = "Unknown"
	defaultYear      = "2022"
	defaultPublisher = "Jurnal Ilmiah"
)

// dedupPrefixLen is the number of lower-cased title runes compared when
// removing duplicates across queries.
const dedupPrefixLen = 50

// genericWords are the title words carrying no search signal; every
// Indonesian "perancangan sistem informasi" title starts with them.
var genericWords = regexp.MustCompile(`(?i)perancangan|sistem|informasi|berbasis|web|aplikasi`)

var (
	yearPattern      = regexp.MustCompile(`\d{4}`)
	publisherPattern = regexp.MustCompile(`-\s*([^,]+)`)
)

// KeywordPhrase derives the primary search phrase from a proposal title:
// generic domain words are stripped and the first three remaining tokens
// longer than three runes are kept. Falls back to the title's first three
// words when nothing survives.
func KeywordPhrase(title string) string {
	stripped := genericWords.ReplaceAllString(title, "")

	var kept []string
	for _, w := range strings.Fields(stripped) {
		if len([]rune(w)) > 3 {
			kept = append(kept, w)
		}
		if len(kept) == 3 {
			break
		}
	}
	if len(kept) > 0 {
		return strings.Join(kept, " ")
	}

	words := strings.Fields(title)
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " ")
}

// BuildQueries returns the fixed ten-query battery covering the topic,
// methodology theory, systems-analysis theory, UML, implementation case
// studies, the web stack, and prior work.
func BuildQueries(title string, method types.Methodology) []string {
	mk := KeywordPhrase(title)
	m := string(method)
	if m == "" {
		m = "waterfall"
	}

	return []string{
		fmt.Sprintf("%s sistem informasi indonesia", mk),
		fmt.Sprintf("%s skripsi jurnal 2024", mk),
		fmt.Sprintf("perancangan %s berbasis web", mk),
		fmt.Sprintf("metode %s pengembangan sistem", m),
		"analisis PIECES sistem informasi",
		"pengertian sistem informasi manajemen",
		"UML unified modeling language perancangan",
		fmt.Sprintf("implementasi %s studi kasus", mk),
		fmt.Sprintf("aplikasi web %s PHP MySQL", mk),
		fmt.Sprintf("penelitian terdahulu %s 2023 2024", mk),
	}
}

// normalize deduplicates raw results by title prefix, truncates to max,
// and maps the survivors to ReferenceEntry values.
func normalize(raw []organicResult, max int) []types.ReferenceEntry {
	unique := dedupByTitle(raw)
	if len(unique) > max {
		unique = unique[:max]
	}

	refs := make([]types.ReferenceEntry, 0, len(unique))
	for i, r := range unique {
		refs = append(refs, mapResult(i+1, r))
	}
	return refs
}

// dedupByTitle keeps the first occurrence of each lower-cased 50-rune
// title prefix, preserving original order. Untitled results are dropped.
func dedupByTitle(raw []organicResult) []organicResult {
	seen := make(map[string]bool)
	var unique []organicResult
	for _, r := range raw {
		if r.Title == "" {
			continue
		}
		key := titleKey(r.Title)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, r)
	}
	return unique
}

func titleKey(title string) string {
	runes := []rune(strings.ToLower(title))
	if len(runes) > dedupPrefixLen {
		runes = runes[:dedupPrefixLen]
	}
	return string(runes)
}

// mapResult converts one organic result into a ReferenceEntry, parsing
// author, year, and publisher out of the semi-structured publication
// summary with fixed patterns and falling back to defaults.
func mapResult(index int, r organicResult) types.ReferenceEntry {
	summary := r.PublicationInfo.Summary

	return types.ReferenceEntry{
		Index:     index,
		Title:     r.Title,
		Author:    parseAuthor(summary),
		Year:      parseYear(summary),
		Publisher: parsePublisher(summary),
		Link:      bestLink(r),
		CitedBy:   r.InlineLinks.CitedBy.Total,
		Snippet:   r.Snippet,
	}
}

// parseAuthor takes everything before the first dash of the summary, then
// the first comma- or ampersand-delimited name.
func parseAuthor(summary string) string {
	head := summary
	if i := strings.Index(head, "-"); i >= 0 {
		head = head[:i]
	}
	head = strings.TrimSpace(head)
	if head == "" {
		return defaultAuthor
	}

	first := head
	if i := strings.IndexAny(first, ",&"); i >= 0 {
		first = first[:i]
	}
	first = strings.TrimSpace(first)
	if first == "" {
		return defaultAuthor
	}
	if runes := []rune(first); len(runes) > 40 {
		return string(runes[:40]) + " et al."
	}
	return first
}

// parseYear returns the first 4-digit token of the summary.
func parseYear(summary string) string {
	if y := yearPattern.FindString(summary); y != "" {
		return y
	}
	return defaultYear
}

// parsePublisher returns the text after the first dash, up to a comma.
func parsePublisher(summary string) string {
	m := publisherPattern.FindStringSubmatch(summary)
	if m == nil {
		return defaultPublisher
	}
	p := strings.TrimSpace(m[1])
	if p == "" {
		return defaultPublisher
	}
	return p
}

// bestLink picks the canonical URL: direct link, first resource link, the
// scholar cluster page, and finally a constructed title search.
func bestLink(r organicResult) string {
	if r.Link != "" {
		return r.Link
	}
	if len(r.Resources) > 0 && r.Resources[0].Link != "" {
		return r.Resources[0].Link
	}
	if r.ResultID != "" {
		return "https://scholar.google.com/scholar?cluster=" + r.ResultID
	}
	return "https://scholar.google.com/scholar?q=" + url.QueryEscape(r.Title)
}
