// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/proposal-engine/pkg/types"
)

// Limits for the auto-filled document fields.
const (
	priorWorkCount    = 3
	bibliographyCount = 15
)

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// formatDateID renders a date the way the proposal text expects, e.g.
// "17 Agustus 2025".
func formatDateID(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
}

// PriorWork renders the top references as the penelitian-terdahulu field
// text. Returns "" when there are no references.
func PriorWork(refs []types.ReferenceEntry) string {
	if len(refs) == 0 {
		return ""
	}
	if len(refs) > priorWorkCount {
		refs = refs[:priorWorkCount]
	}

	var b strings.Builder
	for i, r := range refs {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, clip(r.Author, 50), r.Year)
		fmt.Fprintf(&b, "   Judul: \"%s\"\n", clip(r.Title, 80))
		fmt.Fprintf(&b, "   Sumber: %s\n", r.Publisher)
		fmt.Fprintf(&b, "   Link: %s\n", r.Link)
		fmt.Fprintf(&b, "   Dikutip: %d kali\n", r.CitedBy)
		if i < len(refs)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Bibliography renders the daftar-pustaka field text from the aggregated
// references, stamped with the access date. Returns "" when there are no
// references.
func Bibliography(refs []types.ReferenceEntry, now time.Time) string {
	if len(refs) == 0 {
		return ""
	}
	total := len(refs)
	if len(refs) > bibliographyCount {
		refs = refs[:bibliographyCount]
	}
	accessed := formatDateID(now)

	var b strings.Builder
	b.WriteString("DAFTAR PUSTAKA\n\n")
	fmt.Fprintf(&b, "Referensi dari Google Scholar (Total: %d sumber)\n", total)

	for _, r := range refs {
		author := r.Author
		if author == defaultAuthor {
			author = "Anonim"
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "[%d] %s. (%s). \"%s\". %s.\n", r.Index, author, r.Year, clip(r.Title, 100), r.Publisher)
		fmt.Fprintf(&b, "     Link: %s\n", r.Link)
		fmt.Fprintf(&b, "     Diakses: %s\n", accessed)
		fmt.Fprintf(&b, "     Dikutip: %d kali\n", r.CitedBy)
	}
	return b.String()
}

// clip truncates s to max runes, appending an ellipsis when cut.
func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
