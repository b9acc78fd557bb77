// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/proposal-engine/pkg/types"
)

func sampleRefs(n int) []types.ReferenceEntry {
	var refs []types.ReferenceEntry
	for i := 1; i <= n; i++ {
		refs = append(refs, types.ReferenceEntry{
			Index:     i,
			Title:     "Judul Paper Nomor " + string(rune('A'+i-1)),
			Author:    "Penulis " + string(rune('A'+i-1)),
			Year:      "2023",
			Publisher: "Jurnal Contoh",
			Link:      "https://example.com/paper",
			CitedBy:   i,
		})
	}
	return refs
}

func TestPriorWorkTopThree(t *testing.T) {
	got := PriorWork(sampleRefs(5))

	if !strings.Contains(got, "1. Penulis A (2023)") {
		t.Errorf("missing first entry:\n%s", got)
	}
	if !strings.Contains(got, "3. Penulis C (2023)") {
		t.Errorf("missing third entry:\n%s", got)
	}
	if strings.Contains(got, "Penulis D") {
		t.Errorf("should stop at three entries:\n%s", got)
	}
	if !strings.Contains(got, "Dikutip: 2 kali") {
		t.Errorf("missing citation count:\n%s", got)
	}
}

func TestPriorWorkEmpty(t *testing.T) {
	if got := PriorWork(nil); got != "" {
		t.Errorf("PriorWork(nil) = %q, want empty", got)
	}
}

func TestBibliography(t *testing.T) {
	now := time.Date(2025, time.August, 17, 0, 0, 0, 0, time.UTC)
	refs := sampleRefs(18)
	refs[0].Author = "Unknown"

	got := Bibliography(refs, now)

	if !strings.Contains(got, "DAFTAR PUSTAKA") {
		t.Errorf("missing heading:\n%s", got)
	}
	if !strings.Contains(got, "(Total: 18 sumber)") {
		t.Errorf("total should count all refs, not just the rendered ones:\n%s", got)
	}
	if !strings.Contains(got, "[1] Anonim. (2023)") {
		t.Errorf("Unknown author should render as Anonim:\n%s", got)
	}
	if !strings.Contains(got, "[15]") || strings.Contains(got, "[16]") {
		t.Errorf("should render exactly 15 entries:\n%s", got)
	}
	if !strings.Contains(got, "Diakses: 17 Agustus 2025") {
		t.Errorf("missing Indonesian access date:\n%s", got)
	}
}

func TestBibliographyEmpty(t *testing.T) {
	if got := Bibliography(nil, time.Now()); got != "" {
		t.Errorf("Bibliography(nil) = %q, want empty", got)
	}
}

func TestClip(t *testing.T) {
	if got := clip("pendek", 10); got != "pendek" {
		t.Errorf("clip short = %q", got)
	}
	if got := clip("panjang sekali", 7); got != "panjang..." {
		t.Errorf("clip long = %q", got)
	}
}
