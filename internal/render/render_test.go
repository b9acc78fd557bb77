// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"
	"testing"

	"github.com/pdiddy/proposal-engine/internal/proposal"
	"github.com/pdiddy/proposal-engine/pkg/types"
)

func TestDocumentStructure(t *testing.T) {
	draft := proposal.NewDraft()
	draft.Fields["judul"] = "Perancangan Sistem Informasi Kos"
	draft.Fields["penulis"] = "Budi Santoso"
	draft.Fields["nim"] = "12345678"
	draft.Fields["bab1_par1_tekno"] = "Teknologi informasi berkembang pesat."
	draft.Fields["uml_usecase_diagram"] = "flowchart LR\n    User([User]) --> UC1((Login))"
	draft.Fields["bab4_1_kesimpulan"] = "Kesimpulan perancangan."

	got := Document(draft)

	// Cover block with upper-cased title and author.
	if !strings.Contains(got, "# PERANCANGAN SISTEM INFORMASI KOS") {
		t.Error("missing upper-cased title heading")
	}
	if !strings.Contains(got, "BUDI SANTOSO") || !strings.Contains(got, "NIM: 12345678") {
		t.Error("missing cover identity lines")
	}

	// Chapter headings in document order.
	order := []string{
		"## BAB 1 PENDAHULUAN",
		"## BAB 2 TINJAUAN PUSTAKA",
		"### 2.5 Jadwal Perancangan",
		"## BAB 3 HASIL DAN PERANCANGAN",
		"## BAB 4 KESIMPULAN DAN SARAN",
		"## DAFTAR PUSTAKA",
		"## LAMPIRAN",
	}
	last := -1
	for _, h := range order {
		idx := strings.Index(got, h)
		if idx == -1 {
			t.Fatalf("missing heading %q", h)
		}
		if idx < last {
			t.Errorf("heading %q out of order", h)
		}
		last = idx
	}
}

func TestDocumentMermaidFences(t *testing.T) {
	draft := proposal.NewDraft()
	draft.Fields["erd_diagram"] = "erDiagram\n    PENGHUNI ||--o{ PEMBAYARAN : melakukan"

	got := Document(draft)

	if !strings.Contains(got, "```mermaid\nerDiagram\n    PENGHUNI ||--o{ PEMBAYARAN : melakukan\n```") {
		t.Errorf("diagram not fenced:\n%s", got)
	}
	if !strings.Contains(got, "*Gambar 3.3 Entity Relationship Diagram*") {
		t.Error("missing figure caption")
	}
	// Fields left empty produce no fences.
	if strings.Count(got, "```mermaid") != 1 {
		t.Errorf("expected a single mermaid block, got %d", strings.Count(got, "```mermaid"))
	}
}

func TestDocumentScheduleTable(t *testing.T) {
	draft := proposal.NewDraft()
	got := Document(draft)

	if !strings.Contains(got, "| No | Kegiatan | M1 | M2 | M3 | M4 |") {
		t.Error("missing schedule table header")
	}
	if !strings.Contains(got, "| 1 | Pengumpulan Data | ✓ | ✓ |  |  |") {
		t.Errorf("missing default schedule row:\n%s", got)
	}
}

func TestDocumentPlaceholders(t *testing.T) {
	got := Document(types.Draft{Fields: map[string]string{}, Schedule: nil})

	if !strings.Contains(got, "# [JUDUL]") {
		t.Error("empty title should render placeholder")
	}
	if !strings.Contains(got, "[NAMA]") || !strings.Contains(got, "[PRODI]") {
		t.Error("missing identity placeholders")
	}
}
