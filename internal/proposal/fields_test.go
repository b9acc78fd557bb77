// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package proposal

import (
	"testing"

	"github.com/pdiddy/proposal-engine/pkg/types"
)

func TestFieldKeysUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, k := range FieldKeys {
		if seen[k] {
			t.Errorf("duplicate field key %q", k)
		}
		seen[k] = true
	}
	if len(FieldKeys) != 45 {
		t.Errorf("len(FieldKeys) = %d, want 45", len(FieldKeys))
	}
}

func TestNewFieldMapCoversAllKeys(t *testing.T) {
	fields := NewFieldMap()
	if len(fields) != len(FieldKeys) {
		t.Fatalf("len(fields) = %d, want %d", len(fields), len(FieldKeys))
	}
	for _, k := range FieldKeys {
		if v, ok := fields[k]; !ok || v != "" {
			t.Errorf("fields[%q] = %q, %v; want empty and present", k, v, ok)
		}
	}
}

func TestMergeDropsUnknownKeys(t *testing.T) {
	fields := NewFieldMap()
	input := types.ProposalInput{Title: "Sistem Informasi Kos", Organization: "Kos Melati"}

	Merge(fields, map[string]string{
		"bab1_par1_tekno": "Perkembangan teknologi informasi saat ini...",
		"catatan_ai":      "should be dropped",
	}, input)

	if fields["bab1_par1_tekno"] == "" {
		t.Error("known key should be applied")
	}
	if _, ok := fields["catatan_ai"]; ok {
		t.Error("unknown key should be dropped")
	}
}

func TestMergePinsTitleAndOrganization(t *testing.T) {
	fields := NewFieldMap()
	input := types.ProposalInput{Title: "Judul Asli", Organization: "Instansi Asli"}

	Merge(fields, map[string]string{
		"judul":    "Judul Karangan Model",
		"instansi": "Instansi Karangan Model",
	}, input)

	if fields["judul"] != "Judul Asli" {
		t.Errorf("judul = %q, want user input to win", fields["judul"])
	}
	if fields["instansi"] != "Instansi Asli" {
		t.Errorf("instansi = %q, want user input to win", fields["instansi"])
	}
}

func TestMergeIdempotent(t *testing.T) {
	input := types.ProposalInput{Title: "T", Organization: "O"}
	update := map[string]string{"bab4_1_kesimpulan": "Kesimpulan penelitian."}

	a := NewFieldMap()
	Merge(a, update, input)

	b := NewFieldMap()
	Merge(b, update, input)
	Merge(b, update, input)

	for k := range a {
		if a[k] != b[k] {
			t.Errorf("field %q differs after repeated merge: %q vs %q", k, a[k], b[k])
		}
	}
}
