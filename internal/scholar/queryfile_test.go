// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"path/filepath"
	"testing"

	"github.com/pdiddy/proposal-engine/pkg/types"
)

func TestQueryFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refs.yaml")
	refs := sampleRefs(4)

	err := WriteQueryFile(path, "Perancangan Sistem Informasi Toko Buku", types.MethodPrototype, refs)
	if err != nil {
		t.Fatalf("WriteQueryFile() error = %v", err)
	}

	qf, err := ReadQueryFile(path)
	if err != nil {
		t.Fatalf("ReadQueryFile() error = %v", err)
	}
	if qf.Title != "Perancangan Sistem Informasi Toko Buku" {
		t.Errorf("Title = %q", qf.Title)
	}
	if qf.Method != types.MethodPrototype {
		t.Errorf("Method = %q", qf.Method)
	}
	if len(qf.Queries) != 10 {
		t.Errorf("len(Queries) = %d, want 10", len(qf.Queries))
	}
	if len(qf.Results) != 4 || qf.Summary.Total != 4 {
		t.Errorf("Results = %d, Summary.Total = %d, want 4", len(qf.Results), qf.Summary.Total)
	}
	if qf.Results[2] != refs[2] {
		t.Errorf("Results[2] = %+v, want %+v", qf.Results[2], refs[2])
	}
}

func TestReadQueryFileMissing(t *testing.T) {
	if _, err := ReadQueryFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
