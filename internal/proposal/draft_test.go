// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package proposal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/proposal-engine/pkg/types"
)

func TestDraftRoundTrip(t *testing.T) {
	draft := NewDraft()
	draft.Input = types.ProposalInput{
		Title:    "Perancangan Sistem Informasi Kos",
		Problem:  "Pencatatan masih manual",
		Solution: "Sistem berbasis web",
		Method:   types.MethodWaterfall,
	}
	draft.Fields["bab1_par1_tekno"] = "Teknologi informasi berkembang pesat."
	draft.Schedule = AddScheduleRow(draft.Schedule)

	path := filepath.Join(t.TempDir(), "draft.json")
	require.NoError(t, WriteDraft(path, draft))

	got, err := ReadDraft(path)
	require.NoError(t, err)
	assert.Equal(t, draft.Input, got.Input)
	assert.Equal(t, draft.Fields, got.Fields)
	assert.Equal(t, draft.Schedule, got.Schedule)
}

func TestReadDraftNormalizesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.json")
	body := `{
  "smartInput": {"judul": "Sistem Parkir", "masalah": "m", "solusi": "s"},
  "formData": {"judul": "Sistem Parkir", "kolom_asing": "dibuang"},
  "schedule": []
}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	got, err := ReadDraft(path)
	require.NoError(t, err)

	assert.Len(t, got.Fields, len(FieldKeys))
	assert.NotContains(t, got.Fields, "kolom_asing")
	assert.Equal(t, "Sistem Parkir", got.Fields["judul"])
	assert.Equal(t, DefaultSchedule(), got.Schedule, "empty schedule backfills the default")
}

func TestReadDraftErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadDraft(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = ReadDraft(bad)
	assert.Error(t, err)
}
