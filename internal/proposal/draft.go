// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package proposal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pdiddy/proposal-engine/pkg/types"
)

// NewDraft returns an empty draft with the full field set and the
// default schedule.
func NewDraft() types.Draft {
	return types.Draft{
		Fields:   NewFieldMap(),
		Schedule: DefaultSchedule(),
	}
}

// WriteDraft exports a draft to a JSON file compatible with the
// original draft format, so files travel between installations.
func WriteDraft(path string, draft types.Draft) error {
	data, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling draft: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadDraft imports a draft from a JSON file. Missing field keys are
// backfilled empty and unknown ones dropped, so drafts from other
// versions normalize to the current field set.
func ReadDraft(path string) (types.Draft, error) {
	var draft types.Draft
	data, err := os.ReadFile(path)
	if err != nil {
		return draft, fmt.Errorf("reading draft: %w", err)
	}
	if err := json.Unmarshal(data, &draft); err != nil {
		return draft, fmt.Errorf("parsing draft: %w", err)
	}

	fields := NewFieldMap()
	for k, v := range draft.Fields {
		if IsFieldKey(k) {
			fields[k] = v
		}
	}
	draft.Fields = fields
	if len(draft.Schedule) == 0 {
		draft.Schedule = DefaultSchedule()
	}
	return draft, nil
}
