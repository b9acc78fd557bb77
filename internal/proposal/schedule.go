// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package proposal

import (
	"errors"

	"github.com/pdiddy/proposal-engine/pkg/types"
)

// ErrLastScheduleRow is returned when removal would empty the schedule.
var ErrLastScheduleRow = errors.New("schedule must keep at least one row")

// newRowActivity is the placeholder label for a freshly added row.
const newRowActivity = "Kegiatan Baru"

// DefaultSchedule returns the stock six-row research activity plan.
func DefaultSchedule() []types.ScheduleEntry {
	return []types.ScheduleEntry{
		{ID: 1, Activity: "Pengumpulan Data", M1: true, M2: true},
		{ID: 2, Activity: "Analisis Sistem", M2: true, M3: true},
		{ID: 3, Activity: "Perancangan Sistem", M3: true, M4: true},
		{ID: 4, Activity: "Implementasi & Coding", M4: true},
		{ID: 5, Activity: "Pengujian (Testing)", M4: true},
		{ID: 6, Activity: "Penyusunan Laporan", M4: true},
	}
}

// AddScheduleRow appends a blank row whose ID is one above the current
// maximum, so IDs stay unique even after removals.
func AddScheduleRow(schedule []types.ScheduleEntry) []types.ScheduleEntry {
	maxID := 0
	for _, e := range schedule {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return append(schedule, types.ScheduleEntry{ID: maxID + 1, Activity: newRowActivity})
}

// RemoveScheduleRow deletes the row with the given ID. The last
// remaining row cannot be removed.
func RemoveScheduleRow(schedule []types.ScheduleEntry, id int) ([]types.ScheduleEntry, error) {
	if len(schedule) <= 1 {
		return schedule, ErrLastScheduleRow
	}
	out := make([]types.ScheduleEntry, 0, len(schedule))
	for _, e := range schedule {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out, nil
}

// ToggleSchedulePeriod flips the given period (1-4) on the row with the
// given ID. Unknown IDs and periods are ignored.
func ToggleSchedulePeriod(schedule []types.ScheduleEntry, id, period int) {
	for i := range schedule {
		if schedule[i].ID != id {
			continue
		}
		switch period {
		case 1:
			schedule[i].M1 = !schedule[i].M1
		case 2:
			schedule[i].M2 = !schedule[i].M2
		case 3:
			schedule[i].M3 = !schedule[i].M3
		case 4:
			schedule[i].M4 = !schedule[i].M4
		}
		return
	}
}
