package timeslot

import (
	"strings"

	"github.com/iliyamo/hall-reservation/internal/model"
)

// NormalizeDate reduces a date value to its plain "2006-01-02" calendar form,
// stripping any time component ("2025-06-01T14:00:00Z", "2025-06-01 14:00:00"
// and "2025-06-01" all normalize to "2025-06-01"). Dates are compared as
// calendar strings; no timezone arithmetic is applied.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if i := strings.IndexAny(s, "T "); i >= 0 {
		s = s[:i]
	}
	return s
}

// NormalizeClock reduces a clock value to "HH:mm", dropping seconds. Values
// that do not parse are returned trimmed so mismatches stay visible.
func NormalizeClock(raw string) string {
	m, err := ParseClock(raw)
	if err != nil {
		return strings.TrimSpace(raw)
	}
	return Clock(m)
}

// FindConflict returns the first entry among existing that belongs to the
// given hall and date and overlaps the candidate range, or nil when the slot
// is free. excludeID skips one entry, used when an update is checked against
// itself; pass 0 to check every entry.
//
// This is the advisory form of the conflict check. The authoritative check
// runs inside the schedule repository's locked transaction over the same
// predicate, so a racing create cannot slip past this function.
func FindConflict(existing []model.ScheduleEntry, hallID uint64, date string, candidate Range, excludeID uint64) *model.ScheduleEntry {
	want := NormalizeDate(date)
	for i := range existing {
		e := &existing[i]
		if e.HallID != hallID || NormalizeDate(e.Date) != want {
			continue
		}
		if excludeID != 0 && e.ID == excludeID {
			continue
		}
		r, err := NewRange(e.StartTime, e.EndTime)
		if err != nil {
			// A stored entry that no longer parses cannot be proven free.
			return e
		}
		if r.Overlaps(candidate) {
			return e
		}
	}
	return nil
}
