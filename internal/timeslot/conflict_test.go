package timeslot

import (
	"testing"

	"github.com/iliyamo/hall-reservation/internal/model"
)

func entry(id, hallID uint64, date, start, end string) model.ScheduleEntry {
	return model.ScheduleEntry{ID: id, HallID: hallID, Date: date, StartTime: start, EndTime: end, Status: model.StatusAvailable}
}

func TestNormalizeDate(t *testing.T) {
	cases := map[string]string{
		"2025-06-01":           "2025-06-01",
		"2025-06-01T14:00:00Z": "2025-06-01",
		"2025-06-01 14:00:00":  "2025-06-01",
		"  2025-06-01  ":       "2025-06-01",
	}
	for in, want := range cases {
		if got := NormalizeDate(in); got != want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeClock(t *testing.T) {
	if got := NormalizeClock("14:00:00"); got != "14:00" {
		t.Errorf("NormalizeClock(14:00:00) = %q, want 14:00", got)
	}
	if got := NormalizeClock("9:5"); got != "09:05" {
		t.Errorf("NormalizeClock(9:5) = %q, want 09:05", got)
	}
}

func TestFindConflict(t *testing.T) {
	existing := []model.ScheduleEntry{
		entry(1, 7, "2025-06-01", "09:00", "10:30"),
		entry(2, 7, "2025-06-01", "12:00", "13:30"),
		entry(3, 7, "2025-06-02", "09:00", "10:30"), // other date
		entry(4, 8, "2025-06-01", "09:00", "10:30"), // other hall
	}

	mustRange := func(start, end string) Range {
		r, err := NewRange(start, end)
		if err != nil {
			t.Fatalf("NewRange(%q, %q): %v", start, end, err)
		}
		return r
	}

	t.Run("overlap on same hall and date", func(t *testing.T) {
		got := FindConflict(existing, 7, "2025-06-01", mustRange("10:00", "11:00"), 0)
		if got == nil || got.ID != 1 {
			t.Fatalf("FindConflict = %v, want entry 1", got)
		}
	})

	t.Run("touching slot is free", func(t *testing.T) {
		if got := FindConflict(existing, 7, "2025-06-01", mustRange("10:30", "12:00"), 0); got != nil {
			t.Fatalf("FindConflict = %v, want nil", got)
		}
	})

	t.Run("other hall and date do not conflict", func(t *testing.T) {
		if got := FindConflict(existing, 9, "2025-06-01", mustRange("09:00", "10:00"), 0); got != nil {
			t.Fatalf("FindConflict = %v, want nil", got)
		}
	})

	t.Run("exclude own id during update", func(t *testing.T) {
		if got := FindConflict(existing, 7, "2025-06-01", mustRange("09:30", "10:00"), 1); got != nil {
			t.Fatalf("FindConflict = %v, want nil (entry 1 excluded)", got)
		}
	})

	t.Run("date with time component still matches", func(t *testing.T) {
		got := FindConflict(existing, 7, "2025-06-01T00:00:00Z", mustRange("09:00", "09:30"), 0)
		if got == nil || got.ID != 1 {
			t.Fatalf("FindConflict = %v, want entry 1", got)
		}
	})
}
