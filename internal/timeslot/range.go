// Package timeslot implements the time-range model used for schedule
// conflict detection. Clock times are represented as minutes since local
// midnight and intervals are half-open: two ranges that merely touch at an
// endpoint do not overlap.
package timeslot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadClock is returned when a clock string cannot be parsed.
var ErrBadClock = errors.New("timeslot: malformed clock value")

// ErrEmptyRange is returned when a range would not span any time.
var ErrEmptyRange = errors.New("timeslot: start must be before end")

// Range is a half-open interval [Start, End) in minutes since midnight.
type Range struct {
	Start int
	End   int
}

// ParseClock parses "HH:mm" or "HH:mm:ss" into minutes since midnight.
// Seconds are accepted and discarded because upstream callers send both
// forms; dates must be split off before calling.
func ParseClock(raw string) (int, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, raw)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, raw)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, raw)
	}
	return h*60 + m, nil
}

// NewRange builds a Range from two clock strings. Degenerate intervals
// where start >= end are rejected; they must never reach conflict checks.
func NewRange(start, end string) (Range, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Range{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Range{}, err
	}
	if s >= e {
		return Range{}, fmt.Errorf("%w: %q >= %q", ErrEmptyRange, start, end)
	}
	return Range{Start: s, End: e}, nil
}

// Overlaps reports whether two half-open ranges intersect.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && r.End > other.Start
}

// Clock renders minutes since midnight back to "HH:MM".
func Clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
