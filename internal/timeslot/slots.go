package timeslot

// standardSlotStarts are the canonical daily slot boundaries the seeder
// creates availability at, in minutes since midnight: 09:00 through 21:00 in
// 90 minute steps.
var standardSlotStarts = []int{
	9 * 60,          // 09:00
	10*60 + 30,      // 10:30
	12 * 60,         // 12:00
	13*60 + 30,      // 13:30
	15 * 60,         // 15:00
	16*60 + 30,      // 16:30
	18 * 60,         // 18:00
	19*60 + 30,      // 19:30
	21 * 60,         // 21:00
}

// lastSlotDuration is applied after the final boundary of the day.
const lastSlotDuration = 90

// StandardSlots returns the canonical daily slots as ranges.
func StandardSlots() []Range {
	out := make([]Range, 0, len(standardSlotStarts))
	for _, s := range standardSlotStarts {
		out = append(out, Range{Start: s, End: defaultEndMinutes(s)})
	}
	return out
}

// DefaultEnd infers an end time for a slot whose end was not given: the next
// standard boundary after start, or start plus 90 minutes when start is at
// or past the last boundary of the day.
func DefaultEnd(start string) (string, error) {
	s, err := ParseClock(start)
	if err != nil {
		return "", err
	}
	return Clock(defaultEndMinutes(s)), nil
}

func defaultEndMinutes(start int) int {
	for _, b := range standardSlotStarts {
		if b > start {
			return b
		}
	}
	return start + lastSlotDuration
}
