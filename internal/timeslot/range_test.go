package timeslot

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "09:00", want: 540},
		{in: "09:00:00", want: 540},
		{in: "23:59", want: 1439},
		{in: " 14:30 ", want: 870},
		{in: "00:00", want: 0},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "12", wantErr: true},
		{in: "garbage", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrBadClock) {
				t.Errorf("ParseClock(%q) error = %v, want ErrBadClock", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestNewRangeRejectsDegenerateIntervals(t *testing.T) {
	if _, err := NewRange("10:00", "09:00"); !errors.Is(err, ErrEmptyRange) {
		t.Fatalf("NewRange(10:00, 09:00) error = %v, want ErrEmptyRange", err)
	}
	if _, err := NewRange("10:00", "10:00"); !errors.Is(err, ErrEmptyRange) {
		t.Fatalf("NewRange(10:00, 10:00) error = %v, want ErrEmptyRange", err)
	}
}

func TestOverlapsIsHalfOpen(t *testing.T) {
	cases := []struct {
		name string
		a, b Range
		want bool
	}{
		{name: "disjoint", a: Range{540, 600}, b: Range{660, 720}, want: false},
		{name: "touching endpoints do not overlap", a: Range{540, 600}, b: Range{600, 660}, want: false},
		{name: "partial overlap", a: Range{540, 630}, b: Range{600, 660}, want: true},
		{name: "containment", a: Range{540, 720}, b: Range{600, 660}, want: true},
		{name: "identical", a: Range{540, 600}, b: Range{540, 600}, want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			// Overlap is symmetric.
			if got := tc.b.Overlaps(tc.a); got != tc.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tc.b, tc.a, got, tc.want)
			}
		})
	}
}

func TestDefaultEnd(t *testing.T) {
	cases := []struct {
		start string
		want  string
	}{
		{start: "09:00", want: "10:30"},
		{start: "10:30", want: "12:00"},
		{start: "19:30", want: "21:00"},
		{start: "21:00", want: "22:30"}, // last slot of the day gets +90m
		{start: "21:45", want: "23:15"},
		{start: "09:15", want: "10:30"}, // off-grid start snaps to next boundary
	}
	for _, tc := range cases {
		got, err := DefaultEnd(tc.start)
		if err != nil {
			t.Fatalf("DefaultEnd(%q) unexpected error: %v", tc.start, err)
		}
		if got != tc.want {
			t.Errorf("DefaultEnd(%q) = %q, want %q", tc.start, got, tc.want)
		}
	}
}

func TestStandardSlotsCoverTheDayWithoutOverlap(t *testing.T) {
	slots := StandardSlots()
	if len(slots) != 9 {
		t.Fatalf("expected 9 standard slots, got %d", len(slots))
	}
	for i := 1; i < len(slots); i++ {
		if slots[i-1].Overlaps(slots[i]) {
			t.Errorf("standard slots %d and %d overlap: %v %v", i-1, i, slots[i-1], slots[i])
		}
		if slots[i-1].End != slots[i].Start {
			t.Errorf("gap between standard slots %d and %d: %v %v", i-1, i, slots[i-1], slots[i])
		}
	}
}
