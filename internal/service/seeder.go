package service

import (
	"context"
	"log"

	"github.com/iliyamo/hall-reservation/internal/model"
	"github.com/iliyamo/hall-reservation/internal/timeslot"
)

// SeedResult summarizes one default-availability seeding pass for a hall.
type SeedResult struct {
	Created int // rows inserted
	Skipped int // slots already occupied
	Failed  int // rows the store refused for other reasons
}

// SeedDefaultSchedules fills the next `days` calendar days of a hall with
// AVAILABLE entries at the standard slot boundaries, starting from the
// service clock's current day. It is best-effort: occupied slots are
// skipped, other per-row failures are logged and counted, and the pass
// never aborts partway. Seeded rows carry no creator so any editor with
// hall access may claim them later.
func (s *ScheduleService) SeedDefaultSchedules(ctx context.Context, hallID uint64, days int) (SeedResult, error) {
	if _, err := s.halls.GetByID(ctx, hallID); err != nil {
		return SeedResult{}, mapHallErr(err)
	}
	var res SeedResult
	day := s.now()
	for d := 0; d < days; d++ {
		date := day.AddDate(0, 0, d).Format("2006-01-02")
		for _, slot := range timeslot.StandardSlots() {
			entry := &model.ScheduleEntry{
				HallID:    hallID,
				Date:      date,
				StartTime: timeslot.Clock(slot.Start),
				EndTime:   timeslot.Clock(slot.End),
				Status:    model.StatusAvailable,
			}
			conflict, err := s.schedules.CreateIfFree(ctx, entry)
			switch {
			case err != nil:
				res.Failed++
				log.Printf("seed: hall=%d %s %s insert failed: %v", hallID, date, entry.StartTime, err)
			case conflict != nil:
				res.Skipped++
			default:
				res.Created++
			}
		}
	}
	return res, nil
}
