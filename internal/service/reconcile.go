package service

import (
	"github.com/iliyamo/hall-reservation/internal/model"
	"github.com/iliyamo/hall-reservation/internal/timeslot"
)

// EnrichedScheduleEntry is a schedule entry decorated with the metadata of
// the answered request it fulfills, when one matches. The overlay is
// display-only: the stored entry is never modified.
type EnrichedScheduleEntry struct {
	model.ScheduleEntry
	MatchedRequestID *uint64
}

// ReconcileScheduleView overlays answered-request metadata onto the reserved
// entries of one hall. An entry matches the first answered request with the
// same hall, normalized calendar date and normalized "HH:mm" start time.
// The entry's own stored fields stay authoritative: the request only fills
// gaps (empty name/owner, unset type).
//
// The function is pure: it never mutates its inputs and repeated calls
// with the same inputs produce the same output.
func ReconcileScheduleView(hallID uint64, schedules []model.ScheduleEntry, requests []model.Request) []EnrichedScheduleEntry {
	out := make([]EnrichedScheduleEntry, 0, len(schedules))
	for _, entry := range schedules {
		enriched := EnrichedScheduleEntry{ScheduleEntry: entry}
		if entry.Status == model.StatusReserved {
			if req := matchRequest(hallID, entry, requests); req != nil {
				id := req.ID
				enriched.MatchedRequestID = &id
				if enriched.EventName == "" {
					enriched.EventName = req.EventName
				}
				if enriched.EventOwner == "" {
					enriched.EventOwner = req.EventOwner
				}
				if enriched.EventType == nil {
					et := req.EventType
					enriched.EventType = &et
				}
			}
		}
		out = append(out, enriched)
	}
	return out
}

// matchRequest returns the first answered request matching the entry's
// hall, date and start time, or nil.
func matchRequest(hallID uint64, entry model.ScheduleEntry, requests []model.Request) *model.Request {
	date := timeslot.NormalizeDate(entry.Date)
	start := timeslot.NormalizeClock(entry.StartTime)
	for i := range requests {
		req := &requests[i]
		if req.Status != model.RequestAnswered || req.HallID != hallID {
			continue
		}
		if timeslot.NormalizeDate(req.EventDate) == date && timeslot.NormalizeClock(req.EventTime) == start {
			return req
		}
	}
	return nil
}
