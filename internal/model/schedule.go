package model

import "time"

// ScheduleStatus is the lifecycle state of a schedule entry. The state
// machine is AVAILABLE ⇄ RESERVED; both states are reachable from
// nonexistence via create and both are terminable via delete.
type ScheduleStatus string

const (
	// StatusAvailable marks a slot that is open for booking.
	StatusAvailable ScheduleStatus = "AVAILABLE"
	// StatusReserved marks a booked slot. Reserved entries must carry a
	// non-empty event name and owner and a set event type.
	StatusReserved ScheduleStatus = "RESERVED"
)

// ParseScheduleStatus validates a raw status string from a request body.
func ParseScheduleStatus(raw string) (ScheduleStatus, bool) {
	switch ScheduleStatus(raw) {
	case StatusAvailable:
		return StatusAvailable, true
	case StatusReserved:
		return StatusReserved, true
	}
	return "", false
}

// ScheduleEntry is a concrete time slot for one hall on one date.
// Date uses "2006-01-02"; StartTime and EndTime use "HH:MM" and form a
// half-open interval [StartTime, EndTime). No two entries for the same hall
// and date may overlap; the schedule repository enforces this inside a
// locked transaction.
//
// CreatedBy records the staff user that created the entry (nil for rows
// seeded by the background job). EventType, EventName and EventOwner are
// meaningful only while Status is RESERVED and are cleared when a slot is
// returned to AVAILABLE.
type ScheduleEntry struct {
	ID         uint64         // schedules.id
	HallID     uint64         // schedules.hall_id
	Date       string         // schedules.slot_date ("2006-01-02")
	StartTime  string         // schedules.start_time ("HH:MM")
	EndTime    string         // schedules.end_time ("HH:MM")
	Status     ScheduleStatus // schedules.status
	CreatedBy  *uint64        // schedules.created_by (nullable)
	EventType  *EventType     // schedules.event_type (nullable)
	EventName  string         // schedules.event_name
	EventOwner string         // schedules.event_owner
	CreatedAt  time.Time      // schedules.created_at
	UpdatedAt  time.Time      // schedules.updated_at
}
