package model

import "time"

// RequestStatus is the lifecycle state of a reservation request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestAnswered RequestStatus = "ANSWERED"
	RequestRejected RequestStatus = "REJECTED"
)

// Request is a viewer-submitted proposal to reserve a hall at a given date
// and time. A request does not itself reserve a slot: once answered, staff
// is expected to create the matching schedule entry, and the read-side
// reconciliation overlays the request's metadata onto that entry.
//
// EventDate uses "2006-01-02" and EventTime "HH:MM", the same normalized
// forms the reconciler matches on.
type Request struct {
	ID         uint64        // requests.id
	HallID     uint64        // requests.hall_id
	CreatedBy  uint64        // requests.created_by (viewer user id)
	Message    string        // requests.message
	Status     RequestStatus // requests.status
	EventType  EventType     // requests.event_type
	EventName  string        // requests.event_name
	EventOwner string        // requests.event_owner
	EventDate  string        // requests.event_date ("2006-01-02")
	EventTime  string        // requests.event_time ("HH:MM")
	CreatedAt  time.Time     // requests.created_at
}
