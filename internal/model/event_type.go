package model

import "fmt"

// EventType classifies what a reserved slot is used for. The numeric codes
// are part of the wire and storage format and must not be reordered. An
// editor's department is an EventType: it constrains which entries that
// editor may manage.
type EventType int

const (
	EventNikah    EventType = 0 // wedding ceremony
	EventNisan    EventType = 1 // engagement ceremony
	EventKonser   EventType = 2 // concert
	EventToplanti EventType = 3 // meeting
	EventOzel     EventType = 4 // private event
)

var eventTypeNames = map[EventType]string{
	EventNikah:    "NIKAH",
	EventNisan:    "NISAN",
	EventKonser:   "KONSER",
	EventToplanti: "TOPLANTI",
	EventOzel:     "OZEL",
}

// ParseEventType validates a numeric event type code.
func ParseEventType(code int) (EventType, bool) {
	et := EventType(code)
	_, ok := eventTypeNames[et]
	return et, ok
}

// String returns the symbolic name, or a numeric fallback for unknown codes.
func (e EventType) String() string {
	if name, ok := eventTypeNames[e]; ok {
		return name
	}
	return fmt.Sprintf("EVENT(%d)", int(e))
}

// Valid reports whether the event type is one of the known codes.
func (e EventType) Valid() bool {
	_, ok := eventTypeNames[e]
	return ok
}
