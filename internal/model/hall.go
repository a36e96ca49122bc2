package model

import "time"

// Hall is a bookable venue with a fixed capacity. Every hall belongs to
// exactly one center.
//
// Fields:
//  ID          – primary key identifier.
//  CenterID    – owning center.
//  Name        – hall name, unique within its center.
//  Capacity    – seating capacity.
//  Address     – street address of the hall.
//  Description – free display text (never parsed for access data).
//  ImageURL    – reference to an externally hosted image.
type Hall struct {
	ID          uint64    // halls.id
	CenterID    uint64    // halls.center_id
	Name        string    // halls.name
	Capacity    uint32    // halls.capacity
	Address     string    // halls.address
	Description string    // halls.description
	ImageURL    string    // halls.image_url
	CreatedAt   time.Time // halls.created_at
	UpdatedAt   time.Time // halls.updated_at
}
