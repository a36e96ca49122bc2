package model

import "time"

// Center is an organizational grouping of one or more halls. Deleting a
// center cascades deletion of its halls at the persistence layer. The
// description is plain display text; editor access is modelled by the
// HallAccess relation, never encoded in free text.
type Center struct {
	ID          uint64    // centers.id
	Name        string    // centers.name
	Address     string    // centers.address
	Description string    // centers.description
	CreatedAt   time.Time // centers.created_at
	UpdatedAt   time.Time // centers.updated_at
}
