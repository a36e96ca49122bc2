package model

import "time"

// HallAccess grants an editor access to a single hall or, when CenterID is
// set instead, to every hall under a center. Exactly one of HallID and
// CenterID is non-nil per row. A hall with no grant rows (directly or via
// its center) is open to all editors.
type HallAccess struct {
	ID        uint64    // hall_access.id
	HallID    *uint64   // hall_access.hall_id (nullable)
	CenterID  *uint64   // hall_access.center_id (nullable)
	UserID    uint64    // hall_access.user_id
	CreatedAt time.Time // hall_access.created_at
}

// HallGrants is the policy-facing view of the allow-list state for one hall.
// Configured reports whether any grant rows exist for the hall or its owning
// center; Granted reports whether the acting editor appears among them.
type HallGrants struct {
	Configured bool
	Granted    bool
}
