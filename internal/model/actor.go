package model

// Actor is the request-scoped identity every engine operation receives. It
// is derived from the authenticated user's JWT claims by middleware and is
// never persisted. Department is only meaningful for editors; it is nil for
// viewers, superadmins and editors that have not been assigned one yet.
type Actor struct {
	UserID     uint64
	Role       Role
	Department *EventType
}

// IsSuperAdmin reports whether the actor holds the SUPERADMIN role.
func (a Actor) IsSuperAdmin() bool { return a.Role == RoleSuperAdmin }

// IsEditor reports whether the actor holds the EDITOR role.
func (a Actor) IsEditor() bool { return a.Role == RoleEditor }

// IsViewer reports whether the actor holds the VIEWER role.
func (a Actor) IsViewer() bool { return a.Role == RoleViewer }
