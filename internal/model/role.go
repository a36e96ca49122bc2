package model

import "strings"

// Role is the closed set of user roles understood by the access policy.
// Every permission decision in the system dispatches on this type; handlers
// and middleware never compare raw role strings themselves.
type Role string

const (
	// RoleViewer may browse centers, halls and timetables and submit
	// reservation requests. Viewers never touch schedule entries directly.
	RoleViewer Role = "VIEWER"
	// RoleEditor manages schedule entries for halls it has been granted
	// access to, scoped to its own department.
	RoleEditor Role = "EDITOR"
	// RoleSuperAdmin is permitted every operation on every entity.
	RoleSuperAdmin Role = "SUPERADMIN"
)

// ParseRole normalizes a raw role string from a JWT claim or request body.
// Unknown values report ok=false so callers can reject the token or default.
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(raw))) {
	case RoleViewer:
		return RoleViewer, true
	case RoleEditor:
		return RoleEditor, true
	case RoleSuperAdmin:
		return RoleSuperAdmin, true
	}
	return "", false
}

// Valid reports whether the role is one of the three known values.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}
