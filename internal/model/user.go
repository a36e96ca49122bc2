package model

import "time"

// User represents an application user record as stored in the `users`
// table. The json tags are omitted because these structs are used by the
// repository layer; handlers define separate response types.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Role         – the user's role (VIEWER, EDITOR, SUPERADMIN).
//  Department   – event-type department; set only for editors.
//  IsActive     – whether the account is active.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64     // users.id
	Email        string     // users.email
	PasswordHash string     // users.password_hash
	Role         Role       // users.role
	Department   *EventType // users.department (nullable, editors only)
	IsActive     bool       // users.is_active
	CreatedAt    time.Time  // users.created_at
	UpdatedAt    time.Time  // users.updated_at
}

// Actor derives the request-scoped identity used by the access policy.
func (u User) Actor() Actor {
	return Actor{UserID: u.ID, Role: u.Role, Department: u.Department}
}
