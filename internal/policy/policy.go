// Package policy centralizes every permission decision in the system.
// Handlers and services never re-derive role rules at call sites; they build
// a target description and ask this package. Rules are evaluated in a fixed
// order and the first match wins.
package policy

import (
	"errors"
	"fmt"

	"github.com/iliyamo/hall-reservation/internal/model"
)

// ErrDenied is the sentinel wrapped by every authorization failure. It is
// distinct from not-found signals so callers can tell the two apart.
var ErrDenied = errors.New("policy: operation not permitted")

// Operation names the action being authorized.
type Operation string

const (
	OpCreate Operation = "CREATE"
	OpRead   Operation = "READ"
	OpUpdate Operation = "UPDATE"
	OpDelete Operation = "DELETE"
	OpAnswer Operation = "ANSWER"
)

// ScheduleTarget describes the schedule entity a mutation touches. Grants is
// the allow-list state of the target hall. Entry is the entry as currently
// stored and is nil for Create; ownership and department checks always run
// against stored values, never against proposed new ones.
type ScheduleTarget struct {
	Grants model.HallGrants
	Entry  *model.ScheduleEntry
}

// AuthorizeSchedule decides whether the actor may perform op on a schedule
// entry of the target hall.
//
// Rule order:
//  1. superadmins may do anything
//  2. viewers may only read
//  3. editors need hall access (grant present, or no allow-list configured)
//  4. editors may not touch entries of another department or another creator
//  5. editors without a department cannot create (nothing to stamp)
func AuthorizeSchedule(actor model.Actor, op Operation, target ScheduleTarget) error {
	if actor.IsSuperAdmin() {
		return nil
	}
	if op == OpRead {
		// Timetables are readable by every authenticated role; edit rights
		// are checked only when a mutation is attempted.
		return nil
	}
	if actor.IsViewer() {
		return fmt.Errorf("%w: viewers cannot modify schedules", ErrDenied)
	}
	if !actor.IsEditor() {
		return fmt.Errorf("%w: unknown role %q", ErrDenied, actor.Role)
	}
	if err := requireHallAccess(target.Grants); err != nil {
		return err
	}
	switch op {
	case OpCreate:
		if actor.Department == nil {
			return fmt.Errorf("%w: editor has no department to classify the reservation", ErrDenied)
		}
		return nil
	case OpUpdate, OpDelete:
		return authorizeEditorMutation(actor, target.Entry)
	}
	return fmt.Errorf("%w: operation %q not applicable to schedules", ErrDenied, op)
}

// authorizeEditorMutation applies the department and ownership scoping that
// binds editors (and never superadmins) on update and delete.
func authorizeEditorMutation(actor model.Actor, entry *model.ScheduleEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: no target entry", ErrDenied)
	}
	if entry.EventType != nil {
		if actor.Department == nil || *entry.EventType != *actor.Department {
			return fmt.Errorf("%w: entry belongs to department %s", ErrDenied, entry.EventType)
		}
	}
	if entry.CreatedBy != nil && *entry.CreatedBy != actor.UserID {
		return fmt.Errorf("%w: entry was created by another editor", ErrDenied)
	}
	return nil
}

// AuthorizeRequestCreate decides whether the actor may submit a reservation
// request. Only viewers propose reservations; staff books slots directly.
func AuthorizeRequestCreate(actor model.Actor) error {
	if actor.IsSuperAdmin() {
		return nil
	}
	if !actor.IsViewer() {
		return fmt.Errorf("%w: only viewers submit reservation requests", ErrDenied)
	}
	return nil
}

// AuthorizeRequestAnswer decides whether the actor may answer or reject a
// request targeting a hall with the given allow-list state.
func AuthorizeRequestAnswer(actor model.Actor, grants model.HallGrants) error {
	if actor.IsSuperAdmin() {
		return nil
	}
	if !actor.IsEditor() {
		return fmt.Errorf("%w: only staff answer requests", ErrDenied)
	}
	return requireHallAccess(grants)
}

// AuthorizeBulkReset gates the superadmin-only reset of every schedule row.
func AuthorizeBulkReset(actor model.Actor) error {
	if actor.IsSuperAdmin() {
		return nil
	}
	return fmt.Errorf("%w: bulk schedule reset is superadmin only", ErrDenied)
}

// AuthorizeVenueAdmin gates center/hall CRUD and access-grant management.
func AuthorizeVenueAdmin(actor model.Actor) error {
	if actor.IsSuperAdmin() {
		return nil
	}
	return fmt.Errorf("%w: venue administration is superadmin only", ErrDenied)
}

// requireHallAccess enforces the allow-list rule: an editor may work on a
// hall when a grant names it directly or via its center, or when no
// allow-list is configured at all (open-access default).
func requireHallAccess(grants model.HallGrants) error {
	if grants.Configured && !grants.Granted {
		return fmt.Errorf("%w: hall access has not been granted", ErrDenied)
	}
	return nil
}
