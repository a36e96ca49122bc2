// Package service implements the scheduling engine: the schedule lifecycle
// manager, the request workflow and the read-side reconciliation. Every
// operation authorizes through the policy package before touching storage.
package service

import (
	"errors"
	"fmt"

	"github.com/iliyamo/hall-reservation/internal/model"
)

// ErrNotFound is returned when an operation's target does not exist. It is
// deliberately distinct from a policy denial.
var ErrNotFound = errors.New("service: not found")

// ValidationError captures field-level validation issues callers can
// surface to users. All four engine error kinds are terminal: nothing in
// the engine retries.
type ValidationError struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if v == nil || len(v.FieldErrors) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed on %d field(s)", len(v.FieldErrors))
}

// HasErrors reports whether any field-level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// add records a field-level validation error.
func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}

// ConflictError reports that a proposed interval overlaps an existing
// schedule entry. The conflicting entry is carried so callers can present a
// human-readable message naming the occupying event.
type ConflictError struct {
	Entry model.ScheduleEntry
}

// Error implements the error interface.
func (c *ConflictError) Error() string {
	label := c.Entry.EventName
	if label == "" {
		label = string(c.Entry.Status)
	}
	return fmt.Sprintf("slot %s–%s on %s is taken by %q",
		c.Entry.StartTime, c.Entry.EndTime, c.Entry.Date, label)
}
