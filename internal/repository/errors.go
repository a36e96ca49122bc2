// Package repository contains data access logic separated from HTTP handlers
// and services. Each entity file defines its own sentinel errors so that
// higher layers can distinguish failure scenarios; this file holds helpers
// shared across repositories.
package repository

import "strings"

// isDuplicateErr reports whether a MySQL error is a unique-key violation
// (error 1062). The driver does not expose a typed error for this, so the
// code is matched in the message.
func isDuplicateErr(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
