package quizzle

import (
	"errors"
	"fmt"
)

// Machine codes carried by PersistenceError and surfaced verbatim in error
// envelopes.
const (
	OpCreate = "error_creating_record"
	OpUpdate = "error_updating_record"
	OpDelete = "error_deleting_record"
)

// ErrNoRowsAffected marks a write the store accepted but that changed
// nothing. Covers both "target did not exist" and "nothing to change".
var ErrNoRowsAffected = errors.New("no rows affected")

// PersistenceError wraps any failed create/update/delete, including the
// zero-rows-changed case.
type PersistenceError struct {
	Op     string
	Entity string
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Entity, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
