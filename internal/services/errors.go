package services

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the requested entity does not exist (or is
// not visible, e.g. an unpublished article on the public surface).
var ErrNotFound = errors.New("not found")

// PermissionError is a denied action; Reason is safe to show the caller.
type PermissionError struct {
	Reason string
}

func (e *PermissionError) Error() string { return e.Reason }

// ValidationError rejects a request before any database mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Reason) }
