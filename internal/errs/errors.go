// Package errs defines the workflow error taxonomy shared by services and handlers.
//
// Every failure surfaced by the request lifecycle falls into one of four
// categories: a malformed submission, an ineligible status transition, a
// missing record, or a record store failure. Handlers map these onto HTTP
// status codes; nothing is silently swallowed.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports a malformed or incomplete submission. Fields names
// the offending input fields so the caller can correct them.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
}

// NewValidation creates a ValidationError for the given fields.
func NewValidation(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// InvalidTransitionError reports a status transition that is not allowed from
// the record's current state, including the lost race where the record left
// `pending` between read and update.
type InvalidTransitionError struct {
	Kind   string
	ID     string
	Status string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s %s: transition to %q not allowed", e.Kind, e.ID, e.Status)
}

// NotFoundError reports an unresolvable record id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// StoreError wraps a record store failure. The operation left no partial
// state and is safe to re-trigger.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store failure during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Store wraps err in a StoreError, or returns nil when err is nil.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// ErrForbidden is returned when the actor's role does not permit the
// operation. Authorization is enforced inside the services, not only in the
// HTTP layer.
var ErrForbidden = errors.New("forbidden")

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsInvalidTransition reports whether err is an InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var te *InvalidTransitionError
	return errors.As(err, &te)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

// IsStore reports whether err is a StoreError.
func IsStore(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
