// Package fault defines the error taxonomy shared by every engine operation.
// All errors returned to callers go through this package so that transport
// layers can map them to precise responses without leaking internal details.
package fault

import (
	"errors"
	"fmt"
)

// Kind discriminates the failure classes the engine can report.
type Kind int

const (
	// KindUnknown is the zero value; errors not created by this package.
	KindUnknown Kind = iota
	// KindValidation: a caller-supplied value fails a static constraint.
	KindValidation
	// KindNotFound: a referenced entity id does not exist.
	KindNotFound
	// KindInvalidState: the entity exists but is not in the status the
	// requested transition needs.
	KindInvalidState
	// KindPreconditionFailed: a cross-entity precondition does not hold.
	KindPreconditionFailed
	// KindConflict: a uniqueness or idempotency constraint was violated.
	KindConflict
	// KindTransientStore: the persistence call failed for infrastructure
	// reasons. Safe to retry with backoff; never a business failure.
	KindTransientStore
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindInvalidState:
		return "invalid_state"
	case KindPreconditionFailed:
		return "precondition_failed"
	case KindConflict:
		return "conflict"
	case KindTransientStore:
		return "transient_store"
	default:
		return "unknown"
	}
}

// Error is the canonical engine error. Entity and ID identify what was acted
// on; Current and Required carry status context for invalid-state failures so
// the caller can render workflow guidance, not just an error code.
type Error struct {
	Kind     Kind
	Entity   string
	ID       string
	Current  string
	Required string
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e.Current != "" && e.Required != "" {
		return fmt.Sprintf("%s %s: %s: currently %q, must be %q", e.Entity, e.ID, e.Message, e.Current, e.Required)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation reports a statically invalid input value.
func Validation(msg string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(msg, args...)}
}

// NotFound reports a missing entity.
func NotFound(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, ID: id, Message: entity + " not found"}
}

// InvalidState reports an entity in the wrong status for a transition. The
// message names both the current and the required status.
func InvalidState(entity, id, current, required string) *Error {
	return &Error{
		Kind:     KindInvalidState,
		Entity:   entity,
		ID:       id,
		Current:  current,
		Required: required,
		Message:  "invalid state for requested transition",
	}
}

// PreconditionFailed reports a cross-entity precondition violation.
func PreconditionFailed(msg string, args ...any) *Error {
	return &Error{Kind: KindPreconditionFailed, Message: fmt.Sprintf(msg, args...)}
}

// Conflict reports a uniqueness or idempotency violation.
func Conflict(entity, msg string) *Error {
	return &Error{Kind: KindConflict, Entity: entity, Message: msg}
}

// TransientStore wraps an infrastructure failure from the persistence layer.
func TransientStore(op string, err error) *Error {
	return &Error{Kind: KindTransientStore, Message: op, Err: err}
}

// KindOf extracts the Kind from err, or KindUnknown if err was not produced
// by this package.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool {
	return KindOf(err) == k
}
