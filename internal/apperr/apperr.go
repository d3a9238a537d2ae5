// Package apperr defines the closed set of business failures the
// operation handlers can produce.  Callers branch on the Kind and the
// structured Entity/ID context instead of matching message text.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a business failure.
type Kind string

const (
	// KindNotFound means a referenced entity does not exist.
	KindNotFound Kind = "not_found"
	// KindForbidden means the entity exists but fails a role or
	// state precondition.
	KindForbidden Kind = "forbidden"
	// KindConflict means the operation violates a uniqueness or
	// state-transition invariant.
	KindConflict Kind = "conflict"
	// KindAuthFailed is the single login failure.  Unknown email and
	// wrong password are deliberately indistinguishable.
	KindAuthFailed Kind = "authentication_failed"
)

// Error carries the failure kind plus the entity it concerns.  ID is
// zero when the failure is not about a specific row (e.g. an email
// conflict before any row exists).
type Error struct {
	Kind    Kind
	Entity  string
	ID      uint64
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.ID != 0 {
		return fmt.Sprintf("%s: %s %d", e.Kind, e.Entity, e.ID)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Entity)
}

func (e *Error) Unwrap() error { return e.Err }

// StatusCode maps the kind onto the HTTP status the dispatch layer
// should return.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindAuthFailed:
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// NotFound reports that the entity with the given id does not exist.
func NotFound(entity string, id uint64) *Error {
	return &Error{
		Kind:    KindNotFound,
		Entity:  entity,
		ID:      id,
		Message: fmt.Sprintf("%s with id %d not found", entity, id),
	}
}

// Forbidden reports a failed role or state precondition on an
// existing entity.
func Forbidden(entity string, id uint64, msg string) *Error {
	return &Error{Kind: KindForbidden, Entity: entity, ID: id, Message: msg}
}

// Conflict reports a uniqueness or state-transition violation.
func Conflict(entity string, msg string) *Error {
	return &Error{Kind: KindConflict, Entity: entity, Message: msg}
}

// AuthenticationFailed is returned for every login failure.
func AuthenticationFailed() *Error {
	return &Error{Kind: KindAuthFailed, Entity: "user", Message: "invalid email or password"}
}

// KindOf extracts the Kind from err, or "" when err is not an
// apperr.Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// As is a convenience wrapper around errors.As for handlers.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
