// Package repository contains the MySQL data access layer.  This file
// defines sentinel errors shared across repositories so the service
// layer can distinguish uniqueness violations from other storage
// failures.  The pre-insert duplicate checks in the services are not
// atomic with the insert, so a concurrent writer can slip through
// them; the unique indexes are the source of truth and these
// sentinels surface their violations.
package repository

import (
	"errors"
	"strings"
)

// ErrEmailExists is returned when inserting a user whose email is
// already taken.
var ErrEmailExists = errors.New("email already exists")

// ErrAlreadyEnrolled is returned when inserting an enrollment for a
// (student, course) pair that already exists.
var ErrAlreadyEnrolled = errors.New("already enrolled")

// ErrKeyHashExists is returned when inserting an API key whose hash
// collides with a stored one.
var ErrKeyHashExists = errors.New("key hash already exists")

// isDuplicate reports whether err is a MySQL duplicate-entry error
// (errno 1062) raised by a unique index.
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
