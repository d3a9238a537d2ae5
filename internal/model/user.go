package model

import "time"

// User roles.  The role column is an enum in the database and the
// same literal strings travel through the API, so the constants are
// the single source of truth for valid values.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// ValidRole reports whether s is one of the known user roles.
func ValidRole(s string) bool {
	return s == RoleStudent || s == RoleInstructor || s == RoleAdmin
}

// User represents a row in the `users` table.  PasswordHash holds the
// bcrypt credential and must never leave the service boundary; response
// DTOs in the handler package define their own shapes without it.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address (stored and compared as given,
//                 no case folding; the column uses a binary collation).
//  PasswordHash – bcrypt hashed password.
//  FirstName    – given name.
//  LastName     – family name.
//  Role         – one of student, instructor, admin.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	FirstName    string    // users.first_name
	LastName     string    // users.last_name
	Role         string    // users.role
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
