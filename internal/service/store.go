// Package service implements the operation handlers: one method per
// use case, composing structural defaults, existence/role checks and
// a single write against the injected stores.  The store interfaces
// below are the persistence gateway contract; the MySQL
// implementations live in internal/repository and the tests use
// in-memory fakes.
//
// Lookup methods return (nil, nil) when no row matches: absence is a
// result for queries, not an error.  Mutations surface uniqueness
// violations through the repository sentinel errors so the services
// can fold the insert-time race into the same conflict outcome as the
// pre-insert check.
package service

import (
	"context"
	"time"

	"github.com/iliyamo/course-enrollment/internal/model"
	"github.com/iliyamo/course-enrollment/internal/queue"
)

// UserStore persists users.
type UserStore interface {
	Insert(ctx context.Context, u *model.User) error
	ByID(ctx context.Context, id uint64) (*model.User, error)
	ByEmail(ctx context.Context, email string) (*model.User, error)
	All(ctx context.Context) ([]model.User, error)
}

// CourseStore persists courses.
type CourseStore interface {
	Insert(ctx context.Context, c *model.Course) error
	ByID(ctx context.Context, id uint64) (*model.Course, error)
	Published(ctx context.Context) ([]model.Course, error)
	ByInstructor(ctx context.Context, instructorID uint64) ([]model.Course, error)
	UpdateFields(ctx context.Context, id uint64, patch model.CoursePatch, now time.Time) (*model.Course, error)
	Archive(ctx context.Context, id uint64, now time.Time) error
}

// EnrollmentStore persists enrollments.
type EnrollmentStore interface {
	Insert(ctx context.Context, e *model.Enrollment) error
	ByStudentAndCourse(ctx context.Context, studentID, courseID uint64) (*model.Enrollment, error)
	ByStudent(ctx context.Context, studentID uint64) ([]model.Enrollment, error)
}

// APIKeyStore persists API keys.
type APIKeyStore interface {
	Insert(ctx context.Context, k *model.APIKey) error
	ByID(ctx context.Context, id uint64) (*model.APIKey, error)
	All(ctx context.Context) ([]model.APIKey, error)
	MarkRevoked(ctx context.Context, id uint64, now time.Time) (*model.APIKey, error)
}

// EnrollmentEventPublisher pushes enrollment events to the broker.
// Publishing is best-effort: failures are logged by the service and
// never fail the enrollment itself.
type EnrollmentEventPublisher interface {
	PublishEnrollmentRegistered(ctx context.Context, ev queue.EnrollmentRegisteredEvent) error
}
