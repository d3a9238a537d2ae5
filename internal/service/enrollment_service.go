package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/iliyamo/course-enrollment/internal/apperr"
	"github.com/iliyamo/course-enrollment/internal/model"
	"github.com/iliyamo/course-enrollment/internal/queue"
	"github.com/iliyamo/course-enrollment/internal/repository"
)

// EnrollmentService implements enrollment creation and listing.
// Events is optional; when set, a successful enrollment publishes an
// EnrollmentRegisteredEvent without ever failing the request.
type EnrollmentService struct {
	Enrollments EnrollmentStore
	Users       UserStore
	Courses     CourseStore
	Events      EnrollmentEventPublisher
}

func NewEnrollmentService(enrollments EnrollmentStore, users UserStore, courses CourseStore, events EnrollmentEventPublisher) *EnrollmentService {
	return &EnrollmentService{Enrollments: enrollments, Users: users, Courses: courses, Events: events}
}

// Create enrolls a student in a course.  The checks run in a fixed
// order and short-circuit on the first failure:
//
//  1. the student id references an existing user
//  2. that user has the student role
//  3. the course id references an existing course
//  4. the (student, course) pair is not already enrolled
//
// Only then is the row inserted.  A duplicate-key rejection on the
// insert itself (two racing enrollments both passing check 4) maps to
// the same conflict as check 4.
func (s *EnrollmentService) Create(ctx context.Context, studentID, courseID uint64) (*model.Enrollment, error) {
	student, err := s.Users.ByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperr.NotFound("student", studentID)
	}
	if student.Role != model.RoleStudent {
		return nil, apperr.Forbidden("user", studentID, fmt.Sprintf("user %d is not a student", studentID))
	}
	course, err := s.Courses.ByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperr.NotFound("course", courseID)
	}
	existing, err := s.Enrollments.ByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("enrollment", "already enrolled")
	}

	e := &model.Enrollment{StudentID: studentID, CourseID: courseID}
	if err := s.Enrollments.Insert(ctx, e); err != nil {
		if errors.Is(err, repository.ErrAlreadyEnrolled) {
			return nil, apperr.Conflict("enrollment", "already enrolled")
		}
		return nil, err
	}

	if s.Events != nil {
		ev := queue.EnrollmentRegisteredEvent{
			EnrollmentID: e.ID,
			StudentID:    student.ID,
			StudentEmail: student.Email,
			CourseID:     course.ID,
			CourseTitle:  course.Title,
			EnrolledAt:   e.EnrolledAt.UTC().Format(time.RFC3339),
		}
		if err := s.Events.PublishEnrollmentRegistered(ctx, ev); err != nil {
			log.Printf("enrollment: publish event failed: %v", err)
		}
	}
	return e, nil
}

// ByStudent returns all enrollments of a student.  Unknown students
// yield an empty result, not an error.
func (s *EnrollmentService) ByStudent(ctx context.Context, studentID uint64) ([]model.Enrollment, error) {
	return s.Enrollments.ByStudent(ctx, studentID)
}
