package service

import (
	"context"
	"time"

	"github.com/iliyamo/course-enrollment/internal/apperr"
	"github.com/iliyamo/course-enrollment/internal/model"
)

// CreateCourseInput carries the fields of a course creation request.
type CreateCourseInput struct {
	Title        string
	Description  *string
	InstructorID uint64
	Status       string
}

// CourseService implements the course operations.  Every mutation
// re-reads the target row before acting; handlers hold no long-lived
// entity state.
type CourseService struct {
	Courses CourseStore
	Users   UserStore
	now     func() time.Time
}

func NewCourseService(courses CourseStore, users UserStore) *CourseService {
	return &CourseService{Courses: courses, Users: users, now: time.Now}
}

// Create inserts a new course after verifying the referenced user
// exists and holds the instructor or admin role.  The role is checked
// once, here; later role changes do not retroactively invalidate the
// course.
func (s *CourseService) Create(ctx context.Context, in CreateCourseInput) (*model.Course, error) {
	instructor, err := s.Users.ByID(ctx, in.InstructorID)
	if err != nil {
		return nil, err
	}
	if instructor == nil {
		return nil, apperr.NotFound("user", in.InstructorID)
	}
	if instructor.Role != model.RoleInstructor && instructor.Role != model.RoleAdmin {
		return nil, apperr.Forbidden("user", in.InstructorID, "user must have instructor or admin role to create courses")
	}
	status := in.Status
	if status == "" {
		status = model.CourseDraft
	}
	c := &model.Course{
		Title:        in.Title,
		Description:  in.Description,
		InstructorID: in.InstructorID,
		Status:       status,
	}
	if err := s.Courses.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update applies a partial update to a course.  Absent fields stay
// untouched, an explicit null clears the description, and updated_at
// advances on every call, including one with an empty patch.
func (s *CourseService) Update(ctx context.Context, id uint64, patch model.CoursePatch) (*model.Course, error) {
	existing, err := s.Courses.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("course", id)
	}
	updated, err := s.Courses.UpdateFields(ctx, id, patch, s.now())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.NotFound("course", id)
	}
	return updated, nil
}

// ByID returns the course with the given id, or nil when absent.
func (s *CourseService) ByID(ctx context.Context, id uint64) (*model.Course, error) {
	return s.Courses.ByID(ctx, id)
}

// ListPublished returns the public catalog: published courses only.
func (s *CourseService) ListPublished(ctx context.Context) ([]model.Course, error) {
	return s.Courses.Published(ctx)
}

// ListByInstructor returns all courses of an instructor regardless of
// status.  An unknown instructor yields an empty result, not an
// error.
func (s *CourseService) ListByInstructor(ctx context.Context, instructorID uint64) ([]model.Course, error) {
	return s.Courses.ByInstructor(ctx, instructorID)
}

// Archive soft-deletes a course: the row is kept, status is forced to
// archived and updated_at is bumped regardless of the current status.
// Archiving an archived course succeeds again.
func (s *CourseService) Archive(ctx context.Context, id uint64) error {
	existing, err := s.Courses.ByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("course", id)
	}
	return s.Courses.Archive(ctx, id, s.now())
}
