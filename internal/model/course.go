package model

import "time"

// Course statuses.  Only published courses appear in the public
// catalog; archival is the soft-delete state and is terminal in
// practice, although nothing prevents re-publishing via update.
const (
	CourseDraft     = "draft"
	CoursePublished = "published"
	CourseArchived  = "archived"
)

// ValidCourseStatus reports whether s is a known course status.
func ValidCourseStatus(s string) bool {
	return s == CourseDraft || s == CoursePublished || s == CourseArchived
}

// Course represents a row in the `courses` table.  Description is
// nullable, hence the pointer.  InstructorID references a user whose
// role was instructor or admin when the course was created; the check
// happens once at creation and is not re-evaluated afterwards.
//
// Fields:
//  ID           – primary key identifier.
//  Title        – course title (no uniqueness constraint).
//  Description  – optional free-form description (nil when unset).
//  InstructorID – owning user.
//  Status       – one of draft, published, archived.
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp; bumped on every update call,
//                 including updates that change no visible field.
type Course struct {
	ID           uint64    // courses.id
	Title        string    // courses.title
	Description  *string   // courses.description (nullable)
	InstructorID uint64    // courses.instructor_id
	Status       string    // courses.status
	CreatedAt    time.Time // courses.created_at
	UpdatedAt    time.Time // courses.updated_at
}
