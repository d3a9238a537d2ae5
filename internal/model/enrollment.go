package model

import "time"

// Enrollment links a student to a course.  The pair
// (StudentID, CourseID) is unique; rows are immutable after insert
// and there is no cancel operation.
//
// Fields:
//  ID         – primary key identifier.
//  StudentID  – enrolled user; must have the student role.
//  CourseID   – course being enrolled into.
//  EnrolledAt – timestamp of enrollment.
type Enrollment struct {
	ID         uint64    // enrollments.id
	StudentID  uint64    // enrollments.student_id
	CourseID   uint64    // enrollments.course_id
	EnrolledAt time.Time // enrollments.enrolled_at
}
