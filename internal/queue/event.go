// Package queue defines message payloads exchanged over the message
// broker, the publisher used by the enrollment service and the
// background consumer that audits enrollments.
package queue

// EnrollmentRegisteredEvent is published when a student successfully
// enrolls in a course.  It carries enough information for downstream
// consumers to log or notify without querying the primary database.
type EnrollmentRegisteredEvent struct {
	EnrollmentID uint64 `json:"enrollment_id"`
	StudentID    uint64 `json:"student_id"`
	StudentEmail string `json:"student_email"`
	CourseID     uint64 `json:"course_id"`
	CourseTitle  string `json:"course_title"`
	EnrolledAt   string `json:"enrolled_at"`
}
