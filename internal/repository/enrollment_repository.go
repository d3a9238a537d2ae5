package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/course-enrollment/internal/model"
)

// EnrollmentRepo manages persistence for enrollments.  Rows are
// append-only: there is no update or cancel path.
type EnrollmentRepo struct{ DB *sql.DB }

func NewEnrollmentRepo(db *sql.DB) *EnrollmentRepo { return &EnrollmentRepo{DB: db} }

const enrollmentCols = "id, student_id, course_id, enrolled_at"

// Insert stores a new enrollment and populates the generated ID and
// enrolled_at timestamp.  Returns ErrAlreadyEnrolled when the unique
// (student_id, course_id) index rejects the row; this catches the
// race two concurrent enrollments can win past the service-level
// duplicate check.
func (r *EnrollmentRepo) Insert(ctx context.Context, e *model.Enrollment) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO enrollments (student_id, course_id) VALUES (?,?)",
		e.StudentID, e.CourseID)
	if err != nil {
		if isDuplicate(err) {
			return ErrAlreadyEnrolled
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	return r.DB.QueryRowContext(ctx,
		"SELECT "+enrollmentCols+" FROM enrollments WHERE id=?", e.ID).
		Scan(&e.ID, &e.StudentID, &e.CourseID, &e.EnrolledAt)
}

// ByStudentAndCourse fetches the enrollment for a (student, course)
// pair.  Returns (nil, nil) when the pair is not enrolled.
func (r *EnrollmentRepo) ByStudentAndCourse(ctx context.Context, studentID, courseID uint64) (*model.Enrollment, error) {
	var e model.Enrollment
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+enrollmentCols+" FROM enrollments WHERE student_id=? AND course_id=? LIMIT 1",
		studentID, courseID).
		Scan(&e.ID, &e.StudentID, &e.CourseID, &e.EnrolledAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ByStudent returns every enrollment of the given student in creation
// order.  An unknown student yields an empty slice, not an error.
func (r *EnrollmentRepo) ByStudent(ctx context.Context, studentID uint64) ([]model.Enrollment, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+enrollmentCols+" FROM enrollments WHERE student_id=? ORDER BY id ASC", studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Enrollment
	for rows.Next() {
		var e model.Enrollment
		if err := rows.Scan(&e.ID, &e.StudentID, &e.CourseID, &e.EnrolledAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
