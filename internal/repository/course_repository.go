// This file defines the Course model persistence. Courses are soft
// deleted: Archive force-sets status to archived and never removes a
// row, so selects do not need tombstone filtering beyond the status
// column itself.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/course-enrollment/internal/model"
)

// CourseRepo manages persistence for courses.
type CourseRepo struct{ DB *sql.DB }

func NewCourseRepo(db *sql.DB) *CourseRepo { return &CourseRepo{DB: db} }

const courseCols = "id, title, description, instructor_id, status, created_at, updated_at"

func scanCourse(row interface{ Scan(...any) error }, c *model.Course) error {
	var desc sql.NullString
	if err := row.Scan(&c.ID, &c.Title, &desc, &c.InstructorID, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return err
	}
	if desc.Valid {
		c.Description = &desc.String
	} else {
		c.Description = nil
	}
	return nil
}

// Insert stores a new course and populates the generated ID and
// DB-default timestamps on the given struct.
func (r *CourseRepo) Insert(ctx context.Context, c *model.Course) error {
	var desc sql.NullString
	if c.Description != nil {
		desc = sql.NullString{String: *c.Description, Valid: true}
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO courses (title, description, instructor_id, status) VALUES (?,?,?,?)",
		c.Title, desc, c.InstructorID, c.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return scanCourse(r.DB.QueryRowContext(ctx,
		"SELECT "+courseCols+" FROM courses WHERE id=?", c.ID), c)
}

// ByID fetches a course by id.  Returns (nil, nil) when no row matches.
func (r *CourseRepo) ByID(ctx context.Context, id uint64) (*model.Course, error) {
	var c model.Course
	err := scanCourse(r.DB.QueryRowContext(ctx,
		"SELECT "+courseCols+" FROM courses WHERE id=? LIMIT 1", id), &c)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Published returns the public catalog: courses with status published
// only, in creation order.
func (r *CourseRepo) Published(ctx context.Context) ([]model.Course, error) {
	return r.list(ctx, "SELECT "+courseCols+" FROM courses WHERE status=? ORDER BY id ASC", model.CoursePublished)
}

// ByInstructor returns every course of the given instructor regardless
// of status.  An unknown instructor yields an empty slice, not an
// error.
func (r *CourseRepo) ByInstructor(ctx context.Context, instructorID uint64) ([]model.Course, error) {
	return r.list(ctx, "SELECT "+courseCols+" FROM courses WHERE instructor_id=? ORDER BY id ASC", instructorID)
}

func (r *CourseRepo) list(ctx context.Context, q string, args ...any) ([]model.Course, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Course
	for rows.Next() {
		var c model.Course
		if err := scanCourse(rows, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// UpdateFields applies a partial update.  Only fields present in the
// patch are written; updated_at is always set to now, even for an
// empty patch.  Returns the refreshed row, or (nil, nil) when the
// course no longer exists.
func (r *CourseRepo) UpdateFields(ctx context.Context, id uint64, patch model.CoursePatch, now time.Time) (*model.Course, error) {
	set := "updated_at=?"
	args := []any{now.UTC()}
	if patch.Title != nil {
		set += ", title=?"
		args = append(args, *patch.Title)
	}
	if patch.Description.Set {
		set += ", description=?"
		if patch.Description.Value != nil {
			args = append(args, sql.NullString{String: *patch.Description.Value, Valid: true})
		} else {
			args = append(args, sql.NullString{})
		}
	}
	if patch.Status != nil {
		set += ", status=?"
		args = append(args, *patch.Status)
	}
	args = append(args, id)
	if _, err := r.DB.ExecContext(ctx, "UPDATE courses SET "+set+" WHERE id=?", args...); err != nil {
		return nil, err
	}
	return r.ByID(ctx, id)
}

// Archive force-sets status to archived and bumps updated_at.  It is
// idempotent on status: archiving an archived course still rewrites
// the row and advances the timestamp.
func (r *CourseRepo) Archive(ctx context.Context, id uint64, now time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE courses SET status=?, updated_at=? WHERE id=?",
		model.CourseArchived, now.UTC(), id)
	return err
}
