package service

import (
	"context"
	"testing"

	"github.com/iliyamo/course-enrollment/internal/apperr"
	"github.com/iliyamo/course-enrollment/internal/model"
	"github.com/iliyamo/course-enrollment/internal/repository"
)

type enrollmentFixture struct {
	clock       *memClock
	users       *memUserStore
	courses     *memCourseStore
	enrollments *memEnrollmentStore
	events      *capturePublisher
	svc         *EnrollmentService
}

func newEnrollmentFixture() *enrollmentFixture {
	clock := newMemClock()
	users := newMemUserStore(clock)
	courses := newMemCourseStore(clock)
	enrollments := newMemEnrollmentStore(clock)
	events := &capturePublisher{}
	return &enrollmentFixture{
		clock:       clock,
		users:       users,
		courses:     courses,
		enrollments: enrollments,
		events:      events,
		svc:         NewEnrollmentService(enrollments, users, courses, events),
	}
}

func (f *enrollmentFixture) seedUser(t *testing.T, email, role string) *model.User {
	t.Helper()
	u := &model.User{Email: email, PasswordHash: "x", FirstName: "F", LastName: "L", Role: role}
	if err := f.users.Insert(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func (f *enrollmentFixture) seedCourse(t *testing.T, title string, instructorID uint64) *model.Course {
	t.Helper()
	c := &model.Course{Title: title, InstructorID: instructorID, Status: model.CoursePublished}
	if err := f.courses.Insert(context.Background(), c); err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return c
}

func TestCreateEnrollmentCheckOrder(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()
	inst := f.seedUser(t, "inst@example.com", model.RoleInstructor)
	student := f.seedUser(t, "stud@example.com", model.RoleStudent)
	course := f.seedCourse(t, "Algebra", inst.ID)

	// 1: unknown student.
	_, err := f.svc.Create(ctx, 999, course.ID)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not_found, got %v", err)
	}
	if e, _ := apperr.As(err); e.Entity != "student" || e.ID != 999 {
		t.Fatalf("expected student context, got %+v", e)
	}

	// 2: existing user without the student role.
	_, err = f.svc.Create(ctx, inst.ID, course.ID)
	if apperr.KindOf(err) != apperr.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if e, _ := apperr.As(err); e.ID != inst.ID {
		t.Fatalf("forbidden must carry the user id, got %d", e.ID)
	}

	// 3: unknown course.
	_, err = f.svc.Create(ctx, student.ID, 888)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not_found, got %v", err)
	}
	if e, _ := apperr.As(err); e.Entity != "course" || e.ID != 888 {
		t.Fatalf("expected course context, got %+v", e)
	}

	// 4: all checks pass, then the duplicate rule kicks in.
	first, err := f.svc.Create(ctx, student.ID, course.ID)
	if err != nil {
		t.Fatalf("first enrollment: %v", err)
	}
	if first.ID == 0 || first.EnrolledAt.IsZero() {
		t.Fatal("enrollment must carry id and timestamp")
	}
	_, err = f.svc.Create(ctx, student.ID, course.ID)
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict on duplicate, got %v", err)
	}

	// Same student, different course is fine.
	other := f.seedCourse(t, "Geometry", inst.ID)
	if _, err := f.svc.Create(ctx, student.ID, other.ID); err != nil {
		t.Fatalf("second course enrollment: %v", err)
	}
}

func TestCreateEnrollmentInsertRaceMapsToConflict(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()
	inst := f.seedUser(t, "inst@example.com", model.RoleInstructor)
	student := f.seedUser(t, "stud@example.com", model.RoleStudent)
	course := f.seedCourse(t, "Algebra", inst.ID)

	// Simulate a concurrent writer winning between the duplicate
	// check and the insert: the store rejects with the unique-index
	// sentinel even though the pre-check saw nothing.
	f.enrollments.insertErr = repository.ErrAlreadyEnrolled

	_, err := f.svc.Create(ctx, student.ID, course.ID)
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("insert-time duplicate must map to conflict, got %v", err)
	}
}

func TestCreateEnrollmentPublishesEvent(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()
	inst := f.seedUser(t, "inst@example.com", model.RoleInstructor)
	student := f.seedUser(t, "stud@example.com", model.RoleStudent)
	course := f.seedCourse(t, "Algebra", inst.ID)

	e, err := f.svc.Create(ctx, student.ID, course.ID)
	if err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if len(f.events.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(f.events.events))
	}
	ev := f.events.events[0]
	if ev.EnrollmentID != e.ID || ev.StudentID != student.ID || ev.CourseID != course.ID {
		t.Fatalf("event ids mismatch: %+v", ev)
	}
	if ev.StudentEmail != student.Email || ev.CourseTitle != course.Title {
		t.Fatalf("event denormalized fields mismatch: %+v", ev)
	}
}

func TestEnrollmentsByStudent(t *testing.T) {
	f := newEnrollmentFixture()
	ctx := context.Background()
	inst := f.seedUser(t, "inst@example.com", model.RoleInstructor)
	student := f.seedUser(t, "stud@example.com", model.RoleStudent)
	c1 := f.seedCourse(t, "Algebra", inst.ID)
	c2 := f.seedCourse(t, "Geometry", inst.ID)

	for _, c := range []*model.Course{c1, c2} {
		if _, err := f.svc.Create(ctx, student.ID, c.ID); err != nil {
			t.Fatalf("enroll into %s: %v", c.Title, err)
		}
	}
	list, err := f.svc.ByStudent(ctx, student.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 enrollments, got %d", len(list))
	}

	// Unknown student: empty result, not an error.
	none, err := f.svc.ByStudent(ctx, 12345)
	if err != nil || len(none) != 0 {
		t.Fatalf("expected empty result for unknown student, got %v %v", none, err)
	}
}
