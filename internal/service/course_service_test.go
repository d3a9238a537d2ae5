package service

import (
	"context"
	"testing"

	"github.com/iliyamo/course-enrollment/internal/apperr"
	"github.com/iliyamo/course-enrollment/internal/model"
)

type courseFixture struct {
	clock   *memClock
	users   *memUserStore
	courses *memCourseStore
	svc     *CourseService
}

func newCourseFixture() *courseFixture {
	clock := newMemClock()
	users := newMemUserStore(clock)
	courses := newMemCourseStore(clock)
	svc := NewCourseService(courses, users)
	svc.now = clock.Now
	return &courseFixture{clock: clock, users: users, courses: courses, svc: svc}
}

func (f *courseFixture) seedUser(t *testing.T, email, role string) *model.User {
	t.Helper()
	u := &model.User{Email: email, PasswordHash: "x", FirstName: "F", LastName: "L", Role: role}
	if err := f.users.Insert(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func strptr(s string) *string { return &s }

func TestCreateCourseInstructorChecks(t *testing.T) {
	f := newCourseFixture()
	ctx := context.Background()
	student := f.seedUser(t, "stud@example.com", model.RoleStudent)
	instructor := f.seedUser(t, "inst@example.com", model.RoleInstructor)
	admin := f.seedUser(t, "adm@example.com", model.RoleAdmin)

	// Unknown instructor id.
	_, err := f.svc.Create(ctx, CreateCourseInput{Title: "Go 101", InstructorID: 999})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not_found for unknown user, got %v", err)
	}
	e, _ := apperr.As(err)
	if e.ID != 999 {
		t.Fatalf("not_found must carry the id, got %d", e.ID)
	}

	// Existing user but student role.
	_, err = f.svc.Create(ctx, CreateCourseInput{Title: "Go 101", InstructorID: student.ID})
	if apperr.KindOf(err) != apperr.KindForbidden {
		t.Fatalf("expected forbidden for student instructor, got %v", err)
	}

	// Instructor and admin both succeed.
	for _, u := range []*model.User{instructor, admin} {
		c, err := f.svc.Create(ctx, CreateCourseInput{Title: "Go 101", InstructorID: u.ID})
		if err != nil {
			t.Fatalf("create by %s: %v", u.Role, err)
		}
		if c.Status != model.CourseDraft {
			t.Fatalf("status must default to draft, got %q", c.Status)
		}
	}
}

func TestCatalogOnlyPublished(t *testing.T) {
	f := newCourseFixture()
	ctx := context.Background()
	inst := f.seedUser(t, "inst@example.com", model.RoleInstructor)

	statuses := []string{model.CourseDraft, model.CoursePublished, model.CourseArchived, model.CoursePublished}
	for i, st := range statuses {
		if _, err := f.svc.Create(ctx, CreateCourseInput{Title: "C", InstructorID: inst.ID, Status: st}); err != nil {
			t.Fatalf("seed course %d: %v", i, err)
		}
	}
	catalog, err := f.svc.ListPublished(ctx)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if len(catalog) != 2 {
		t.Fatalf("expected 2 published courses, got %d", len(catalog))
	}
	for _, c := range catalog {
		if c.Status != model.CoursePublished {
			t.Fatalf("catalog leaked status %q", c.Status)
		}
	}

	// All statuses are visible through the instructor view.
	mine, err := f.svc.ListByInstructor(ctx, inst.ID)
	if err != nil {
		t.Fatalf("by instructor: %v", err)
	}
	if len(mine) != len(statuses) {
		t.Fatalf("expected %d courses for instructor, got %d", len(statuses), len(mine))
	}

	// Unknown instructor is an empty result, not an error.
	none, err := f.svc.ListByInstructor(ctx, 777)
	if err != nil || len(none) != 0 {
		t.Fatalf("expected empty result for unknown instructor, got %v %v", none, err)
	}
}

func TestUpdateCoursePartial(t *testing.T) {
	f := newCourseFixture()
	ctx := context.Background()
	inst := f.seedUser(t, "inst@example.com", model.RoleInstructor)

	created, err := f.svc.Create(ctx, CreateCourseInput{
		Title: "Original", Description: strptr("about things"), InstructorID: inst.ID, Status: model.CoursePublished,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Title only: description stays.
	c, err := f.svc.Update(ctx, created.ID, model.CoursePatch{Title: strptr("Renamed")})
	if err != nil {
		t.Fatalf("update title: %v", err)
	}
	if c.Title != "Renamed" || c.Description == nil || *c.Description != "about things" {
		t.Fatalf("partial update touched unrelated fields: %+v", c)
	}

	// Explicit null clears the description.
	c, err = f.svc.Update(ctx, created.ID, model.CoursePatch{Description: model.OptString{Set: true, Value: nil}})
	if err != nil {
		t.Fatalf("clear description: %v", err)
	}
	if c.Description != nil {
		t.Fatalf("description must be cleared, got %q", *c.Description)
	}
	if c.Title != "Renamed" {
		t.Fatal("clearing description must not touch the title")
	}

	// Unknown id.
	if _, err := f.svc.Update(ctx, 999, model.CoursePatch{}); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not_found for unknown course, got %v", err)
	}
}

func TestUpdateCourseEmptyPatchBumpsTimestamp(t *testing.T) {
	f := newCourseFixture()
	ctx := context.Background()
	inst := f.seedUser(t, "inst@example.com", model.RoleInstructor)

	created, err := f.svc.Create(ctx, CreateCourseInput{
		Title: "Stable", Description: strptr("desc"), InstructorID: inst.ID, Status: model.CoursePublished,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	before := *created
	c, err := f.svc.Update(ctx, created.ID, model.CoursePatch{})
	if err != nil {
		t.Fatalf("empty update: %v", err)
	}
	if !c.UpdatedAt.After(before.UpdatedAt) {
		t.Fatal("empty update must still advance updated_at")
	}
	if c.Title != before.Title || c.Status != before.Status || c.InstructorID != before.InstructorID {
		t.Fatal("empty update must leave visible fields untouched")
	}
	if c.Description == nil || *c.Description != *before.Description {
		t.Fatal("empty update must leave the description untouched")
	}
}

func TestArchiveCourse(t *testing.T) {
	f := newCourseFixture()
	ctx := context.Background()
	inst := f.seedUser(t, "inst@example.com", model.RoleInstructor)

	created, err := f.svc.Create(ctx, CreateCourseInput{Title: "Doomed", InstructorID: inst.ID, Status: model.CoursePublished})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := f.svc.Archive(ctx, created.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}
	first, _ := f.svc.ByID(ctx, created.ID)
	if first.Status != model.CourseArchived {
		t.Fatalf("expected archived, got %q", first.Status)
	}

	// Archiving again is a no-op success that still bumps updated_at.
	if err := f.svc.Archive(ctx, created.ID); err != nil {
		t.Fatalf("second archive must succeed: %v", err)
	}
	second, _ := f.svc.ByID(ctx, created.ID)
	if second.Status != model.CourseArchived {
		t.Fatalf("expected archived, got %q", second.Status)
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Fatal("second archive must still advance updated_at")
	}

	// Unknown id.
	if err := f.svc.Archive(ctx, 999); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestGetCourseByIDAbsent(t *testing.T) {
	f := newCourseFixture()

	c, err := f.svc.ByID(context.Background(), 404)
	if err != nil {
		t.Fatalf("lookup must not error on absence: %v", err)
	}
	if c != nil {
		t.Fatal("expected nil for unknown id")
	}
}
