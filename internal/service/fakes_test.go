package service

// In-memory store fakes backing the service tests.  A shared stepping
// clock hands out strictly increasing timestamps so assertions about
// advancing updated_at and newest-first ordering are deterministic.

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/iliyamo/course-enrollment/internal/model"
	"github.com/iliyamo/course-enrollment/internal/queue"
	"github.com/iliyamo/course-enrollment/internal/repository"
)

type memClock struct {
	mu sync.Mutex
	t  time.Time
}

func newMemClock() *memClock {
	return &memClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *memClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

// ---- users ----

type memUserStore struct {
	clock  *memClock
	users  []model.User
	nextID uint64
}

func newMemUserStore(clock *memClock) *memUserStore {
	return &memUserStore{clock: clock, nextID: 1}
}

func (s *memUserStore) Insert(ctx context.Context, u *model.User) error {
	for _, ex := range s.users {
		if ex.Email == u.Email {
			return repository.ErrEmailExists
		}
	}
	u.ID = s.nextID
	s.nextID++
	now := s.clock.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users = append(s.users, *u)
	return nil
}

func (s *memUserStore) ByID(ctx context.Context, id uint64) (*model.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memUserStore) ByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memUserStore) All(ctx context.Context) ([]model.User, error) {
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// ---- courses ----

type memCourseStore struct {
	clock   *memClock
	courses []model.Course
	nextID  uint64
}

func newMemCourseStore(clock *memClock) *memCourseStore {
	return &memCourseStore{clock: clock, nextID: 1}
}

func (s *memCourseStore) Insert(ctx context.Context, c *model.Course) error {
	c.ID = s.nextID
	s.nextID++
	now := s.clock.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	s.courses = append(s.courses, *c)
	return nil
}

func (s *memCourseStore) find(id uint64) *model.Course {
	for i := range s.courses {
		if s.courses[i].ID == id {
			return &s.courses[i]
		}
	}
	return nil
}

func (s *memCourseStore) ByID(ctx context.Context, id uint64) (*model.Course, error) {
	if c := s.find(id); c != nil {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (s *memCourseStore) Published(ctx context.Context) ([]model.Course, error) {
	var out []model.Course
	for _, c := range s.courses {
		if c.Status == model.CoursePublished {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memCourseStore) ByInstructor(ctx context.Context, instructorID uint64) ([]model.Course, error) {
	var out []model.Course
	for _, c := range s.courses {
		if c.InstructorID == instructorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memCourseStore) UpdateFields(ctx context.Context, id uint64, patch model.CoursePatch, now time.Time) (*model.Course, error) {
	c := s.find(id)
	if c == nil {
		return nil, nil
	}
	if patch.Title != nil {
		c.Title = *patch.Title
	}
	if patch.Description.Set {
		c.Description = patch.Description.Value
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	c.UpdatedAt = now
	cp := *c
	return &cp, nil
}

func (s *memCourseStore) Archive(ctx context.Context, id uint64, now time.Time) error {
	if c := s.find(id); c != nil {
		c.Status = model.CourseArchived
		c.UpdatedAt = now
	}
	return nil
}

// ---- enrollments ----

type memEnrollmentStore struct {
	clock       *memClock
	enrollments []model.Enrollment
	nextID      uint64
	insertErr   error // forced Insert failure, for race simulation
}

func newMemEnrollmentStore(clock *memClock) *memEnrollmentStore {
	return &memEnrollmentStore{clock: clock, nextID: 1}
}

func (s *memEnrollmentStore) Insert(ctx context.Context, e *model.Enrollment) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	for _, ex := range s.enrollments {
		if ex.StudentID == e.StudentID && ex.CourseID == e.CourseID {
			return repository.ErrAlreadyEnrolled
		}
	}
	e.ID = s.nextID
	s.nextID++
	e.EnrolledAt = s.clock.Now()
	s.enrollments = append(s.enrollments, *e)
	return nil
}

func (s *memEnrollmentStore) ByStudentAndCourse(ctx context.Context, studentID, courseID uint64) (*model.Enrollment, error) {
	for _, e := range s.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			cp := e
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memEnrollmentStore) ByStudent(ctx context.Context, studentID uint64) ([]model.Enrollment, error) {
	var out []model.Enrollment
	for _, e := range s.enrollments {
		if e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out, nil
}

// ---- api keys ----

type memAPIKeyStore struct {
	clock  *memClock
	keys   []model.APIKey
	nextID uint64
}

func newMemAPIKeyStore(clock *memClock) *memAPIKeyStore {
	return &memAPIKeyStore{clock: clock, nextID: 1}
}

func (s *memAPIKeyStore) Insert(ctx context.Context, k *model.APIKey) error {
	for _, ex := range s.keys {
		if ex.KeyHash == k.KeyHash {
			return repository.ErrKeyHashExists
		}
	}
	k.ID = s.nextID
	s.nextID++
	k.CreatedAt = s.clock.Now()
	s.keys = append(s.keys, *k)
	return nil
}

func (s *memAPIKeyStore) ByID(ctx context.Context, id uint64) (*model.APIKey, error) {
	for _, k := range s.keys {
		if k.ID == id {
			cp := k
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memAPIKeyStore) All(ctx context.Context) ([]model.APIKey, error) {
	out := make([]model.APIKey, len(s.keys))
	copy(out, s.keys)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memAPIKeyStore) MarkRevoked(ctx context.Context, id uint64, now time.Time) (*model.APIKey, error) {
	for i := range s.keys {
		if s.keys[i].ID == id {
			if s.keys[i].Status == model.APIKeyActive {
				s.keys[i].Status = model.APIKeyRevoked
				t := now
				s.keys[i].RevokedAt = &t
			}
			cp := s.keys[i]
			return &cp, nil
		}
	}
	return nil, nil
}

// ---- events ----

type capturePublisher struct {
	events []queue.EnrollmentRegisteredEvent
}

func (p *capturePublisher) PublishEnrollmentRegistered(ctx context.Context, ev queue.EnrollmentRegisteredEvent) error {
	p.events = append(p.events, ev)
	return nil
}
