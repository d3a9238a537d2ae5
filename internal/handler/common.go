package handler // handler defines the HTTP handlers for the API

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/course-enrollment/internal/apperr"
	"github.com/iliyamo/course-enrollment/internal/model"
)

// respondError translates a service failure into an HTTP response.
// Business failures carry their own status and structured context;
// anything else is a storage or programming error, logged here and
// reported as an opaque 500.
func respondError(c echo.Context, err error) error {
	if e, ok := apperr.As(err); ok {
		body := echo.Map{"error": string(e.Kind), "message": e.Message}
		if e.Entity != "" {
			body["entity"] = e.Entity
		}
		if e.ID != 0 {
			body["id"] = e.ID
		}
		return c.JSON(e.StatusCode(), body)
	}
	log.Printf("handler: %s %s failed: %v", c.Request().Method, c.Path(), err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal"})
}

// parseID reads a numeric path parameter.
func parseID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ----- response DTOs -----
// The model structs carry storage-only fields (password hashes), so
// handlers translate them into explicit response shapes.

type userResp struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResp(u *model.User) userResp {
	return userResp{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type courseResp struct {
	ID           uint64    `json:"id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	InstructorID uint64    `json:"instructor_id"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toCourseResp(c *model.Course) courseResp {
	return courseResp{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		InstructorID: c.InstructorID,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toCourseResps(cs []model.Course) []courseResp {
	out := make([]courseResp, 0, len(cs))
	for i := range cs {
		out = append(out, toCourseResp(&cs[i]))
	}
	return out
}

type enrollmentResp struct {
	ID         uint64    `json:"id"`
	StudentID  uint64    `json:"student_id"`
	CourseID   uint64    `json:"course_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

func toEnrollmentResp(e *model.Enrollment) enrollmentResp {
	return enrollmentResp{ID: e.ID, StudentID: e.StudentID, CourseID: e.CourseID, EnrolledAt: e.EnrolledAt}
}

// apiKeyResp includes the stored key_hash on purpose: the listing
// reproduces the upstream contract as-is.  The plaintext secret only
// ever appears in the creation response.
type apiKeyResp struct {
	ID        uint64     `json:"id"`
	KeyName   string     `json:"key_name"`
	KeyHash   string     `json:"key_hash"`
	CreatedBy uint64     `json:"created_by"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	RevokedAt *time.Time `json:"revoked_at"`
}

func toAPIKeyResp(k *model.APIKey) apiKeyResp {
	return apiKeyResp{
		ID:        k.ID,
		KeyName:   k.KeyName,
		KeyHash:   k.KeyHash,
		CreatedBy: k.CreatedBy,
		Status:    k.Status,
		CreatedAt: k.CreatedAt,
		RevokedAt: k.RevokedAt,
	}
}
