package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/course-enrollment/internal/service"
)

// EnrollmentHandler exposes enrollment creation and per-student
// listing.
type EnrollmentHandler struct {
	Enrollments *service.EnrollmentService
}

func NewEnrollmentHandler(enrollments *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{Enrollments: enrollments}
}

type createEnrollmentReq struct {
	StudentID uint64 `json:"student_id" validate:"required"`
	CourseID  uint64 `json:"course_id" validate:"required"`
}

// Create handles POST /v1/enrollments.
func (h *EnrollmentHandler) Create(c echo.Context) error {
	var req createEnrollmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	e, err := h.Enrollments.Create(c.Request().Context(), req.StudentID, req.CourseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toEnrollmentResp(e))
}

// ByStudent handles GET /v1/students/:id/enrollments.
func (h *EnrollmentHandler) ByStudent(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	es, err := h.Enrollments.ByStudent(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]enrollmentResp, 0, len(es))
	for i := range es {
		items = append(items, toEnrollmentResp(&es[i]))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
