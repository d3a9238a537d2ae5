package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/course-enrollment/internal/model"
	"github.com/iliyamo/course-enrollment/internal/service"
)

// CourseHandler exposes the course catalog and mutation endpoints.
type CourseHandler struct {
	Courses *service.CourseService
}

func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{Courses: courses}
}

type createCourseReq struct {
	Title        string  `json:"title" validate:"required,min=1"`
	Description  *string `json:"description"`
	InstructorID uint64  `json:"instructor_id" validate:"required"`
	Status       string  `json:"status" validate:"omitempty,oneof=draft published archived"`
}

// updateCourseReq distinguishes an absent description from an
// explicit null: absent leaves the column alone, null clears it.
type updateCourseReq struct {
	Title       *string         `json:"title" validate:"omitempty,min=1"`
	Description model.OptString `json:"description"`
	Status      *string         `json:"status" validate:"omitempty,oneof=draft published archived"`
}

// Create handles POST /v1/courses.
func (h *CourseHandler) Create(c echo.Context) error {
	var req createCourseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	course, err := h.Courses.Create(c.Request().Context(), service.CreateCourseInput{
		Title:        req.Title,
		Description:  req.Description,
		InstructorID: req.InstructorID,
		Status:       req.Status,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toCourseResp(course))
}

// Update handles PATCH /v1/courses/:id with partial-update semantics.
func (h *CourseHandler) Update(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateCourseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	course, err := h.Courses.Update(c.Request().Context(), id, model.CoursePatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toCourseResp(course))
}

// GetByID handles GET /v1/courses/:id.  Any status is visible here,
// including draft and archived; only the catalog list filters.
func (h *CourseHandler) GetByID(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	course, err := h.Courses.ByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if course == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not_found", "entity": "course", "id": id})
	}
	return c.JSON(http.StatusOK, toCourseResp(course))
}

// ListPublished handles GET /v1/courses, the public catalog.
func (h *CourseHandler) ListPublished(c echo.Context) error {
	courses, err := h.Courses.ListPublished(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": toCourseResps(courses)})
}

// ListByInstructor handles GET /v1/instructors/:id/courses and returns
// the instructor's courses in every status.
func (h *CourseHandler) ListByInstructor(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	courses, err := h.Courses.ListByInstructor(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": toCourseResps(courses)})
}

// Delete handles DELETE /v1/courses/:id.  Deletion is soft: the course
// row survives with status archived.
func (h *CourseHandler) Delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Courses.Archive(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
