package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/course-enrollment/internal/service"
)

// UserHandler exposes user lookup endpoints.  Creation happens
// through the auth register endpoint.
type UserHandler struct {
	Users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

// GetByID handles GET /v1/users/:id.
func (h *UserHandler) GetByID(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	u, err := h.Users.ByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if u == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not_found", "entity": "user", "id": id})
	}
	return c.JSON(http.StatusOK, toUserResp(u))
}

// List handles GET /v1/users and returns every user in creation
// order.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.Users.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	items := make([]userResp, 0, len(users))
	for i := range users {
		items = append(items, toUserResp(&users[i]))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
