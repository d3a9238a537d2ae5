package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/course-enrollment/internal/service"
)

// APIKeyHandler exposes the admin-only API key endpoints.
type APIKeyHandler struct {
	Keys *service.APIKeyService
}

func NewAPIKeyHandler(keys *service.APIKeyService) *APIKeyHandler {
	return &APIKeyHandler{Keys: keys}
}

type createAPIKeyReq struct {
	KeyName   string `json:"key_name" validate:"required,min=1"`
	CreatedBy uint64 `json:"created_by" validate:"required"`
}

// Create handles POST /v1/api-keys.  The response carries the
// plaintext secret once; subsequent listings only expose the digest.
func (h *APIKeyHandler) Create(c echo.Context) error {
	var req createAPIKeyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	k, secret, err := h.Keys.Create(c.Request().Context(), req.KeyName, req.CreatedBy)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"api_key":   toAPIKeyResp(k),
		"plain_key": secret,
	})
}

// List handles GET /v1/api-keys, newest first.
func (h *APIKeyHandler) List(c echo.Context) error {
	keys, err := h.Keys.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	items := make([]apiKeyResp, 0, len(keys))
	for i := range keys {
		items = append(items, toAPIKeyResp(&keys[i]))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Revoke handles POST /v1/api-keys/:id/revoke.  Revoking an already
// revoked key is a conflict, not a no-op.
func (h *APIKeyHandler) Revoke(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	k, err := h.Keys.Revoke(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toAPIKeyResp(k))
}
