package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"healthease/internal/errors"
	"healthease/internal/service"
)

// SeedHandler lets a signed-in admin seed the backend's demo data.
type SeedHandler struct {
	authService service.AuthService
	seedService service.SeedService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(authService service.AuthService, seedService service.SeedService) *SeedHandler {
	return &SeedHandler{authService: authService, seedService: seedService}
}

// Seed godoc
// @Summary Seed demo doctors and the default admin
// @Tags admin
// @Produce json
// @Success 200 {object} service.SeedResult
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /admin/seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	sess, err := h.authService.Current(c.Request().Context(), ClientID(c))
	if err != nil {
		return apiError(err)
	}
	if sess == nil {
		return apiError(errors.ErrNoSession)
	}
	if !sess.User.IsAdmin() {
		return apiError(errors.ErrNotAdmin)
	}

	result, err := h.seedService.Seed(c.Request().Context())
	if err != nil {
		return apiError(err)
	}
	return c.JSON(http.StatusOK, result)
}
