package handler

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"healthease/internal/backend"
	"healthease/internal/errors"
	"healthease/internal/model"
	"healthease/internal/service"
)

// APIHandler exposes the client flows as JSON under /api/v1.
type APIHandler struct {
	authService      service.AuthService
	catalogService   service.CatalogService
	bookingService   service.BookingService
	dashboardService service.DashboardService
}

// NewAPIHandler creates a new JSON API handler.
func NewAPIHandler(
	authService service.AuthService,
	catalogService service.CatalogService,
	bookingService service.BookingService,
	dashboardService service.DashboardService,
) *APIHandler {
	return &APIHandler{
		authService:      authService,
		catalogService:   catalogService,
		bookingService:   bookingService,
		dashboardService: dashboardService,
	}
}

// SessionResponse describes the caller's sign-in state.
type SessionResponse struct {
	LoggedIn bool        `json:"loggedIn"`
	User     *model.User `json:"user,omitempty"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Role model.Role  `json:"role"`
	User *model.User `json:"user"`
}

// MessageResponse carries the backend's message.
type MessageResponse struct {
	Message string `json:"message"`
}

// DoctorsResponse wraps a doctor list the way the backend does.
type DoctorsResponse struct {
	Doctors []model.Doctor `json:"doctors"`
}

func apiError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func invalidRequest(code, message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// bearerToken returns the caller's own token: the one verified by the JWT
// middleware if it ran, otherwise the raw Authorization header.
func bearerToken(c echo.Context) string {
	if token, ok := c.Get("user").(*jwt.Token); ok {
		return token.Raw
	}
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// Session godoc
// @Summary Current session
// @Description With a bearer token the backend resolves its owner; otherwise the cookie session is read.
// @Tags session
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /session [get]
func (h *APIHandler) Session(c echo.Context) error {
	if token := bearerToken(c); token != "" {
		user, err := h.authService.VerifyToken(c.Request().Context(), token)
		if err != nil {
			return apiError(err)
		}
		return c.JSON(http.StatusOK, SessionResponse{LoggedIn: true, User: user})
	}

	sess, err := h.authService.Current(c.Request().Context(), ClientID(c))
	if err != nil {
		return apiError(err)
	}
	if sess == nil {
		return c.JSON(http.StatusOK, SessionResponse{})
	}
	return c.JSON(http.StatusOK, SessionResponse{LoggedIn: true, User: &sess.User})
}

// Login godoc
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginForm true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *APIHandler) Login(c echo.Context) error {
	var req LoginForm
	if err := c.Bind(&req); err != nil {
		return invalidRequest("INVALID_REQUEST", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return invalidRequest("VALIDATION_ERROR", err.Error())
	}

	user, err := h.authService.Login(c.Request().Context(), ClientID(c), req.Email, req.Password)
	if err != nil {
		return apiError(err)
	}
	return c.JSON(http.StatusOK, LoginResponse{Role: user.Role, User: user})
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterForm true "Registration data"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *APIHandler) Register(c echo.Context) error {
	var req RegisterForm
	if err := c.Bind(&req); err != nil {
		return invalidRequest("INVALID_REQUEST", "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return invalidRequest("VALIDATION_ERROR", err.Error())
	}

	msg, err := h.authService.Register(c.Request().Context(), ClientID(c), backend.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return apiError(err)
	}
	return c.JSON(http.StatusCreated, MessageResponse{Message: msg})
}

// Logout godoc
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *APIHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), ClientID(c)); err != nil {
		return apiError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "logged out successfully"})
}

// Doctors godoc
// @Summary List doctors
// @Tags doctors
// @Produce json
// @Success 200 {object} DoctorsResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /doctors [get]
func (h *APIHandler) Doctors(c echo.Context) error {
	doctors, err := h.catalogService.Doctors(c.Request().Context())
	if err != nil {
		return apiError(err)
	}
	return c.JSON(http.StatusOK, DoctorsResponse{Doctors: doctors})
}

// FeaturedDoctors godoc
// @Summary Featured doctors
// @Description The first three doctors of the catalog.
// @Tags doctors
// @Produce json
// @Success 200 {object} DoctorsResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /doctors/featured [get]
func (h *APIHandler) FeaturedDoctors(c echo.Context) error {
	doctors, err := h.catalogService.Featured(c.Request().Context())
	if err != nil {
		return apiError(err)
	}
	return c.JSON(http.StatusOK, DoctorsResponse{Doctors: doctors})
}

// BookAppointment godoc
// @Summary Book an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AppointmentRequest true "Appointment data"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /appointments [post]
func (h *APIHandler) BookAppointment(c echo.Context) error {
	var req model.AppointmentRequest
	if err := c.Bind(&req); err != nil {
		return invalidRequest("INVALID_REQUEST", "invalid request body")
	}

	ctx := c.Request().Context()
	var (
		msg string
		err error
	)
	if token := bearerToken(c); token != "" {
		msg, err = h.bookingService.SubmitWithToken(ctx, token, req)
	} else {
		msg, err = h.bookingService.Submit(ctx, ClientID(c), req)
	}
	if err != nil {
		return apiError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: msg})
}

// DashboardStats godoc
// @Summary Dashboard counters
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DashboardStats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /dashboard/stats [get]
func (h *APIHandler) DashboardStats(c echo.Context) error {
	ctx := c.Request().Context()
	var (
		stats *model.DashboardStats
		err   error
	)
	if token := bearerToken(c); token != "" {
		stats, err = h.dashboardService.StatsWithToken(ctx, token)
	} else {
		stats, err = h.dashboardService.Stats(ctx, ClientID(c))
	}
	if err != nil {
		return apiError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
