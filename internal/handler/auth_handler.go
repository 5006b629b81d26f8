package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"healthease/internal/backend"
	apperrors "healthease/internal/errors"
	"healthease/internal/model"
	"healthease/internal/service"
	"healthease/internal/session"
	"healthease/internal/view"
)

// Alert texts for the sign-in and sign-up forms.
const (
	alertLoginOK         = "Login Successful!"
	alertLoginFailed     = "Login Failed"
	alertBackendDown     = "Server Error: Is the backend running?"
	alertRegistered      = "Account Created! Please Login."
	alertRegisterFailed  = "Registration Failed"
	alertRegisterNetwork = "Registration Failed: Server Error"
)

// AuthHandler handles the login page and the login, sign-up and logout forms.
type AuthHandler struct {
	pages
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(store session.StoreInterface, authService service.AuthService, booking service.BookingService) *AuthHandler {
	return &AuthHandler{
		pages:       pages{store: store, booking: booking},
		authService: authService,
	}
}

// LoginForm is posted by the login tab.
type LoginForm struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
	Next     string `form:"next" json:"-"`
}

// RegisterForm is posted by the sign-up tab.
type RegisterForm struct {
	Name     string     `form:"name" json:"name" validate:"required"`
	Email    string     `form:"email" json:"email" validate:"required,email"`
	Password string     `form:"password" json:"password" validate:"required"`
	Role     model.Role `form:"role" json:"role" validate:"omitempty,oneof=patient admin"`
	Next     string     `form:"next" json:"-"`
}

// LoginPage renders the standalone login page.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return h.render(c, "login.html", "Login", nil)
}

// Login signs the client in. Admins land on the admin panel, the login page
// forwards to the dashboard, and any other page is returned to.
func (h *AuthHandler) Login(c echo.Context) error {
	var form LoginForm
	if err := c.Bind(&form); err != nil {
		h.flash(c, session.FlashError, alertLoginFailed)
		return redirect(c, authSurface(form.Next, view.TabLogin))
	}
	next := localPath(form.Next)

	if err := c.Validate(&form); err != nil {
		h.flash(c, session.FlashError, alertLoginFailed)
		return redirect(c, authSurface(next, view.TabLogin))
	}

	user, err := h.authService.Login(c.Request().Context(), ClientID(c), form.Email, form.Password)
	if err != nil {
		h.flash(c, session.FlashError, loginAlert(err))
		return redirect(c, authSurface(next, view.TabLogin))
	}

	h.flash(c, session.FlashSuccess, alertLoginOK)
	switch {
	case user.IsAdmin():
		return redirect(c, "/admin")
	case next == "/login":
		return redirect(c, "/dashboard")
	default:
		return redirect(c, next)
	}
}

// Register creates an account and switches the form to the login tab. It does
// not sign the user in.
func (h *AuthHandler) Register(c echo.Context) error {
	var form RegisterForm
	if err := c.Bind(&form); err != nil {
		h.flash(c, session.FlashError, alertRegisterFailed)
		return redirect(c, authSurface(form.Next, view.TabSignup))
	}
	next := localPath(form.Next)

	if err := c.Validate(&form); err != nil {
		h.flash(c, session.FlashError, alertRegisterFailed)
		return redirect(c, authSurface(next, view.TabSignup))
	}

	_, err := h.authService.Register(c.Request().Context(), ClientID(c), backend.RegisterRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Role:     form.Role,
	})
	if err != nil {
		h.flash(c, session.FlashError, apperrors.AlertMessage(err, alertRegisterFailed, alertRegisterNetwork))
		return redirect(c, authSurface(next, view.TabSignup))
	}

	h.flash(c, session.FlashSuccess, alertRegistered)
	return redirect(c, authSurface(next, view.TabLogin))
}

// loginAlert prefixes backend refusals with "Error: ".
func loginAlert(err error) string {
	var apiErr *backend.Error
	if errors.As(err, &apiErr) && (apiErr.Kind == backend.KindRejected || apiErr.Kind == backend.KindUnauthorized) {
		return "Error: " + apperrors.AlertMessage(err, alertLoginFailed, "")
	}
	return apperrors.AlertMessage(err, alertLoginFailed, alertBackendDown)
}

// Logout clears the session and returns home.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), ClientID(c)); err != nil {
		return err
	}
	return redirect(c, "/")
}
