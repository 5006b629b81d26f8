package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "healthease/internal/errors"
	"healthease/internal/service"
	"healthease/internal/session"
	"healthease/internal/view"
)

const (
	alertAdminLoginOK      = "Admin Login Successful!"
	alertAdminBadLogin     = "Invalid credentials"
	alertAdminLoginNetwork = "Network error while trying to login."
)

// AdminHandler serves the admin login page and the admin panel.
type AdminHandler struct {
	pages
	authService service.AuthService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(store session.StoreInterface, authService service.AuthService, booking service.BookingService) *AdminHandler {
	return &AdminHandler{
		pages:       pages{store: store, booking: booking},
		authService: authService,
	}
}

// LoginPage renders the admin login form, or forwards a signed-in admin to the panel.
func (h *AdminHandler) LoginPage(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	if sess != nil && sess.User.IsAdmin() {
		return redirect(c, "/admin")
	}
	return h.render(c, "admin_login.html", "Admin Login", nil)
}

// Login signs in an admin. Any other role is denied and nothing is stored.
func (h *AdminHandler) Login(c echo.Context) error {
	var form LoginForm
	if err := c.Bind(&form); err != nil {
		h.flash(c, session.FlashError, alertAdminBadLogin)
		return redirect(c, "/admin/login")
	}
	if err := c.Validate(&form); err != nil {
		h.flash(c, session.FlashError, alertAdminBadLogin)
		return redirect(c, "/admin/login")
	}

	if _, err := h.authService.AdminLogin(c.Request().Context(), ClientID(c), form.Email, form.Password); err != nil {
		h.flash(c, session.FlashError, apperrors.AlertMessage(err, alertAdminBadLogin, alertAdminLoginNetwork))
		return redirect(c, "/admin/login")
	}

	h.flash(c, session.FlashSuccess, alertAdminLoginOK)
	return redirect(c, "/admin")
}

// Panel renders the admin panel. Non-admins are sent home.
func (h *AdminHandler) Panel(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	if sess == nil || !sess.User.IsAdmin() {
		return redirect(c, "/")
	}
	return h.render(c, "admin_panel.html", "Admin Panel", view.AdminData{Name: sess.User.Name})
}

// Logout clears the session and returns to the admin login page.
func (h *AdminHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), ClientID(c)); err != nil {
		return err
	}
	return redirect(c, "/admin/login")
}
