package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthease/internal/handler"
)

func TestClientCookie(t *testing.T) {
	h := newHarness(t)

	rec := httptest.NewRecorder()
	h.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, handler.ClientCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	rec = h.get("/healthz")
	assert.Empty(t, rec.Result().Cookies())
}

func TestAdminLinkFollowsRole(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		h := newHarness(t)

		rec := h.post("/admin/login", url.Values{"email": {"admin@healthease.com"}, "password": {"admin123"}})
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin", rec.Header().Get("Location"))

		body := h.get("/").Body.String()
		assert.Contains(t, body, `id="adminLink"`)
		assert.Contains(t, body, "Admin Login Successful!")
		assert.Contains(t, body, "Hi, Super")
	})

	t.Run("patient", func(t *testing.T) {
		h := newHarness(t)

		rec := h.login("pat@example.com", "secret")
		assert.Equal(t, "/", rec.Header().Get("Location"))

		body := h.get("/").Body.String()
		assert.NotContains(t, body, `id="adminLink"`)
		assert.Contains(t, body, "Login Successful!")
		assert.Contains(t, body, "Hi, Pat")
	})

	t.Run("signed out", func(t *testing.T) {
		h := newHarness(t)

		body := h.get("/").Body.String()
		assert.NotContains(t, body, `id="adminLink"`)
		assert.Contains(t, body, "Login / Sign Up")
	})
}

func TestAdminLoginDeniesOtherRoles(t *testing.T) {
	h := newHarness(t)

	rec := h.post("/admin/login", url.Values{"email": {"pat@example.com"}, "password": {"secret"}})

	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
	assert.Empty(t, h.stored("token"))
	assert.Empty(t, h.stored("user"))
	assert.Contains(t, h.get("/admin/login").Body.String(), "Access Denied: You are not an Admin.")
}

func TestAdminLoginAlerts(t *testing.T) {
	h := newHarness(t)

	h.post("/admin/login", url.Values{"email": {"admin@healthease.com"}, "password": {"wrong"}})
	assert.Contains(t, h.get("/admin/login").Body.String(), "Invalid credentials")

	h.server.Close()
	h.post("/admin/login", url.Values{"email": {"admin@healthease.com"}, "password": {"admin123"}})
	assert.Contains(t, h.get("/admin/login").Body.String(), "Network error while trying to login.")
	assert.Empty(t, h.stored("token"))
}

func TestAdminPanelGuard(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "/", h.get("/admin").Header().Get("Location"))

	h.login("pat@example.com", "secret")
	assert.Equal(t, "/", h.get("/admin").Header().Get("Location"))

	h.post("/admin/login", url.Values{"email": {"admin@healthease.com"}, "password": {"admin123"}})
	rec := h.get("/admin?sidebar=open")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<span id="adminNameDisplay">Super Admin</span>`)
	assert.Contains(t, rec.Body.String(), `class="sidebar active"`)

	rec = h.post("/admin/logout", nil)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
	assert.Empty(t, h.stored("token"))
}

func TestDoctorGrids(t *testing.T) {
	t.Run("empty catalog", func(t *testing.T) {
		h := newHarness(t)

		assert.Contains(t, h.get("/doctors").Body.String(), "No doctors found.")
		assert.Contains(t, h.get("/").Body.String(), "No featured doctors available.")
	})

	t.Run("featured shows the first three", func(t *testing.T) {
		h := newHarness(t)
		h.backend.setDoctors(5)

		home := h.get("/").Body.String()
		assert.Equal(t, 3, strings.Count(home, `class="featured-doctor"`))
		assert.Contains(t, home, "Dr. Number A")
		assert.Contains(t, home, "Dr. Number C")
		assert.NotContains(t, home, "Dr. Number D")

		doctors := h.get("/doctors").Body.String()
		assert.Equal(t, 5, strings.Count(doctors, `class="doctor-card"`))
		assert.Contains(t, doctors, "https://ui-avatars.com/api/?name=Dr.")
	})

	t.Run("backend down", func(t *testing.T) {
		h := newHarness(t)
		h.backend.doctorsDown = true

		assert.Contains(t, h.get("/doctors").Body.String(), "Failed to load doctors.")
		assert.Contains(t, h.get("/").Body.String(), "Backend not connected.")
	})
}

func TestBookingModalNeedsSession(t *testing.T) {
	h := newHarness(t)
	h.backend.setDoctors(2)

	rec := h.get("/book?doctor=2")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/doctors?modal=auth&tab=login", rec.Header().Get("Location"))

	body := h.get("/doctors?modal=booking&doctor=2").Body.String()
	assert.NotContains(t, body, `id="appointmentModal"`)
	assert.Contains(t, body, `id="authModal" class="modal open"`)

	h.login("pat@example.com", "secret")

	rec = h.get("/book?doctor=2")
	assert.Equal(t, "/doctors?doctor=2&modal=booking", rec.Header().Get("Location"))

	body = h.get("/doctors?doctor=2&modal=booking").Body.String()
	assert.Contains(t, body, `id="appointmentModal" class="modal open"`)
	assert.Contains(t, body, `<option value="2" selected>Dr. Number B (General)</option>`)
	assert.NotContains(t, body, `id="authModal"`)
}

func TestDashboard(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "/login", h.get("/dashboard").Header().Get("Location"))

	rec := h.post("/login", url.Values{"email": {"pat@example.com"}, "password": {"secret"}, "next": {"/login"}})
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	rec = h.get("/dashboard")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome back, Pat")
	assert.Contains(t, rec.Body.String(), "<h3>3</h3><p>Upcoming Appointments</p>")
}
