package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthease/internal/errors"
	"healthease/internal/handler"
	"healthease/internal/model"
	"healthease/internal/service"
)

func decode(t *testing.T, body []byte, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body, v))
}

func TestAPISessionLifecycle(t *testing.T) {
	h := newHarness(t)

	var sess handler.SessionResponse
	decode(t, h.get("/api/v1/session").Body.Bytes(), &sess)
	assert.False(t, sess.LoggedIn)

	rec := h.postJSON("/api/v1/auth/login", map[string]string{"email": "admin@healthease.com", "password": "admin123"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var login handler.LoginResponse
	decode(t, rec.Body.Bytes(), &login)
	assert.Equal(t, model.RoleAdmin, login.Role)

	decode(t, h.get("/api/v1/session").Body.Bytes(), &sess)
	assert.True(t, sess.LoggedIn)
	assert.Equal(t, "Super Admin", sess.User.Name)

	rec = h.postJSON("/api/v1/auth/logout", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, h.stored("token"))
}

func TestAPISessionWithBearer(t *testing.T) {
	h := newHarness(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	req.Header.Set("Authorization", "Bearer tok-patient")
	var sess handler.SessionResponse
	decode(t, h.serve(req).Body.Bytes(), &sess)
	assert.True(t, sess.LoggedIn)
	assert.Equal(t, "Pat Doe", sess.User.Name)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	req.Header.Set("Authorization", "Bearer stale")
	assert.Equal(t, http.StatusUnauthorized, h.serve(req).Code)
}

func TestAPILoginErrors(t *testing.T) {
	h := newHarness(t)

	rec := h.postJSON("/api/v1/auth/login", map[string]string{"email": "pat@example.com", "password": "nope"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var resp errors.ErrorResponse
	decode(t, rec.Body.Bytes(), &resp)
	assert.Equal(t, "UNAUTHORIZED", resp.Code)
	assert.Equal(t, "Invalid credentials", resp.Error)

	rec = h.postJSON("/api/v1/auth/login", map[string]string{"email": "pat@example.com"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	decode(t, rec.Body.Bytes(), &resp)
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
}

func TestAPIRegisterConflict(t *testing.T) {
	h := newHarness(t)

	rec := h.postJSON("/api/v1/auth/register", map[string]string{"name": "Pat", "email": "pat@example.com", "password": "pw"}, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	var resp errors.ErrorResponse
	decode(t, rec.Body.Bytes(), &resp)
	assert.Equal(t, "BACKEND_REJECTED", resp.Code)
	assert.Equal(t, "Email already exists", resp.Error)
}

func TestAPIDoctors(t *testing.T) {
	h := newHarness(t)
	h.backend.setDoctors(4)

	var all, featured handler.DoctorsResponse
	decode(t, h.get("/api/v1/doctors").Body.Bytes(), &all)
	decode(t, h.get("/api/v1/doctors/featured").Body.Bytes(), &featured)

	assert.Len(t, all.Doctors, 4)
	assert.Len(t, featured.Doctors, 3)
	assert.Equal(t, all.Doctors[:3], featured.Doctors)
}

func TestAPIAppointments(t *testing.T) {
	h := newHarness(t)
	req := model.AppointmentRequest{DoctorID: "1", Date: "2026-11-02", Time: "09:00"}

	rec := h.postJSON("/api/v1/appointments", req, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var resp errors.ErrorResponse
	decode(t, rec.Body.Bytes(), &resp)
	assert.Equal(t, "NO_SESSION", resp.Code)

	rec = h.postJSON("/api/v1/appointments", req, http.Header{"Authorization": {"Bearer external-token"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, h.backend.bookingCount())
	assert.Equal(t, "Bearer external-token", h.backend.bookAuth[0])

	rec = h.postJSON("/api/v1/appointments", model.AppointmentRequest{}, http.Header{"Authorization": {"Bearer external-token"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	decode(t, rec.Body.Bytes(), &resp)
	assert.Equal(t, "DOCTOR_REQUIRED", resp.Code)
	assert.Equal(t, 1, h.backend.bookingCount())
}

func TestAPIDashboardStats(t *testing.T) {
	h := newHarness(t)
	h.login("pat@example.com", "secret")

	var stats model.DashboardStats
	decode(t, h.get("/api/v1/dashboard/stats").Body.Bytes(), &stats)

	assert.Equal(t, 3, stats.UpcomingAppointments)
	assert.Equal(t, 2, stats.LabReports)
}

func TestAPISeedRequiresAdmin(t *testing.T) {
	h := newHarness(t)

	rec := h.postJSON("/api/v1/admin/seed", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	h.login("pat@example.com", "secret")
	rec = h.postJSON("/api/v1/admin/seed", nil, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, h.backend.seedRequests)

	h.login("admin@healthease.com", "admin123")
	rec = h.postJSON("/api/v1/admin/seed", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var result service.SeedResult
	decode(t, rec.Body.Bytes(), &result)
	assert.Equal(t, "Admin user already exists!", result.Admin)
	assert.Equal(t, 2, h.backend.seedRequests)
}
