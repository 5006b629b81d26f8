package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"healthease/internal/auth"
	"healthease/internal/backend"
	"healthease/internal/cache"
	"healthease/internal/config"
	"healthease/internal/handler"
	"healthease/internal/model"
	"healthease/internal/router"
	"healthease/internal/service"
	"healthease/internal/session"
	"healthease/internal/view"
)

type fakeUser struct {
	password string
	user     model.User
}

// fakeBackend stands in for the HealthEase REST backend.
type fakeBackend struct {
	mu           sync.Mutex
	users        map[string]fakeUser
	doctors      []map[string]interface{}
	doctorsDown  bool
	bookStatus   int
	bookMessage  string
	bookings     []model.AppointmentRequest
	bookAuth     []string
	registered   []backend.RegisterRequest
	seedRequests int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		users: map[string]fakeUser{
			"admin@healthease.com": {password: "admin123", user: model.User{ID: 1, Name: "Super Admin", Email: "admin@healthease.com", Role: model.RoleAdmin}},
			"pat@example.com":      {password: "secret", user: model.User{ID: 2, Name: "Pat Doe", Email: "pat@example.com", Role: model.RolePatient}},
		},
	}
}

func (f *fakeBackend) setDoctors(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.doctors = nil
	for i := 1; i <= n; i++ {
		f.doctors = append(f.doctors, map[string]interface{}{
			"id": i, "name": "Dr. Number " + string(rune('A'+i-1)), "specialization": "General", "rating": 4.5, "experience": i,
		})
	}
}

func (f *fakeBackend) bookingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.URL.Path {
	case "/api/auth/login":
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		u, ok := f.users[req.Email]
		if !ok || u.password != req.Password {
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"success": false, "message": "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "token": "tok-" + string(u.user.Role), "user": u.user})
	case "/api/auth/register":
		var req backend.RegisterRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if _, exists := f.users[req.Email]; exists {
			writeJSON(w, http.StatusConflict, map[string]interface{}{"success": false, "message": "Email already exists"})
			return
		}
		f.registered = append(f.registered, req)
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "User registered successfully"})
	case "/api/doctors":
		if f.doctorsDown {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "db down"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"doctors": f.doctors})
	case "/api/appointments":
		var req model.AppointmentRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.bookings = append(f.bookings, req)
		f.bookAuth = append(f.bookAuth, r.Header.Get("Authorization"))
		if f.bookStatus != 0 {
			writeJSON(w, f.bookStatus, map[string]interface{}{"success": false, "message": f.bookMessage})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Appointment booked successfully"})
	case "/api/auth/verify":
		if r.Header.Get("Authorization") != "Bearer tok-patient" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Token is invalid!"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "user": f.users["pat@example.com"].user})
	case "/api/dashboard/stats":
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer tok-") {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Token is missing!"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"upcomingAppointments": 3, "prescriptions": 1, "labReports": 2})
	case "/api/seed_doctors":
		f.seedRequests++
		writeJSON(w, http.StatusOK, map[string]string{"message": "6 new doctors added! Total 6 available."})
	case "/api/seed_admin":
		f.seedRequests++
		writeJSON(w, http.StatusOK, map[string]string{"message": "Admin user already exists!"})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// harness is one browser talking to a fully wired server.
type harness struct {
	t        *testing.T
	e        *echo.Echo
	cache    *cache.Memory
	backend  *fakeBackend
	server   *httptest.Server
	clientID string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	fb := newFakeBackend()
	srv := httptest.NewServer(fb)
	t.Cleanup(srv.Close)

	mem := cache.NewMemory()
	store := session.NewStore(mem, auth.NewTokenService(""), time.Hour)
	api := backend.New(srv.URL+"/api", 2*time.Second)

	authService := service.NewAuthService(api, store)
	catalogService := service.NewCatalogService(api)
	bookingService := service.NewBookingService(api, store)
	dashboardService := service.NewDashboardService(api, store)

	e := echo.New()
	renderer, err := view.NewRenderer()
	require.NoError(t, err)
	e.Renderer = renderer

	router.Register(e, &config.Config{}, router.Handlers{
		Pages:   handler.NewPageHandler(store, catalogService, bookingService, dashboardService),
		Auth:    handler.NewAuthHandler(store, authService, bookingService),
		Admin:   handler.NewAdminHandler(store, authService, bookingService),
		Booking: handler.NewBookingHandler(store, bookingService),
		API:     handler.NewAPIHandler(authService, catalogService, bookingService, dashboardService),
		Seed:    handler.NewSeedHandler(authService, service.NewSeedService(api)),
	})

	return &harness{t: t, e: e, cache: mem, backend: fb, server: srv, clientID: uuid.NewString()}
}

func (h *harness) serve(req *http.Request) *httptest.ResponseRecorder {
	req.AddCookie(&http.Cookie{Name: handler.ClientCookie, Value: h.clientID})
	rec := httptest.NewRecorder()
	h.e.ServeHTTP(rec, req)
	return rec
}

func (h *harness) get(target string) *httptest.ResponseRecorder {
	return h.serve(httptest.NewRequest(http.MethodGet, target, nil))
}

func (h *harness) post(target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return h.serve(req)
}

func (h *harness) postJSON(target string, body interface{}, header http.Header) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	require.NoError(h.t, err)
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(string(payload)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	return h.serve(req)
}

func (h *harness) login(email, password string) *httptest.ResponseRecorder {
	return h.post("/login", url.Values{"email": {email}, "password": {password}, "next": {"/"}})
}

func (h *harness) stored(name string) []byte {
	v, _ := h.cache.Get(context.Background(), "client:"+h.clientID+":"+name)
	return v
}
