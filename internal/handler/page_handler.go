package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	apperrors "healthease/internal/errors"
	"healthease/internal/service"
	"healthease/internal/session"
	"healthease/internal/view"
)

const dashboardStatsFailed = "Could not load your stats."

// PageHandler serves the public pages and the patient dashboard.
type PageHandler struct {
	pages
	catalog   service.CatalogService
	dashboard service.DashboardService
}

// NewPageHandler creates a new page handler.
func NewPageHandler(
	store session.StoreInterface,
	catalog service.CatalogService,
	booking service.BookingService,
	dashboard service.DashboardService,
) *PageHandler {
	return &PageHandler{
		pages:     pages{store: store, booking: booking},
		catalog:   catalog,
		dashboard: dashboard,
	}
}

// Home renders the landing page with the feature list and featured doctors.
func (h *PageHandler) Home(c echo.Context) error {
	featured, err := h.catalog.Featured(c.Request().Context())
	if err != nil {
		c.Logger().Warnf("load featured doctors: %v", err)
	}
	return h.render(c, "home.html", "Home", view.HomeData{
		Features: view.Features,
		Featured: view.NewGrid(featured, err != nil, view.NoFeaturedText, view.FeaturedFailedText),
	})
}

// Features renders the static feature list.
func (h *PageHandler) Features(c echo.Context) error {
	return h.render(c, "features.html", "Features", view.Features)
}

// Doctors renders the full doctor grid.
func (h *PageHandler) Doctors(c echo.Context) error {
	doctors, err := h.catalog.Doctors(c.Request().Context())
	if err != nil {
		c.Logger().Warnf("load doctors: %v", err)
	}
	return h.render(c, "doctors.html", "Doctors", view.DoctorsData{
		Grid: view.NewGrid(doctors, err != nil, view.NoDoctorsText, view.DoctorsFailedText),
	})
}

// Book is the target of a doctor card's Book button. Signed-in clients get the
// booking modal with the doctor preselected; others get the login surface.
func (h *PageHandler) Book(c echo.Context) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	from := c.QueryParam("from")
	if from == "" {
		from = "/doctors"
	}
	if sess == nil {
		return redirect(c, authSurface(from, view.TabLogin))
	}
	return redirect(c, view.WithQuery(localPath(from), "modal", "booking", "doctor", c.QueryParam("doctor")))
}

// Dashboard renders the signed-in patient's counters.
func (h *PageHandler) Dashboard(c echo.Context) error {
	stats, err := h.dashboard.Stats(c.Request().Context(), ClientID(c))
	switch {
	case errors.Is(err, apperrors.ErrNoSession):
		return redirect(c, "/login")
	case errors.Is(err, apperrors.ErrSessionExpired):
		h.flash(c, session.FlashError, apperrors.AlertSessionExpired)
		return redirect(c, "/login")
	case err != nil:
		c.Logger().Warnf("load dashboard stats: %v", err)
		return h.render(c, "dashboard.html", "Dashboard", view.DashboardData{Message: dashboardStatsFailed})
	}
	return h.render(c, "dashboard.html", "Dashboard", view.DashboardData{Stats: stats})
}
