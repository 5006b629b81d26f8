package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "healthease/internal/errors"
	"healthease/internal/model"
	"healthease/internal/service"
	"healthease/internal/session"
	"healthease/internal/view"
)

// pages holds what every HTML handler needs to render a full page.
type pages struct {
	store   session.StoreInterface
	booking service.BookingService
}

// render builds the page around data and writes it. The booking modal is loaded
// only when the query asks for it, and only for a signed-in client.
func (p pages) render(c echo.Context, name, title string, data interface{}) error {
	ctx := c.Request().Context()
	id := ClientID(c)

	sess, err := p.store.Get(ctx, id)
	if err != nil {
		return err
	}
	flash, err := p.store.PopFlash(ctx, id)
	if err != nil {
		c.Logger().Errorf("pop flash: %v", err)
	}

	page := view.Page{
		Title:   title,
		Path:    c.Request().URL.Path,
		Session: sess,
		Flash:   flash,
		Chrome:  view.ChromeFromQuery(c.QueryParams()),
		Data:    data,
	}

	if page.Chrome.BookingModalOpen {
		form, err := p.booking.Open(ctx, id, c.QueryParam("doctor"))
		switch {
		case errors.Is(err, apperrors.ErrNoSession):
			page.Chrome = page.Chrome.OpenLogin()
		case err != nil:
			return err
		default:
			page.Booking = view.NewBookingView(form.Doctors, form.SelectedID, form.Unavailable)
		}
	}

	return c.Render(http.StatusOK, name, page)
}

func (p pages) flash(c echo.Context, level, message string) {
	err := p.store.SetFlash(c.Request().Context(), ClientID(c), session.Flash{Message: message, Level: level})
	if err != nil {
		c.Logger().Errorf("set flash: %v", err)
	}
}

func (p pages) session(c echo.Context) (*model.Session, error) {
	return p.store.Get(c.Request().Context(), ClientID(c))
}

func redirect(c echo.Context, to string) error {
	return c.Redirect(http.StatusSeeOther, to)
}

// localPath accepts only same-site absolute paths, falling back to "/". Control
// characters are refused outright since browsers drop tabs and newlines from URLs.
func localPath(p string) string {
	if strings.ContainsFunc(p, func(r rune) bool { return r < 0x20 || r == 0x7f }) {
		return "/"
	}
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return "/"
	}
	u, err := url.Parse(p)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	return p
}

// authSurface is the page at path with the auth modal open on tab.
func authSurface(path, tab string) string {
	return view.WithQuery(localPath(path), "modal", "auth", "tab", tab)
}
