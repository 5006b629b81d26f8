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

const (
	alertBooked         = "Appointment Booked Successfully!"
	alertBookingNetwork = "Booking Failed: Server Error"
	bookingFallback     = "Unknown error"
)

// BookingHandler handles the appointment form.
type BookingHandler struct {
	pages
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(store session.StoreInterface, booking service.BookingService) *BookingHandler {
	return &BookingHandler{pages: pages{store: store, booking: booking}}
}

// AppointmentForm is posted by the booking modal.
type AppointmentForm struct {
	DoctorID string `form:"doctorId"`
	Date     string `form:"date"`
	Time     string `form:"time"`
	Symptoms string `form:"symptoms"`
	From     string `form:"from"`
}

// Submit books the appointment and returns to the page the modal was opened on.
// The modal stays open on a missing doctor and closes on success.
func (h *BookingHandler) Submit(c echo.Context) error {
	var form AppointmentForm
	if err := c.Bind(&form); err != nil {
		h.flash(c, session.FlashError, bookingAlert(err))
		return redirect(c, localPath(form.From))
	}
	from := localPath(form.From)

	_, err := h.booking.Submit(c.Request().Context(), ClientID(c), model.AppointmentRequest{
		DoctorID: form.DoctorID,
		Date:     form.Date,
		Time:     form.Time,
		Symptoms: form.Symptoms,
	})
	switch {
	case err == nil:
		h.flash(c, session.FlashSuccess, alertBooked)
		return redirect(c, from)
	case errors.Is(err, apperrors.ErrDoctorRequired):
		h.flash(c, session.FlashError, apperrors.AlertSelectDoctor)
		return redirect(c, view.WithQuery(from, "modal", "booking"))
	case errors.Is(err, apperrors.ErrNoSession), errors.Is(err, apperrors.ErrSessionExpired):
		h.flash(c, session.FlashError, apperrors.AlertMessage(err, "", ""))
		return redirect(c, authSurface(from, view.TabLogin))
	default:
		h.flash(c, session.FlashError, bookingAlert(err))
		return redirect(c, view.WithQuery(from, "modal", "booking", "doctor", form.DoctorID))
	}
}

// bookingAlert reports backend rejections as "Failed: <message>".
func bookingAlert(err error) string {
	var apiErr *backend.Error
	if errors.As(err, &apiErr) && apiErr.Kind == backend.KindRejected {
		return "Failed: " + apperrors.AlertMessage(err, bookingFallback, "")
	}
	return apperrors.AlertMessage(err, "", alertBookingNetwork)
}
