package service

import (
	"context"
	"strings"

	"healthease/internal/backend"
	apperrors "healthease/internal/errors"
	"healthease/internal/model"
	"healthease/internal/session"
)

// BookingForm is what the appointment modal needs to render.
type BookingForm struct {
	Doctors    []model.Doctor
	SelectedID string
	// Unavailable is set when the doctor list could not be loaded.
	Unavailable bool
}

// BookingService opens the appointment modal and submits bookings.
type BookingService interface {
	Open(ctx context.Context, clientID, doctorID string) (*BookingForm, error)
	Submit(ctx context.Context, clientID string, req model.AppointmentRequest) (string, error)
	SubmitWithToken(ctx context.Context, token string, req model.AppointmentRequest) (string, error)
}

type bookingService struct {
	api   backend.API
	store session.StoreInterface
}

// NewBookingService creates a new booking service.
func NewBookingService(api backend.API, store session.StoreInterface) BookingService {
	return &bookingService{api: api, store: store}
}

// Open returns the booking form with doctorID preselected. Without a session it
// fails with ErrNoSession and the caller shows the login surface instead.
func (s *bookingService) Open(ctx context.Context, clientID, doctorID string) (*BookingForm, error) {
	sess, err := s.store.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, apperrors.ErrNoSession
	}

	form := &BookingForm{SelectedID: doctorID}
	doctors, err := s.api.Doctors(ctx)
	if err != nil {
		form.Unavailable = true
		return form, nil
	}
	form.Doctors = doctors
	return form, nil
}

// Submit sends one appointment request with the session's bearer token. An
// empty doctor is rejected before any network call; date and time are passed as given.
func (s *bookingService) Submit(ctx context.Context, clientID string, req model.AppointmentRequest) (string, error) {
	req.DoctorID = strings.TrimSpace(req.DoctorID)
	if req.DoctorID == "" {
		return "", apperrors.ErrDoctorRequired
	}

	sess, err := s.store.Get(ctx, clientID)
	if err != nil {
		return "", err
	}
	if sess == nil {
		return "", apperrors.ErrNoSession
	}

	var msg string
	err = inFlight(ctx, s.store, clientID, actionBooking, func() error {
		var err error
		msg, err = s.api.BookAppointment(ctx, sess.Token, req)
		return expireOnUnauthorized(ctx, s.store, clientID, err)
	})
	return msg, err
}

// SubmitWithToken books on behalf of a caller that presented its own bearer
// token instead of a browser session.
func (s *bookingService) SubmitWithToken(ctx context.Context, token string, req model.AppointmentRequest) (string, error) {
	req.DoctorID = strings.TrimSpace(req.DoctorID)
	if req.DoctorID == "" {
		return "", apperrors.ErrDoctorRequired
	}
	return s.api.BookAppointment(ctx, token, req)
}
