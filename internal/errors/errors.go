package errors

import (
	"errors"
	"net/http"

	"healthease/internal/backend"
)

var (
	// ErrNoSession is returned when an operation needs a signed-in user.
	ErrNoSession = errors.New("no active session")
	// ErrSessionExpired is returned when the backend rejected the stored token.
	ErrSessionExpired = errors.New("session expired")
	// ErrDoctorRequired is returned when a booking has no doctor selected.
	ErrDoctorRequired = errors.New("doctor is required")
	// ErrNotAdmin is returned when a non-admin signs in through the admin surface.
	ErrNotAdmin = errors.New("not an admin")
	// ErrRequestInFlight is returned when the same form is submitted twice concurrently.
	ErrRequestInFlight = errors.New("request already in progress")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// Alert texts shown to the user.
const (
	AlertSelectDoctor   = "Please select a doctor"
	AlertLoginRequired  = "Please login to continue"
	AlertSessionExpired = "Session expired. Please login again."
	AlertNotAdmin       = "Access Denied: You are not an Admin."
	AlertInFlight       = "Request already in progress"
	AlertServerError    = "Server error"
	AlertNetworkError   = "Network error"
)

// AlertMessage turns err into the text of a user-facing alert. fallback is used for
// backend rejections that carry no message; network is used when the backend is unreachable.
func AlertMessage(err error, fallback, network string) string {
	switch {
	case errors.Is(err, ErrDoctorRequired):
		return AlertSelectDoctor
	case errors.Is(err, ErrNoSession):
		return AlertLoginRequired
	case errors.Is(err, ErrSessionExpired):
		return AlertSessionExpired
	case errors.Is(err, ErrNotAdmin):
		return AlertNotAdmin
	case errors.Is(err, ErrRequestInFlight):
		return AlertInFlight
	}

	var apiErr *backend.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case backend.KindNetwork:
			if network == "" {
				return AlertNetworkError
			}
			return network
		case backend.KindMalformed:
			return "Unexpected response from server: " + apiErr.Message
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	if fallback == "" {
		return AlertServerError
	}
	return fallback
}

// MapErrorToHTTP maps domain and backend errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrNoSession):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "NO_SESSION")
	case errors.Is(err, ErrSessionExpired):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "SESSION_EXPIRED")
	case errors.Is(err, ErrDoctorRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DOCTOR_REQUIRED")
	case errors.Is(err, ErrNotAdmin):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_ADMIN")
	case errors.Is(err, ErrRequestInFlight):
		return NewHTTPError(http.StatusConflict, err.Error(), "REQUEST_IN_FLIGHT")
	}

	var apiErr *backend.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case backend.KindUnauthorized:
			return NewHTTPError(http.StatusUnauthorized, apiErr.Message, "UNAUTHORIZED")
		case backend.KindRejected:
			status := apiErr.Status
			if status < 400 || status > 499 {
				status = http.StatusBadGateway
			}
			return NewHTTPError(status, apiErr.Message, "BACKEND_REJECTED")
		case backend.KindNetwork:
			return NewHTTPError(http.StatusBadGateway, "backend unavailable", "BACKEND_UNAVAILABLE")
		case backend.KindMalformed:
			return NewHTTPError(http.StatusBadGateway, apiErr.Message, "BACKEND_MALFORMED")
		}
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}
