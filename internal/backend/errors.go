package backend

import (
	"errors"
	"fmt"
)

// Kind classifies why a backend call failed.
type Kind int

const (
	// KindRejected means the backend answered with a non-success status.
	KindRejected Kind = iota + 1
	// KindUnauthorized means the backend refused the bearer token (401).
	KindUnauthorized
	// KindNetwork means the backend could not be reached or the call was cut short.
	KindNetwork
	// KindMalformed means a success response did not have the expected shape.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindRejected:
		return "rejected"
	case KindUnauthorized:
		return "unauthorized"
	case KindNetwork:
		return "network"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Error is the typed failure of a backend call. Message carries the server's
// `message` field when it sent one.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Status != 0:
		return fmt.Sprintf("backend %s (%d): %s", e.Kind, e.Status, e.Message)
	case e.Message != "":
		return fmt.Sprintf("backend %s: %s", e.Kind, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("backend %s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("backend %s (%d)", e.Kind, e.Status)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports whether err is a backend 401.
func IsUnauthorized(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindUnauthorized
}
