package service

import (
	"context"
	"fmt"

	"healthease/internal/backend"
	apperrors "healthease/internal/errors"
	"healthease/internal/session"
)

// Form actions guarded against double submission.
const (
	actionLogin    = "login"
	actionRegister = "register"
	actionBooking  = "booking"
)

// inFlight runs fn while holding the per-client guard for action. A second call
// for the same client and action fails with ErrRequestInFlight until fn returns.
func inFlight(ctx context.Context, store session.StoreInterface, clientID, action string, fn func() error) error {
	ok, err := store.Acquire(ctx, clientID, action)
	if err != nil {
		return fmt.Errorf("acquire %s guard: %w", action, err)
	}
	if !ok {
		return apperrors.ErrRequestInFlight
	}
	defer func() {
		_ = store.Release(context.WithoutCancel(ctx), clientID, action)
	}()
	return fn()
}

// expireOnUnauthorized clears the client's session when the backend refused its
// token, and reports that as ErrSessionExpired.
func expireOnUnauthorized(ctx context.Context, store session.StoreInterface, clientID string, err error) error {
	if !backend.IsUnauthorized(err) {
		return err
	}
	if clearErr := store.Clear(ctx, clientID); clearErr != nil {
		return fmt.Errorf("clear expired session: %w", clearErr)
	}
	return fmt.Errorf("%w: %v", apperrors.ErrSessionExpired, err)
}
