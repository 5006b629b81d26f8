package service

import (
	"context"
	"fmt"

	"healthease/internal/backend"
	apperrors "healthease/internal/errors"
	"healthease/internal/model"
	"healthease/internal/session"
)

// AuthService handles sign-in, sign-up and sign-out for a browser client.
type AuthService interface {
	Login(ctx context.Context, clientID, email, password string) (*model.User, error)
	AdminLogin(ctx context.Context, clientID, email, password string) (*model.User, error)
	Register(ctx context.Context, clientID string, req backend.RegisterRequest) (string, error)
	Logout(ctx context.Context, clientID string) error
	Current(ctx context.Context, clientID string) (*model.Session, error)
	VerifyToken(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	api   backend.API
	store session.StoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(api backend.API, store session.StoreInterface) AuthService {
	return &authService{
		api:   api,
		store: store,
	}
}

// Login authenticates against the backend and stores the session. Nothing is
// stored when the backend rejects the credentials.
func (s *authService) Login(ctx context.Context, clientID, email, password string) (*model.User, error) {
	return s.login(ctx, clientID, email, password, false)
}

// AdminLogin is Login restricted to admins; other roles are denied without storing anything.
func (s *authService) AdminLogin(ctx context.Context, clientID, email, password string) (*model.User, error) {
	return s.login(ctx, clientID, email, password, true)
}

func (s *authService) login(ctx context.Context, clientID, email, password string, adminOnly bool) (*model.User, error) {
	var user *model.User
	err := inFlight(ctx, s.store, clientID, actionLogin, func() error {
		sess, err := s.api.Login(ctx, email, password)
		if err != nil {
			return err
		}
		if adminOnly && !sess.User.IsAdmin() {
			return apperrors.ErrNotAdmin
		}
		if err := s.store.Set(ctx, clientID, *sess); err != nil {
			return fmt.Errorf("store session: %w", err)
		}
		user = &sess.User
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Register creates an account. It does not sign the user in.
func (s *authService) Register(ctx context.Context, clientID string, req backend.RegisterRequest) (string, error) {
	if req.Role == "" {
		req.Role = model.RolePatient
	}
	var msg string
	err := inFlight(ctx, s.store, clientID, actionRegister, func() error {
		var err error
		msg, err = s.api.Register(ctx, req)
		return err
	})
	return msg, err
}

// Logout removes both session entries.
func (s *authService) Logout(ctx context.Context, clientID string) error {
	return s.store.Clear(ctx, clientID)
}

// Current returns the client's session, or nil when signed out.
func (s *authService) Current(ctx context.Context, clientID string) (*model.Session, error) {
	return s.store.Get(ctx, clientID)
}

// VerifyToken asks the backend who owns a bearer token presented directly by a caller.
func (s *authService) VerifyToken(ctx context.Context, token string) (*model.User, error) {
	return s.api.Verify(ctx, token)
}
