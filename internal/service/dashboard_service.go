package service

import (
	"context"

	"healthease/internal/backend"
	apperrors "healthease/internal/errors"
	"healthease/internal/model"
	"healthease/internal/session"
)

// DashboardService loads the signed-in patient's counters.
type DashboardService interface {
	Stats(ctx context.Context, clientID string) (*model.DashboardStats, error)
	StatsWithToken(ctx context.Context, token string) (*model.DashboardStats, error)
}

type dashboardService struct {
	api   backend.API
	store session.StoreInterface
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(api backend.API, store session.StoreInterface) DashboardService {
	return &dashboardService{api: api, store: store}
}

func (s *dashboardService) Stats(ctx context.Context, clientID string) (*model.DashboardStats, error) {
	sess, err := s.store.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, apperrors.ErrNoSession
	}
	stats, err := s.api.DashboardStats(ctx, sess.Token)
	if err != nil {
		return nil, expireOnUnauthorized(ctx, s.store, clientID, err)
	}
	return stats, nil
}

func (s *dashboardService) StatsWithToken(ctx context.Context, token string) (*model.DashboardStats, error) {
	return s.api.DashboardStats(ctx, token)
}
