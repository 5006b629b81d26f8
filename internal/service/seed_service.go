package service

import (
	"context"
	"fmt"

	"healthease/internal/backend"
)

// SeedResult holds the backend's messages for one seeding run.
type SeedResult struct {
	Doctors string `json:"doctors"`
	Admin   string `json:"admin"`
}

// SeedService asks the backend to insert its demo doctors and default admin.
type SeedService interface {
	Seed(ctx context.Context) (*SeedResult, error)
}

type seedService struct {
	api backend.API
}

// NewSeedService creates a new seed service.
func NewSeedService(api backend.API) SeedService {
	return &seedService{api: api}
}

// Seed seeds doctors first, then the admin account. Both endpoints are idempotent.
func (s *seedService) Seed(ctx context.Context) (*SeedResult, error) {
	doctors, err := s.api.SeedDoctors(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed doctors: %w", err)
	}
	admin, err := s.api.SeedAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}
	return &SeedResult{Doctors: doctors, Admin: admin}, nil
}
