package service

import (
	"context"

	"healthease/internal/backend"
	"healthease/internal/model"
)

// FeaturedCount is how many doctors the home page features.
const FeaturedCount = 3

// CatalogService lists doctors. Every call goes to the backend; nothing is cached.
type CatalogService interface {
	Doctors(ctx context.Context) ([]model.Doctor, error)
	Featured(ctx context.Context) ([]model.Doctor, error)
}

type catalogService struct {
	api backend.API
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(api backend.API) CatalogService {
	return &catalogService{api: api}
}

func (s *catalogService) Doctors(ctx context.Context) ([]model.Doctor, error) {
	return s.api.Doctors(ctx)
}

// Featured returns the first FeaturedCount doctors of the catalog.
func (s *catalogService) Featured(ctx context.Context) ([]model.Doctor, error) {
	doctors, err := s.api.Doctors(ctx)
	if err != nil {
		return nil, err
	}
	if len(doctors) > FeaturedCount {
		doctors = doctors[:FeaturedCount]
	}
	return doctors, nil
}
