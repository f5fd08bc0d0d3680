package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hvrdb/internal/models"
	"hvrdb/internal/repository"
)

// ErrInvalidInput marks requests rejected before reaching the repository.
var ErrInvalidInput = errors.New("invalid input")

// StoreService contains the business logic for store lookups
type StoreService struct {
	repo StoreRepository
}

// StoreRepository interface for dependency injection
type StoreRepository interface {
	SearchStoresByText(ctx context.Context, query string) ([]models.Location, error)
	ListStoresByCategory(ctx context.Context, category string) ([]models.Location, error)
	FindNearestStore(ctx context.Context, lat, lon float64) (*models.Location, error)
}

// NewStoreService creates a new store service
func NewStoreService(repo StoreRepository) *StoreService {
	return &StoreService{repo: repo}
}

// Search finds stores by free text over company, name, address and city
func (s *StoreService) Search(ctx context.Context, query string) ([]models.Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("service: query cannot be empty: %w", ErrInvalidInput)
	}

	locations, err := s.repo.SearchStoresByText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search stores: %w", err)
	}

	return locations, nil
}

// ByCategory lists stores of a single category
func (s *StoreService) ByCategory(ctx context.Context, category string) ([]models.Location, error) {
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("service: category cannot be empty: %w", ErrInvalidInput)
	}

	locations, err := s.repo.ListStoresByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list stores: %w", err)
	}

	return locations, nil
}

// Nearest finds the store closest to the given coordinates. It returns nil when no store is near.
func (s *StoreService) Nearest(ctx context.Context, lat, lon float64) (*models.Location, error) {
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("service: invalid latitude %f: %w", lat, ErrInvalidInput)
	}
	if lon < -180 || lon > 180 {
		return nil, fmt.Errorf("service: invalid longitude %f: %w", lon, ErrInvalidInput)
	}

	location, err := s.repo.FindNearestStore(ctx, lat, lon)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("service: failed to find nearest store: %w", err)
	}

	return location, nil
}
