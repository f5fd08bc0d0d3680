package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"hvrdb/internal/models"
)

// ImportRepository interface for dependency injection
type ImportRepository interface {
	ReplaceDataset(ctx context.Context, dataset string, locations []models.Location) (int64, error)
	CountStores(ctx context.Context, dataset string) (int64, error)
}

// ImportService loads pipeline batches into the store database
type ImportService struct {
	repo ImportRepository
	log  zerolog.Logger
}

// NewImportService creates a new import service
func NewImportService(repo ImportRepository, logger zerolog.Logger) *ImportService {
	return &ImportService{repo: repo, log: logger}
}

// ImportDataset replaces the stored rows of dataset with stores. Stores without numeric
// coordinates are skipped. It returns the number of rows imported.
func (s *ImportService) ImportDataset(ctx context.Context, dataset string, stores []models.Store) (int64, error) {
	locations := make([]models.Location, 0, len(stores))
	for _, st := range stores {
		loc, ok := models.NewLocation(dataset, st)
		if !ok {
			s.log.Warn().Str("dataset", dataset).Str("name", st.Name).Msg("skipping store without coordinates")
			continue
		}
		locations = append(locations, loc)
	}

	n, err := s.repo.ReplaceDataset(ctx, dataset, locations)
	if err != nil {
		return 0, fmt.Errorf("service: failed to import %s: %w", dataset, err)
	}

	count, err := s.repo.CountStores(ctx, dataset)
	if err != nil {
		return 0, fmt.Errorf("service: failed to verify %s: %w", dataset, err)
	}
	if count != int64(len(locations)) {
		return 0, fmt.Errorf("service: record count mismatch for %s: expected %d, got %d", dataset, len(locations), count)
	}

	s.log.Info().Str("dataset", dataset).Int64("rows", n).Int("skipped", len(stores)-len(locations)).Msg("dataset imported")
	return n, nil
}
