package service

import (
	"context"
	"testing"

	"hvrdb/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockImportRepository is a mock implementation of the ImportRepository interface
type MockImportRepository struct {
	mock.Mock
}

func (m *MockImportRepository) ReplaceDataset(ctx context.Context, dataset string, locations []models.Location) (int64, error) {
	args := m.Called(ctx, dataset, locations)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockImportRepository) CountStores(ctx context.Context, dataset string) (int64, error) {
	args := m.Called(ctx, dataset)
	return args.Get(0).(int64), args.Error(1)
}

func TestImportService_ImportDataset(t *testing.T) {
	stores := []models.Store{
		models.Enrich("ACE", models.Branch{Name: "ACE Haifa", Latitude: "32.794", Longitude: "34.989"}, models.Chain{CompanyCategory: "בית"}),
		models.NewStore(models.Branch{Name: "no location"}),
	}
	expectedLocations := []models.Location{
		{Dataset: "keva", Company: "ACE", Name: "ACE Haifa", Category: "בית", Latitude: 32.794, Longitude: 34.989},
	}

	tests := []struct {
		name        string
		copyResult  int64
		copyError   error
		countResult int64
		countError  error
		callCount   bool
		expected    int64
		expectError bool
	}{
		{
			name:        "successful import",
			copyResult:  1,
			callCount:   true,
			countResult: 1,
			expected:    1,
		},
		{
			name:        "copy error",
			copyError:   assert.AnError,
			expectError: true,
		},
		{
			name:        "count error",
			copyResult:  1,
			callCount:   true,
			countError:  assert.AnError,
			expectError: true,
		},
		{
			name:        "count mismatch",
			copyResult:  1,
			callCount:   true,
			countResult: 5,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockRepo := new(MockImportRepository)
			service := NewImportService(mockRepo, zerolog.Nop())

			mockRepo.On("ReplaceDataset", mock.Anything, "keva", expectedLocations).Return(tt.copyResult, tt.copyError)
			if tt.callCount {
				mockRepo.On("CountStores", mock.Anything, "keva").Return(tt.countResult, tt.countError)
			}

			// Execute
			n, err := service.ImportDataset(context.Background(), "keva", stores)

			// Assert
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, n)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
