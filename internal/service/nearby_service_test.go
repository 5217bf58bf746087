package service

import (
	"context"
	"testing"

	"address-directory/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockNearbyRepository is a mock implementation of the NearbyRepository interface
type MockNearbyRepository struct {
	mock.Mock
}

func (m *MockNearbyRepository) ListAddresses(ctx context.Context) ([]models.Address, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Address), args.Error(1)
}

func TestNearbyService_FindNearby(t *testing.T) {
	stored := []models.Address{
		{ID: 1, Name: "exact match", Latitude: 10, Longitude: 10},
		{ID: 2, Name: "just inside the widened square", Latitude: 10.9, Longitude: 9.1},
		{ID: 3, Name: "outside", Latitude: 12, Longitude: 10},
		{ID: 4, Name: "far away", Latitude: -45, Longitude: 120},
	}

	tests := []struct {
		name          string
		lat, lon      float64
		distance      float64
		mockAddresses []models.Address
		mockError     error
		expectedIDs   []int
		expectError   bool
	}{
		{
			name:          "distance zero still spans a square of half-width one",
			lat:           10,
			lon:           10,
			distance:      0,
			mockAddresses: stored,
			expectedIDs:   []int{1, 2},
		},
		{
			name:          "wider distance picks up more points",
			lat:           10,
			lon:           10,
			distance:      1.5,
			mockAddresses: stored,
			expectedIDs:   []int{1, 2, 3},
		},
		{
			name:          "no stored addresses yields an empty list",
			lat:           10,
			lon:           10,
			distance:      0,
			mockAddresses: []models.Address{},
			expectedIDs:   []int{},
		},
		{
			name:          "nothing in range yields an empty list",
			lat:           80,
			lon:           -170,
			distance:      0,
			mockAddresses: stored,
			expectedIDs:   []int{},
		},
		{
			name:        "repository error",
			lat:         10,
			lon:         10,
			distance:    0,
			mockError:   assert.AnError,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockRepo := new(MockNearbyRepository)
			service := NewNearbyService(mockRepo)
			mockRepo.On("ListAddresses", mock.Anything).Return(tt.mockAddresses, tt.mockError)

			// Execute
			result, err := service.FindNearby(context.Background(), tt.lat, tt.lon, tt.distance)

			// Assert
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				ids := make([]int, len(result))
				for i, addr := range result {
					ids[i] = addr.ID
				}
				assert.Equal(t, tt.expectedIDs, ids)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
