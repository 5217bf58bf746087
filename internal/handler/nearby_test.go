package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"address-directory/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockNearbyService is a mock implementation of the NearbyService interface
type MockNearbyService struct {
	mock.Mock
}

func (m *MockNearbyService) FindNearby(ctx context.Context, lat, lon, distance float64) ([]models.Address, error) {
	args := m.Called(ctx, lat, lon, distance)
	return args.Get(0).([]models.Address), args.Error(1)
}

func TestNearbyHandler_Nearby(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		query          string
		serviceCalled  bool
		mockAddresses  []models.Address
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:          "matching addresses",
			query:         "latitude=10&longitude=10&distance=0",
			serviceCalled: true,
			mockAddresses: []models.Address{
				{ID: 1, Name: "A", Latitude: 10, Longitude: 10},
			},
			expectedStatus: http.StatusOK,
			expectedBody: []interface{}{
				map[string]interface{}{
					"id": float64(1), "name": "A", "latitude": float64(10), "longitude": float64(10),
				},
			},
		},
		{
			name:           "no matches",
			query:          "latitude=80&longitude=-170&distance=0",
			serviceCalled:  true,
			mockAddresses:  []models.Address{},
			expectedStatus: http.StatusOK,
			expectedBody:   []interface{}{},
		},
		{
			name:           "missing parameters",
			query:          "latitude=10",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "missing required query parameters 'latitude', 'longitude' and 'distance'"},
		},
		{
			name:           "invalid latitude",
			query:          "latitude=abc&longitude=10&distance=0",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid latitude format"},
		},
		{
			name:           "invalid longitude",
			query:          "latitude=10&longitude=abc&distance=0",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid longitude format"},
		},
		{
			name:           "invalid distance",
			query:          "latitude=10&longitude=10&distance=abc",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid distance format"},
		},
		{
			name:           "service error",
			query:          "latitude=10&longitude=10&distance=0",
			serviceCalled:  true,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockNearbyService)
			handler := NewNearbyHandler(mockSvc)

			if tt.serviceCalled {
				mockSvc.On("FindNearby", mock.Anything,
					mock.AnythingOfType("float64"), mock.AnythingOfType("float64"), mock.AnythingOfType("float64")).
					Return(tt.mockAddresses, tt.mockError)
			}

			// Create request
			req := httptest.NewRequest(http.MethodGet, "/addresses/nearby/?"+tt.query, nil)
			w := httptest.NewRecorder()

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			// Execute
			handler.Nearby(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			err := json.Unmarshal(w.Body.Bytes(), &actualBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, actualBody)

			mockSvc.AssertExpectations(t)
		})
	}
}
