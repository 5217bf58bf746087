package handler

import (
	"context"
	"net/http"
	"strconv"

	"address-directory/internal/models"

	"github.com/gin-gonic/gin"
)

// NearbyHandler handles proximity filter requests
type NearbyHandler struct {
	service NearbyService
}

// Service interface for dependency injection
type NearbyService interface {
	FindNearby(ctx context.Context, lat, lon, distance float64) ([]models.Address, error)
}

// NewNearbyHandler creates a new nearby handler
func NewNearbyHandler(svc NearbyService) *NearbyHandler {
	return &NearbyHandler{service: svc}
}

// Nearby handles GET /addresses/nearby/ requests
//
//	@Summary	List addresses inside a square around the query coordinate
//	@Produce	json
//	@Param		latitude	query		number	true	"query latitude"
//	@Param		longitude	query		number	true	"query longitude"
//	@Param		distance	query		number	true	"half-width of the search square, degrees"
//	@Success	200			{array}		models.Address
//	@Failure	400			{object}	map[string]string
//	@Router		/addresses/nearby/ [get]
func (h *NearbyHandler) Nearby(c *gin.Context) {
	latStr := c.Query("latitude")
	lonStr := c.Query("longitude")
	distStr := c.Query("distance")

	if latStr == "" || lonStr == "" || distStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'latitude', 'longitude' and 'distance'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	distance, err := strconv.ParseFloat(distStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid distance format"})
		return
	}

	addresses, err := h.service.FindNearby(c.Request.Context(), lat, lon, distance)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, addresses)
}
