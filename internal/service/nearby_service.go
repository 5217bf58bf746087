package service

import (
	"context"
	"fmt"

	"address-directory/internal/geo"
	"address-directory/internal/models"
)

// NearbyService contains the core business logic for the proximity filter
type NearbyService struct {
	repo NearbyRepository
}

// NearbyRepository interface for dependency injection
type NearbyRepository interface {
	ListAddresses(ctx context.Context) ([]models.Address, error)
}

// NewNearbyService creates a new nearby service
func NewNearbyService(repo NearbyRepository) *NearbyService {
	return &NearbyService{repo: repo}
}

// FindNearby returns every stored address whose point lies inside an
// axis-aligned square centered on the query coordinate. The filter works on
// the flat coordinate plane; no geodesic correction is applied.
func (s *NearbyService) FindNearby(ctx context.Context, lat, lon, distance float64) ([]models.Address, error) {
	addresses, err := s.repo.ListAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list addresses: %w", err)
	}

	// The square is one degree wider than the requested distance on each
	// side. Inherited behavior callers may depend on.
	// TODO: confirm with API consumers whether the +1 widening can be removed.
	halfWidth := distance + 1
	square := geo.Square(geo.Point{Lat: lat, Lon: lon}, halfWidth)

	nearby := []models.Address{}
	for _, addr := range addresses {
		if square.Contains(geo.Point{Lat: addr.Latitude, Lon: addr.Longitude}) {
			nearby = append(nearby, addr)
		}
	}

	return nearby, nil
}
