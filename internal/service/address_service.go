package service

import (
	"context"
	"fmt"

	"address-directory/internal/models"
)

// AddressService contains the core business logic for address CRUD operations
type AddressService struct {
	repo AddressRepository
}

// Repository interface for dependency injection
type AddressRepository interface {
	InsertAddress(ctx context.Context, name string, lat, lon float64) (models.Address, error)
	GetAddress(ctx context.Context, id int) (models.Address, error)
	ListAddresses(ctx context.Context) ([]models.Address, error)
	UpdateAddress(ctx context.Context, id int, name *string, lat, lon *float64) (models.Address, error)
	DeleteAddress(ctx context.Context, id int) error
}

// NewAddressService creates a new address service
func NewAddressService(repo AddressRepository) *AddressService {
	return &AddressService{repo: repo}
}

// Create validates the input and stores a new address. Nothing is written
// when validation fails.
func (s *AddressService) Create(ctx context.Context, input models.AddressInput) (models.Address, error) {
	if verr := input.ValidateCreate(); verr != nil {
		return models.Address{}, verr
	}

	addr, err := s.repo.InsertAddress(ctx, *input.Name, *input.Latitude, *input.Longitude)
	if err != nil {
		return models.Address{}, fmt.Errorf("service: failed to create address: %w", err)
	}
	return addr, nil
}

// Get fetches one address by id.
func (s *AddressService) Get(ctx context.Context, id int) (models.Address, error) {
	addr, err := s.repo.GetAddress(ctx, id)
	if err != nil {
		return models.Address{}, fmt.Errorf("service: failed to get address: %w", err)
	}
	return addr, nil
}

// List returns every stored address.
func (s *AddressService) List(ctx context.Context) ([]models.Address, error) {
	addresses, err := s.repo.ListAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list addresses: %w", err)
	}
	return addresses, nil
}

// Update validates the supplied fields and applies them to the matching
// record. Omitted fields keep their stored values; an empty input leaves the
// record as is and echoes it back.
func (s *AddressService) Update(ctx context.Context, id int, input models.AddressInput) (models.Address, error) {
	if verr := input.ValidateUpdate(); verr != nil {
		return models.Address{}, verr
	}

	addr, err := s.repo.UpdateAddress(ctx, id, input.Name, input.Latitude, input.Longitude)
	if err != nil {
		return models.Address{}, fmt.Errorf("service: failed to update address: %w", err)
	}
	return addr, nil
}

// Delete removes the matching record.
func (s *AddressService) Delete(ctx context.Context, id int) error {
	if err := s.repo.DeleteAddress(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete address: %w", err)
	}
	return nil
}
