package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"vehicles-api/internal/models"

	"github.com/rs/zerolog/log"
)

// ErrVehicleNotFound is returned when the requested vehicle id does not exist in the
// store. The handler layer maps it to a 404 response.
var ErrVehicleNotFound = errors.New("vehicle not found")

// VehicleRepository interface for dependency injection
type VehicleRepository interface {
	FindAll(ctx context.Context) ([]models.Vehicle, error)
	FindByID(ctx context.Context, id int64) (*models.Vehicle, error)
	Save(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error)
	Delete(ctx context.Context, v *models.Vehicle) error
}

// PricingClient fetches the price for a vehicle. (nil, nil) means the vehicle is not
// priced.
type PricingClient interface {
	PriceForVehicle(ctx context.Context, id int64) (*models.Price, error)
}

// MapsClient resolves coordinates into a street address.
type MapsClient interface {
	AddressFor(ctx context.Context, lat, lon float64) (*models.Address, error)
}

// VehicleService contains the business logic for creating, reading, updating and
// deleting vehicles, gathering related price and address data on single-vehicle reads.
type VehicleService struct {
	repo    VehicleRepository
	pricing PricingClient
	maps    MapsClient
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(repo VehicleRepository, pricing PricingClient, maps MapsClient) *VehicleService {
	return &VehicleService{repo: repo, pricing: pricing, maps: maps}
}

// List returns all vehicles in the store, without price or address enrichment.
func (s *VehicleService) List(ctx context.Context) ([]models.Vehicle, error) {
	vehicles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

// FindByID returns the vehicle with the given id, enriched with its current price and
// the address for its stored coordinates. The two downstream calls are made
// sequentially, pricing first, each time the vehicle is read: neither price nor
// address is ever served from storage.
//
// A failed or empty downstream response degrades the result instead of failing it:
// the price or address fields are left empty and a warning is logged.
func (s *VehicleService) FindByID(ctx context.Context, id int64) (*models.Vehicle, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find vehicle %d: %w", id, err)
	}
	if v == nil {
		return nil, ErrVehicleNotFound
	}

	price, err := s.pricing.PriceForVehicle(ctx, id)
	switch {
	case err != nil:
		log.Warn().Err(err).Int64("vehicle_id", id).Msg("pricing lookup failed, returning vehicle without price")
	case price == nil:
		log.Warn().Int64("vehicle_id", id).Msg("vehicle has no price")
	default:
		v.Price = strconv.FormatFloat(price.Price, 'f', 2, 64)
	}

	// A fresh location is always built from the persisted coordinates so stale
	// address fields can never survive a read.
	loc := models.Location{Lat: v.Location.Lat, Lon: v.Location.Lon}

	addr, err := s.maps.AddressFor(ctx, v.Location.Lat, v.Location.Lon)
	if err != nil {
		log.Warn().Err(err).Int64("vehicle_id", id).Msg("address lookup failed, returning vehicle without address")
	} else {
		loc.Address = addr.Address
		loc.City = addr.City
		loc.State = addr.State
		loc.Zip = addr.Zip
	}
	v.Location = loc

	return v, nil
}

// Save creates or updates a vehicle depending on whether its id is set.
//
// On create the store assigns the id; no enrichment is performed. On update only the
// details block and the location coordinates are taken from the input; every other
// field of the stored record is preserved.
func (s *VehicleService) Save(ctx context.Context, v *models.Vehicle) (*models.Vehicle, error) {
	if v.ID != 0 {
		existing, err := s.repo.FindByID(ctx, v.ID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to find vehicle %d: %w", v.ID, err)
		}
		if existing == nil {
			return nil, ErrVehicleNotFound
		}

		existing.Details = v.Details
		existing.Location = models.Location{Lat: v.Location.Lat, Lon: v.Location.Lon}

		updated, err := s.repo.Save(ctx, existing)
		if err != nil {
			return nil, fmt.Errorf("service: failed to update vehicle %d: %w", v.ID, err)
		}
		return updated, nil
	}

	created, err := s.repo.Save(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create vehicle: %w", err)
	}
	return created, nil
}

// Delete removes the vehicle with the given id from the store
func (s *VehicleService) Delete(ctx context.Context, id int64) error {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service: failed to find vehicle %d: %w", id, err)
	}
	if v == nil {
		return ErrVehicleNotFound
	}

	if err := s.repo.Delete(ctx, v); err != nil {
		return fmt.Errorf("service: failed to delete vehicle %d: %w", id, err)
	}
	return nil
}
