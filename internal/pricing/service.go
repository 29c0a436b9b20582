package pricing

import (
	"errors"
	"math/rand"

	"vehicles-api/internal/models"
)

// ErrPriceNotFound is returned when no price exists for the requested vehicle id.
var ErrPriceNotFound = errors.New("price not found")

// Service holds the quoted prices for a fixed range of vehicle ids. Prices are
// generated once at construction and stay stable for the life of the process.
type Service struct {
	prices map[int64]models.Price
}

// NewService creates a pricing service with quotes for vehicle ids 1 through count
func NewService(count int64) *Service {
	prices := make(map[int64]models.Price, count)
	for id := int64(1); id <= count; id++ {
		prices[id] = models.Price{
			VehicleID: id,
			Price:     randomPrice(),
			Currency:  "USD",
		}
	}
	return &Service{prices: prices}
}

// PriceForVehicle returns the quote for the given vehicle id
func (s *Service) PriceForVehicle(id int64) (*models.Price, error) {
	price, ok := s.prices[id]
	if !ok {
		return nil, ErrPriceNotFound
	}
	return &price, nil
}

// randomPrice generates a quote between 5,000 and 25,000 in whole cents.
func randomPrice() float64 {
	cents := 500000 + rand.Int63n(2000001)
	return float64(cents) / 100
}
