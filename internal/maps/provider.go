package maps

import (
	"hash/fnv"
	"strconv"

	"vehicles-api/internal/models"
)

// addresses is the fixed pool the mock maps service answers from.
var addresses = []models.Address{
	{Address: "350 5th Ave", City: "New York", State: "NY", Zip: "10118"},
	{Address: "1600 Amphitheatre Pkwy", City: "Mountain View", State: "CA", Zip: "94043"},
	{Address: "233 S Wacker Dr", City: "Chicago", State: "IL", Zip: "60606"},
	{Address: "400 Broad St", City: "Seattle", State: "WA", Zip: "98109"},
	{Address: "600 Congress Ave", City: "Austin", State: "TX", Zip: "78701"},
	{Address: "1 Ferry Building", City: "San Francisco", State: "CA", Zip: "94111"},
	{Address: "1200 Getty Center Dr", City: "Los Angeles", State: "CA", Zip: "90049"},
	{Address: "700 Boylston St", City: "Boston", State: "MA", Zip: "02116"},
}

// AddressProvider resolves coordinates to an address from the fixed pool. The pick is
// a hash of the coordinates, so the same lat/lon always maps to the same address.
type AddressProvider struct{}

// NewAddressProvider creates a new address provider
func NewAddressProvider() *AddressProvider {
	return &AddressProvider{}
}

// AddressFor returns the address for the given coordinates
func (p *AddressProvider) AddressFor(lat, lon float64) models.Address {
	h := fnv.New32a()
	h.Write([]byte(strconv.FormatFloat(lat, 'f', -1, 64)))
	h.Write([]byte(strconv.FormatFloat(lon, 'f', -1, 64)))
	return addresses[int(h.Sum32())%len(addresses)]
}
