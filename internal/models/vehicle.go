package models

import "time"

// Vehicle represents a single catalog entry, combining its persisted record with the
// price and address data gathered from the downstream services on read.
type Vehicle struct {
	ID         int64     `json:"id"`
	Condition  string    `json:"condition"`
	Details    Details   `json:"details"`
	Location   Location  `json:"location"`
	Price      string    `json:"price,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Details holds the descriptive attributes of a vehicle. The aggregation layer treats
// this block as opaque: it is stored and returned verbatim, never inspected.
type Details struct {
	Body           string       `json:"body"`
	Model          string       `json:"model"`
	Manufacturer   Manufacturer `json:"manufacturer"`
	NumberOfDoors  int          `json:"number_of_doors"`
	FuelType       string       `json:"fuel_type"`
	Engine         string       `json:"engine"`
	Mileage        int          `json:"mileage"`
	ModelYear      int          `json:"model_year"`
	ProductionYear int          `json:"production_year"`
	ExternalColor  string       `json:"external_color"`
}

// Manufacturer identifies the maker of a vehicle.
type Manufacturer struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

// Location pairs the persisted coordinates of a vehicle with the address fields
// resolved from the maps service. Only Lat and Lon are ever written to storage;
// Address, City, State and Zip are overwritten from the maps response on every read.
type Location struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Address string  `json:"address,omitempty"`
	City    string  `json:"city,omitempty"`
	State   string  `json:"state,omitempty"`
	Zip     string  `json:"zip,omitempty"`
}
