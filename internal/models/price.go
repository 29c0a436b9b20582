package models

// Price is the pricing service's quote for a single vehicle. It is fetched fresh on
// every vehicle read and never persisted.
type Price struct {
	VehicleID int64   `json:"vehicleId"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
}
