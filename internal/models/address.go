package models

// Address is the maps service's resolution of a latitude/longitude pair. It is
// produced per call and never stored.
type Address struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}
