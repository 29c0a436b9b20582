package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"vehicles-api/internal/models"
)

// MapsClient calls the maps service to resolve coordinates into a street address.
type MapsClient struct {
	baseURL string
	http    *http.Client
}

// NewMapsClient creates a maps client against the given base URL
func NewMapsClient(baseURL string) *MapsClient {
	return &MapsClient{baseURL: baseURL, http: http.DefaultClient}
}

// AddressFor resolves the given latitude/longitude into an address
func (c *MapsClient) AddressFor(ctx context.Context, lat, lon float64) (*models.Address, error) {
	u := c.baseURL + "/maps?" + url.Values{
		"lat": {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon": {strconv.FormatFloat(lon, 'f', -1, 64)},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("client: failed to build maps request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: maps request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("client: maps service returned status %d", resp.StatusCode)
	}

	var addr models.Address
	if err := json.NewDecoder(resp.Body).Decode(&addr); err != nil {
		return nil, fmt.Errorf("client: failed to decode maps response: %w", err)
	}

	return &addr, nil
}
