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

// PricingClient calls the pricing service to fetch the current quote for a vehicle.
type PricingClient struct {
	baseURL string
	http    *http.Client
}

// NewPricingClient creates a pricing client against the given base URL
func NewPricingClient(baseURL string) *PricingClient {
	return &PricingClient{baseURL: baseURL, http: http.DefaultClient}
}

// PriceForVehicle fetches the price for the given vehicle id. A 404 from the pricing
// service means the vehicle is not priced and is returned as (nil, nil).
func (c *PricingClient) PriceForVehicle(ctx context.Context, id int64) (*models.Price, error) {
	u := c.baseURL + "/services/price?" + url.Values{
		"vehicleId": {strconv.FormatInt(id, 10)},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("client: failed to build pricing request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: pricing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("client: pricing service returned status %d", resp.StatusCode)
	}

	var price models.Price
	if err := json.NewDecoder(resp.Body).Decode(&price); err != nil {
		return nil, fmt.Errorf("client: failed to decode pricing response: %w", err)
	}

	return &price, nil
}
