package geocode

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Address is the subset of reverse-geocoding data the scan pipeline records
type Address struct {
	City    string
	Region  string
	Country string
}

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"address"`
}

// Client resolves coordinates to a human-readable address via Nominatim
type Client struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// NewClient creates a reverse-geocoding client.
// baseURL is the Nominatim endpoint, e.g. https://nominatim.openstreetmap.org
func NewClient(baseURL string, logger *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(5 * time.Second).
		SetHeader("User-Agent", "safeqr/1.0").
		SetHeader("Accept-Language", "en")

	return &Client{
		httpClient: client,
		logger:     logger,
	}
}

// Reverse looks up the address at (lat, lon). Best effort: callers treat a
// nil result as "no address available".
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*Address, error) {
	var result nominatimResponse

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format": "jsonv2",
			"lat":    fmt.Sprintf("%f", lat),
			"lon":    fmt.Sprintf("%f", lon),
		}).
		SetResult(&result).
		Get("/reverse")

	if err != nil {
		return nil, fmt.Errorf("reverse geocode request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("reverse geocode returned status %d", resp.StatusCode())
	}

	city := result.Address.City
	if city == "" {
		city = result.Address.Town
	}
	if city == "" {
		city = result.Address.Village
	}

	addr := &Address{
		City:    city,
		Region:  result.Address.State,
		Country: result.Address.Country,
	}

	c.logger.Debug("Reverse geocoded scan location",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.String("city", addr.City),
		zap.String("country", addr.Country),
	)

	return addr, nil
}
