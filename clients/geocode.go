package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// GeocodeResult is one ranked address candidate.
type GeocodeResult struct {
	DisplayName string  `json:"display_name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

// GeocodeClient resolves free-text addresses against a Nominatim-compatible
// geocoder. Results only enrich client info; they never feed cost logic.
type GeocodeClient struct {
	baseURL string
	client  *http.Client
}

// NewGeocodeClient creates a geocoding client.
func NewGeocodeClient(baseURL string) *GeocodeClient {
	return &GeocodeClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// nominatimResult mirrors the wire format, which carries coordinates as
// strings.
type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Search returns ranked candidates for a free-text address.
func (c *GeocodeClient) Search(ctx context.Context, query string) ([]GeocodeResult, error) {
	u := fmt.Sprintf("%s/search?q=%s&format=json&limit=5", c.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "renoquote/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling geocoder: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var raw []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	results := make([]GeocodeResult, 0, len(raw))
	for _, r := range raw {
		lat, err := strconv.ParseFloat(r.Lat, 64)
		if err != nil {
			continue
		}
		lng, err := strconv.ParseFloat(r.Lon, 64)
		if err != nil {
			continue
		}
		results = append(results, GeocodeResult{
			DisplayName: r.DisplayName,
			Lat:         lat,
			Lng:         lng,
		})
	}
	return results, nil
}
