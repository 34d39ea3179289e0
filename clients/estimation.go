package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"renoquote/services"
)

// EstimationClient calls the external estimation service. When a user id is
// configured it uses the learning-aware endpoint first and degrades to the
// plain endpoint if that call fails.
type EstimationClient struct {
	baseURL string
	userID  string
	client  *http.Client
}

// NewEstimationClient creates an estimation client.
func NewEstimationClient(baseURL, userID string) *EstimationClient {
	return &EstimationClient{
		baseURL: baseURL,
		userID:  userID,
		client: &http.Client{
			Timeout: 60 * time.Second, // estimates can take a while
		},
	}
}

// QuoteResponse wraps the quote with the optional learning metadata the
// learning-aware endpoint may attach. LearningInfo is opaque to the core;
// it is surfaced to the caller as raw JSON and never interpreted.
type QuoteResponse struct {
	Quote        *services.Quote `json:"quote"`
	LearningInfo json.RawMessage `json:"learning_info,omitempty"`
}

// RequestQuote sends the estimation request and returns the resulting quote.
// A failing learning-aware call falls back to a plain request rather than
// failing the whole operation.
func (c *EstimationClient) RequestQuote(ctx context.Context, req *services.EstimateRequest) (*QuoteResponse, error) {
	if c.userID != "" {
		resp, err := c.post(ctx, "/api/v1/quote?user_id="+url.QueryEscape(c.userID), req)
		if err == nil {
			return resp, nil
		}
		log.Printf("estimation: learning-aware request failed, falling back to plain: %v", err)
	}
	return c.post(ctx, "/api/v1/quote", req)
}

func (c *EstimationClient) post(ctx context.Context, path string, req *services.EstimateRequest) (*QuoteResponse, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling estimation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("estimation service returned status %d", resp.StatusCode)
	}

	var out QuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if out.Quote == nil {
		return nil, fmt.Errorf("estimation service returned no quote")
	}
	return &out, nil
}
