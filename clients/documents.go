package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DocumentKind selects which document the service renders.
type DocumentKind string

const (
	DocumentQuoteSummary DocumentKind = "quote_summary"
	DocumentScopeOfWorks DocumentKind = "scope_of_works"
)

// DocumentRequest is the payload for external document generation. Adjusted
// costs and total are the reconciled values; nil means no adjustments exist
// and the service renders the stored quote as-is.
type DocumentRequest struct {
	Kind          DocumentKind       `json:"kind"`
	UserProfile   map[string]string  `json:"user_profile"`
	AdjustedCosts map[string]float64 `json:"adjusted_costs,omitempty"`
	AdjustedTotal *float64           `json:"adjusted_total,omitempty"`
	QuoteID       string             `json:"quote_id"`
}

// DocumentsClient calls the external document-generation service.
type DocumentsClient struct {
	baseURL string
	client  *http.Client
}

// NewDocumentsClient creates a document service client.
func NewDocumentsClient(baseURL string) *DocumentsClient {
	return &DocumentsClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 60 * time.Second, // rendering can be slow
		},
	}
}

// Generate renders one document and returns its raw bytes.
func (c *DocumentsClient) Generate(ctx context.Context, dreq DocumentRequest) ([]byte, error) {
	jsonData, err := json.Marshal(dreq)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/v1/documents", bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling document service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("document service returned status %d", resp.StatusCode)
	}

	doc, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading document body: %w", err)
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("document service returned an empty document")
	}
	return doc, nil
}
