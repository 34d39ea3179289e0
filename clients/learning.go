package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"renoquote/services"
)

// LearningClient submits adjustment learning records to the external
// learning endpoint, one record per call. The response body is not consumed
// beyond success/failure.
type LearningClient struct {
	baseURL string
	client  *http.Client
}

// NewLearningClient creates a learning endpoint client.
func NewLearningClient(baseURL string) *LearningClient {
	return &LearningClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Submit posts one learning record.
func (c *LearningClient) Submit(ctx context.Context, rec services.LearningRecord) error {
	jsonData, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling learning record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/v1/learning", bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling learning endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("learning endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
