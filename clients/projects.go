package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"renoquote/services"
)

// ProjectSummary is one row in the project store's list view.
type ProjectSummary struct {
	ID          string  `json:"id"`
	ProjectName string  `json:"project_name"`
	ClientName  string  `json:"client_name"`
	Category    string  `json:"category"`
	QuoteID     string  `json:"quote_id"`
	TotalCost   float64 `json:"total_cost"`
	CreatedAt   string  `json:"created_at"`
}

// SaveProjectRequest is the payload for persisting a project.
type SaveProjectRequest struct {
	ProjectName string                    `json:"project_name"`
	ClientName  string                    `json:"client_name"`
	Category    string                    `json:"category"`
	RequestData *services.EstimateRequest `json:"request_data"`
	QuoteID     string                    `json:"quote_id"`
	TotalCost   float64                   `json:"total_cost"`
}

// LoadedProject is a full project record: the list-view summary plus the
// nested quote and original request.
type LoadedProject struct {
	Summary     ProjectSummary            `json:"summary"`
	RequestData *services.EstimateRequest `json:"request_data"`
	Quote       *services.Quote           `json:"quote"`
}

// ProjectsClient talks to the external project store.
type ProjectsClient struct {
	baseURL string
	client  *http.Client
}

// NewProjectsClient creates a project store client.
func NewProjectsClient(baseURL string) *ProjectsClient {
	return &ProjectsClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// List returns all saved project summaries.
func (c *ProjectsClient) List(ctx context.Context) ([]ProjectSummary, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/api/v1/projects", nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling project store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("project store returned status %d", resp.StatusCode)
	}

	var projects []ProjectSummary
	if err := json.NewDecoder(resp.Body).Decode(&projects); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return projects, nil
}

// Save persists a project and returns its summary.
func (c *ProjectsClient) Save(ctx context.Context, sreq SaveProjectRequest) (*ProjectSummary, error) {
	jsonData, err := json.Marshal(sreq)
	if err != nil {
		return nil, fmt.Errorf("marshaling project: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/v1/projects", bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling project store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("project store returned status %d", resp.StatusCode)
	}

	var summary ProjectSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &summary, nil
}

// Load fetches one full project. The summary's total_cost is authoritative:
// committed adjustments are written to the summary row at save time, so a
// disagreeing nested quote total is overwritten with the summary's value.
func (c *ProjectsClient) Load(ctx context.Context, id string) (*LoadedProject, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/api/v1/projects/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling project store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("project store returned status %d", resp.StatusCode)
	}

	var loaded LoadedProject
	if err := json.NewDecoder(resp.Body).Decode(&loaded); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if loaded.Quote != nil && loaded.Quote.TotalCost != loaded.Summary.TotalCost {
		loaded.Quote.TotalCost = loaded.Summary.TotalCost
	}
	return &loaded, nil
}

// Delete removes one project.
func (c *ProjectsClient) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, "DELETE", c.baseURL+"/api/v1/projects/"+id, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling project store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("project store returned status %d", resp.StatusCode)
	}
	return nil
}

// BulkDelete removes the given projects concurrently and joins the results.
// Succeeded deletions are never rolled back; if only some calls fail the
// returned error is a PartialFailure reporting "N of M succeeded".
func (c *ProjectsClient) BulkDelete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	errs := make([]error, len(ids))
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			errs[i] = c.Delete(ctx, id)
		}(i, id)
	}
	wg.Wait()

	var failures []error
	for _, err := range errs {
		if err != nil {
			failures = append(failures, err)
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return &services.PartialFailure{
		Succeeded: len(ids) - len(failures),
		Total:     len(ids),
		Errs:      failures,
	}
}
