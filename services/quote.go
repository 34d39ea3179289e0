package services

// CostLineItem is one component line in a quote's cost breakdown.
// OriginalCost, once set by the first committed adjustment, is never
// overwritten: it is the immutable baseline for ratio computation.
type CostLineItem struct {
	Component     string   `json:"component"`
	Description   string   `json:"description"`
	EstimatedCost float64  `json:"estimated_cost"`
	CostRangeMin  float64  `json:"cost_range_min"`
	CostRangeMax  float64  `json:"cost_range_max"`
	OriginalCost  *float64 `json:"original_cost,omitempty"`
	AdjustedCost  *float64 `json:"adjusted_cost,omitempty"`
}

// Quote is the estimation service's response. It is immutable except for the
// adjustment fields layered on by committed adjustment sessions.
type Quote struct {
	ID                string         `json:"id"`
	TotalCost         float64        `json:"total_cost"`
	CostBreakdown     []CostLineItem `json:"cost_breakdown"`
	OriginalTotalCost *float64       `json:"original_total_cost,omitempty"`
	AIAnalysis        string         `json:"ai_analysis"`
	ConfidenceLevel   string         `json:"confidence_level"`
	CreatedAt         string         `json:"created_at"`
}

// LearningRecord describes how a user's override diverged from the original
// estimate. Created once per changed line item per commit; never mutated.
type LearningRecord struct {
	ID              string  `json:"id"`
	QuoteID         string  `json:"quote_id"`
	UserID          string  `json:"user_id"`
	Component       string  `json:"component"`
	OriginalCost    float64 `json:"original_cost"`
	AdjustedCost    float64 `json:"adjusted_cost"`
	AdjustmentRatio float64 `json:"adjustment_ratio"`
	ProjectSize     float64 `json:"project_size"`
	Location        string  `json:"location"`
	Notes           string  `json:"notes"`
}

// ClientInfo holds the customer details attached to a quote request.
// Name and Email are required; the rest is optional enrichment.
type ClientInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}
