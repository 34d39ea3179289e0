package services

import "github.com/google/uuid"

// LearningContext carries the session details stamped onto every learning
// record produced by one commit.
type LearningContext struct {
	UserID      string
	ProjectSize float64 // primary area floor area in square metres
	Location    string
	Notes       string
}

// BuildLearningRecords converts the line items changed by a commit into the
// learning signal sent back to the estimation service, one record per
// changed item. No-op edits never reach this function: Commit already skips
// overrides equal to the current estimate.
func BuildLearningRecords(quoteID string, changes []CostChange, ctx LearningContext) []LearningRecord {
	records := make([]LearningRecord, 0, len(changes))
	for _, ch := range changes {
		records = append(records, LearningRecord{
			ID:              uuid.NewString(),
			QuoteID:         quoteID,
			UserID:          ctx.UserID,
			Component:       ch.Component,
			OriginalCost:    ch.OriginalCost,
			AdjustedCost:    ch.AdjustedCost,
			AdjustmentRatio: ch.Ratio,
			ProjectSize:     ctx.ProjectSize,
			Location:        ctx.Location,
			Notes:           ctx.Notes,
		})
	}
	return records
}
