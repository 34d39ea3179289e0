package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/services"
)

// learningSubmitter is the slice of LearningClient the outbox needs.
type learningSubmitter interface {
	Submit(ctx context.Context, rec services.LearningRecord) error
}

// LearningOutbox is a durable queue of unsent learning records, backed by
// the learning_outbox collection. Commits enqueue and return immediately;
// delivery happens from a background drain loop with exponential backoff.
// Delivery failures never block or reverse a cost commit.
type LearningOutbox struct {
	app       *pocketbase.PocketBase
	submitter learningSubmitter
	baseDelay time.Duration
}

// NewLearningOutbox creates an outbox that delivers through the given
// submitter.
func NewLearningOutbox(app *pocketbase.PocketBase, submitter learningSubmitter) *LearningOutbox {
	return &LearningOutbox{
		app:       app,
		submitter: submitter,
		baseDelay: 30 * time.Second,
	}
}

// Enqueue persists the records for later delivery. Enqueue failures are
// reported but the caller's commit is already final either way.
func (o *LearningOutbox) Enqueue(records []services.LearningRecord) error {
	if len(records) == 0 {
		return nil
	}
	col, err := o.app.FindCollectionByNameOrId("learning_outbox")
	if err != nil {
		return fmt.Errorf("learning_outbox collection not found: %w", err)
	}

	var firstErr error
	for _, rec := range records {
		payload, err := json.Marshal(rec)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		row := core.NewRecord(col)
		row.Set("record_id", rec.ID)
		row.Set("quote", rec.QuoteID)
		row.Set("component", rec.Component)
		row.Set("payload", string(payload))
		row.Set("attempts", 0)
		row.Set("next_attempt", time.Now().UTC().Format(time.RFC3339))
		if err := o.app.Save(row); err != nil {
			log.Printf("outbox: could not enqueue learning record %s: %v", rec.ID, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// DrainOnce attempts delivery of every due record. Delivered records are
// removed; failures get their attempt count bumped and the next attempt
// pushed out exponentially.
func (o *LearningOutbox) DrainOnce(ctx context.Context) (sent, failed int) {
	rows, err := o.app.FindRecordsByFilter(
		"learning_outbox",
		"next_attempt <= {:now}",
		"next_attempt",
		50,
		0,
		map[string]any{"now": time.Now().UTC().Format(time.RFC3339)},
	)
	if err != nil {
		return 0, 0
	}

	for _, row := range rows {
		var rec services.LearningRecord
		if err := json.Unmarshal([]byte(row.GetString("payload")), &rec); err != nil {
			log.Printf("outbox: dropping malformed record %s: %v", row.Id, err)
			if err := o.app.Delete(row); err != nil {
				log.Printf("outbox: could not delete malformed record %s: %v", row.Id, err)
			}
			continue
		}

		if err := o.submitter.Submit(ctx, rec); err != nil {
			attempts := int(row.GetFloat("attempts")) + 1
			delay := o.baseDelay * time.Duration(1<<min(attempts, 6))
			row.Set("attempts", attempts)
			row.Set("next_attempt", time.Now().UTC().Add(delay).Format(time.RFC3339))
			if err := o.app.Save(row); err != nil {
				log.Printf("outbox: could not reschedule record %s: %v", row.Id, err)
			}
			failed++
			continue
		}

		if err := o.app.Delete(row); err != nil {
			log.Printf("outbox: delivered but could not delete record %s: %v", row.Id, err)
		}
		sent++
	}
	return sent, failed
}

// Start runs the drain loop until the context is cancelled.
func (o *LearningOutbox) Start(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if sent, failed := o.DrainOnce(ctx); sent > 0 || failed > 0 {
					log.Printf("outbox: drained %d record(s), %d failed", sent, failed)
				}
			}
		}
	}()
}
