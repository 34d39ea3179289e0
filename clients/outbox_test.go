package clients_test

import (
	"context"
	"errors"
	"testing"

	"renoquote/clients"
	"renoquote/services"
	"renoquote/testhelpers"
)

// fakeSubmitter records submitted learning records and optionally fails.
type fakeSubmitter struct {
	submitted []services.LearningRecord
	err       error
}

func (f *fakeSubmitter) Submit(_ context.Context, rec services.LearningRecord) error {
	if f.err != nil {
		return f.err
	}
	f.submitted = append(f.submitted, rec)
	return nil
}

func TestOutboxEnqueue_PersistsRecords(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	outbox := clients.NewLearningOutbox(app, &fakeSubmitter{})

	records := []services.LearningRecord{
		{ID: "lr-1", QuoteID: "q-1", Component: "tiling", OriginalCost: 6000, AdjustedCost: 6600, AdjustmentRatio: 1.1},
		{ID: "lr-2", QuoteID: "q-1", Component: "plumbing", OriginalCost: 5000, AdjustedCost: 4500, AdjustmentRatio: 0.9},
	}
	if err := outbox.Enqueue(records); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}

	rows, err := app.FindRecordsByFilter("learning_outbox", "quote = {:q}", "", 0, 0,
		map[string]any{"q": "q-1"})
	if err != nil {
		t.Fatalf("failed to list outbox rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 outbox rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.GetFloat("attempts") != 0 {
			t.Errorf("new row should start at 0 attempts, got %v", row.GetFloat("attempts"))
		}
		if row.GetString("payload") == "" {
			t.Error("row payload should not be empty")
		}
	}
}

func TestOutboxEnqueue_EmptyIsNoop(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	outbox := clients.NewLearningOutbox(app, &fakeSubmitter{})

	if err := outbox.Enqueue(nil); err != nil {
		t.Fatalf("Enqueue(nil) should succeed, got %v", err)
	}
}

func TestOutboxDrainOnce_DeliversAndDeletes(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	sub := &fakeSubmitter{}
	outbox := clients.NewLearningOutbox(app, sub)

	testhelpers.CreateTestOutboxRecord(t, app, "lr-10",
		`{"id":"lr-10","quote_id":"q-test","component":"tiling","original_cost":6000,"adjusted_cost":6600,"adjustment_ratio":1.1}`)

	sent, failed := outbox.DrainOnce(context.Background())
	if sent != 1 || failed != 0 {
		t.Fatalf("expected 1 sent, 0 failed; got %d sent, %d failed", sent, failed)
	}
	if len(sub.submitted) != 1 || sub.submitted[0].ID != "lr-10" {
		t.Fatalf("submitter did not receive the record: %+v", sub.submitted)
	}

	rows, _ := app.FindRecordsByFilter("learning_outbox", "record_id = {:id}", "", 0, 0,
		map[string]any{"id": "lr-10"})
	if len(rows) != 0 {
		t.Errorf("delivered row should have been deleted, %d remain", len(rows))
	}
}

func TestOutboxDrainOnce_FailureReschedulesWithBackoff(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	sub := &fakeSubmitter{err: errors.New("learning endpoint down")}
	outbox := clients.NewLearningOutbox(app, sub)

	row := testhelpers.CreateTestOutboxRecord(t, app, "lr-20",
		`{"id":"lr-20","quote_id":"q-test","component":"plumbing","original_cost":5000,"adjusted_cost":4500,"adjustment_ratio":0.9}`)
	before := row.GetString("next_attempt")

	sent, failed := outbox.DrainOnce(context.Background())
	if sent != 0 || failed != 1 {
		t.Fatalf("expected 0 sent, 1 failed; got %d sent, %d failed", sent, failed)
	}

	updated, err := app.FindRecordById("learning_outbox", row.Id)
	if err != nil {
		t.Fatalf("failed row should still exist: %v", err)
	}
	if got := updated.GetFloat("attempts"); got != 1 {
		t.Errorf("expected attempts=1 after one failure, got %v", got)
	}
	if after := updated.GetString("next_attempt"); after <= before {
		t.Errorf("next_attempt should move into the future: %q -> %q", before, after)
	}

	// A second drain before next_attempt is due must not retry.
	sent, failed = outbox.DrainOnce(context.Background())
	if sent != 0 || failed != 0 {
		t.Errorf("not-yet-due row should be skipped, got %d sent, %d failed", sent, failed)
	}
}

func TestOutboxDrainOnce_DropsMalformedPayload(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	sub := &fakeSubmitter{}
	outbox := clients.NewLearningOutbox(app, sub)

	row := testhelpers.CreateTestOutboxRecord(t, app, "lr-30", "{not json")

	sent, failed := outbox.DrainOnce(context.Background())
	if sent != 0 || failed != 0 {
		t.Errorf("malformed row counts as neither sent nor failed, got %d/%d", sent, failed)
	}
	if _, err := app.FindRecordById("learning_outbox", row.Id); err == nil {
		t.Error("malformed row should have been deleted")
	}
	if len(sub.submitted) != 0 {
		t.Errorf("nothing should have been submitted, got %+v", sub.submitted)
	}
}
