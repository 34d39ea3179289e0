// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestOutboxRecord inserts a learning_outbox row that is already due
// for delivery and returns it.
func CreateTestOutboxRecord(t *testing.T, app *pocketbase.PocketBase, recordID, payload string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("learning_outbox")
	if err != nil {
		t.Fatalf("failed to find learning_outbox collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("record_id", recordID)
	record.Set("quote", "q-test")
	record.Set("component", "tiling")
	record.Set("payload", payload)
	record.Set("attempts", 0)
	record.Set("next_attempt", "2000-01-01 00:00:00.000Z")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test outbox record: %v", err)
	}

	return record
}
