package collections

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// SaveDraft upserts the snapshot for one session. Each session keeps a
// single draft row; a new snapshot replaces the previous one.
func SaveDraft(app *pocketbase.PocketBase, sessionID, snapshot string) error {
	col, err := app.FindCollectionByNameOrId("drafts")
	if err != nil {
		return fmt.Errorf("drafts collection not found: %w", err)
	}

	existing, _ := app.FindRecordsByFilter("drafts", "session = {:session}", "", 1, 0,
		map[string]any{"session": sessionID})

	var record *core.Record
	if len(existing) > 0 {
		record = existing[0]
	} else {
		record = core.NewRecord(col)
		record.Set("session", sessionID)
	}
	record.Set("snapshot", snapshot)

	if err := app.Save(record); err != nil {
		return fmt.Errorf("could not save draft: %w", err)
	}
	return nil
}

// LoadDraft returns the stored snapshot for a session, or "" when none
// exists.
func LoadDraft(app *pocketbase.PocketBase, sessionID string) (string, error) {
	records, err := app.FindRecordsByFilter("drafts", "session = {:session}", "", 1, 0,
		map[string]any{"session": sessionID})
	if err != nil || len(records) == 0 {
		return "", nil
	}
	return records[0].GetString("snapshot"), nil
}

// PruneDrafts deletes drafts that have not been touched within maxAge.
// Drafts are a redundant safety net next to server saves, so stale ones are
// just noise.
func PruneDrafts(app *pocketbase.PocketBase, maxAge time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-maxAge).Format("2006-01-02 15:04:05.000Z")
	records, err := app.FindRecordsByFilter("drafts", "updated < {:cutoff}", "", 0, 0,
		map[string]any{"cutoff": cutoff})
	if err != nil {
		return 0, fmt.Errorf("could not list stale drafts: %w", err)
	}

	pruned := 0
	for _, rec := range records {
		if err := app.Delete(rec); err != nil {
			return pruned, fmt.Errorf("could not delete draft %s: %w", rec.Id, err)
		}
		pruned++
	}
	return pruned, nil
}
