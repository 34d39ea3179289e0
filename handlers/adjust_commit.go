package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/clients"
	"renoquote/services"
)

// HandleAdjustmentCommit flushes the session overrides into the quote and
// enqueues one learning record per changed line. The commit is final once
// the overrides are applied; learning delivery happens asynchronously from
// the outbox and can never undo it.
func HandleAdjustmentCommit(app *pocketbase.PocketBase, outbox *clients.LearningOutbox, userID string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		adj, err := sess.RequireQuote("commit adjustments")
		if err != nil {
			return serviceError(e, err)
		}

		changes := adj.Commit()
		quote := adj.Quote()

		if len(changes) > 0 {
			records := services.BuildLearningRecords(quote.ID, changes, sess.LearningContext(userID))
			if err := outbox.Enqueue(records); err != nil {
				log.Printf("adjust_commit: could not enqueue %d learning record(s): %v", len(records), err)
			}
		}

		log.Printf("adjust_commit: committed %d change(s) on quote %s (total %.2f)",
			len(changes), quote.ID, quote.TotalCost)

		return e.JSON(http.StatusOK, map[string]any{
			"quote":         quote,
			"changed_count": len(changes),
		})
	}
}
