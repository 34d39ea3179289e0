package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/services"
)

// HandleSessionView returns the full session snapshot: client details,
// areas with the current selection, aggregate floor/wall totals, and the
// active quote with its reconciled total when one exists.
func HandleSessionView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		valid := sess.Areas.ValidAreas()
		resp := map[string]any{
			"session_id":       sess.ID,
			"client":           sess.Client,
			"areas":            sess.Areas.Areas(),
			"current_index":    sess.Areas.CurrentIndex(),
			"valid_area_count": len(valid),
			"total_floor_area": services.TotalFloorArea(valid),
			"total_wall_area":  services.TotalWallArea(valid),
		}

		if sess.Adjustment != nil {
			resp["quote"] = sess.Adjustment.Quote()
			resp["effective_total"] = sess.Adjustment.EffectiveTotal()
			resp["has_unsaved_edits"] = sess.Adjustment.HasEdits()
		}

		return e.JSON(http.StatusOK, resp)
	}
}
