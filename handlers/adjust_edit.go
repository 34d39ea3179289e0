package handlers

import (
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/services"
)

// lineIndex parses the {index} path value for a cost line item.
func lineIndex(e *core.RequestEvent) int {
	idx, err := strconv.Atoi(e.Request.PathValue("index"))
	if err != nil {
		return -1
	}
	return idx
}

// HandleAdjustmentSet records a session override for one cost line item.
// The override lives only in the session until the user commits.
func HandleAdjustmentSet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		adj, err := sess.RequireQuote("set adjustment")
		if err != nil {
			return serviceError(e, err)
		}

		var body struct {
			Cost float64 `json:"cost"`
		}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		if body.Cost < 0 {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "cost must not be negative"})
		}

		idx := lineIndex(e)
		if err := adj.SetOverride(idx, body.Cost); err != nil {
			return serviceError(e, err)
		}

		return e.JSON(http.StatusOK, map[string]any{
			"index":           idx,
			"effective_cost":  adj.EffectiveCost(idx),
			"effective_total": adj.EffectiveTotal(),
		})
	}
}

// HandleAdjustmentClear removes one session override, restoring the saved
// or estimated cost for that line.
func HandleAdjustmentClear(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		adj, err := sess.RequireQuote("clear adjustment")
		if err != nil {
			return serviceError(e, err)
		}

		idx := lineIndex(e)
		if idx < 0 || idx >= len(adj.Quote().CostBreakdown) {
			return serviceError(e, services.ErrOutOfRange)
		}
		adj.ClearOverride(idx)

		return e.JSON(http.StatusOK, map[string]any{
			"index":           idx,
			"effective_cost":  adj.EffectiveCost(idx),
			"effective_total": adj.EffectiveTotal(),
		})
	}
}

// HandleAdjustmentCancel discards every pending override in the session.
func HandleAdjustmentCancel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		adj, err := sess.RequireQuote("cancel adjustments")
		if err != nil {
			return serviceError(e, err)
		}

		adj.Cancel()
		return e.JSON(http.StatusOK, map[string]any{
			"effective_total": adj.EffectiveTotal(),
		})
	}
}
