package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/services"
)

// HandleExtraSelection replaces the session's secondary component selection,
// the quick-quote form that is merged after every area. Posting an empty
// object clears it.
func HandleExtraSelection(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		var body map[string]*services.ComponentSelection
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		if err := services.ValidateSelection(body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		// Enforce the same invariant the areas carry: a disabled component
		// holds no enabled subtasks.
		for _, sel := range body {
			if sel == nil || sel.Enabled {
				continue
			}
			for sub := range sel.Subtasks {
				sel.Subtasks[sub] = false
			}
		}

		if len(body) == 0 {
			sess.Extra = nil
		} else {
			sess.Extra = body
		}
		recordEdit(app, sess)

		return e.JSON(http.StatusOK, map[string]any{"extra": sess.Extra})
	}
}
