package handlers

import (
	"errors"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/services"
)

// HandleComponentToggle enables or disables one renovation component on one
// area. Disabling a component also clears its subtasks.
func HandleComponentToggle(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		var body struct {
			Enabled bool `json:"enabled"`
		}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		idx := areaIndex(e)
		key := e.Request.PathValue("key")
		if err := sess.Areas.ToggleComponent(idx, key, body.Enabled); err != nil {
			if errors.Is(err, services.ErrOutOfRange) {
				return serviceError(e, err)
			}
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		recordEdit(app, sess)

		return e.JSON(http.StatusOK, map[string]any{
			"component": key,
			"selection": sess.Areas.Areas()[idx].Components[key],
		})
	}
}

// HandleSubtaskToggle enables or disables one subtask. Enabling a subtask
// under a disabled component switches the component on as well.
func HandleSubtaskToggle(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		var body struct {
			Enabled bool `json:"enabled"`
		}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		idx := areaIndex(e)
		key := e.Request.PathValue("key")
		sub := e.Request.PathValue("sub")
		if err := sess.Areas.ToggleSubtask(idx, key, sub, body.Enabled); err != nil {
			if errors.Is(err, services.ErrOutOfRange) {
				return serviceError(e, err)
			}
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		recordEdit(app, sess)

		return e.JSON(http.StatusOK, map[string]any{
			"component": key,
			"subtask":   sub,
			"selection": sess.Areas.Areas()[idx].Components[key],
		})
	}
}
