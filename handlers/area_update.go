package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/services"
)

// HandleAreaUpdate patches one area: any combination of a measurement field,
// notes, or a task option. Unknown measurement fields are rejected by the
// store.
func HandleAreaUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		var body struct {
			Measurement *struct {
				Field string `json:"field"`
				Value string `json:"value"`
			} `json:"measurement,omitempty"`
			Notes      *string `json:"notes,omitempty"`
			TaskOption *struct {
				Key   string `json:"key"`
				Value string `json:"value"`
			} `json:"task_option,omitempty"`
		}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		idx := areaIndex(e)
		areas := sess.Areas.Areas()
		if idx < 0 || idx >= len(areas) {
			return serviceError(e, services.ErrOutOfRange)
		}
		if body.Measurement != nil {
			if err := sess.Areas.UpdateMeasurement(idx, body.Measurement.Field, body.Measurement.Value); err != nil {
				return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
		}
		if body.Notes != nil {
			if err := sess.Areas.SetNotes(idx, *body.Notes); err != nil {
				return serviceError(e, err)
			}
		}
		if body.TaskOption != nil {
			if err := sess.Areas.SetTaskOption(idx, body.TaskOption.Key, body.TaskOption.Value); err != nil {
				return serviceError(e, err)
			}
		}
		recordEdit(app, sess)

		return e.JSON(http.StatusOK, map[string]any{
			"area": areas[idx],
		})
	}
}
