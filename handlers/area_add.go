package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleAreaAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		var body struct {
			Type string `json:"type"`
		}
		if e.Request.ContentLength > 0 {
			if err := e.BindBody(&body); err != nil {
				return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			}
		}

		area := sess.Areas.AddArea(body.Type)
		recordEdit(app, sess)

		return e.JSON(http.StatusOK, map[string]any{
			"area":          area,
			"current_index": sess.Areas.CurrentIndex(),
			"area_count":    len(sess.Areas.Areas()),
		})
	}
}
