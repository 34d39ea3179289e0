package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func HandleAreaSelect(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		if err := sess.Areas.SetCurrent(areaIndex(e)); err != nil {
			return serviceError(e, err)
		}

		return e.JSON(http.StatusOK, map[string]any{
			"current_index": sess.Areas.CurrentIndex(),
			"area":          sess.Areas.Current(),
		})
	}
}
