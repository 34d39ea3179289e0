package handlers

import (
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// areaIndex parses the {index} path value. A non-numeric value maps to -1,
// which the store rejects as out of range.
func areaIndex(e *core.RequestEvent) int {
	idx, err := strconv.Atoi(e.Request.PathValue("index"))
	if err != nil {
		return -1
	}
	return idx
}

func HandleAreaDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		if err := sess.Areas.RemoveArea(areaIndex(e)); err != nil {
			return serviceError(e, err)
		}
		recordEdit(app, sess)

		return e.JSON(http.StatusOK, map[string]any{
			"current_index": sess.Areas.CurrentIndex(),
			"area_count":    len(sess.Areas.Areas()),
		})
	}
}
