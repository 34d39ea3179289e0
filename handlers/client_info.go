package handlers

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/services"
)

// HandleClientInfo sets the customer details on the session. Only name and
// email are ever required, and only at quote time; partial saves here are
// fine.
func HandleClientInfo(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		var body services.ClientInfo
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}

		sess.Client = services.ClientInfo{
			Name:    strings.TrimSpace(body.Name),
			Email:   strings.TrimSpace(body.Email),
			Phone:   strings.TrimSpace(body.Phone),
			Address: strings.TrimSpace(body.Address),
		}
		recordEdit(app, sess)

		return e.JSON(http.StatusOK, map[string]any{"client": sess.Client})
	}
}
