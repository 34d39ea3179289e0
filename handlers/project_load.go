package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/clients"
)

// HandleProjectLoad pulls a saved project back into the session: the stored
// client info replaces the session's, and the stored quote becomes the
// active quote with a fresh adjustment session on top.
func HandleProjectLoad(app *pocketbase.PocketBase, projects *clients.ProjectsClient) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		projectID := e.Request.PathValue("id")
		if projectID == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "missing project id"})
		}

		loaded, err := projects.Load(e.Request.Context(), projectID)
		if err != nil {
			log.Printf("project_load: could not load project %s: %v", projectID, err)
			return e.JSON(http.StatusBadGateway, map[string]string{
				"error": "project store unavailable",
			})
		}
		if loaded.Quote == nil {
			return e.JSON(http.StatusNotFound, map[string]string{
				"error": "saved project has no quote",
			})
		}

		if loaded.RequestData != nil {
			sess.Client = loaded.RequestData.ClientInfo
		}
		sess.AttachQuote(loaded.Quote)
		recordEdit(app, sess)

		return e.JSON(http.StatusOK, map[string]any{
			"project": loaded.Summary,
			"quote":   loaded.Quote,
		})
	}
}
