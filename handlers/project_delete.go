package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/clients"
	"renoquote/services"
)

// HandleProjectBulkDelete deletes the given projects from the store. The
// deletions fan out concurrently; when only some succeed the response says
// how many, and nothing is rolled back.
func HandleProjectBulkDelete(app *pocketbase.PocketBase, projects *clients.ProjectsClient) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var body struct {
			IDs []string `json:"ids"`
		}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		if len(body.IDs) == 0 {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "no project ids given"})
		}

		err := projects.BulkDelete(e.Request.Context(), body.IDs)
		if err == nil {
			return e.JSON(http.StatusOK, map[string]any{
				"deleted": len(body.IDs),
				"total":   len(body.IDs),
			})
		}

		var partial *services.PartialFailure
		if errors.As(err, &partial) {
			log.Printf("project_delete: %v", partial)
			return e.JSON(http.StatusMultiStatus, map[string]any{
				"deleted": partial.Succeeded,
				"total":   partial.Total,
				"error":   partial.Error(),
			})
		}

		log.Printf("project_delete: bulk delete failed: %v", err)
		return e.JSON(http.StatusBadGateway, map[string]string{
			"error": "project store unavailable",
		})
	}
}
