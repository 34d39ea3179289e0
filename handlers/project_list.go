package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/clients"
)

func HandleProjectList(app *pocketbase.PocketBase, projects *clients.ProjectsClient) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		summaries, err := projects.List(e.Request.Context())
		if err != nil {
			log.Printf("project_list: could not list projects: %v", err)
			return e.JSON(http.StatusBadGateway, map[string]string{
				"error": "project store unavailable",
			})
		}
		return e.JSON(http.StatusOK, map[string]any{"projects": summaries})
	}
}
