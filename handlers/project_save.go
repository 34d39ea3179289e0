package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/clients"
	"renoquote/services"
)

// HandleProjectSave persists the session's quote to the project store. The
// saved total is the reconciled total, so a later list view shows the costs
// the user actually settled on.
func HandleProjectSave(app *pocketbase.PocketBase, projects *clients.ProjectsClient) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		adj, err := sess.RequireQuote("save project")
		if err != nil {
			return serviceError(e, err)
		}

		var body struct {
			ProjectName string `json:"project_name"`
			Category    string `json:"category"`
		}
		if err := e.BindBody(&body); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		}
		if strings.TrimSpace(body.ProjectName) == "" {
			return e.JSON(http.StatusBadRequest, map[string]any{
				"error":  "validation failed",
				"fields": map[string]string{"project_name": "Project name is required"},
			})
		}

		req, err := services.BuildQuoteRequest(sess.Client, sess.Areas, sess.Extra)
		if err != nil {
			return serviceError(e, err)
		}

		summary, err := projects.Save(e.Request.Context(), clients.SaveProjectRequest{
			ProjectName: strings.TrimSpace(body.ProjectName),
			ClientName:  sess.Client.Name,
			Category:    body.Category,
			RequestData: req,
			QuoteID:     adj.Quote().ID,
			TotalCost:   adj.EffectiveTotal(),
		})
		if err != nil {
			log.Printf("project_save: could not save project: %v", err)
			return e.JSON(http.StatusBadGateway, map[string]string{
				"error": "project store unavailable",
			})
		}

		return e.JSON(http.StatusOK, map[string]any{"project": summary})
	}
}
