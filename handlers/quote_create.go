package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/clients"
	"renoquote/services"
)

// HandleQuoteCreate validates the session, builds the estimation request,
// and attaches the resulting quote to the current area. Validation failures
// are reported before any network call is made.
func HandleQuoteCreate(app *pocketbase.PocketBase, est *clients.EstimationClient) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess, err := requireSession(e)
		if sess == nil {
			return err
		}

		req, err := services.BuildQuoteRequest(sess.Client, sess.Areas, sess.Extra)
		if err != nil {
			return serviceError(e, err)
		}

		resp, err := est.RequestQuote(e.Request.Context(), req)
		if err != nil {
			log.Printf("quote_create: estimation request failed: %v", err)
			return e.JSON(http.StatusBadGateway, map[string]string{
				"error": "estimation service unavailable",
			})
		}

		sess.AttachQuote(resp.Quote)
		log.Printf("quote_create: quote %s attached to session %s (total %.2f)",
			resp.Quote.ID, sess.ID, resp.Quote.TotalCost)

		out := map[string]any{"quote": resp.Quote}
		if len(resp.LearningInfo) > 0 {
			out["learning_info"] = resp.LearningInfo
		}
		return e.JSON(http.StatusOK, out)
	}
}
