package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/clients"
)

// HandleGeocode resolves a free-text address to ranked candidates. The
// results only help the user pick a clean address; nothing downstream
// depends on this call succeeding.
func HandleGeocode(app *pocketbase.PocketBase, geo *clients.GeocodeClient) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		query := strings.TrimSpace(e.Request.URL.Query().Get("q"))
		if query == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "missing query"})
		}

		results, err := geo.Search(e.Request.Context(), query)
		if err != nil {
			log.Printf("geocode: lookup failed for %q: %v", query, err)
			return e.JSON(http.StatusBadGateway, map[string]string{
				"error": "geocoder unavailable",
			})
		}
		return e.JSON(http.StatusOK, map[string]any{"results": results})
	}
}
