package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"renoquote/clients"
	"renoquote/testhelpers"
)

func TestHandleGeocode_MissingQuery(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleGeocode(app, clients.NewGeocodeClient("http://unused"))
	req := httptest.NewRequest(http.MethodGet, "/geocode", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without a query, got %d", rec.Code)
	}
}

func TestHandleGeocode_ReturnsCandidates(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "12 High St" {
			t.Errorf("unexpected query %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"display_name":"12 High St, Sydney","lat":"-33.86","lon":"151.21"}]`))
	}))
	defer server.Close()

	handler := HandleGeocode(app, clients.NewGeocodeClient(server.URL))
	req := httptest.NewRequest(http.MethodGet, "/geocode?q=12+High+St", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	out := decodeJSON(t, rec)
	results, ok := out["results"].([]any)
	if !ok || len(results) != 1 {
		t.Fatalf("expected one candidate, got %v", out["results"])
	}
}
