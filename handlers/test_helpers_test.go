package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/services"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// withSession injects a session into the request context the same way the
// middleware does.
func withSession(req *http.Request, sess *services.Session) *http.Request {
	ctx := context.WithValue(req.Context(), SessionKey, sess)
	return req.WithContext(ctx)
}

// jsonRequest builds a request with a JSON body.
func jsonRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// jsonDecode reads a JSON request body into dst.
func jsonDecode(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// decodeJSON unmarshals a recorded response body into a generic map.
func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not valid JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return out
}

// sessionWithQuote returns a session holding a valid measured area and an
// attached three-line quote totalling 15000.
func sessionWithQuote(t *testing.T) *services.Session {
	t.Helper()

	sess := services.NewSession()
	area := sess.Areas.Current()
	area.Measurements.Length = "3500"
	area.Measurements.Width = "2500"
	area.Measurements.Height = "2400"
	sess.Client = services.ClientInfo{Name: "Dana Smith", Email: "dana@example.com"}

	sess.AttachQuote(&services.Quote{
		ID: "q-handler-1",
		CostBreakdown: []services.CostLineItem{
			{Component: "tiling", EstimatedCost: 6000, Description: "Floor and wall tiling"},
			{Component: "plumbing", EstimatedCost: 5000, Description: "Rough-in and fit-off"},
			{Component: "painting", EstimatedCost: 4000, Description: "Walls and ceiling"},
		},
		TotalCost: 15000,
	})
	return sess
}
