package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDocumentsClient_Generate(t *testing.T) {
	var got DocumentRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/documents" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("invalid body: %v", err)
		}
		w.Write([]byte("%PDF-1.7 pretend document"))
	}))
	defer server.Close()

	total := 11600.0
	client := NewDocumentsClient(server.URL)
	doc, err := client.Generate(context.Background(), DocumentRequest{
		Kind:          DocumentQuoteSummary,
		QuoteID:       "q-1",
		AdjustedCosts: map[string]float64{"tiling": 6600},
		AdjustedTotal: &total,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(doc) == 0 {
		t.Fatal("empty document")
	}
	if got.Kind != DocumentQuoteSummary || got.AdjustedCosts["tiling"] != 6600 {
		t.Errorf("reconciled costs not forwarded: %+v", got)
	}
	if got.AdjustedTotal == nil || *got.AdjustedTotal != 11600 {
		t.Errorf("adjusted total not forwarded: %+v", got.AdjustedTotal)
	}
}

func TestDocumentsClient_EmptyDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewDocumentsClient(server.URL)
	if _, err := client.Generate(context.Background(), DocumentRequest{Kind: DocumentScopeOfWorks}); err == nil {
		t.Fatal("expected error for empty document body")
	}
}

func TestDocumentsClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewDocumentsClient(server.URL)
	if _, err := client.Generate(context.Background(), DocumentRequest{}); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}
