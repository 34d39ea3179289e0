package services

import (
	"math"
	"strings"
	"testing"
	"time"
)

func exportFixture(t *testing.T) (*Session, *Adjustment) {
	t.Helper()
	sess := NewSession()
	sess.Client = ClientInfo{Name: "Jan Kowalski", Email: "jan@example.com"}
	sess.Areas.Areas()[0].Measurements = Measurements{Length: "3500", Width: "2500", Height: "2400"}
	if err := sess.Areas.ToggleSubtask(0, "tiling", "floor_tiles", true); err != nil {
		t.Fatal(err)
	}
	if err := sess.Areas.ToggleSubtask(0, "tiling", "wall_tiles", true); err != nil {
		t.Fatal(err)
	}
	sess.AttachQuote(testQuote())
	return sess, sess.Adjustment
}

func TestBuildQuoteExport_UsesReconciledCosts(t *testing.T) {
	sess, adj := exportFixture(t)
	if err := adj.SetOverride(0, 6600); err != nil {
		t.Fatal(err)
	}

	now := time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)
	data := BuildQuoteExport(adj, sess.Client, sess.Areas, now)

	if data.Rows[0].Cost != 6600 {
		t.Errorf("row cost = %v, want session override 6600", data.Rows[0].Cost)
	}
	if !data.Rows[0].Adjusted {
		t.Error("overridden row should be flagged adjusted")
	}
	if data.Rows[1].Cost != 5000 || data.Rows[1].Adjusted {
		t.Errorf("untouched row changed: %+v", data.Rows[1])
	}
	wantTotal := 6600.0 + 5000 + 4000
	if math.Abs(data.Total-wantTotal) > 0.001 {
		t.Errorf("export total = %v, want effective total %v", data.Total, wantTotal)
	}
}

func TestBuildQuoteExport_Metadata(t *testing.T) {
	sess, adj := exportFixture(t)

	now := time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)
	data := BuildQuoteExport(adj, sess.Client, sess.Areas, now)

	if data.ClientName != "Jan Kowalski" {
		t.Errorf("client name = %q", data.ClientName)
	}
	if !strings.HasPrefix(data.ReferenceNumber, "RQ-20260502-") {
		t.Errorf("unexpected reference: %q", data.ReferenceNumber)
	}
	if len(data.AreaNames) != 1 || data.AreaNames[0] != "Bathroom 1" {
		t.Errorf("unexpected area names: %v", data.AreaNames)
	}
	if math.Abs(data.TotalFloorArea-8.75) > 0.001 {
		t.Errorf("floor area = %v, want 8.75", data.TotalFloorArea)
	}

	// Scope subtasks come from the merged selection.
	if len(data.Rows[0].Subtasks) != 2 {
		t.Errorf("expected 2 tiling subtasks, got %v", data.Rows[0].Subtasks)
	}
	// Plumbing is in the quote but not selected anywhere; no subtasks listed.
	if len(data.Rows[1].Subtasks) != 0 {
		t.Errorf("expected no plumbing subtasks, got %v", data.Rows[1].Subtasks)
	}
}

func TestFormatQuoteRef(t *testing.T) {
	ref := FormatQuoteRef("abcdef", time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
	if ref != "RQ-20260831-abcd" {
		t.Errorf("FormatQuoteRef = %q", ref)
	}

	short := FormatQuoteRef("x1", time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
	if short != "RQ-20260831-x1" {
		t.Errorf("FormatQuoteRef short id = %q", short)
	}
}
