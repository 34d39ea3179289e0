package services

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestBuildQuoteRequest_RequiresClientDetails(t *testing.T) {
	s := validArea(t)
	if err := s.ToggleComponent(0, "tiling", true); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		client ClientInfo
		fields []string
	}{
		{"missing both", ClientInfo{}, []string{"name", "email"}},
		{"missing email", ClientInfo{Name: "Jan Kowalski"}, []string{"email"}},
		{"missing name", ClientInfo{Email: "jan@example.com"}, []string{"name"}},
		{"blank name", ClientInfo{Name: "   ", Email: "jan@example.com"}, []string{"name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildQuoteRequest(tt.client, s, nil)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			for _, f := range tt.fields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("expected field error for %q, got %v", f, verr.Fields)
				}
			}
		})
	}
}

func TestBuildQuoteRequest_FailsFastOnSelectionErrors(t *testing.T) {
	client := ClientInfo{Name: "Jan", Email: "jan@example.com"}

	noMeasurements := NewAreaStore("Bathroom")
	if err := noMeasurements.ToggleComponent(0, "tiling", true); err != nil {
		t.Fatal(err)
	}
	if _, err := BuildQuoteRequest(client, noMeasurements, nil); !errors.Is(err, ErrNoValidAreas) {
		t.Errorf("expected ErrNoValidAreas, got %v", err)
	}

	noSelection := validArea(t)
	if _, err := BuildQuoteRequest(client, noSelection, nil); !errors.Is(err, ErrNoComponents) {
		t.Errorf("expected ErrNoComponents, got %v", err)
	}
}

func TestSelectPrimaryArea_FirstValidWins(t *testing.T) {
	s := NewAreaStore("Bathroom") // invalid, no measurements
	s.AddArea("Ensuite")
	s.Areas()[1].Measurements = Measurements{Length: "3500", Width: "2500", Height: "2400"}
	s.AddArea("Laundry")
	s.Areas()[2].Measurements = Measurements{Length: "2000", Width: "1500", Height: "2400"}

	primary, ok := SelectPrimaryArea(s.Areas())
	if !ok {
		t.Fatal("expected a primary area")
	}
	if primary.Type != "Ensuite" {
		t.Errorf("expected first valid area (Ensuite), got %q", primary.Type)
	}

	if _, ok := SelectPrimaryArea([]*Area{{}}); ok {
		t.Error("expected no primary area when none are valid")
	}
}

func TestBuildQuoteRequest_EndToEnd(t *testing.T) {
	// Two valid areas, one distinct component with one subtask each.
	s := NewAreaStore("Bathroom")
	s.Areas()[0].Measurements = Measurements{Length: "3500", Width: "2500", Height: "2400"}
	s.AddArea("Ensuite")
	s.Areas()[1].Measurements = Measurements{Length: "2000", Width: "1500", Height: "2400"}

	if err := s.ToggleSubtask(0, "tiling", "floor_tiles", true); err != nil {
		t.Fatal(err)
	}
	if err := s.ToggleSubtask(1, "plumbing", "rough_in", true); err != nil {
		t.Fatal(err)
	}

	client := ClientInfo{Name: "Jan Kowalski", Email: "jan@example.com"}
	req, err := BuildQuoteRequest(client, s, nil)
	if err != nil {
		t.Fatalf("BuildQuoteRequest failed: %v", err)
	}

	if len(req.Components) != 2 {
		t.Errorf("expected exactly 2 enabled components, got %d: %v",
			len(req.Components), req.Components)
	}
	if !req.Components["tiling"] || !req.Components["plumbing"] {
		t.Errorf("unexpected component set: %v", req.Components)
	}

	// Primary area is the first valid one (Area A), in metres.
	if math.Abs(req.RoomMeasurements.Length-3.5) > 0.001 ||
		math.Abs(req.RoomMeasurements.Width-2.5) > 0.001 ||
		math.Abs(req.RoomMeasurements.Height-2.4) > 0.001 {
		t.Errorf("expected primary measurements 3.5x2.5x2.4, got %+v", req.RoomMeasurements)
	}

	if !strings.Contains(req.Notes, "2 area(s)") {
		t.Errorf("notes should summarise area count, got %q", req.Notes)
	}
	if !strings.Contains(req.Notes, "Bathroom 1") || !strings.Contains(req.Notes, "Ensuite 2") {
		t.Errorf("notes should name areas, got %q", req.Notes)
	}
}

func TestBuildQuoteRequest_UsesPrimaryAreaTaskOptions(t *testing.T) {
	s := NewAreaStore("Bathroom")
	s.Areas()[0].Measurements = Measurements{Length: "3500", Width: "2500", Height: "2400"}
	if err := s.SetTaskOption(0, "tile_grade", "premium"); err != nil {
		t.Fatal(err)
	}
	if err := s.ToggleComponent(0, "tiling", true); err != nil {
		t.Fatal(err)
	}

	req, err := BuildQuoteRequest(ClientInfo{Name: "Jan", Email: "jan@example.com"}, s, nil)
	if err != nil {
		t.Fatalf("BuildQuoteRequest failed: %v", err)
	}
	if req.TaskOptions["tile_grade"] != "premium" {
		t.Errorf("expected primary area task options, got %v", req.TaskOptions)
	}
}

func TestBuildRequestNotes_IncludesAreaNotes(t *testing.T) {
	s := validArea(t)
	if err := s.SetNotes(0, "existing tiles are asbestos-backed"); err != nil {
		t.Fatal(err)
	}

	notes := buildRequestNotes(s)
	if !strings.Contains(notes, "asbestos-backed") {
		t.Errorf("area notes missing from request notes: %q", notes)
	}
	if !strings.Contains(notes, "8.75") {
		t.Errorf("total floor area missing from request notes: %q", notes)
	}
}
