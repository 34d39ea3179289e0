package services

import (
	"errors"
	"testing"
)

func TestNewAreaStore_StartsWithOneArea(t *testing.T) {
	s := NewAreaStore("Bathroom")

	if len(s.Areas()) != 1 {
		t.Fatalf("expected 1 area, got %d", len(s.Areas()))
	}
	a := s.Current()
	if a.Type != "Bathroom" {
		t.Errorf("expected type Bathroom, got %q", a.Type)
	}
	if len(a.Components) != len(ComponentCatalog) {
		t.Errorf("expected full component skeleton (%d), got %d",
			len(ComponentCatalog), len(a.Components))
	}
	for key, sel := range a.Components {
		if sel.Enabled {
			t.Errorf("component %q should start disabled", key)
		}
		for sub, on := range sel.Subtasks {
			if on {
				t.Errorf("subtask %q/%q should start disabled", key, sub)
			}
		}
	}
}

func TestAddArea_BecomesCurrent(t *testing.T) {
	s := NewAreaStore("Bathroom")
	s.AddArea("Kitchen")

	if s.CurrentIndex() != 1 {
		t.Errorf("expected current index 1, got %d", s.CurrentIndex())
	}
	if s.Current().Type != "Kitchen" {
		t.Errorf("expected current area Kitchen, got %q", s.Current().Type)
	}
}

func TestRemoveArea_LastAreaRefused(t *testing.T) {
	s := NewAreaStore("Bathroom")

	err := s.RemoveArea(0)
	if !errors.Is(err, ErrLastArea) {
		t.Fatalf("expected ErrLastArea, got %v", err)
	}
	if len(s.Areas()) != 1 {
		t.Errorf("store changed: %d areas remain, want 1", len(s.Areas()))
	}
}

func TestRemoveArea_ClampsCurrentIndex(t *testing.T) {
	s := NewAreaStore("Bathroom")
	s.AddArea("Kitchen")
	s.AddArea("Laundry") // current = 2

	if err := s.RemoveArea(2); err != nil {
		t.Fatalf("RemoveArea failed: %v", err)
	}
	if s.CurrentIndex() != 1 {
		t.Errorf("expected current index 1 after removal, got %d", s.CurrentIndex())
	}

	if err := s.RemoveArea(0); err != nil {
		t.Fatalf("RemoveArea failed: %v", err)
	}
	if s.CurrentIndex() != 0 {
		t.Errorf("expected current index 0, got %d", s.CurrentIndex())
	}
}

func TestRemoveArea_OutOfRange(t *testing.T) {
	s := NewAreaStore("Bathroom")
	s.AddArea("Kitchen")

	if err := s.RemoveArea(5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if err := s.RemoveArea(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestSetCurrent(t *testing.T) {
	s := NewAreaStore("Bathroom")
	s.AddArea("Kitchen")

	if err := s.SetCurrent(0); err != nil {
		t.Fatalf("SetCurrent failed: %v", err)
	}
	if s.Current().Type != "Bathroom" {
		t.Errorf("expected Bathroom current, got %q", s.Current().Type)
	}
	if err := s.SetCurrent(2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestUpdateMeasurement(t *testing.T) {
	s := NewAreaStore("Bathroom")

	for _, field := range []string{"length", "width", "height"} {
		if err := s.UpdateMeasurement(0, field, "2500"); err != nil {
			t.Fatalf("UpdateMeasurement(%q) failed: %v", field, err)
		}
	}
	m := s.Current().Measurements
	if m.Length != "2500" || m.Width != "2500" || m.Height != "2500" {
		t.Errorf("measurements not stored: %+v", m)
	}

	if err := s.UpdateMeasurement(0, "depth", "100"); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestUpdateMeasurement_OnlyTargetsOneArea(t *testing.T) {
	s := NewAreaStore("Bathroom")
	s.AddArea("Kitchen")

	if err := s.UpdateMeasurement(0, "length", "3500"); err != nil {
		t.Fatalf("UpdateMeasurement failed: %v", err)
	}
	if s.Areas()[1].Measurements.Length != "" {
		t.Error("second area was mutated")
	}
}

func TestToggleComponent_DisableClearsSubtasks(t *testing.T) {
	s := NewAreaStore("Bathroom")

	if err := s.ToggleComponent(0, "tiling", true); err != nil {
		t.Fatalf("ToggleComponent failed: %v", err)
	}
	if err := s.ToggleSubtask(0, "tiling", "floor_tiles", true); err != nil {
		t.Fatalf("ToggleSubtask failed: %v", err)
	}
	if err := s.ToggleSubtask(0, "tiling", "wall_tiles", true); err != nil {
		t.Fatalf("ToggleSubtask failed: %v", err)
	}

	if err := s.ToggleComponent(0, "tiling", false); err != nil {
		t.Fatalf("ToggleComponent failed: %v", err)
	}

	sel := s.Current().Components["tiling"]
	if sel.Enabled {
		t.Error("component should be disabled")
	}
	for sub, on := range sel.Subtasks {
		if on {
			t.Errorf("subtask %q still enabled after disabling component", sub)
		}
	}
}

func TestToggleSubtask_EnablesParentComponent(t *testing.T) {
	s := NewAreaStore("Bathroom")

	if err := s.ToggleSubtask(0, "plumbing", "rough_in", true); err != nil {
		t.Fatalf("ToggleSubtask failed: %v", err)
	}
	sel := s.Current().Components["plumbing"]
	if !sel.Enabled {
		t.Error("enabling a subtask should enable its component")
	}
	if !sel.Subtasks["rough_in"] {
		t.Error("subtask not enabled")
	}
}

func TestToggleSubtask_UnknownKeys(t *testing.T) {
	s := NewAreaStore("Bathroom")

	if err := s.ToggleSubtask(0, "nonsense", "rough_in", true); err == nil {
		t.Error("expected error for unknown component")
	}
	if err := s.ToggleSubtask(0, "plumbing", "nonsense", true); err == nil {
		t.Error("expected error for unknown subtask")
	}
}

func TestAreaValid(t *testing.T) {
	tests := []struct {
		name   string
		m      Measurements
		expect bool
	}{
		{"all present", Measurements{"3500", "2500", "2400"}, true},
		{"missing height", Measurements{"3500", "2500", ""}, false},
		{"zero width", Measurements{"3500", "0", "2400"}, false},
		{"non-numeric", Measurements{"abc", "2500", "2400"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Area{Measurements: tt.m}
			if got := a.Valid(); got != tt.expect {
				t.Errorf("Valid() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestRestoreAreaStore(t *testing.T) {
	src := NewAreaStore("Bathroom")
	src.AddArea("Ensuite")

	restored := RestoreAreaStore(src.Areas(), 1)
	if len(restored.Areas()) != 2 {
		t.Fatalf("expected 2 areas, got %d", len(restored.Areas()))
	}
	if restored.CurrentIndex() != 1 {
		t.Errorf("current index = %d, want 1", restored.CurrentIndex())
	}

	clamped := RestoreAreaStore(src.Areas(), 9)
	if clamped.CurrentIndex() != 0 {
		t.Errorf("out-of-range index should clamp to 0, got %d", clamped.CurrentIndex())
	}

	empty := RestoreAreaStore(nil, 0)
	if len(empty.Areas()) != 1 {
		t.Fatalf("empty input should fall back to a single fresh area, got %d", len(empty.Areas()))
	}
}
