package services

import "testing"

func TestValidateSelection(t *testing.T) {
	ok := map[string]*ComponentSelection{
		"tiling":   {Enabled: true, Subtasks: map[string]bool{"floor_tiles": true}},
		"painting": {Enabled: true},
		"plumbing": nil,
	}
	if err := ValidateSelection(ok); err != nil {
		t.Fatalf("ValidateSelection() error = %v", err)
	}

	if err := ValidateSelection(map[string]*ComponentSelection{
		"landscaping": {Enabled: true},
	}); err == nil {
		t.Error("expected an error for a component outside the catalogue")
	}

	if err := ValidateSelection(map[string]*ComponentSelection{
		"tiling": {Enabled: true, Subtasks: map[string]bool{"marble_inlay": true}},
	}); err == nil {
		t.Error("expected an error for a subtask outside the catalogue")
	}
}
