package services

import "fmt"

// RoomTypeOptions returns the list of room type options.
var RoomTypeOptions = []string{
	"Bathroom",
	"Ensuite",
	"Kitchen",
	"Laundry",
	"Bedroom",
	"Living Room",
	"Toilet",
	"Other",
}

// ComponentCatalog defines every selectable renovation component and its
// subtasks. New areas are created with this full skeleton, all disabled.
// Order matters: it is the display and merge order.
var ComponentCatalog = []ComponentDef{
	{Key: "demolition", Label: "Demolition & Strip-out", Subtasks: []string{
		"remove_fixtures", "remove_tiles", "remove_wall_linings", "rubbish_removal",
	}},
	{Key: "plumbing", Label: "Plumbing", Subtasks: []string{
		"rough_in", "relocate_fixtures", "install_fixtures", "hot_water_unit",
	}},
	{Key: "electrical", Label: "Electrical", Subtasks: []string{
		"rough_in", "power_points", "lighting", "exhaust_fan", "underfloor_heating",
	}},
	{Key: "waterproofing", Label: "Waterproofing", Subtasks: []string{
		"floor_membrane", "wall_membrane", "certification",
	}},
	{Key: "tiling", Label: "Tiling", Subtasks: []string{
		"floor_tiles", "wall_tiles", "feature_wall", "grout_and_seal",
	}},
	{Key: "carpentry", Label: "Carpentry & Cabinetry", Subtasks: []string{
		"vanity_install", "shaving_cabinet", "framing", "door_install",
	}},
	{Key: "painting", Label: "Painting", Subtasks: []string{
		"ceiling", "walls", "trim_and_doors",
	}},
	{Key: "fixtures", Label: "Fixtures & Fittings", Subtasks: []string{
		"shower_screen", "bath_install", "toilet_install", "tapware", "accessories",
	}},
}

// ComponentDef describes one catalogue entry.
type ComponentDef struct {
	Key      string
	Label    string
	Subtasks []string
}

// TaskOptionDefaults returns the per-area task option defaults.
var TaskOptionDefaults = map[string]string{
	"tile_grade":    "standard",
	"paint_finish":  "low_sheen",
	"fixture_grade": "standard",
	"accessibility": "none",
}

// ComponentLabel returns the display label for a component key, falling back
// to the key itself for unknown components (e.g. ones introduced server-side).
func ComponentLabel(key string) string {
	for _, def := range ComponentCatalog {
		if def.Key == key {
			return def.Label
		}
	}
	return key
}

// ValidateSelection checks a component selection map against the catalogue,
// rejecting component or subtask keys it does not define.
func ValidateSelection(selection map[string]*ComponentSelection) error {
	for key, sel := range selection {
		var def *ComponentDef
		for i := range ComponentCatalog {
			if ComponentCatalog[i].Key == key {
				def = &ComponentCatalog[i]
				break
			}
		}
		if def == nil {
			return fmt.Errorf("unknown component %q", key)
		}
		if sel == nil {
			continue
		}
		for sub := range sel.Subtasks {
			known := false
			for _, s := range def.Subtasks {
				if s == sub {
					known = true
					break
				}
			}
			if !known {
				return fmt.Errorf("unknown subtask %q for component %q", sub, key)
			}
		}
	}
	return nil
}

// NewComponentSkeleton builds the full disabled component/subtask mapping
// used for freshly created areas.
func NewComponentSkeleton() map[string]*ComponentSelection {
	skeleton := make(map[string]*ComponentSelection, len(ComponentCatalog))
	for _, def := range ComponentCatalog {
		subs := make(map[string]bool, len(def.Subtasks))
		for _, s := range def.Subtasks {
			subs[s] = false
		}
		skeleton[def.Key] = &ComponentSelection{Enabled: false, Subtasks: subs}
	}
	return skeleton
}
