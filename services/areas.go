package services

import (
	"fmt"

	"github.com/google/uuid"
)

// Measurements holds the raw millimetre dimension strings as entered.
// Parsing and validation happen at read time (geometry, merge, request).
type Measurements struct {
	Length string `json:"length"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

// ComponentSelection is one component's enabled flag plus its subtask flags.
// Invariant: Enabled == false implies every subtask is false.
type ComponentSelection struct {
	Enabled  bool            `json:"enabled"`
	Subtasks map[string]bool `json:"subtasks"`
}

// Area is one physical room being quoted within a multi-room project.
type Area struct {
	ID           string                         `json:"id"`
	Name         string                         `json:"name"`
	Type         string                         `json:"type"`
	Measurements Measurements                   `json:"measurements"`
	Components   map[string]*ComponentSelection `json:"components"`
	TaskOptions  map[string]string              `json:"task_options"`
	Notes        string                         `json:"notes"`
	Quote        *Quote                         `json:"quote,omitempty"`
}

// Valid reports whether all three measurements are present and positive.
func (a *Area) Valid() bool {
	return parseDimension(a.Measurements.Length) > 0 &&
		parseDimension(a.Measurements.Width) > 0 &&
		parseDimension(a.Measurements.Height) > 0
}

// FloorArea returns the area's floor area in square metres.
func (a *Area) FloorArea() float64 {
	return FloorArea(a.Measurements.Length, a.Measurements.Width)
}

// WallArea returns the area's wall area in square metres.
func (a *Area) WallArea() float64 {
	return WallArea(a.Measurements.Length, a.Measurements.Width, a.Measurements.Height)
}

// AreaStore holds the ordered collection of areas for one quoting session.
// Exactly one area is current at any time and at least one area always
// exists. The store is not safe for concurrent use; a session is
// single-threaded by construction.
type AreaStore struct {
	areas   []*Area
	current int
}

// NewAreaStore creates a store seeded with one area of the given type.
func NewAreaStore(roomType string) *AreaStore {
	s := &AreaStore{}
	s.AddArea(roomType)
	return s
}

// RestoreAreaStore rebuilds a store from persisted areas. An empty slice
// falls back to a fresh single-area store, and a current index outside the
// restored range is clamped to the first area.
func RestoreAreaStore(areas []*Area, current int) *AreaStore {
	if len(areas) == 0 {
		return NewAreaStore("")
	}
	if current < 0 || current >= len(areas) {
		current = 0
	}
	return &AreaStore{areas: areas, current: current}
}

// AddArea appends a new area with empty measurements and the full disabled
// component skeleton, and makes it the current area. Never fails.
func (s *AreaStore) AddArea(roomType string) *Area {
	if roomType == "" {
		roomType = RoomTypeOptions[0]
	}
	opts := make(map[string]string, len(TaskOptionDefaults))
	for k, v := range TaskOptionDefaults {
		opts[k] = v
	}
	a := &Area{
		ID:          uuid.NewString(),
		Name:        fmt.Sprintf("%s %d", roomType, len(s.areas)+1),
		Type:        roomType,
		Components:  NewComponentSkeleton(),
		TaskOptions: opts,
	}
	s.areas = append(s.areas, a)
	s.current = len(s.areas) - 1
	return a
}

// RemoveArea deletes the area at index. Removing the last remaining area is
// refused and leaves the store unchanged. On success the current index is
// clamped to max(0, current-1).
func (s *AreaStore) RemoveArea(index int) error {
	if index < 0 || index >= len(s.areas) {
		return ErrOutOfRange
	}
	if len(s.areas) == 1 {
		return ErrLastArea
	}
	s.areas = append(s.areas[:index], s.areas[index+1:]...)
	if s.current > 0 {
		s.current--
	}
	return nil
}

// SetCurrent selects the area at index as current.
func (s *AreaStore) SetCurrent(index int) error {
	if index < 0 || index >= len(s.areas) {
		return ErrOutOfRange
	}
	s.current = index
	return nil
}

// Current returns the currently selected area.
func (s *AreaStore) Current() *Area {
	return s.areas[s.current]
}

// CurrentIndex returns the index of the currently selected area.
func (s *AreaStore) CurrentIndex() int {
	return s.current
}

// Areas returns the ordered slice of all areas.
func (s *AreaStore) Areas() []*Area {
	return s.areas
}

// ValidAreas returns, in store order, the areas with complete positive
// measurements.
func (s *AreaStore) ValidAreas() []*Area {
	var valid []*Area
	for _, a := range s.areas {
		if a.Valid() {
			valid = append(valid, a)
		}
	}
	return valid
}

// UpdateMeasurement sets one dimension field on one area. Field must be
// "length", "width" or "height".
func (s *AreaStore) UpdateMeasurement(index int, field, value string) error {
	if index < 0 || index >= len(s.areas) {
		return ErrOutOfRange
	}
	a := s.areas[index]
	switch field {
	case "length":
		a.Measurements.Length = value
	case "width":
		a.Measurements.Width = value
	case "height":
		a.Measurements.Height = value
	default:
		return fmt.Errorf("unknown measurement field %q", field)
	}
	return nil
}

// ToggleComponent enables or disables one component on one area. Disabling
// clears all of its subtasks in the same operation; there is no intermediate
// state where a disabled component retains enabled subtasks.
func (s *AreaStore) ToggleComponent(index int, key string, enabled bool) error {
	if index < 0 || index >= len(s.areas) {
		return ErrOutOfRange
	}
	sel, ok := s.areas[index].Components[key]
	if !ok {
		return fmt.Errorf("unknown component %q", key)
	}
	sel.Enabled = enabled
	if !enabled {
		for sub := range sel.Subtasks {
			sel.Subtasks[sub] = false
		}
	}
	return nil
}

// ToggleSubtask enables or disables one subtask. Enabling a subtask on a
// disabled component enables the component as well.
func (s *AreaStore) ToggleSubtask(index int, component, subtask string, enabled bool) error {
	if index < 0 || index >= len(s.areas) {
		return ErrOutOfRange
	}
	sel, ok := s.areas[index].Components[component]
	if !ok {
		return fmt.Errorf("unknown component %q", component)
	}
	if _, ok := sel.Subtasks[subtask]; !ok {
		return fmt.Errorf("unknown subtask %q for component %q", subtask, component)
	}
	sel.Subtasks[subtask] = enabled
	if enabled {
		sel.Enabled = true
	}
	return nil
}

// SetNotes sets the free-text notes on one area.
func (s *AreaStore) SetNotes(index int, notes string) error {
	if index < 0 || index >= len(s.areas) {
		return ErrOutOfRange
	}
	s.areas[index].Notes = notes
	return nil
}

// SetTaskOption sets one task option on one area.
func (s *AreaStore) SetTaskOption(index int, key, value string) error {
	if index < 0 || index >= len(s.areas) {
		return ErrOutOfRange
	}
	s.areas[index].TaskOptions[key] = value
	return nil
}
