package services

import (
	"errors"
	"fmt"
)

// ErrNoValidAreas indicates that no area has a complete set of positive
// measurements. Distinct from ErrNoComponents so the user can be told to fix
// measurements rather than selections.
var ErrNoValidAreas = errors.New("no areas with valid measurements")

// ErrNoComponents indicates that the merged selection came out empty.
var ErrNoComponents = errors.New("no components selected")

// ErrLastArea is returned when removing an area would leave the store empty.
var ErrLastArea = errors.New("at least one area must remain")

// ErrOutOfRange is returned for an index outside [0, len).
var ErrOutOfRange = errors.New("index out of range")

// ValidationError reports per-field input problems found before any network
// call is made.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d field(s)", len(e.Fields))
}

// PreconditionError reports an operation attempted in the wrong state, e.g.
// adjusting or exporting before a quote exists.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// PartialFailure reports a fan-out where some calls succeeded and some did
// not. Succeeded work is never rolled back.
type PartialFailure struct {
	Succeeded int
	Total     int
	Errs      []error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("%d of %d succeeded", e.Succeeded, e.Total)
}
