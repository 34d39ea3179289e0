package handlers

import (
	"errors"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"renoquote/services"
)

// serviceError translates a core error into the matching JSON response.
// Validation problems report per-field messages; precondition failures and
// the area-store guards each map to a stable status so callers can branch
// without parsing message text.
func serviceError(e *core.RequestEvent, err error) error {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return e.JSON(http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	}

	var perr *services.PreconditionError
	if errors.As(err, &perr) {
		return e.JSON(http.StatusConflict, map[string]string{"error": perr.Error()})
	}

	switch {
	case errors.Is(err, services.ErrOutOfRange):
		return e.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, services.ErrLastArea):
		return e.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, services.ErrNoValidAreas), errors.Is(err, services.ErrNoComponents):
		return e.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return e.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
