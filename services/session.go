package services

import (
	"time"

	"github.com/google/uuid"
)

// Session is one quoting session: the areas being configured, the client
// details, the active quote (if any) with its adjustment state, and the
// draft save policy. At most one adjustment session is active at a time by
// construction: a session has a single current quote and a single override
// map.
type Session struct {
	ID         string
	Client     ClientInfo
	Areas      *AreaStore
	Extra      map[string]*ComponentSelection // quick-quote form selection, merged last
	Adjustment *Adjustment                    // nil until a quote exists
	Policy     *SavePolicy
}

// NewSession creates a session with one empty area and the default draft
// save policy (2s quiescence or 10 accumulated edits).
func NewSession() *Session {
	return &Session{
		ID:     uuid.NewString(),
		Areas:  NewAreaStore(""),
		Policy: NewSavePolicy(2*time.Second, 10),
	}
}

// RestoreSession rebuilds a session from persisted draft state under its
// original id. The restored session starts with no quote and the default
// save policy.
func RestoreSession(id string, client ClientInfo, areas []*Area, current int, extra map[string]*ComponentSelection) *Session {
	return &Session{
		ID:     id,
		Client: client,
		Areas:  RestoreAreaStore(areas, current),
		Extra:  extra,
		Policy: NewSavePolicy(2*time.Second, 10),
	}
}

// AttachQuote installs a fresh quote from the estimation service: it becomes
// the session's active quote, is linked to the current area, and starts a
// clean adjustment session.
func (s *Session) AttachQuote(q *Quote) {
	s.Areas.Current().Quote = q
	s.Adjustment = NewAdjustment(q)
}

// RequireQuote returns the active adjustment session, or a PreconditionError
// when no quote exists yet. Every adjustment, export, and learning operation
// goes through this check before doing any work.
func (s *Session) RequireQuote(op string) (*Adjustment, error) {
	if s.Adjustment == nil {
		return nil, &PreconditionError{Op: op, Reason: "no quote has been generated yet"}
	}
	return s.Adjustment, nil
}

// LearningContext builds the context stamped onto learning records for this
// session. ProjectSize uses the same primary-area rule as the outbound
// estimation request, so the signal describes the area the estimate was
// actually priced against.
func (s *Session) LearningContext(userID string) LearningContext {
	var size float64
	if primary, ok := SelectPrimaryArea(s.Areas.Areas()); ok {
		size = primary.FloorArea()
	}
	return LearningContext{
		UserID:      userID,
		ProjectSize: size,
		Location:    s.Client.Address,
		Notes:       s.Areas.Current().Notes,
	}
}
