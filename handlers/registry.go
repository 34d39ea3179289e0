// Package handlers implements the JSON API over the quoting core: session
// and area editing, quote generation, cost adjustments, exports, and the
// saved-project surface.
package handlers

import (
	"context"
	"net/http"
	"sync"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/services"
)

type contextKey string

const SessionKey contextKey = "quoteSession"

const sessionCookieName = "quote_session"

// SessionRegistry holds the live quoting sessions, keyed by the session
// cookie value. Sessions are in-memory; drafts in the database are the
// durable fallback.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*services.Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*services.Session)}
}

// Get returns the session with the given id, if it exists.
func (r *SessionRegistry) Get(id string) (*services.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

// GetOrCreate returns the existing session for id, or creates and registers
// a fresh one when the id is unknown or empty.
func (r *SessionRegistry) GetOrCreate(id string) *services.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id != "" {
		if s, ok := r.sessions[id]; ok {
			return s
		}
	}
	s := services.NewSession()
	r.sessions[s.ID] = s
	return s
}

// Put registers a session under its own id, replacing any previous entry.
func (r *SessionRegistry) Put(s *services.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

// Remove drops a session from the registry.
func (r *SessionRegistry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// GetSession extracts the quoting session from the request context.
func GetSession(r *http.Request) *services.Session {
	if val, ok := r.Context().Value(SessionKey).(*services.Session); ok {
		return val
	}
	return nil
}

// SessionMiddleware resolves the "quote_session" cookie to a live session
// and stores it in the request context for the handlers downstream. A cookie
// with no live session is first looked up in the drafts store, so sessions
// lost to a restart come back with their areas and client details; only when
// that fails is a fresh session created and the cookie replaced.
func SessionMiddleware(app *pocketbase.PocketBase, reg *SessionRegistry) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var cookieID string
		if cookie, err := e.Request.Cookie(sessionCookieName); err == nil {
			cookieID = cookie.Value
		}

		sess, ok := reg.Get(cookieID)
		if !ok {
			if cookieID != "" {
				sess = restoreSession(app, cookieID)
			}
			if sess == nil {
				sess = services.NewSession()
			}
			reg.Put(sess)
		}
		if sess.ID != cookieID {
			http.SetCookie(e.Response, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
			})
		}

		ctx := context.WithValue(e.Request.Context(), SessionKey, sess)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}

// requireSession pulls the session from the request context. The middleware
// always installs one, so a miss means a wiring mistake rather than a user
// error.
func requireSession(e *core.RequestEvent) (*services.Session, error) {
	sess := GetSession(e.Request)
	if sess == nil {
		return nil, e.JSON(http.StatusInternalServerError, map[string]string{
			"error": "no active session",
		})
	}
	return sess, nil
}
