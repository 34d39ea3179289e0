package handlers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/pocketbase/pocketbase"

	"renoquote/collections"
	"renoquote/services"
)

// sessionSnapshot is the draft payload persisted between edits. It carries
// the re-entrant parts of a session; the live quote is not snapshotted
// because it can be regenerated or reloaded from the project store.
type sessionSnapshot struct {
	Client       services.ClientInfo                     `json:"client"`
	Areas        []*services.Area                        `json:"areas"`
	CurrentIndex int                                     `json:"current_index"`
	Extra        map[string]*services.ComponentSelection `json:"extra,omitempty"`
}

// recordEdit feeds one mutation into the session's save policy and writes a
// draft snapshot when the policy fires. The quiescence check runs before the
// new edit is recorded so a batch that went quiet is flushed by the edit that
// ends the quiet period. Draft failures are logged and swallowed; an edit
// must never fail because the safety net did.
func recordEdit(app *pocketbase.PocketBase, sess *services.Session) {
	now := time.Now()
	due := sess.Policy.ShouldSave(now)
	sess.Policy.Record(now)
	if !due && !sess.Policy.ShouldSave(now) {
		return
	}
	saveSnapshot(app, sess)
}

// saveSnapshot persists the session's current draft state and resets the
// save policy on success.
func saveSnapshot(app *pocketbase.PocketBase, sess *services.Session) {
	snap := sessionSnapshot{
		Client:       sess.Client,
		Areas:        sess.Areas.Areas(),
		CurrentIndex: sess.Areas.CurrentIndex(),
		Extra:        sess.Extra,
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		log.Printf("drafts: could not marshal snapshot for session %s: %v", sess.ID, err)
		return
	}
	if err := collections.SaveDraft(app, sess.ID, string(payload)); err != nil {
		log.Printf("drafts: could not save snapshot for session %s: %v", sess.ID, err)
		return
	}
	sess.Policy.Reset()
}

// restoreSession rebuilds a session from its stored draft snapshot, keeping
// its original id so the caller's cookie stays valid. Returns nil when no
// draft exists or the snapshot cannot be decoded.
func restoreSession(app *pocketbase.PocketBase, id string) *services.Session {
	payload, err := collections.LoadDraft(app, id)
	if err != nil || payload == "" {
		return nil
	}
	var snap sessionSnapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		log.Printf("drafts: could not decode snapshot for session %s: %v", id, err)
		return nil
	}
	return services.RestoreSession(id, snap.Client, snap.Areas, snap.CurrentIndex, snap.Extra)
}
