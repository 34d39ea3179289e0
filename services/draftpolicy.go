package services

import "time"

// SavePolicy decides when a session draft should be snapshotted. It fires
// when edits have gone quiet for the configured window, or immediately once
// maxEvents edits accumulate without a save. It is deliberately decoupled
// from any timer so it can be driven (and tested) with explicit clock
// values.
type SavePolicy struct {
	window    time.Duration
	maxEvents int

	pending   int
	lastEvent time.Time
}

// NewSavePolicy creates a policy with the given quiescence window and event
// cap. A maxEvents of 0 disables the event-count trigger.
func NewSavePolicy(window time.Duration, maxEvents int) *SavePolicy {
	return &SavePolicy{window: window, maxEvents: maxEvents}
}

// Record notes one session mutation at the given time.
func (p *SavePolicy) Record(now time.Time) {
	p.pending++
	p.lastEvent = now
}

// ShouldSave reports whether a snapshot is due at the given time.
func (p *SavePolicy) ShouldSave(now time.Time) bool {
	if p.pending == 0 {
		return false
	}
	if p.maxEvents > 0 && p.pending >= p.maxEvents {
		return true
	}
	return now.Sub(p.lastEvent) >= p.window
}

// Pending returns the count of unsaved mutations.
func (p *SavePolicy) Pending() int {
	return p.pending
}

// Reset clears the pending edits after a successful snapshot.
func (p *SavePolicy) Reset() {
	p.pending = 0
}
