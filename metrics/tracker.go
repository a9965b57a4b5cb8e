// Package metrics keeps in-process counters of how suggestions fare:
// how often they are shown, continued, accepted, or abandoned.
package metrics

import "sync"

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Shown           int // suggestions displayed with an inline tail
	Continuations   int // edits classified as continuing a suggestion
	Replacements    int // edits classified as plain replacements
	Accepted        int // suggestions taken whole
	PartialAccepted int // word-wise accepts of a suggestion tail
	Commits         int
	Cancels         int
}

// Tracker counts suggestion outcomes. All methods are safe for concurrent
// use and safe on a nil receiver, so callers can disable tracking by passing
// nil.
type Tracker struct {
	mu sync.Mutex
	s  Snapshot
}

// NewTracker returns a zeroed tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) bump(f func(*Snapshot)) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	f(&t.s)
}

// RecordShown counts a suggestion displayed to the user.
func (t *Tracker) RecordShown() {
	t.bump(func(s *Snapshot) { s.Shown++ })
}

// RecordContinuation counts an edit that continued a suggestion.
func (t *Tracker) RecordContinuation() {
	t.bump(func(s *Snapshot) { s.Continuations++ })
}

// RecordReplacement counts an edit that replaced the field content.
func (t *Tracker) RecordReplacement() {
	t.bump(func(s *Snapshot) { s.Replacements++ })
}

// RecordAccepted counts a suggestion taken whole.
func (t *Tracker) RecordAccepted() {
	t.bump(func(s *Snapshot) { s.Accepted++ })
}

// RecordPartialAccepted counts a word-wise accept.
func (t *Tracker) RecordPartialAccepted() {
	t.bump(func(s *Snapshot) { s.PartialAccepted++ })
}

// RecordCommit counts a confirmed entry.
func (t *Tracker) RecordCommit() {
	t.bump(func(s *Snapshot) { s.Commits++ })
}

// RecordCancel counts an escape press.
func (t *Tracker) RecordCancel() {
	t.bump(func(s *Snapshot) { s.Cancels++ })
}

// Snapshot returns a copy of the current counters. A nil tracker reports
// zeroes.
func (t *Tracker) Snapshot() Snapshot {
	if t == nil {
		return Snapshot{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.s
}
