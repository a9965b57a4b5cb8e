package metrics

import (
	"sync"
	"testing"

	"omnibar/assert"
)

func TestTrackerCounts(t *testing.T) {
	tr := NewTracker()

	tr.RecordShown()
	tr.RecordShown()
	tr.RecordContinuation()
	tr.RecordReplacement()
	tr.RecordAccepted()
	tr.RecordPartialAccepted()
	tr.RecordCommit()
	tr.RecordCancel()

	s := tr.Snapshot()
	assert.Equal(t, 2, s.Shown, "shown count")
	assert.Equal(t, 1, s.Continuations, "continuation count")
	assert.Equal(t, 1, s.Replacements, "replacement count")
	assert.Equal(t, 1, s.Accepted, "accepted count")
	assert.Equal(t, 1, s.PartialAccepted, "partial accepted count")
	assert.Equal(t, 1, s.Commits, "commit count")
	assert.Equal(t, 1, s.Cancels, "cancel count")
}

func TestTrackerNilReceiver(t *testing.T) {
	var tr *Tracker

	tr.RecordShown()
	tr.RecordCommit()

	assert.Equal(t, Snapshot{}, tr.Snapshot(), "nil tracker reports zeroes")
}

func TestTrackerConcurrent(t *testing.T) {
	tr := NewTracker()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.RecordContinuation()
			tr.RecordReplacement()
		}()
	}
	wg.Wait()

	s := tr.Snapshot()
	assert.Equal(t, 50, s.Continuations, "continuations under contention")
	assert.Equal(t, 50, s.Replacements, "replacements under contention")
}
