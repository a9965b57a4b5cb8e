package engine

import (
	"context"
	"errors"
	"runtime/debug"

	"omnibar/logger"
	"omnibar/types"
)

// EventType represents the type of event in the engine
type EventType string

// Event type constants
const (
	EventTextChanged     EventType = "text_changed"
	EventCommit          EventType = "commit"
	EventEsc             EventType = "esc"
	EventMove            EventType = "move"
	EventAccept          EventType = "accept"
	EventPartialAccept   EventType = "partial_accept"
	EventSuggestTimeout  EventType = "trigger_suggestion"
	EventSuggestionReady EventType = "suggestion_ready"
	EventSuggestionError EventType = "suggestion_error"
)

// Event represents an event in the engine
type Event struct {
	Type EventType
	Data any
}

var eventTypeMap map[string]EventType

func init() {
	eventTypeMap = buildEventTypeMap()
	transitionMap = make(map[transitionKey]*Transition)
	for i := range transitions {
		t := &transitions[i]
		key := transitionKey{from: t.From, event: t.Event}
		transitionMap[key] = t
	}
}

func buildEventTypeMap() map[string]EventType {
	eventMap := make(map[string]EventType)

	allEventTypes := []EventType{
		EventTextChanged,
		EventCommit,
		EventEsc,
		EventMove,
		EventAccept,
		EventPartialAccept,
		EventSuggestTimeout,
		EventSuggestionReady,
		EventSuggestionError,
	}

	for _, eventType := range allEventTypes {
		eventMap[string(eventType)] = eventType
	}

	return eventMap
}

// EventTypeFromString converts a string to EventType
func EventTypeFromString(s string) EventType {
	if eventType, exists := eventTypeMap[s]; exists {
		return eventType
	}
	return ""
}

// Transition represents a valid state transition in the engine's state machine
type Transition struct {
	From   state
	Event  EventType
	Action func(*Engine, Event)
}

// transitions defines all valid state transitions in the engine.
//
// State Machine:
//
//	                    SuggestTimeout
//	  +-------+              +----------+
//	  | Idle  |------------->| Pending  |
//	  +-------+              +----------+
//	      ^                       |
//	      |                       | SuggestionReady (usable candidate)
//	      |                       v
//	      |                  +-----------+
//	      +------------------| Showing   |
//	        divergence /     +-----------+
//	        deletion / esc /      | TextChanged along the suggestion
//	        commit / accept       v
//	                         stays Showing until the tail runs out
//
//	TextChanged is handled in every state: the edit is classified against the
//	displayed-content slot and the outcome decides the next state.
//	Commit / Esc / Move are host pass-throughs valid in every state.
var transitions = []Transition{
	// From stateIdle
	{stateIdle, EventTextChanged, (*Engine).doTextChanged},
	{stateIdle, EventSuggestTimeout, (*Engine).doRequestSuggestion},
	{stateIdle, EventCommit, (*Engine).doCommit},
	{stateIdle, EventEsc, (*Engine).doCancel},
	{stateIdle, EventMove, (*Engine).doMove},

	// From statePendingSuggestion
	{statePendingSuggestion, EventTextChanged, (*Engine).doTextChangedPending},
	{statePendingSuggestion, EventCommit, (*Engine).doCommit},
	{statePendingSuggestion, EventEsc, (*Engine).doCancel},
	{statePendingSuggestion, EventMove, (*Engine).doMove},

	// From stateShowingSuggestion
	{stateShowingSuggestion, EventTextChanged, (*Engine).doTextChanged},
	{stateShowingSuggestion, EventSuggestTimeout, (*Engine).doRequestSuggestion},
	{stateShowingSuggestion, EventAccept, (*Engine).doAcceptSuggestion},
	{stateShowingSuggestion, EventPartialAccept, (*Engine).doPartialAcceptSuggestion},
	{stateShowingSuggestion, EventCommit, (*Engine).doCommit},
	{stateShowingSuggestion, EventEsc, (*Engine).doCancel},
	{stateShowingSuggestion, EventMove, (*Engine).doMove},
}

// transitionMap provides O(1) lookup for transitions by (state, event) pair
var transitionMap map[transitionKey]*Transition

type transitionKey struct {
	from  state
	event EventType
}

// findTransition looks up a valid transition for the given state and event.
func findTransition(from state, event EventType) *Transition {
	return transitionMap[transitionKey{from: from, event: event}]
}

// dispatch finds and executes the appropriate transition for an event.
func (e *Engine) dispatch(event Event) bool {
	t := findTransition(e.state, event.Type)
	if t == nil {
		logger.Debug("no handler: state=%s event=%s", e.state, event.Type)
		return false
	}
	if t.Action != nil {
		t.Action(e, event)
	}
	return true
}

const maxEventLoopRestarts = 3

func (e *Engine) eventLoop(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			restarts := e.loopRestarts.Add(1)
			logger.Error("event loop panic [%d/%d]: %v\n%s",
				restarts, maxEventLoopRestarts, r, debug.Stack())

			if int(restarts) < maxEventLoopRestarts {
				e.eventLoop(e.mainCtx)
			} else {
				logger.Error("max event loop restarts reached, stopping engine")
				go e.Stop() // async to avoid deadlock
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event := <-e.eventChan:
			e.mu.RLock()
			stopped := e.stopped
			e.mu.RUnlock()

			if stopped {
				return
			}

			func() {
				defer func() {
					if r := recover(); r != nil {
						logger.Error("event handler panic recovered for event %v: %v", event.Type, r)
					}
				}()
				e.handleEvent(event)
			}()
		}
	}
}

func (e *Engine) handleEvent(event Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopped {
		return
	}

	logger.Debug("handle event: %v (state=%s)", event.Type, e.state)

	// Layer 1: async provider results
	if e.handleBackgroundEvent(event) {
		return
	}

	// Layer 2: dispatch table for user/timer events
	e.dispatch(event)
}

// handleBackgroundEvent handles async suggestion results.
func (e *Engine) handleBackgroundEvent(event Event) bool {
	switch event.Type {
	case EventSuggestionReady:
		if e.state != statePendingSuggestion {
			// A newer edit superseded this request.
			return true
		}
		e.handleSuggestionReadyImpl(event.Data.(*suggestionResult))
		return true

	case EventSuggestionError:
		if err, ok := event.Data.(error); !ok || !errors.Is(err, context.Canceled) {
			logger.Error("suggestion error: %v", event.Data)
		}
		if e.state == statePendingSuggestion {
			e.state = stateIdle
		}
		return true
	}
	return false
}

// Action functions for state transitions

func (e *Engine) doTextChanged(event Event) {
	change, ok := event.Data.(types.TextChange)
	if !ok {
		logger.Warn("text_changed event without a TextChange payload")
		return
	}
	e.handleTextChangeImpl(change)
}

func (e *Engine) doTextChangedPending(event Event) {
	// Cancel the in-flight request before classifying the newer edit.
	if e.currentCancel != nil {
		e.currentCancel()
		e.currentCancel = nil
	}
	e.state = stateIdle
	e.doTextChanged(event)
}

func (e *Engine) doRequestSuggestion(event Event) {
	e.requestSuggestion()
}

func (e *Engine) doCommit(event Event) {
	e.commitImpl()
}

func (e *Engine) doCancel(event Event) {
	e.cancelImpl()
}

func (e *Engine) doMove(event Event) {
	dir, ok := event.Data.(types.MoveDirection)
	if !ok {
		return
	}
	e.emitMove(dir)
}

func (e *Engine) doAcceptSuggestion(event Event) {
	e.acceptSuggestionImpl()
}

func (e *Engine) doPartialAcceptSuggestion(event Event) {
	e.partialAcceptSuggestionImpl()
}
