package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"omnibar/logger"
	"omnibar/metrics"
	"omnibar/text"
	"omnibar/types"
)

type state int

const (
	stateIdle state = iota
	statePendingSuggestion
	stateShowingSuggestion
)

// String returns a human-readable name for the state
func (s state) String() string {
	switch s {
	case stateIdle:
		return "Idle"
	case statePendingSuggestion:
		return "PendingSuggestion"
	case stateShowingSuggestion:
		return "ShowingSuggestion"
	default:
		return "Unknown"
	}
}

// Provider computes completion candidates for the typed text.
type Provider interface {
	GetSuggestion(ctx context.Context, req *types.SuggestionRequest) (*types.SuggestionResponse, error)
}

// SuggestionsReady is delivered to the host when a provider query finishes.
type SuggestionsReady struct {
	Query string
	Items []*types.SuggestionItem

	// Completion is the inline-completable field content. Nil when the best
	// candidate does not extend the typed text.
	Completion *types.Suggestion
}

// EngineConfig holds tunables for the omnibar engine.
type EngineConfig struct {
	SuggestDebounce time.Duration // quiet time after an edit before querying the provider
	SuggestTimeout  time.Duration // per-request provider budget
	SuggestLimit    int           // max ranked candidates per query (0 = provider default)
}

// Engine correlates raw edit events against the content the host displayed,
// classifies each edit as replacement or continuation, and drives debounced
// suggestion requests. Hosts feed events in through the exported methods and
// consume the output channels.
type Engine struct {
	provider Provider
	tracker  *metrics.Tracker
	cache    *ContentCache

	state         state
	displayed     types.Content // what the host last rendered, nil when literal-only
	lastText      string        // committed field text after the most recent edit
	suggestTimer  *time.Timer
	currentCancel context.CancelFunc

	mu        sync.RWMutex
	eventChan chan Event

	mainCtx      context.Context
	mainCancel   context.CancelFunc
	stopped      bool
	stopOnce     sync.Once
	loopRestarts atomic.Int32

	config EngineConfig

	// Output channels (the reactive surface)
	contentChanges chan types.ContentChange
	suggestions    chan SuggestionsReady
	commits        chan string
	cancels        chan struct{}
	moves          chan types.MoveDirection
}

const outputBuffer = 16

// NewEngine creates an engine. provider may be nil for hosts that only want
// classification; tracker may be nil to disable counters.
func NewEngine(provider Provider, tracker *metrics.Tracker, config EngineConfig) *Engine {
	if config.SuggestDebounce <= 0 {
		config.SuggestDebounce = 150 * time.Millisecond
	}
	if config.SuggestTimeout <= 0 {
		config.SuggestTimeout = 2 * time.Second
	}

	return &Engine{
		provider:       provider,
		tracker:        tracker,
		cache:          NewContentCache(),
		state:          stateIdle,
		eventChan:      make(chan Event, 100),
		config:         config,
		contentChanges: make(chan types.ContentChange, outputBuffer),
		suggestions:    make(chan SuggestionsReady, outputBuffer),
		commits:        make(chan string, outputBuffer),
		cancels:        make(chan struct{}, outputBuffer),
		moves:          make(chan types.MoveDirection, outputBuffer),
	}
}

// Start launches the event loop.
func (e *Engine) Start(ctx context.Context) {
	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return
	}
	e.mainCtx, e.mainCancel = context.WithCancel(ctx)
	e.mu.Unlock()

	go e.eventLoop(e.mainCtx)
	logger.Info("engine started")
}

// Stop gracefully shuts down the engine and cleans up all resources
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		e.mu.Lock()
		defer e.mu.Unlock()

		e.stopped = true
		if e.mainCancel != nil {
			e.mainCancel()
		}
		if e.currentCancel != nil {
			e.currentCancel()
			e.currentCancel = nil
		}
		e.stopSuggestTimer()
		// eventChan stays open: the loop exits on ctx.Done, and in-flight
		// provider goroutines may still select a send against it.

		logger.Info("engine stopped")
	})
}

// Display records what the host actually rendered. This is the only writer of
// the displayed-content slot; the next edit event is classified against it.
func (e *Engine) Display(content types.Content) {
	e.mu.Lock()
	e.displayed = content
	e.mu.Unlock()
	e.cache.PushLatest(content)
}

// Output channels. Consumers must drain them; slow consumers lose events
// rather than blocking the loop.

// ContentChanges delivers one classification per edit event.
func (e *Engine) ContentChanges() <-chan types.ContentChange { return e.contentChanges }

// Suggestions delivers provider results for display.
func (e *Engine) Suggestions() <-chan SuggestionsReady { return e.suggestions }

// Commits delivers the committed text when the user confirms.
func (e *Engine) Commits() <-chan string { return e.commits }

// Cancels delivers one value per escape press.
func (e *Engine) Cancels() <-chan struct{} { return e.cancels }

// Moves delivers selection-navigation pass-throughs.
func (e *Engine) Moves() <-chan types.MoveDirection { return e.moves }

// Host input methods. Each enqueues one event for the loop.

// TextChanged reports one raw edit event.
func (e *Engine) TextChanged(change types.TextChange) {
	e.send(Event{Type: EventTextChanged, Data: change})
}

// Commit reports that the user confirmed the current content.
func (e *Engine) Commit() { e.send(Event{Type: EventCommit}) }

// Cancel reports an escape press.
func (e *Engine) Cancel() { e.send(Event{Type: EventEsc}) }

// Move reports a selection-navigation key.
func (e *Engine) Move(dir types.MoveDirection) {
	e.send(Event{Type: EventMove, Data: dir})
}

// Accept takes the whole displayed suggestion into the field.
func (e *Engine) Accept() { e.send(Event{Type: EventAccept}) }

// AcceptWord takes the next word of the displayed suggestion's tail.
func (e *Engine) AcceptWord() { e.send(Event{Type: EventPartialAccept}) }

func (e *Engine) send(event Event) {
	e.mu.RLock()
	stopped := e.stopped
	e.mu.RUnlock()
	if stopped {
		return
	}

	select {
	case e.eventChan <- event:
	default:
		logger.Warn("event queue full, dropping %s", event.Type)
	}
}

// handleTextChangeImpl classifies one edit against the displayed-content slot
// and publishes the outcome. Caller holds the lock.
func (e *Engine) handleTextChangeImpl(change types.TextChange) {
	prior, ok := e.cache.PopLatest()
	if !ok {
		// Nothing was displayed since the last edit.
		prior = types.Empty
	}

	outcome := text.Classify(prior, change)

	switch c := outcome.(type) {
	case types.Continuation:
		e.lastText = c.Text
		e.tracker.RecordContinuation()
		if c.RemainingAppendix == "" {
			// Suggestion fully typed out.
			logger.Debug("typing consumed the whole suggestion")
			e.displayed = nil
			e.state = stateIdle
			e.startSuggestTimer()
		} else {
			e.state = stateShowingSuggestion
		}

	case types.Replacement:
		e.lastText = c.Text
		e.tracker.RecordReplacement()
		e.clearSuggestionState()
		e.state = stateIdle
		if c.Text == "" {
			e.stopSuggestTimer()
		} else {
			e.startSuggestTimer()
		}
	}

	e.emitContentChange(outcome)
}

func (e *Engine) commitImpl() {
	committed := e.lastText
	if sugg, ok := e.displayed.(types.Suggestion); ok && e.state == stateShowingSuggestion {
		// Confirming with a standing suggestion commits its full text.
		committed = sugg.Text
	}

	e.tracker.RecordCommit()
	e.clearSuggestionState()
	e.stopSuggestTimer()
	e.cache.PopLatest()
	e.state = stateIdle
	e.lastText = committed

	select {
	case e.commits <- committed:
	default:
		logger.Warn("commit channel full, dropping")
	}
}

func (e *Engine) cancelImpl() {
	e.tracker.RecordCancel()
	e.clearSuggestionState()
	e.stopSuggestTimer()
	e.cache.PopLatest()
	e.state = stateIdle

	select {
	case e.cancels <- struct{}{}:
	default:
		logger.Warn("cancel channel full, dropping")
	}
}

func (e *Engine) acceptSuggestionImpl() {
	sugg, ok := e.displayed.(types.Suggestion)
	if !ok {
		return
	}

	e.tracker.RecordAccepted()
	e.lastText = sugg.Text
	e.clearSuggestionState()
	e.stopSuggestTimer()
	e.cache.PopLatest()
	e.state = stateIdle

	e.emitContentChange(types.Replacement{Text: sugg.Text})
}

func (e *Engine) partialAcceptSuggestionImpl() {
	sugg, ok := e.displayed.(types.Suggestion)
	if !ok {
		return
	}

	matched, full := text.FoldPrefixLen(sugg.Text, e.lastText)
	if !full {
		return
	}
	appendix := sugg.Text[matched:]
	if appendix == "" {
		return
	}

	n := text.NextWordLen(appendix)
	accepted := e.lastText + appendix[:n]
	rest := appendix[n:]

	e.tracker.RecordPartialAccepted()
	e.lastText = accepted

	if rest == "" {
		e.clearSuggestionState()
		e.stopSuggestTimer()
		e.cache.PopLatest()
		e.state = stateIdle
		e.emitContentChange(types.Replacement{Text: accepted})
		return
	}

	// Host re-displays the shortened tail and refreshes the slot.
	e.emitContentChange(types.Continuation{Text: accepted, RemainingAppendix: rest})
}

// clearSuggestionState drops the displayed suggestion and cancels any
// in-flight provider request. Caller holds the lock.
func (e *Engine) clearSuggestionState() {
	if e.currentCancel != nil {
		e.currentCancel()
		e.currentCancel = nil
	}
	e.displayed = nil
}

func (e *Engine) emitContentChange(change types.ContentChange) {
	select {
	case e.contentChanges <- change:
	default:
		logger.Warn("content change channel full, dropping")
	}
}

func (e *Engine) emitMove(dir types.MoveDirection) {
	select {
	case e.moves <- dir:
	default:
		logger.Warn("move channel full, dropping")
	}
}

func (e *Engine) emitSuggestions(ready SuggestionsReady) {
	select {
	case e.suggestions <- ready:
	default:
		logger.Warn("suggestion channel full, dropping")
	}
}

func (e *Engine) startSuggestTimer() {
	e.stopSuggestTimer()
	if e.provider == nil {
		return
	}
	e.suggestTimer = time.AfterFunc(e.config.SuggestDebounce, func() {
		e.send(Event{Type: EventSuggestTimeout})
	})
}

func (e *Engine) stopSuggestTimer() {
	if e.suggestTimer != nil {
		e.suggestTimer.Stop()
		e.suggestTimer = nil
	}
}
