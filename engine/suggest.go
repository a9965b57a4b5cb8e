package engine

import (
	"context"
	"strings"

	"omnibar/logger"
	"omnibar/text"
	"omnibar/types"
)

// suggestionResult pairs a provider response with the query it answered so
// stale responses can be discarded.
type suggestionResult struct {
	query string
	resp  *types.SuggestionResponse
}

// requestSuggestion fires a provider query for the current text. Caller holds
// the lock.
func (e *Engine) requestSuggestion() {
	if e.stopped || e.provider == nil {
		return
	}
	query := e.lastText
	if query == "" {
		return
	}

	if e.currentCancel != nil {
		e.currentCancel()
	}
	ctx, cancel := context.WithTimeout(e.mainCtx, e.config.SuggestTimeout)
	e.currentCancel = cancel
	e.state = statePendingSuggestion

	go func() {
		defer cancel()

		resp, err := e.provider.GetSuggestion(ctx, &types.SuggestionRequest{
			Query: query,
			Limit: e.config.SuggestLimit,
		})

		if err != nil {
			select {
			case e.eventChan <- Event{Type: EventSuggestionError, Data: err}:
			case <-e.mainCtx.Done():
			}
			return
		}

		select {
		case e.eventChan <- Event{Type: EventSuggestionReady, Data: &suggestionResult{query: query, resp: resp}}:
		case <-e.mainCtx.Done():
		}
	}()
}

// handleSuggestionReadyImpl publishes a finished provider query. Caller holds
// the lock; state is statePendingSuggestion.
func (e *Engine) handleSuggestionReadyImpl(res *suggestionResult) {
	if res.query != e.lastText {
		// The field moved on while the request was in flight.
		logger.Debug("stale suggestion for %q dropped (now %q)", res.query, e.lastText)
		e.state = stateIdle
		return
	}

	ready := SuggestionsReady{Query: res.query, Items: res.resp.Suggestions}

	if best := res.resp.Best(); best != nil {
		if _, full := text.FoldPrefixLen(best.Text, res.query); full && !strings.EqualFold(best.Text, res.query) {
			ready.Completion = &types.Suggestion{
				Text:     best.Text,
				TypedLen: types.CharLen(res.query),
			}
		}
	}

	if ready.Completion != nil {
		e.state = stateShowingSuggestion
		e.tracker.RecordShown()
	} else {
		e.state = stateIdle
	}

	e.emitSuggestions(ready)
}
