package types

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Range addresses a contiguous span of characters. Offsets are in
// user-perceived characters (grapheme clusters), not bytes.
type Range struct {
	Start  int
	Length int
}

// EditMethod distinguishes forward typing from deletion for an edit event.
type EditMethod int

const (
	MethodInsertion EditMethod = iota
	MethodDeletion
)

// String returns the string representation of an EditMethod
func (m EditMethod) String() string {
	switch m {
	case MethodInsertion:
		return "insertion"
	case MethodDeletion:
		return "deletion"
	default:
		return "unknown"
	}
}

// EditPatch describes a single replace-range text edit: the characters in
// Range are replaced by Text.
type EditPatch struct {
	Text  string
	Range Range
}

// Apply returns prior with the patched range replaced by the patch text.
// A range end past the end of prior is clamped, never an error; a start past
// the end appends.
func (p EditPatch) Apply(prior string) string {
	start := p.Range.Start
	length := p.Range.Length
	if start < 0 {
		start = 0
	}
	if length < 0 {
		length = 0
	}

	var b strings.Builder
	inserted := false
	idx := 0
	g := uniseg.NewGraphemes(prior)
	for g.Next() {
		if idx == start {
			b.WriteString(p.Text)
			inserted = true
		}
		if idx < start || idx >= start+length {
			b.WriteString(g.Str())
		}
		idx++
	}
	if !inserted {
		b.WriteString(p.Text)
	}
	return b.String()
}

// CharLen returns the number of user-perceived characters in s, matching the
// offset space used by Range.
func CharLen(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// TextChange is an immutable record of one user edit event: the text that was
// displayed before the edit, the raw patch, and whether the user was typing
// or deleting.
type TextChange struct {
	Prior  string
	Patch  EditPatch
	Method EditMethod
}

// Result derives the text after applying the patch to the prior text.
func (c TextChange) Result() string {
	return c.Patch.Apply(c.Prior)
}

// Content is what the host last displayed in the omnibar field. It is a
// closed union: Literal for plain text, Suggestion for text whose tail is a
// proposed completion. Callers must type-switch over both variants.
type Content interface {
	isContent()
}

// Literal is ordinary displayed text with no implied suggestion.
type Literal struct {
	Text string
}

// Suggestion is displayed text where the first TypedLen characters were typed
// by the user and the remainder is a proposed completion not yet committed.
type Suggestion struct {
	Text     string
	TypedLen int
}

func (Literal) isContent()    {}
func (Suggestion) isContent() {}

// Empty is the content value a caller must assume when nothing was displayed.
var Empty Content = Literal{}

// ContentChange classifies the outcome of one edit event. Closed union:
// Replacement for entirely new literal text, Continuation when the user
// extended a standing suggestion.
type ContentChange interface {
	isContentChange()
}

// Replacement means the new content is plain literal text.
type Replacement struct {
	Text string
}

// Continuation means the user typed along a displayed suggestion. Text is the
// text typed so far; RemainingAppendix is the suggestion tail still pending,
// original casing preserved.
type Continuation struct {
	Text              string
	RemainingAppendix string
}

func (Replacement) isContentChange()  {}
func (Continuation) isContentChange() {}

// SuggestionRequest asks a provider for completions of the typed text.
type SuggestionRequest struct {
	Query string
	Limit int // max ranked items to return (0 = provider default)
}

// SuggestionItem is one ranked completion candidate.
type SuggestionItem struct {
	Text  string
	Score float64
}

// SuggestionResponse carries ranked candidates, best first. An empty list
// means the provider has nothing for the query.
type SuggestionResponse struct {
	Suggestions []*SuggestionItem
}

// Best returns the top-ranked candidate, or nil if there are none.
func (r *SuggestionResponse) Best() *SuggestionItem {
	if r == nil || len(r.Suggestions) == 0 {
		return nil
	}
	return r.Suggestions[0]
}

// MoveDirection is a discrete selection-navigation request forwarded to the
// host's list.
type MoveDirection int

const (
	MoveFirst MoveDirection = iota
	MovePrevious
	MoveNext
	MoveLast
)

// String returns the string representation of a MoveDirection
func (d MoveDirection) String() string {
	switch d {
	case MoveFirst:
		return "first"
	case MovePrevious:
		return "previous"
	case MoveNext:
		return "next"
	case MoveLast:
		return "last"
	default:
		return "unknown"
	}
}
