package types

import (
	"testing"

	"omnibar/assert"
)

func TestEditPatchApply(t *testing.T) {
	tests := []struct {
		name  string
		prior string
		patch EditPatch
		want  string
	}{
		{"replace head", "hello", EditPatch{Text: "HI", Range: Range{Start: 0, Length: 2}}, "HIllo"},
		{"clamp range end", "hello", EditPatch{Text: "!", Range: Range{Start: 3, Length: 10}}, "hel!"},
		{"pure insert", "hello", EditPatch{Text: "X", Range: Range{Start: 2, Length: 0}}, "heXllo"},
		{"pure delete", "hello", EditPatch{Text: "", Range: Range{Start: 4, Length: 1}}, "hell"},
		{"append at end", "ab", EditPatch{Text: "c", Range: Range{Start: 2, Length: 0}}, "abc"},
		{"start past end", "ab", EditPatch{Text: "c", Range: Range{Start: 9, Length: 3}}, "abc"},
		{"replace everything", "old", EditPatch{Text: "new", Range: Range{Start: 0, Length: 3}}, "new"},
		{"empty prior", "", EditPatch{Text: "x", Range: Range{Start: 0, Length: 0}}, "x"},
		{"negative start clamps to zero", "abc", EditPatch{Text: "Z", Range: Range{Start: -2, Length: 1}}, "Zbc"},
		{"negative length is empty", "abc", EditPatch{Text: "Z", Range: Range{Start: 1, Length: -5}}, "aZbc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.patch.Apply(tt.prior), "Apply")
		})
	}
}

func TestEditPatchApplyGraphemes(t *testing.T) {
	// Offsets count user-perceived characters, not bytes.
	got := EditPatch{Text: "x", Range: Range{Start: 1, Length: 1}}.Apply("日本語")
	assert.Equal(t, "日x語", got, "multi-byte replace")

	// A combining sequence is one character.
	got = EditPatch{Text: "", Range: Range{Start: 0, Length: 1}}.Apply("e\u0301f")
	assert.Equal(t, "f", got, "combining mark deleted with its base")
}

func TestCharLen(t *testing.T) {
	assert.Equal(t, 0, CharLen(""), "empty")
	assert.Equal(t, 5, CharLen("hello"), "ascii")
	assert.Equal(t, 3, CharLen("日本語"), "multi-byte")
	assert.Equal(t, 2, CharLen("e\u0301f"), "combining sequence")
}

func TestTextChangeResult(t *testing.T) {
	change := TextChange{
		Prior:  "githu",
		Patch:  EditPatch{Text: "b", Range: Range{Start: 5, Length: 0}},
		Method: MethodInsertion,
	}
	assert.Equal(t, "github", change.Result(), "derived result")
}

func TestSuggestionResponseBest(t *testing.T) {
	var nilResp *SuggestionResponse
	assert.Nil(t, nilResp.Best(), "nil response")
	assert.Nil(t, (&SuggestionResponse{}).Best(), "empty response")

	resp := &SuggestionResponse{Suggestions: []*SuggestionItem{
		{Text: "github", Score: 0.9},
		{Text: "gitlab", Score: 0.5},
	}}
	assert.Equal(t, "github", resp.Best().Text, "best is first")
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "insertion", MethodInsertion.String(), "insertion")
	assert.Equal(t, "deletion", MethodDeletion.String(), "deletion")
	assert.Equal(t, "first", MoveFirst.String(), "first")
	assert.Equal(t, "last", MoveLast.String(), "last")
}
