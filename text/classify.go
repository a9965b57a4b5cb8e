package text

import (
	"unicode"
	"unicode/utf8"

	"omnibar/types"
)

// Classify decides whether one edit event continues a displayed suggestion or
// replaces the field content outright.
//
// Only a forward insertion against a standing suggestion can be a
// continuation: the text after the edit must be a case-insensitive prefix of
// the suggestion's full text. Deletions and edits against literal content are
// always plain replacements.
func Classify(prior types.Content, change types.TextChange) types.ContentChange {
	sugg, ok := prior.(types.Suggestion)
	if !ok || change.Method == types.MethodDeletion {
		return types.Replacement{Text: change.Result()}
	}

	typed := change.Result()
	matched, full := FoldPrefixLen(sugg.Text, typed)
	if !full {
		// User diverged from the suggestion.
		return types.Replacement{Text: typed}
	}

	// The appendix keeps the suggestion's original casing.
	return types.Continuation{
		Text:              typed,
		RemainingAppendix: sugg.Text[matched:],
	}
}

// FoldPrefixLen reports how many leading bytes of s case-insensitively match
// prefix, and whether the entire prefix matched. An empty prefix trivially
// matches. Comparison is per-rune simple case folding, which is
// locale-independent.
func FoldPrefixLen(s, prefix string) (int, bool) {
	i := 0
	for _, pr := range prefix {
		if i >= len(s) {
			return i, false
		}
		sr, size := utf8.DecodeRuneInString(s[i:])
		if !runesFoldEqual(sr, pr) {
			return i, false
		}
		i += size
	}
	return i, true
}

// runesFoldEqual reports whether two runes are equal under simple Unicode
// case folding.
func runesFoldEqual(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
