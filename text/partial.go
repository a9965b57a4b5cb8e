package text

import (
	"strings"
	"unicode/utf8"
)

// wordBoundaryChars ends a word for word-wise appendix accept. The boundary
// character itself is part of the accepted word.
const wordBoundaryChars = " \t.,;:!?()[]{}\"'`<>/-"

// NextWordLen returns the byte length of the next word of a suggestion
// appendix, boundary character included. Returns len(appendix) when no
// boundary is found.
func NextWordLen(appendix string) int {
	for i := 0; i < len(appendix); {
		r, size := utf8.DecodeRuneInString(appendix[i:])
		if strings.ContainsRune(wordBoundaryChars, r) {
			return i + size
		}
		i += size
	}
	return len(appendix)
}
