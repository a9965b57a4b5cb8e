package text

import (
	"testing"

	"omnibar/assert"
)

func TestNextWordLen(t *testing.T) {
	tests := []struct {
		name     string
		appendix string
		want     int
	}{
		{"word then space", "hub pages", 4}, // "hub "
		{"leading space", " pages", 1},
		{"slash boundary", "com/path", 4}, // "com/"
		{"no boundary", "hub", 3},
		{"empty", "", 0},
		{"hyphen", "e-commerce", 2}, // "e-"
		{"unicode word", "日本語 input", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextWordLen(tt.appendix), "NextWordLen")
		})
	}
}
