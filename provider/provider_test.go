package provider

import (
	"testing"

	"omnibar/assert"
)

func TestNormalizeCandidates(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "trims and drops empties",
			input: []string{"  git status ", "", "   ", "git log"},
			want:  []string{"git status", "git log"},
		},
		{
			name:  "dedupes case-insensitively keeping first",
			input: []string{"GitHub", "github", "GITHUB", "gitlab"},
			want:  []string{"GitHub", "gitlab"},
		},
		{
			name:  "preserves order",
			input: []string{"b", "a", "c"},
			want:  []string{"b", "a", "c"},
		},
		{
			name:  "nil input",
			input: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeCandidates(tt.input)
			assert.Equal(t, len(tt.want), len(got), "candidate count")
			for i := range tt.want {
				assert.Equal(t, tt.want[i], got[i], "candidate at index")
			}
		})
	}
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, ClampLimit(0), "zero falls back to default")
	assert.Equal(t, DefaultLimit, ClampLimit(-3), "negative falls back to default")
	assert.Equal(t, 7, ClampLimit(7), "positive passes through")
}
