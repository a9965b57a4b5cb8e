package text

import (
	"testing"

	"omnibar/assert"
	"omnibar/types"
)

func TestComputePatchRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		before string
		after  string
	}{
		{"append char", "git", "gith"},
		{"delete last char", "abc", "ab"},
		{"insert in middle", "helo", "hello"},
		{"delete in middle", "hello", "helo"},
		{"replace word", "gi x", "github"},
		{"from empty", "", "g"},
		{"to empty", "git", ""},
		{"unchanged", "same", "same"},
		{"multi-byte", "日本", "日本語"},
		{"full rewrite", "abc", "xyz"},
		{"combining accent deleted", "e\u0301", "e"},
		{"combining accent added", "e", "e\u0301"},
		{"accent dropped mid-word", "cafe\u0301s", "cafes"},
		{"accent swapped", "e\u0301", "e\u0300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change := ComputePatch(tt.before, tt.after)
			assert.Equal(t, tt.before, change.Prior, "prior text")
			assert.Equal(t, tt.after, change.Result(), "patch applies back to after")
		})
	}
}

func TestComputePatchMethod(t *testing.T) {
	tests := []struct {
		name   string
		before string
		after  string
		want   types.EditMethod
	}{
		{"typing is insertion", "git", "gith", types.MethodInsertion},
		{"backspace is deletion", "gith", "git", types.MethodDeletion},
		{"replacement counts as insertion", "gi x", "github", types.MethodInsertion},
		{"clear is deletion", "git", "", types.MethodDeletion},
		{"no change is insertion", "", "", types.MethodInsertion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change := ComputePatch(tt.before, tt.after)
			assert.Equal(t, tt.want, change.Method, "edit method")
		})
	}
}

func TestComputePatchRange(t *testing.T) {
	// Appending to "git" patches an empty range at offset 3.
	change := ComputePatch("git", "gith")
	assert.Equal(t, 3, change.Patch.Range.Start, "start")
	assert.Equal(t, 0, change.Patch.Range.Length, "length")
	assert.Equal(t, "h", change.Patch.Text, "inserted text")

	// Offsets are characters, not bytes.
	change = ComputePatch("日本", "日本語")
	assert.Equal(t, 2, change.Patch.Range.Start, "multi-byte start")
	assert.Equal(t, "語", change.Patch.Text, "multi-byte inserted text")
}

func TestComputePatchClusterBoundaries(t *testing.T) {
	// Deleting a combining accent splits no cluster: the whole accented
	// cluster is rewritten as "e" and the trailing "s" survives.
	change := ComputePatch("cafe\u0301s", "cafes")
	assert.Equal(t, "cafes", change.Result(), "patch applies back to after")
	assert.Equal(t, 3, change.Patch.Range.Start, "start")
	assert.Equal(t, 1, change.Patch.Range.Length, "length")
	assert.Equal(t, "e", change.Patch.Text, "cluster rewritten whole")

	change = ComputePatch("e\u0301", "e")
	assert.Equal(t, "e", change.Result(), "accent-only delete")
	assert.Equal(t, 0, change.Patch.Range.Start, "start at cluster boundary")
	assert.Equal(t, 1, change.Patch.Range.Length, "whole cluster replaced")
}
