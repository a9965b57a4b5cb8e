package prefix

import (
	"context"
	"testing"

	"omnibar/assert"
	"omnibar/types"
)

func TestGetSuggestionPrefixMatch(t *testing.T) {
	p := New([]string{"github", "gitlab", "bitbucket", "GitHub Pages"})

	resp, err := p.GetSuggestion(context.Background(), &types.SuggestionRequest{Query: "git"})
	assert.NoError(t, err, "prefix lookup")
	assert.Len(t, resp.Suggestions, 3, "matches for git")
	assert.Equal(t, "github", resp.Suggestions[0].Text, "first match")
	assert.Equal(t, "gitlab", resp.Suggestions[1].Text, "second match")
	assert.Equal(t, "GitHub Pages", resp.Suggestions[2].Text, "case-insensitive match")
}

func TestGetSuggestionScoring(t *testing.T) {
	p := New([]string{"go", "gopher"})

	resp, err := p.GetSuggestion(context.Background(), &types.SuggestionRequest{Query: "go"})
	assert.NoError(t, err, "prefix lookup")
	assert.Len(t, resp.Suggestions, 2, "matches for go")

	// Exact-length coverage scores 1; a longer candidate scores lower.
	assert.Equal(t, 1.0, resp.Suggestions[0].Score, "exact match score")
	assert.True(t, resp.Suggestions[1].Score < 1.0, "partial coverage scores below 1")
	assert.Equal(t, resp.Suggestions[0], resp.Best(), "best is first")
}

func TestGetSuggestionLimit(t *testing.T) {
	p := New([]string{"aa", "ab", "ac", "ad"})

	resp, err := p.GetSuggestion(context.Background(), &types.SuggestionRequest{Query: "a", Limit: 2})
	assert.NoError(t, err, "prefix lookup")
	assert.Len(t, resp.Suggestions, 2, "limit applied")
}

func TestGetSuggestionNoMatch(t *testing.T) {
	p := New([]string{"github", "gitlab"})

	resp, err := p.GetSuggestion(context.Background(), &types.SuggestionRequest{Query: "svn"})
	assert.NoError(t, err, "prefix lookup")
	assert.Len(t, resp.Suggestions, 0, "no matches")
	assert.Nil(t, resp.Best(), "best of empty response")
}

func TestGetSuggestionCancelledContext(t *testing.T) {
	p := New([]string{"github"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.GetSuggestion(ctx, &types.SuggestionRequest{Query: "git"})
	assert.Error(t, err, "cancelled context")
}
