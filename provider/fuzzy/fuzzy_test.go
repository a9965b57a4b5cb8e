package fuzzy

import (
	"context"
	"testing"

	"omnibar/assert"
	"omnibar/types"
)

func TestGetSuggestionFuzzyMatch(t *testing.T) {
	p := New([]string{"git status", "git stash", "go test", "make build"})

	resp, err := p.GetSuggestion(context.Background(), &types.SuggestionRequest{Query: "gst"})
	assert.NoError(t, err, "fuzzy lookup")
	assert.True(t, len(resp.Suggestions) >= 2, "subsequence matches found")
	for _, s := range resp.Suggestions {
		assert.NotEqual(t, "make build", s.Text, "non-matching candidate excluded")
	}
}

func TestGetSuggestionEmptyQuery(t *testing.T) {
	p := New([]string{"alpha", "beta", "gamma"})

	resp, err := p.GetSuggestion(context.Background(), &types.SuggestionRequest{Query: ""})
	assert.NoError(t, err, "empty query lookup")
	assert.Len(t, resp.Suggestions, 3, "all candidates in natural order")
	assert.Equal(t, "alpha", resp.Suggestions[0].Text, "order preserved")
}

func TestGetSuggestionEmptyQueryLimit(t *testing.T) {
	p := New([]string{"alpha", "beta", "gamma"})

	resp, err := p.GetSuggestion(context.Background(), &types.SuggestionRequest{Query: "", Limit: 2})
	assert.NoError(t, err, "empty query lookup")
	assert.Len(t, resp.Suggestions, 2, "limit applied")
}

func TestGetSuggestionRanked(t *testing.T) {
	p := New([]string{"configure", "config", "confirm"})

	resp, err := p.GetSuggestion(context.Background(), &types.SuggestionRequest{Query: "config"})
	assert.NoError(t, err, "fuzzy lookup")
	assert.True(t, len(resp.Suggestions) >= 2, "matches found")
	assert.Equal(t, "config", resp.Best().Text, "tightest match ranks first")
}

func TestGetSuggestionCancelledContext(t *testing.T) {
	p := New([]string{"alpha"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.GetSuggestion(ctx, &types.SuggestionRequest{Query: "a"})
	assert.Error(t, err, "cancelled context")
}
