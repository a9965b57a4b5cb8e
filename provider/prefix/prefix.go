// Package prefix suggests candidates whose front matches the typed text,
// ignoring case. Candidate order is preserved, so callers control priority by
// ordering their word list.
package prefix

import (
	"context"

	"omnibar/engine"
	"omnibar/logger"
	"omnibar/provider"
	"omnibar/text"
	"omnibar/types"
)

// Compile-time check that Provider implements engine.Provider
var _ engine.Provider = (*Provider)(nil)

// Provider matches candidates by case-insensitive prefix.
type Provider struct {
	candidates []string
}

// New creates a prefix provider over the given candidate list.
func New(candidates []string) *Provider {
	return &Provider{candidates: provider.NormalizeCandidates(candidates)}
}

// GetSuggestion implements engine.Provider.
func (p *Provider) GetSuggestion(ctx context.Context, req *types.SuggestionRequest) (*types.SuggestionResponse, error) {
	defer logger.Trace("prefix.GetSuggestion")()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	limit := provider.ClampLimit(req.Limit)
	resp := &types.SuggestionResponse{}

	queryLen := types.CharLen(req.Query)
	for _, c := range p.candidates {
		if _, full := text.FoldPrefixLen(c, req.Query); !full {
			continue
		}

		// Longer typed coverage scores higher; an exact-length match is 1.
		score := 1.0
		if n := types.CharLen(c); n > 0 {
			score = float64(queryLen) / float64(n)
		}
		resp.Suggestions = append(resp.Suggestions, &types.SuggestionItem{Text: c, Score: score})
		if len(resp.Suggestions) >= limit {
			break
		}
	}

	return resp, nil
}
