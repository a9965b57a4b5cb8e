// Package fuzzy ranks candidates with subsequence fuzzy matching, for hosts
// that show a filtered list alongside the field.
package fuzzy

import (
	"context"

	sahilm "github.com/sahilm/fuzzy"

	"omnibar/engine"
	"omnibar/logger"
	"omnibar/provider"
	"omnibar/types"
)

// Compile-time check that Provider implements engine.Provider
var _ engine.Provider = (*Provider)(nil)

// Provider ranks candidates with fuzzy matching.
type Provider struct {
	candidates []string
}

// New creates a fuzzy provider over the given candidate list.
func New(candidates []string) *Provider {
	return &Provider{candidates: provider.NormalizeCandidates(candidates)}
}

// GetSuggestion implements engine.Provider.
func (p *Provider) GetSuggestion(ctx context.Context, req *types.SuggestionRequest) (*types.SuggestionResponse, error) {
	defer logger.Trace("fuzzy.GetSuggestion")()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	limit := provider.ClampLimit(req.Limit)
	resp := &types.SuggestionResponse{}

	if req.Query == "" {
		// No query yet: surface the list in its natural order.
		for _, c := range p.candidates {
			resp.Suggestions = append(resp.Suggestions, &types.SuggestionItem{Text: c})
			if len(resp.Suggestions) >= limit {
				break
			}
		}
		return resp, nil
	}

	matches := sahilm.Find(req.Query, p.candidates)
	for _, m := range matches {
		resp.Suggestions = append(resp.Suggestions, &types.SuggestionItem{
			Text:  m.Str,
			Score: float64(m.Score),
		})
		if len(resp.Suggestions) >= limit {
			break
		}
	}

	return resp, nil
}
