// Package provider holds shared helpers for suggestion providers.
package provider

import "strings"

// DefaultLimit caps ranked results when a request does not set one.
const DefaultLimit = 50

// NormalizeCandidates trims whitespace, drops empties, and removes
// case-insensitive duplicates while preserving order.
func NormalizeCandidates(candidates []string) []string {
	seen := make(map[string]bool, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		key := strings.ToLower(c)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// ClampLimit resolves a request limit against the default.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
