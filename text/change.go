package text

import (
	"github.com/rivo/uniseg"
	"github.com/sergi/go-diff/diffmatchpatch"

	"omnibar/types"
)

// ComputePatch derives the edit event between two successive field values.
// The diff is collapsed into one contiguous replace-range patch in character
// space, so ComputePatch(before, after).Result() == after.
//
// The method is Deletion when the edit only removed characters; any edit that
// inserted text counts as an insertion.
func ComputePatch(before, after string) types.TextChange {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)

	// Equal runs at both ends bound the replaced region.
	prefix := 0
	if len(diffs) > 0 && diffs[0].Type == diffmatchpatch.DiffEqual {
		prefix = len(diffs[0].Text)
	}
	suffix := 0
	if len(diffs) > 1 && diffs[len(diffs)-1].Type == diffmatchpatch.DiffEqual {
		suffix = len(diffs[len(diffs)-1].Text)
	}

	// The diff boundaries are rune-aligned; pull them back to grapheme-cluster
	// boundaries shared by both strings so Range offsets stay in character
	// space. An edit inside a cluster (deleting a combining accent) then
	// rewrites the whole cluster.
	for {
		p := min(floorBoundary(before, prefix), floorBoundary(after, prefix))
		if p == prefix {
			break
		}
		prefix = p
	}
	for {
		s := min(len(before)-ceilBoundary(before, len(before)-suffix),
			len(after)-ceilBoundary(after, len(after)-suffix))
		if s == suffix {
			break
		}
		suffix = s
	}

	removed := before[prefix : len(before)-suffix]
	inserted := after[prefix : len(after)-suffix]

	method := types.MethodInsertion
	if inserted == "" && removed != "" {
		method = types.MethodDeletion
	}

	return types.TextChange{
		Prior: before,
		Patch: types.EditPatch{
			Text: inserted,
			Range: types.Range{
				Start:  types.CharLen(before[:prefix]),
				Length: types.CharLen(removed),
			},
		},
		Method: method,
	}
}

// floorBoundary returns the largest grapheme-cluster boundary of s at or
// before byte offset n.
func floorBoundary(s string, n int) int {
	off := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		_, end := g.Positions()
		if end > n {
			break
		}
		off = end
	}
	return off
}

// ceilBoundary returns the smallest grapheme-cluster boundary of s at or
// after byte offset n.
func ceilBoundary(s string, n int) int {
	off := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if off >= n {
			return off
		}
		_, off = g.Positions()
	}
	return off
}
