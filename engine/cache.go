package engine

import (
	"sync"

	"omnibar/types"
)

// ContentCache is a single-slot holding cell correlating the content the host
// last displayed with the next raw edit event. Write-once/read-once:
// PushLatest overwrites whatever is present, PopLatest consumes the slot.
//
// If nothing is pushed between two edits, the second edit sees an empty slot
// and degrades to plain replacement.
type ContentCache struct {
	mu      sync.Mutex
	content types.Content
	present bool
}

// NewContentCache returns an empty cache.
func NewContentCache() *ContentCache {
	return &ContentCache{}
}

// PushLatest stores content, overwriting any previous value.
func (c *ContentCache) PushLatest(content types.Content) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.content = content
	c.present = true
}

// PopLatest returns the stored value and clears the slot. The second return
// is false when nothing was pushed since the last pop.
func (c *ContentCache) PopLatest() (types.Content, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.present {
		return nil, false
	}
	content := c.content
	c.content = nil
	c.present = false
	return content, true
}
