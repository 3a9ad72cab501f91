package state

import "github.com/atomicstack/ze/internal/menu"

// Cursor is the active index into the filtered list plus the first row
// currently scrolled into view.
type Cursor struct {
	Index  int
	Offset int
}

// MoveUp steps the cursor up, wrapping from the first row to the last.
func (c *Cursor) MoveUp(items []menu.Item) bool {
	return c.step(items, -1)
}

// MoveDown steps the cursor down, wrapping from the last row to the first.
func (c *Cursor) MoveDown(items []menu.Item) bool {
	return c.step(items, 1)
}

// step moves one row in dir. Separators are skipped in the same direction
// after the initial wrap; skipping never wraps a second time and stops on
// the boundary row if nothing selectable lies beyond it.
func (c *Cursor) step(items []menu.Item, dir int) bool {
	n := len(items)
	if n == 0 {
		c.Index = 0
		return false
	}
	old := c.Index
	idx := c.Index + dir
	if idx < 0 {
		idx = n - 1
	} else if idx >= n {
		idx = 0
	}
	for !items[idx].Selectable() {
		next := idx + dir
		if next < 0 || next >= n {
			break
		}
		idx = next
	}
	c.Index = idx
	return c.Index != old
}

func (c *Cursor) Reset() {
	c.Index = 0
	c.Offset = 0
}

// Clamp keeps the index inside a list of length n.
func (c *Cursor) Clamp(n int) {
	if c.Index >= n {
		c.Index = n - 1
	}
	if c.Index < 0 {
		c.Index = 0
	}
}

// Current returns the item under the cursor.
func (c Cursor) Current(items []menu.Item) (menu.Item, bool) {
	if c.Index < 0 || c.Index >= len(items) {
		return menu.Item{}, false
	}
	return items[c.Index], true
}

// EnsureVisible adjusts the viewport offset so the cursor stays visible in
// a window of maxVisible rows.
func (c *Cursor) EnsureVisible(n, maxVisible int) {
	if n == 0 {
		c.Index = 0
		c.Offset = 0
		return
	}
	c.Clamp(n)
	if maxVisible <= 0 {
		c.Offset = 0
		return
	}
	maxOffset := n - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.Offset > maxOffset {
		c.Offset = maxOffset
	}
	if c.Offset < 0 {
		c.Offset = 0
	}
	if c.Index < c.Offset {
		c.Offset = c.Index
	}
	if upper := c.Offset + maxVisible - 1; c.Index > upper {
		c.Offset = c.Index - maxVisible + 1
	}
}
