package state

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/atomicstack/ze/internal/menu"
)

// Search holds the incremental query typed into the list screen.
type Search struct {
	Query string
}

// Append adds text to the end of the query.
func (s *Search) Append(text string) bool {
	if text == "" {
		return false
	}
	s.Query += text
	return true
}

// RemoveLast drops the final rune of the query. It is a no-op on an empty query.
func (s *Search) RemoveLast() bool {
	if s.Query == "" {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(s.Query)
	s.Query = s.Query[:len(s.Query)-size]
	return true
}

func (s *Search) Clear() bool {
	if s.Query == "" {
		return false
	}
	s.Query = ""
	return true
}

func (s Search) Active() bool {
	return s.Query != ""
}

// Apply derives the list presented to the cursor. With search disabled the
// items come back unchanged. Otherwise the result is the matching items
// followed by exactly one synthetic tail item: the new-session sentinel
// for an empty query, or a create-from-query entry.
func (s Search) Apply(items []menu.Item, enabled bool) []menu.Item {
	if !enabled {
		return menu.CloneItems(items)
	}
	if s.Query == "" {
		out := make([]menu.Item, 0, len(items)+1)
		out = append(out, items...)
		return append(out, menu.NewSessionItem())
	}
	out := FilterItems(items, s.Query)
	return append(out, menu.CreateFromQueryItem(s.Query))
}

// FilterItems returns the items whose label contains query under Unicode
// case folding, in their original order. Separators never match a
// non-empty query.
func FilterItems(items []menu.Item, query string) []menu.Item {
	if query == "" {
		return menu.CloneItems(items)
	}
	caser := cases.Fold()
	needle := caser.String(query)
	filtered := make([]menu.Item, 0, len(items))
	for _, item := range items {
		if !item.Selectable() {
			continue
		}
		if strings.Contains(caser.String(item.Label()), needle) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
