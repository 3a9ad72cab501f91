package state

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/atomicstack/ze/internal/menu"
)

// CollationTag selects the locale used to order layout names.
var CollationTag = language.Und

// SortLayouts returns a copy of layouts with "default" first and the rest
// in locale collation order.
func SortLayouts(layouts []string) []string {
	out := slices.Clone(layouts)
	col := collate.New(CollationTag)
	slices.SortStableFunc(out, func(a, b string) int {
		switch {
		case a == b:
			return 0
		case a == menu.DefaultLayout:
			return -1
		case b == menu.DefaultLayout:
			return 1
		}
		return col.CompareString(a, b)
	})
	return out
}
