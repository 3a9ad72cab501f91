package menu

// DefaultLayout is the layout zellij applies when no layout flag is passed.
const DefaultLayout = "default"

// LayoutDescription returns the hint shown next to a layout name.
func LayoutDescription(name string) string {
	switch name {
	case DefaultLayout:
		return "Standard layout (recommended)"
	case "compact":
		return "Compact view"
	case "classic":
		return "Classic style"
	default:
		return "Custom layout"
	}
}

// LayoutItems converts layout names into items in the given order.
func LayoutItems(names []string) []Item {
	items := make([]Item, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		items = append(items, LayoutItem(name))
	}
	return items
}
