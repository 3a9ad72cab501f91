package menu

import "fmt"

// Kind discriminates the item variants shown by the picker.
type Kind int

const (
	KindSession Kind = iota
	KindNewSession
	KindCreateFromQuery
	KindLayout
	KindSeparator
)

func (k Kind) String() string {
	switch k {
	case KindSession:
		return "session"
	case KindNewSession:
		return "new-session"
	case KindCreateFromQuery:
		return "create-from-query"
	case KindLayout:
		return "layout"
	case KindSeparator:
		return "separator"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Intent is what selecting an item asks the picker to do.
type Intent int

const (
	IntentNone Intent = iota
	IntentAttach
	IntentBeginName
	IntentBeginLayout
	IntentCreate
)

func (i Intent) String() string {
	switch i {
	case IntentAttach:
		return "attach"
	case IntentBeginName:
		return "begin-name"
	case IntentBeginLayout:
		return "begin-layout"
	case IntentCreate:
		return "create"
	default:
		return "none"
	}
}

const (
	NewSessionLabel = "[ + New Session ]"
	activeLabel     = "active"
)

// Item is a single row in the picker. Name holds the session name, the
// layout name, or the search query depending on Kind.
type Item struct {
	Kind        Kind
	Name        string
	Created     string
	Active      bool
	Description string
}

// NewSessionItem returns the sentinel appended while no query is active.
func NewSessionItem() Item {
	return Item{Kind: KindNewSession}
}

// CreateFromQueryItem returns the synthetic item offering to create a
// session named after the query.
func CreateFromQueryItem(query string) Item {
	return Item{Kind: KindCreateFromQuery, Name: query}
}

// LayoutItem builds a layout entry with its canned description.
func LayoutItem(name string) Item {
	return Item{Kind: KindLayout, Name: name, Description: LayoutDescription(name)}
}

func SeparatorItem() Item {
	return Item{Kind: KindSeparator}
}

// Label is the text displayed and matched by search.
func (i Item) Label() string {
	switch i.Kind {
	case KindNewSession:
		return NewSessionLabel
	case KindCreateFromQuery:
		return fmt.Sprintf("[ + Create Session %q ]", i.Name)
	case KindSeparator:
		return ""
	default:
		return i.Name
	}
}

// Detail is the secondary text rendered after the label.
func (i Item) Detail() string {
	switch i.Kind {
	case KindSession:
		if i.Active {
			return activeLabel
		}
		return i.Created
	case KindLayout:
		return i.Description
	default:
		return ""
	}
}

func (i Item) Deletable() bool {
	return i.Kind == KindSession
}

func (i Item) Selectable() bool {
	return i.Kind != KindSeparator
}

func (i Item) Synthetic() bool {
	return i.Kind == KindNewSession || i.Kind == KindCreateFromQuery
}

// Intent reports what Enter on this item requests.
func (i Item) Intent() Intent {
	switch i.Kind {
	case KindSession:
		return IntentAttach
	case KindNewSession:
		return IntentBeginName
	case KindCreateFromQuery:
		return IntentBeginLayout
	case KindLayout:
		return IntentCreate
	default:
		return IntentNone
	}
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
