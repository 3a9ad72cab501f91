package menu

import (
	"context"
	"strings"

	"github.com/atomicstack/ze/internal/zellij"
)

// Adapter is the boundary to the session multiplexer. List calls never
// fail; they degrade to empty results. Attach and create hand the terminal
// to the multiplexer and only return once it exits.
type Adapter interface {
	ListSessions(ctx context.Context) []zellij.Session
	ListLayouts(ctx context.Context) []string
	AttachSession(ctx context.Context, name string) error
	CreateSession(ctx context.Context, name, layout string) error
	DeleteSession(ctx context.Context, name string) error
}

// SessionItemsFromZellij converts adapter sessions into list items,
// preserving order.
func SessionItemsFromZellij(sessions []zellij.Session) []Item {
	items := make([]Item, 0, len(sessions))
	for _, sess := range sessions {
		name := strings.TrimSpace(sess.Name)
		if name == "" {
			continue
		}
		items = append(items, Item{
			Kind:    KindSession,
			Name:    name,
			Created: sess.Created,
			Active:  sess.Active,
		})
	}
	return items
}
