package zellij

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/ze/internal/logging"
)

const layoutExt = ".kdl"

// BuiltinLayouts ship with every zellij install.
var BuiltinLayouts = []string{"default", "compact", "classic"}

// ListLayouts returns the builtin layouts followed by any *.kdl files in the
// layout directory and configured extras. Duplicates are dropped. A missing
// or unreadable directory only removes the custom entries.
func (c *Client) ListLayouts(ctx context.Context) []string {
	seen := make(map[string]struct{}, len(BuiltinLayouts))
	layouts := make([]string, 0, len(BuiltinLayouts))
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		layouts = append(layouts, name)
	}
	for _, name := range BuiltinLayouts {
		add(name)
	}
	if ctx.Err() != nil {
		return layouts
	}
	for _, name := range c.customLayouts() {
		add(name)
	}
	for _, name := range c.extraLayouts {
		add(name)
	}
	return layouts
}

func (c *Client) customLayouts() []string {
	if c.layoutDir == "" {
		return nil
	}
	entries, err := os.ReadDir(c.layoutDir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.Error(fmt.Errorf("read layout dir %s: %w", c.layoutDir, err))
		}
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != layoutExt {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), layoutExt))
	}
	return names
}
