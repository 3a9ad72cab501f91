package zellij

import (
	"context"
	"fmt"
	"strings"
)

// AttachSession attaches the terminal to an existing session and blocks
// until zellij exits.
func (c *Client) AttachSession(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("session name required")
	}
	if c.InsideSession() {
		return ErrInsideSession
	}
	return c.interactive(ctx, "attach", name)
}

// CreateSession starts a new session, optionally named and using a layout
// other than the default, and blocks until zellij exits.
func (c *Client) CreateSession(ctx context.Context, name, layout string) error {
	return c.interactive(ctx, createArgs(name, layout)...)
}

func createArgs(name, layout string) []string {
	name = strings.TrimSpace(name)
	layout = strings.TrimSpace(layout)
	var args []string
	if layout != "" && layout != "default" {
		args = append(args, "-n", layout)
	}
	if name != "" {
		args = append(args, "-s", name)
	}
	return args
}

func (c *Client) interactive(ctx context.Context, args ...string) error {
	cmd := c.command(ctx, args...)
	cmd.Stdin = c.stdin
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", c.bin, strings.Join(args, " "), err)
	}
	return nil
}
