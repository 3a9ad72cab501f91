package zellij

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	defaultBinary = "zellij"

	envInside      = "ZELLIJ"
	envSessionName = "ZELLIJ_SESSION_NAME"
)

var (
	// ErrInsideSession is returned when attaching from within a zellij session.
	ErrInsideSession = errors.New("cannot attach to a session from within zellij")
	// ErrCurrentSession is returned when deleting the session we are running in.
	ErrCurrentSession = errors.New("cannot delete the current session")
)

// Session is one entry from `zellij list-sessions`.
type Session struct {
	Name    string
	Created string
	Active  bool
}

// Options configures a Client.
type Options struct {
	Binary       string
	LayoutDir    string
	ExtraLayouts []string
}

// Client shells out to the zellij binary.
type Client struct {
	bin          string
	layoutDir    string
	extraLayouts []string

	run    func(context.Context, string, ...string) *exec.Cmd
	getenv func(string) string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewClient builds a client; empty options fall back to `zellij` on PATH
// and the user's zellij layout directory.
func NewClient(opts Options) *Client {
	bin := strings.TrimSpace(opts.Binary)
	if bin == "" {
		bin = defaultBinary
	}
	layoutDir := strings.TrimSpace(opts.LayoutDir)
	if layoutDir == "" {
		layoutDir = DefaultLayoutDir()
	}
	return &Client{
		bin:          bin,
		layoutDir:    layoutDir,
		extraLayouts: append([]string(nil), opts.ExtraLayouts...),
		run:          exec.CommandContext,
		getenv:       os.Getenv,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// DefaultLayoutDir returns ~/.config/zellij/layouts, or an empty string
// when the home directory cannot be resolved.
func DefaultLayoutDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "zellij", "layouts")
}

func (c *Client) Binary() string {
	return c.bin
}

func (c *Client) LayoutDir() string {
	return c.layoutDir
}

// WithExec replaces the command constructor, mainly for tests.
func (c *Client) WithExec(fn func(context.Context, string, ...string) *exec.Cmd) {
	c.run = fn
}

// WithEnv replaces the environment lookup used for the session guards.
func (c *Client) WithEnv(fn func(string) string) {
	c.getenv = fn
}

// WithStdio sets the streams handed to attach and create.
func (c *Client) WithStdio(in io.Reader, out, errOut io.Writer) {
	c.stdin = in
	c.stdout = out
	c.stderr = errOut
}

// InsideSession reports whether the process runs inside a zellij session.
func (c *Client) InsideSession() bool {
	return c.getenv(envInside) != ""
}

// CurrentSession returns the name of the enclosing zellij session, if any.
func (c *Client) CurrentSession() string {
	return strings.TrimSpace(c.getenv(envSessionName))
}

func (c *Client) command(ctx context.Context, args ...string) *exec.Cmd {
	return c.run(ctx, c.bin, args...)
}
