package zellij

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/ze/internal/logging"
)

var sessionLinePattern = regexp.MustCompile(`^(\S+)(?:\s+\[Created\s+(.+?)\s+ago\])?(?:\s+\((.+)\))?`)

// ListSessions returns the sessions zellij knows about. Any failure,
// including zellij reporting that no sessions exist, yields an empty list.
func (c *Client) ListSessions(ctx context.Context) []Session {
	out, err := c.command(ctx, "list-sessions").Output()
	if err != nil {
		if !isNoSessions(string(out), err) {
			logging.Error(fmt.Errorf("zellij list-sessions: %w", err))
		}
		return nil
	}
	return ParseSessions(string(out))
}

// ParseSessions parses `zellij list-sessions` output, for example
//
//	dev [Created 46m 29s ago] (current)
//	old [Created 2h ago] (EXITED - attach to resurrect)
func ParseSessions(output string) []Session {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	sessions := make([]Session, 0, len(lines))
	for _, line := range lines {
		clean := strings.TrimSpace(ansi.Strip(line))
		if clean == "" {
			continue
		}
		match := sessionLinePattern.FindStringSubmatch(clean)
		if match == nil {
			continue
		}
		status := match[3]
		sessions = append(sessions, Session{
			Name:    match[1],
			Created: match[2],
			Active:  !strings.Contains(status, "EXITED"),
		})
	}
	return sessions
}

// DeleteSession removes a session. Deleting the enclosing session is refused.
func (c *Client) DeleteSession(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("session name required")
	}
	if current := c.CurrentSession(); current != "" && current == name {
		return ErrCurrentSession
	}
	out, err := c.command(ctx, "delete-session", name).CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(ansi.Strip(string(out)))
		if detail == "" {
			return fmt.Errorf("zellij delete-session %s: %w", name, err)
		}
		return fmt.Errorf("zellij delete-session %s: %w (%s)", name, err, detail)
	}
	return nil
}

func isNoSessions(output string, err error) bool {
	msg := strings.ToLower(strings.TrimSpace(ansi.Strip(output)))
	if msg == "" && err != nil {
		msg = strings.ToLower(err.Error())
	}
	return strings.Contains(msg, "no active") || strings.Contains(msg, "no sessions")
}
