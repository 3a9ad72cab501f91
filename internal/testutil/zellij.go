package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const fakeZellijScript = `#!/bin/sh
dir="$(dirname "$0")"
printf '%s\n' "$*" >> "$dir/calls"
key="$1"
case "$key" in
  ""|-*) key=create ;;
esac
if [ -f "$dir/$key.out" ]; then
  cat "$dir/$key.out"
fi
if [ -f "$dir/$key.exit" ]; then
  exit "$(cat "$dir/$key.exit")"
fi
exit 0
`

// FakeZellij is a shell script standing in for the zellij binary. Every
// invocation appends its argv to a calls file. Output and exit status are
// scripted per subcommand; invocations without a subcommand are keyed as
// "create".
type FakeZellij struct {
	Bin string
	dir string
}

// RequireShell skips the calling test when /bin/sh is unavailable.
func RequireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("skipping: sh not available")
	}
}

// NewFakeZellij writes a fresh fake binary into a temporary directory.
func NewFakeZellij(t *testing.T) *FakeZellij {
	t.Helper()
	RequireShell(t)
	dir := t.TempDir()
	bin := filepath.Join(dir, "zellij")
	if err := os.WriteFile(bin, []byte(fakeZellijScript), 0o755); err != nil {
		t.Fatalf("failed to write fake zellij: %v", err)
	}
	return &FakeZellij{Bin: bin, dir: dir}
}

// SetOutput scripts what the fake prints for a subcommand.
func (f *FakeZellij) SetOutput(t *testing.T, subcommand, output string) {
	t.Helper()
	f.write(t, subcommand+".out", output)
}

// SetExit scripts the exit status for a subcommand.
func (f *FakeZellij) SetExit(t *testing.T, subcommand string, code int) {
	t.Helper()
	f.write(t, subcommand+".exit", strconv.Itoa(code))
}

// Calls returns the argv of each invocation so far, space-joined.
func (f *FakeZellij) Calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(f.dir, "calls"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("failed to read fake zellij calls: %v", err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func (f *FakeZellij) write(t *testing.T, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(f.dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}
