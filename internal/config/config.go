package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/ze/internal/app"
)

// Version is reported by --version. Release builds override it with
// -ldflags "-X github.com/atomicstack/ze/internal/config.Version=...".
var Version = "dev"

// ErrHelp is returned when --help or --version was requested. The usage or
// version text is in Config.Output.
var ErrHelp = errors.New("help requested")

// Usage is printed by --help.
const Usage = `Usage
  $ ze [flags]

Description
  Fast and intuitive Zellij session manager with real-time search

Navigation
  ↑/↓ or Ctrl+j/k   Navigate through items
  Enter             Select item or confirm
  Esc or Ctrl+C     Cancel or exit
  Type              Filter sessions by name
  Backspace/Del     Clear search
  Ctrl+D            Delete session

Features
  • Real-time incremental search
  • Create new sessions directly from search
  • Always shows "Create New Session" option
  • Layout selection for new sessions

Examples
  $ ze           Start interactive session manager

Flags
`

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
	Output  string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// fileConfig mirrors the optional YAML file. Pointer fields distinguish
// unset keys from zero values.
type fileConfig struct {
	Zellij       *string  `yaml:"zellij"`
	LayoutDir    *string  `yaml:"layoutDir"`
	ExtraLayouts []string `yaml:"extraLayouts"`
	Footer       *bool    `yaml:"footer"`
	Width        *int     `yaml:"width"`
	Height       *int     `yaml:"height"`
	LogFile      *string  `yaml:"logFile"`
	Trace        *bool    `yaml:"trace"`
}

const (
	envZellij     = "ZE_ZELLIJ"
	envLayoutDir  = "ZE_LAYOUT_DIR"
	envConfig     = "ZE_CONFIG"
	envWidth      = "ZE_WIDTH"
	envHeight     = "ZE_HEIGHT"
	envShowFooter = "ZE_FOOTER"
	envTrace      = "ZE_TRACE"
	envLogFile    = "ZE_LOG_FILE"
)

// Load parses configuration from CLI arguments, environment variables and
// the config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence is
// flag, then environment, then config file, then built-in default.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("ze", flag.ContinueOnError)
	usage := new(strings.Builder)
	fs.SetOutput(usage)

	zellijBin := fs.String("zellij", "zellij", "path to the zellij binary")
	layoutDir := fs.String("layout-dir", "", "directory searched for *.kdl layouts (default ~/.config/zellij/layouts)")
	configPath := fs.String("config", "", "path to a YAML config file")
	width := fs.Int("width", 0, "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", 0, "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", true, "show the key hint footer")
	trace := fs.Bool("trace", false, "enable verbose JSON trace logging")
	logFile := fs.String("log-file", "", "path to the log file")
	var version, help bool
	fs.BoolVar(&version, "version", false, "print the version and exit")
	fs.BoolVar(&version, "v", false, "shorthand for --version")
	fs.BoolVar(&help, "help", false, "print this help and exit")
	fs.BoolVar(&help, "h", false, "shorthand for --help")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{Output: helpText(fs)}, ErrHelp
		}
		return Config{}, err
	}
	if version {
		return Config{Output: Version}, ErrHelp
	}
	if help {
		return Config{Output: helpText(fs)}, ErrHelp
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	path, explicit := resolveConfigPath(set["config"], *configPath, env)
	file, err := readFile(path, explicit)
	if err != nil {
		return Config{}, err
	}

	r := resolver{set: set, env: env}
	cfg := Config{
		App: app.Config{
			Zellij:       r.str("zellij", *zellijBin, envZellij, file.Zellij),
			LayoutDir:    expandHome(r.str("layout-dir", *layoutDir, envLayoutDir, file.LayoutDir), env),
			ExtraLayouts: append([]string(nil), file.ExtraLayouts...),
			Width:        r.int("width", *width, envWidth, file.Width),
			Height:       r.int("height", *height, envHeight, file.Height),
			ShowFooter:   r.bool("footer", *footer, envShowFooter, file.Footer),
		},
		Logging: Logging{
			FilePath: expandHome(r.str("log-file", *logFile, envLogFile, file.LogFile), env),
			Trace:    r.bool("trace", *trace, envTrace, file.Trace),
		},
		File: path,
		Args: append([]string(nil), args...),
	}
	cfg.Flags = map[string]string{
		"zellij":    cfg.App.Zellij,
		"layoutDir": cfg.App.LayoutDir,
		"config":    cfg.File,
		"width":     strconv.Itoa(cfg.App.Width),
		"height":    strconv.Itoa(cfg.App.Height),
		"footer":    strconv.FormatBool(cfg.App.ShowFooter),
		"trace":     strconv.FormatBool(cfg.Logging.Trace),
		"logFile":   cfg.Logging.FilePath,
	}
	return cfg, nil
}

func helpText(fs *flag.FlagSet) string {
	var b strings.Builder
	b.WriteString(Usage)
	fs.SetOutput(&b)
	fs.PrintDefaults()
	return b.String()
}

// resolver applies flag > env > file > default for one setting.
type resolver struct {
	set map[string]bool
	env map[string]string
}

func (r resolver) str(name, flagValue, envKey string, file *string) string {
	if r.set[name] {
		return flagValue
	}
	if v, ok := r.env[envKey]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	if file != nil {
		return *file
	}
	return flagValue
}

func (r resolver) int(name string, flagValue int, envKey string, file *int) int {
	if r.set[name] {
		return flagValue
	}
	if v, ok := envInt(r.env, envKey); ok {
		return v
	}
	if file != nil {
		return *file
	}
	return flagValue
}

func (r resolver) bool(name string, flagValue bool, envKey string, file *bool) bool {
	if r.set[name] {
		return flagValue
	}
	if v, ok := envBool(r.env, envKey); ok {
		return v
	}
	if file != nil {
		return *file
	}
	return flagValue
}

// resolveConfigPath reports the config file to read and whether the user
// named it explicitly.
func resolveConfigPath(flagSet bool, flagValue string, env map[string]string) (string, bool) {
	if flagSet && flagValue != "" {
		return expandHome(flagValue, env), true
	}
	if v := strings.TrimSpace(env[envConfig]); v != "" {
		return expandHome(v, env), true
	}
	return DefaultPath(env), false
}

// DefaultPath returns $XDG_CONFIG_HOME/ze/config.yaml, falling back to
// ~/.config/ze/config.yaml.
func DefaultPath(env map[string]string) string {
	if dir := strings.TrimSpace(env["XDG_CONFIG_HOME"]); dir != "" {
		return filepath.Join(dir, "ze", "config.yaml")
	}
	home := strings.TrimSpace(env["HOME"])
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "ze", "config.yaml")
}

// readFile loads the YAML config. A missing default file is not an error.
func readFile(path string, explicit bool) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return fc, nil
		}
		return fc, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

func expandHome(path string, env map[string]string) string {
	home := env["HOME"]
	if home == "" || path == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envInt(env map[string]string, key string) (int, bool) {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return 0, false
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func envBool(env map[string]string, key string) (bool, bool) {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return false, false
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, false
	}
	return parsed, true
}

// MustLoad returns configuration or exits. Help and version output exit 0.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, ErrHelp) {
		fmt.Fprintln(os.Stdout, cfg.Output)
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.Zellij) == "" {
		return errors.New("zellij binary must not be empty")
	}
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	return nil
}
