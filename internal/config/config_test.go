package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"HOME=" + t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "zellij", cfg.App.Zellij)
	assert.Empty(t, cfg.App.LayoutDir)
	assert.True(t, cfg.App.ShowFooter)
	assert.Zero(t, cfg.App.Width)
	assert.False(t, cfg.Logging.Trace)
	assert.Equal(t, "true", cfg.Flags["footer"])
	require.NoError(t, Validate(cfg))
}

func TestLoadArgsPrecedence(t *testing.T) {
	path := writeConfig(t, `
zellij: /opt/file/zellij
layoutDir: ~/layouts
footer: false
width: 90
trace: true
extraLayouts: [work, notes]
`)
	home := t.TempDir()
	env := []string{
		"HOME=" + home,
		"ZE_CONFIG=" + path,
		"ZE_ZELLIJ=/opt/env/zellij",
		"ZE_WIDTH=100",
	}

	cfg, err := LoadArgs([]string{"--width", "120"}, env)
	require.NoError(t, err)
	assert.Equal(t, "/opt/env/zellij", cfg.App.Zellij, "env beats file")
	assert.Equal(t, 120, cfg.App.Width, "flag beats env")
	assert.Equal(t, filepath.Join(home, "layouts"), cfg.App.LayoutDir, "file beats default")
	assert.False(t, cfg.App.ShowFooter)
	assert.True(t, cfg.Logging.Trace)
	assert.Equal(t, []string{"work", "notes"}, cfg.App.ExtraLayouts)
	assert.Equal(t, path, cfg.File)

	cfg, err = LoadArgs([]string{"--zellij", "/opt/flag/zellij", "--footer=true"}, env)
	require.NoError(t, err)
	assert.Equal(t, "/opt/flag/zellij", cfg.App.Zellij)
	assert.True(t, cfg.App.ShowFooter)
	assert.Equal(t, 100, cfg.App.Width)
}

func TestLoadArgsDefaultConfigPath(t *testing.T) {
	xdg := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "ze"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(xdg, "ze", "config.yaml"), []byte("height: 30\n"), 0o644))

	cfg, err := LoadArgs(nil, []string{"XDG_CONFIG_HOME=" + xdg})
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.App.Height)
	assert.Equal(t, filepath.Join(xdg, "ze", "config.yaml"), cfg.File)
}

func TestLoadArgsConfigErrors(t *testing.T) {
	_, err := LoadArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, nil)
	require.Error(t, err, "explicit missing file must fail")

	bad := writeConfig(t, "width: [nope\n")
	_, err = LoadArgs([]string{"--config", bad}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")

	_, err = LoadArgs([]string{"--bogus"}, nil)
	require.Error(t, err)
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"ZE_WIDTH=wide", "ZE_FOOTER=maybe", "ZE_TRACE="})
	require.NoError(t, err)
	assert.Zero(t, cfg.App.Width)
	assert.True(t, cfg.App.ShowFooter)
	assert.False(t, cfg.Logging.Trace)
}

func TestValidate(t *testing.T) {
	cfg, err := LoadArgs([]string{"--height", "-1"}, nil)
	require.NoError(t, err)
	assert.Error(t, Validate(cfg))

	cfg, err = LoadArgs([]string{"--zellij", " "}, nil)
	require.NoError(t, err)
	assert.Error(t, Validate(cfg))
}

func TestVersionAndHelp(t *testing.T) {
	cfg, err := LoadArgs([]string{"-v"}, nil)
	require.ErrorIs(t, err, ErrHelp)
	assert.Equal(t, Version, cfg.Output)

	cfg, err = LoadArgs([]string{"--help"}, nil)
	require.ErrorIs(t, err, ErrHelp)
	assert.Contains(t, cfg.Output, "Fast and intuitive Zellij session manager")
	assert.Contains(t, cfg.Output, "-layout-dir")
}
