package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, "core", cfg.Device)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "auto", cfg.Log.Format)
	assert.False(t, cfg.WatchCompose)
	assert.Equal(t, FontLocatorFor(runtime.GOOS), cfg.FontLocator)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "xkeyboard.toml")
	data := `
device = "3"
locale = "pt_PT.UTF-8"
watch-compose = true

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))

	t.Setenv("XKEYBOARD_COMPOSE_FILE", "/tmp/XCompose")
	t.Setenv("XKEYBOARD_LOG_FORMAT", "json")
	t.Setenv("XKEYBOARD_DEVICE", "4") // env wins over the file

	cfg, err := Load(NewViper(), fn)
	require.NoError(t, err)
	assert.Equal(t, "4", cfg.Device)
	assert.Equal(t, "pt_PT.UTF-8", cfg.Locale)
	assert.Equal(t, "/tmp/XCompose", cfg.ComposeFile)
	assert.True(t, cfg.WatchCompose)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestFontLocatorFor(t *testing.T) {
	assert.Equal(t, LocatorGdi, FontLocatorFor("windows"))
	assert.Equal(t, LocatorCoreText, FontLocatorFor("darwin"))
	assert.Equal(t, LocatorFontConfig, FontLocatorFor("linux"))
	assert.Equal(t, LocatorFontConfig, FontLocatorFor("plan9"))
}
