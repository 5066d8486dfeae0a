package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "registry", mgr.viper.GetString("layout.mode"))
	assert.True(t, mgr.viper.GetBool("layout.reseed_empty"))
	assert.Equal(t, "rounded", mgr.viper.GetString("appearance.border_style"))
	assert.Equal(t, []string{"x"}, mgr.viper.GetStringSlice("keys.close"))
	assert.Equal(t, []string{"q", "ctrl+c"}, mgr.viper.GetStringSlice("keys.quit"))
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.Mode = " Tree "
	cfg.Appearance.BorderStyle = ""
	cfg.Logging.Level = "DEBUG"
	cfg.Keys.Close = []string{" x "}

	normalizeConfig(cfg)

	assert.Equal(t, LayoutModeTree, cfg.Layout.Mode)
	assert.Equal(t, BorderRounded, cfg.Appearance.BorderStyle)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"x"}, cfg.Keys.Close)
}

func TestManager_Load_CreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	_, statErr := os.Stat(path)
	require.NoError(t, statErr, "default config should be written")
	assert.Equal(t, path, mgr.GetConfigFile())

	cfg := mgr.Get()
	assert.Equal(t, LayoutModeRegistry, cfg.Layout.Mode)
	assert.Equal(t, DefaultKeys(), cfg.Keys)
}

func TestManager_Load_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[layout]
mode = "tree"
reseed_empty = false

[appearance]
focus_color = "#ff8800"
padding = 2

[keys]
close = ["d", "delete"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, LayoutModeTree, cfg.Layout.Mode)
	assert.False(t, cfg.Layout.ReseedEmpty)
	assert.Equal(t, "#ff8800", cfg.Appearance.FocusColor)
	assert.Equal(t, 2, cfg.Appearance.Padding)
	assert.Equal(t, []string{"d", "delete"}, cfg.Keys.Close)
	// Untouched keys keep their defaults.
	assert.Equal(t, []string{"h"}, cfg.Keys.SplitHorizontal)
	assert.Equal(t, defaultBorderColor, cfg.Appearance.BorderColor)
}

func TestManager_Load_EnvOverride(t *testing.T) {
	t.Setenv("TILES_MODE", "tree")
	t.Setenv("TILES_LOG_LEVEL", "debug")
	path := filepath.Join(t.TempDir(), "config.toml")

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, LayoutModeTree, cfg.Layout.Mode)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManager_Load_RejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[layout]\nmode = \"grid\"\n"), 0o644))

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.mode")
}

func TestManager_Reload_NotifiesCallbacks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got *Config
	mgr.OnConfigChange(func(c *Config) { got = c })

	require.NoError(t, os.WriteFile(path, []byte("[appearance]\nfocus_color = \"#00ff00\"\n"), 0o644))
	require.NoError(t, mgr.Reload())

	require.NotNil(t, got)
	assert.Equal(t, "#00ff00", got.Appearance.FocusColor)
	assert.Equal(t, "#00ff00", mgr.Get().Appearance.FocusColor)
}

func TestManager_Reload_KeepsPreviousOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var reloadErr error
	mgr.OnReloadError(func(err error) { reloadErr = err })

	require.NoError(t, os.WriteFile(path, []byte("[appearance]\npadding = 9\n"), 0o644))
	err = mgr.Reload()

	require.Error(t, err)
	assert.True(t, errors.Is(reloadErr, err) || reloadErr == err)
	assert.Equal(t, defaultPadding, mgr.Get().Appearance.Padding)
}

func TestNewManagerWithFile_RequiresPath(t *testing.T) {
	_, err := NewManagerWithFile("")
	assert.Error(t, err)
}

func TestManager_Get_BeforeLoadReturnsDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	assert.Equal(t, DefaultConfig(), mgr.Get())
}
