package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/alienv/internal/config"
	"github.com/hbjs97/alienv/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidTOML(t *testing.T) {
	content := `root_dir = "~/envs"
shell = "fish"
marker_var = "MY_ALIAS_ENV"
unique_aliases = false
`
	path := testutil.TempConfigFile(t, content)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "~/envs", cfg.RootDir)
	assert.Equal(t, "fish", cfg.Shell)
	assert.Equal(t, "MY_ALIAS_ENV", cfg.MarkerVar)
	assert.False(t, cfg.IsUniqueAliases())
	assert.Equal(t, "/home/u/envs", cfg.ResolveRootDir("/home/u"))
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := testutil.TempConfigFile(t, "")
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, config.DefaultRootDir, cfg.RootDir)
	assert.Equal(t, config.DefaultMarkerVar, cfg.MarkerVar)
	assert.True(t, cfg.IsUniqueAliases())
	assert.Empty(t, cfg.Shell)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := testutil.TempConfigFile(t, "invalid toml [[[")
	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoadConfig_InvalidMarkerVar(t *testing.T) {
	path := testutil.TempConfigFile(t, `marker_var = "NO ENV"`)
	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := config.LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, "/home/u", config.ExpandHome("~", "/home/u"))
	assert.Equal(t, "/home/u/.alienv", config.ExpandHome("~/.alienv", "/home/u"))
	assert.Equal(t, "/srv/alienv", config.ExpandHome("/srv/alienv", "/home/u"))
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	unique := false
	cfg := &config.Config{
		RootDir:       "/srv/alienv",
		Shell:         "zsh",
		MarkerVar:     "ALIAS_ENV",
		UniqueAliases: &unique,
	}
	require.NoError(t, config.Save(path, cfg))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
