package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/modgraft/pkg/config"
	"github.com/arthur-debert/modgraft/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into dir for the duration of the test so file-provider lookup
// is isolated from the developer's working directory.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "manifest.json", cfg.ManifestPath)
	assert.False(t, cfg.Overwrite)
	assert.Empty(t, cfg.RepositoryRoot)
	assert.NotEmpty(t, cfg.StorePath, "store path falls back to the XDG data dir")
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[repository]
root = "/srv/mods"

[game]
plugins_dir = "/game/plugins"

[install]
overwrite = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(content), 0644))
	chdir(t, dir)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/mods", cfg.RepositoryRoot)
	assert.Equal(t, "/game/plugins", cfg.GamePluginsDir)
	assert.True(t, cfg.Overwrite)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[repository]
root = "/srv/mods"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(content), 0644))
	chdir(t, dir)

	t.Setenv("MODGRAFT_REPOSITORY_ROOT", "/env/mods")
	t.Setenv("MODGRAFT_GAME_PLUGINS_DIR", "/env/plugins")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/env/mods", cfg.RepositoryRoot)
	assert.Equal(t, "/env/plugins", cfg.GamePluginsDir)
}

func TestValidate(t *testing.T) {
	cfg := &config.Config{}
	err := cfg.Validate()
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))

	cfg.RepositoryRoot = "/srv/mods"
	err = cfg.Validate()
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))

	cfg.GamePluginsDir = "/game/plugins"
	assert.NoError(t, cfg.Validate())
}

func TestModPaths(t *testing.T) {
	cfg := &config.Config{
		RepositoryRoot: "/srv/mods",
		GamePluginsDir: "/game/plugins",
	}

	assert.Equal(t, filepath.Join("/srv/mods", "atc-chatter"), cfg.ModDir("atc-chatter"))
	assert.Equal(t, filepath.Join("/game/plugins", "atc-chatter"), cfg.LinkPath("atc-chatter"))
}
