// Package config loads modgraft configuration with koanf.
//
// Precedence, lowest to highest: embedded defaults, a modgraft.toml file (in
// the working directory or the XDG config directory), MODGRAFT_* environment
// variables.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/modgraft/pkg/errors"
	"github.com/arthur-debert/modgraft/pkg/paths"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// ConfigFileName is the name of the user configuration file
const ConfigFileName = "modgraft.toml"

// Config is the resolved application configuration.
type Config struct {
	RepositoryRoot string
	GamePluginsDir string
	ManifestPath   string
	StorePath      string
	Overwrite      bool
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrNotImplemented, "rawBytesProvider supports ReadBytes only")
}

// Load resolves configuration from defaults, file, and environment.
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file, first match wins
	for _, path := range candidateFiles() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
			}
			break
		}
	}

	// 3. Environment: MODGRAFT_GAME_PLUGINS_DIR -> game.plugins_dir
	if err := k.Load(env.Provider("MODGRAFT_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "MODGRAFT_"))
		return strings.Replace(s, "_", ".", 1)
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	cfg := &Config{
		RepositoryRoot: k.String("repository.root"),
		GamePluginsDir: k.String("game.plugins_dir"),
		ManifestPath:   k.String("manifest.path"),
		StorePath:      k.String("store.path"),
		Overwrite:      k.Bool("install.overwrite"),
	}

	if cfg.StorePath == "" {
		cfg.StorePath = paths.DatabaseFile()
	}

	return cfg, nil
}

// Validate checks that the settings every mutating command needs are present.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.RepositoryRoot) == "" {
		return errors.New(errors.ErrConfigValid, "repository.root is not set")
	}
	if strings.TrimSpace(c.GamePluginsDir) == "" {
		return errors.New(errors.ErrConfigValid, "game.plugins_dir is not set")
	}
	return nil
}

// ModDir returns the repository directory backing the given mod id.
func (c *Config) ModDir(id string) string {
	return filepath.Join(c.RepositoryRoot, id)
}

// LinkPath returns the plugin-tree path a mod is linked at.
func (c *Config) LinkPath(id string) string {
	return filepath.Join(c.GamePluginsDir, id)
}

func candidateFiles() []string {
	candidates := []string{ConfigFileName}
	if dir := paths.ConfigDir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, ConfigFileName))
	}
	return candidates
}
