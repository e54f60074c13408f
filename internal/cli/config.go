package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/scenesvg/pkg/errors"
)

// Config holds user-level CLI configuration loaded from TOML.
//
// All fields are optional; flags always win over config values. Example:
//
//	cache_dir = "/var/cache/scenesvg"
//	width = 800
//
//	[serve]
//	addr = ":9090"
//	redis_addr = "localhost:6379"
type Config struct {
	// CacheDir overrides the XDG cache directory.
	CacheDir string `toml:"cache_dir"`

	// Width and Height are default render dimensions (0 = unconstrained).
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// Pretty selects indented SVG output by default.
	Pretty bool `toml:"pretty"`

	// Serve configures the HTTP render service.
	Serve ServeConfig `toml:"serve"`
}

// ServeConfig holds render-service settings.
type ServeConfig struct {
	Addr          string `toml:"addr"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		Serve: ServeConfig{Addr: ":8080"},
	}
}

// loadConfig reads the TOML config at path. When path is empty, the default
// location ($XDG_CONFIG_HOME/scenesvg/config.toml, falling back to
// ~/.config/scenesvg/config.toml) is consulted; a missing default file is
// not an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}

// defaultConfigPath returns the standard config file location, or "" when
// no home directory is available.
func defaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// configKey is the context key for the loaded config.
const configKey ctxKey = 1

// withConfig returns a new context with the config attached.
func withConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the config from ctx, or defaults when the
// context carries none.
func configFromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey).(Config); ok {
		return cfg
	}
	return defaultConfig()
}

// describe returns a short human-readable source description for --verbose
// diagnostics.
func (c Config) describe() string {
	return fmt.Sprintf("cache_dir=%q width=%g height=%g pretty=%t serve.addr=%q",
		c.CacheDir, c.Width, c.Height, c.Pretty, c.Serve.Addr)
}
