// Package cli implements the scenesvg command-line interface.
//
// This package provides commands for rendering scene documents to SVG,
// running the HTTP render service, and managing the artifact cache. The CLI
// is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Compile a scene document to SVG
//   - serve: Run the HTTP render service
//   - cache: Manage the artifact cache
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/scenesvg/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scenesvg/pkg/buildinfo"
	"github.com/matzehuels/scenesvg/pkg/cache"
	"github.com/matzehuels/scenesvg/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "scenesvg"

// Execute runs the scenesvg CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (render, serve,
// cache, completion), configures logging based on the --verbose flag, and
// executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext. A config file (TOML) can override built-in defaults;
// see [loadConfig] for the search order.
//
// The provided context is the command tree's base context; cancelling it
// (for example on SIGINT) stops long-running commands such as serve.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          appName,
		Short:        "scenesvg compiles scene documents to SVG",
		Long:         `scenesvg is a CLI tool for compiling scene-graph documents (paths, text, images, styles, and transforms) into standalone SVG files.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			loggerFromContext(ctx).Debug("loaded config", "config", cfg.describe())
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/scenesvg/config.toml)")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func newRunner(ctx context.Context, noCache bool) *pipeline.Runner {
	c := newFileBackedCache(ctx, noCache)
	return pipeline.NewRunner(c, nil, loggerFromContext(ctx))
}

// newFileBackedCache returns the file cache for normal runs and a null
// cache when caching is disabled or the cache dir cannot be resolved.
func newFileBackedCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := resolveCacheDir(ctx)
	if err != nil {
		loggerFromContext(ctx).Debug("cache disabled", "error", err)
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		loggerFromContext(ctx).Debug("cache disabled", "error", err)
		return cache.NewNullCache()
	}
	return c
}

// =============================================================================
// Paths
// =============================================================================

// resolveCacheDir returns the configured cache directory, falling back to
// the XDG default.
func resolveCacheDir(ctx context.Context) (string, error) {
	if cfg := configFromContext(ctx); cfg.CacheDir != "" {
		return cfg.CacheDir, nil
	}
	return cacheDir()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/scenesvg/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
