package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scenesvg/internal/api"
	"github.com/matzehuels/scenesvg/pkg/cache"
	"github.com/matzehuels/scenesvg/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	redisAddr string // Redis address; empty selects the file cache
	noCache   bool   // disable caching entirely
}

// newServeCmd creates the serve command for running the HTTP render service.
//
// The service shares the pipeline with the render command. By default it
// uses the file cache; pass --redis to share a cache between replicas.
func newServeCmd() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyServeConfig(cmd, &opts, configFromContext(cmd.Context()))
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "Redis address for a shared cache (host:port)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// applyServeConfig fills unset flags from the loaded config file.
func applyServeConfig(cmd *cobra.Command, opts *serveOpts, cfg Config) {
	if !cmd.Flags().Changed("addr") && cfg.Serve.Addr != "" {
		opts.addr = cfg.Serve.Addr
	}
	if !cmd.Flags().Changed("redis") && cfg.Serve.RedisAddr != "" {
		opts.redisAddr = cfg.Serve.RedisAddr
	}
}

// runServe builds the cache backend and runs the service until the context
// is cancelled.
func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	c, err := newServeCache(ctx, opts)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(c, nil, logger)
	defer runner.Close()

	server := api.NewServer(runner, logger, api.Options{Addr: opts.addr})
	return server.ListenAndServe(ctx)
}

// newServeCache selects the cache backend for the service.
func newServeCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redisAddr != "" {
		cfg := configFromContext(ctx).Serve
		c, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     opts.redisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("connect to redis %s: %w", opts.redisAddr, err)
		}
		return c, nil
	}
	return newFileBackedCache(ctx, false), nil
}
