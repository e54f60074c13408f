package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scenesvg/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path ("-" writes to stdout)
	width    float64  // requested output width (0 = derive from scene)
	height   float64  // requested output height (0 = derive from scene)
	pretty   bool     // emit indented SVG
	idPrefix string   // XML ID prefix for generated defs
	fonts    []string // family=path font files to embed
	noCache  bool     // bypass the artifact cache
	refresh  bool     // recompute and overwrite cached artifacts
}

// newRenderCmd creates the render command for compiling scene documents.
//
// Default settings:
//   - output: derived from the input file name (scene.json → scene.svg)
//   - width/height: taken from the scene's natural size
//   - compact output (use --pretty for indented SVG)
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Compile a scene document to SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyRenderConfig(cmd, &opts, configFromContext(cmd.Context()))
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with .svg; '-' for stdout)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "output width (default: scene natural width)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "output height (default: scene natural height)")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent the SVG output")
	cmd.Flags().StringVar(&opts.idPrefix, "prefix", "", "prefix for generated XML IDs")
	cmd.Flags().StringArrayVar(&opts.fonts, "font", nil, "embed a font as family=path (repeatable)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when cached")

	return cmd
}

// applyRenderConfig fills unset flags from the loaded config file.
func applyRenderConfig(cmd *cobra.Command, opts *renderOpts, cfg Config) {
	if !cmd.Flags().Changed("width") && cfg.Width > 0 {
		opts.width = cfg.Width
	}
	if !cmd.Flags().Changed("height") && cfg.Height > 0 {
		opts.height = cfg.Height
	}
	if !cmd.Flags().Changed("pretty") {
		opts.pretty = cfg.Pretty
	}
}

// runRender executes the pipeline for the given input file and writes the
// resulting SVG.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner := newRunner(ctx, opts.noCache)
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", input))
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Path:     input,
		Width:    opts.width,
		Height:   opts.height,
		Pretty:   opts.pretty,
		IDPrefix: opts.idPrefix,
		Fonts:    opts.fonts,
		NoCache:  opts.noCache,
		Refresh:  opts.refresh,
		Logger:   logger,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = outputFor(input)
	}

	if outputPath == "-" {
		if _, err := os.Stdout.Write(result.SVG); err != nil {
			return err
		}
		return nil
	}

	if err := os.WriteFile(outputPath, result.SVG, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	prog.done(fmt.Sprintf("Rendered %s", outputPath))
	printFile(outputPath)
	printRenderStats(result.Width, result.Height, result.Stats.OutputBytes, result.CacheInfo.ArtifactHit)
	return nil
}

// outputFor derives the output path from the input file name.
func outputFor(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
}
