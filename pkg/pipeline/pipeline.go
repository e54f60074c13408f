// Package pipeline provides the core scene-to-SVG pipeline.
//
// This package implements the complete load → compile → serialize pipeline
// that can be used by CLI and service components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and decode a scene document from a file or byte slice
//  2. Compile: Compile the scene tree into an SVG document
//  3. Serialize: Encode the document as compact or pretty-printed bytes
//
// Compilation is deterministic, so rendered artifacts are cached keyed by
// the scene hash plus the render options.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Path:  "scene.json",
//	    Width: 400,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svgBytes := result.SVG
package pipeline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/scenesvg/pkg/cache"
	"github.com/matzehuels/scenesvg/pkg/errors"
	sceneio "github.com/matzehuels/scenesvg/pkg/io"
	"github.com/matzehuels/scenesvg/pkg/scene"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the render pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Input options. Exactly one of Path or Data must be set; Data takes
	// precedence when both are present.
	Path string `json:"path,omitempty"`
	Data []byte `json:"-"`

	// Render options. A zero Width or Height means "unconstrained"; the
	// compiler derives the missing dimension from the scene's natural size.
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Pretty   bool    `json:"pretty,omitempty"`
	IDPrefix string  `json:"id_prefix,omitempty"`

	// Fonts lists "family=path" font files to embed as @font-face rules.
	Fonts []string `json:"fonts,omitempty"`

	// Cache options
	NoCache bool `json:"no_cache,omitempty"` // Skip the cache entirely
	Refresh bool `json:"refresh,omitempty"`  // Recompute and overwrite cached artifacts

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Path == "" && len(o.Data) == 0 {
		return fmt.Errorf("path or data is required")
	}
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidSize, "width and height must be non-negative, got %gx%g", o.Width, o.Height)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// SizeSpec converts the requested dimensions into a size specification,
// treating zero as "unconstrained".
func (o *Options) SizeSpec() scene.SizeSpec {
	var spec scene.SizeSpec
	if o.Width > 0 {
		w := o.Width
		spec.Width = &w
	}
	if o.Height > 0 {
		h := o.Height
		spec.Height = &h
	}
	return spec
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Width:    o.Width,
		Height:   o.Height,
		Pretty:   o.Pretty,
		IDPrefix: o.IDPrefix,
		Fonts:    strings.Join(o.Fonts, ","),
	}
}

// source names the scene origin for logging and hooks.
func (o *Options) source() string {
	if len(o.Data) > 0 {
		return "inline"
	}
	return o.Path
}

// =============================================================================
// Result - Pipeline Outputs
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the decoded scene document.
	Scene *sceneio.Scene

	// SceneHash is the content hash of the scene bytes.
	SceneHash string

	// SVG is the serialized document.
	SVG []byte

	// Width and Height are the resolved output dimensions.
	Width  float64
	Height float64

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the artifact came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SceneBytes    int
	OutputBytes   int
	LoadTime      time.Duration
	CompileTime   time.Duration
	SerializeTime time.Duration
}

// CacheInfo tracks cache hits for the pipeline.
type CacheInfo struct {
	ArtifactHit bool // Whether the rendered artifact came from cache
}
