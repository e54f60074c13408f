package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beevik/etree"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/scenesvg/pkg/cache"
	"github.com/matzehuels/scenesvg/pkg/fonts"
	sceneio "github.com/matzehuels/scenesvg/pkg/io"
	"github.com/matzehuels/scenesvg/pkg/observability"
	"github.com/matzehuels/scenesvg/pkg/render/svg"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and service can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → compile → serialize pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	sc, data, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Scene = sc
	result.SceneHash = cache.Hash(data)
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.SceneBytes = len(data)

	r.Logger.Info("loaded scene",
		"source", opts.source(),
		"bytes", len(data),
		"duration", result.Stats.LoadTime)

	// Keep the scene bytes around for inspection and dedupe.
	if !opts.NoCache {
		sceneKey := r.Keyer.SceneKey(result.SceneHash)
		if err := r.Cache.Set(ctx, sceneKey, data, cache.TTLScene); err == nil {
			observability.Cache().OnCacheSet(ctx, "scene", len(data))
		}
	}

	// Stages 2+3: Compile and serialize, with artifact caching.
	out, hit, err := r.CompileWithCacheInfo(ctx, result.SceneHash, sc, opts, &result.Stats)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	result.SVG = out
	result.CacheInfo.ArtifactHit = hit
	result.Stats.OutputBytes = len(out)
	result.Width, result.Height = opts.SizeSpec().Resolve(sc.NaturalWidth, sc.NaturalHeight)

	r.Logger.Info("rendered scene",
		"bytes", len(out),
		"size", fmt.Sprintf("%gx%g", result.Width, result.Height),
		"cached", hit)

	return result, nil
}

// Load reads and decodes the scene named by opts. It returns the decoded
// scene together with the raw bytes used for cache keys.
func (r *Runner) Load(ctx context.Context, opts Options) (*sceneio.Scene, []byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, err
	}
	r.applyLogger(&opts)

	start := time.Now()
	observability.Render().OnLoadStart(ctx, opts.source())

	data := opts.Data
	if len(data) == 0 {
		var err error
		data, err = os.ReadFile(opts.Path)
		if err != nil {
			observability.Render().OnLoadComplete(ctx, opts.source(), 0, time.Since(start), err)
			return nil, nil, err
		}
	}

	sc, err := sceneio.ReadJSON(bytes.NewReader(data))
	observability.Render().OnLoadComplete(ctx, opts.source(), len(data), time.Since(start), err)
	if err != nil {
		return nil, nil, err
	}
	return sc, data, nil
}

// CompileWithCacheInfo compiles and serializes a scene with artifact caching
// and returns cache hit info. Timing is recorded into stats when non-nil.
func (r *Runner) CompileWithCacheInfo(ctx context.Context, sceneHash string, sc *sceneio.Scene, opts Options, stats *Stats) ([]byte, bool, error) {
	if stats == nil {
		stats = &Stats{}
	}

	artifactKey := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts())

	// Try cache first (unless bypassed)
	if !opts.NoCache && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, artifactKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	globalDefs, err := fontDefs(opts.Fonts)
	if err != nil {
		return nil, false, err
	}

	// Compile
	compileStart := time.Now()
	observability.Render().OnCompileStart(ctx, sceneHash)
	doc, err := svg.Render(sc.Root, svg.Options{
		Size:          opts.SizeSpec(),
		NaturalWidth:  sc.NaturalWidth,
		NaturalHeight: sc.NaturalHeight,
		IDPrefix:      opts.IDPrefix,
		GlobalDefs:    globalDefs,
	})
	stats.CompileTime = time.Since(compileStart)
	observability.Render().OnCompileComplete(ctx, sceneHash, stats.CompileTime, err)
	if err != nil {
		return nil, false, err
	}

	// Serialize
	serializeStart := time.Now()
	var out []byte
	if opts.Pretty {
		out, err = doc.Pretty()
	} else {
		out, err = doc.Compact()
	}
	stats.SerializeTime = time.Since(serializeStart)
	observability.Render().OnSerializeComplete(ctx, opts.Pretty, len(out), stats.SerializeTime, err)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if !opts.NoCache {
		if err := r.Cache.Set(ctx, artifactKey, out, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(out))
		}
	}

	return out, false, nil
}

// Compile is a convenience wrapper that calls CompileWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Compile(ctx context.Context, sceneHash string, sc *sceneio.Scene, opts Options) ([]byte, error) {
	out, _, err := r.CompileWithCacheInfo(ctx, sceneHash, sc, opts, nil)
	return out, err
}

// fontDefs parses "family=path" specs and builds @font-face defs.
func fontDefs(specs []string) ([]*etree.Element, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	faces := make([]fonts.Face, 0, len(specs))
	for _, spec := range specs {
		f, err := fonts.ParseFace(spec)
		if err != nil {
			return nil, err
		}
		faces = append(faces, f)
	}
	return fonts.Defs(faces)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
