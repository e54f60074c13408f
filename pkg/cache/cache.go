// Package cache provides caching for compiled SVG artifacts.
//
// Scene compilation is deterministic: the same scene bytes and render options
// always produce the same document. That makes rendered output an ideal cache
// target for the CLI (file-backed) and the HTTP service (Redis-backed).
//
// # Backends
//
//   - [FileCache] - filesystem cache for CLI usage (XDG cache dir)
//   - [RedisCache] - distributed cache for the render service
//   - [NullCache] - no-op cache for tests or --no-cache runs
//
// # Keys
//
// Keys are derived from a SHA-256 hash of the scene bytes plus the render
// options, so any change to either produces a distinct entry. A [ScopedKeyer]
// can prefix keys for multi-tenant isolation.
package cache

import (
	"context"
	"time"
)

// TTLs for the two cacheable stages. Scene bytes are kept briefly for
// inspection and dedupe; rendered artifacts are deterministic and can live
// longer.
const (
	TTLScene    = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache stores rendered artifacts keyed by scene and option hashes.
type Cache interface {
	// Get retrieves a value. The second result reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// ArtifactKeyOpts carries the render options that participate in artifact
// cache keys. Two renders of the same scene with different options must not
// share an entry.
type ArtifactKeyOpts struct {
	Width    float64
	Height   float64
	Pretty   bool
	IDPrefix string
	Fonts    string // comma-joined family=path font specs
}

// Keyer constructs cache keys for the two cacheable stages.
type Keyer interface {
	// SceneKey keys a parsed scene by the hash of its serialized bytes.
	SceneKey(sceneHash string) string

	// ArtifactKey keys a rendered document by scene hash plus options.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key construction: prefix plus SHA-256 of the
// inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SceneKey generates a key for scene caching.
func (k *DefaultKeyer) SceneKey(sceneHash string) string {
	return hashKey("scene", sceneHash)
}

// ArtifactKey generates a key for rendered-artifact caching.
func (k *DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts.Width, opts.Height, opts.Pretty, opts.IDPrefix, opts.Fonts)
}
