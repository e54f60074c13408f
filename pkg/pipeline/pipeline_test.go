package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/scenesvg/pkg/cache"
)

const testScene = `{
  "natural_width": 100,
  "natural_height": 100,
  "scene": {
    "kind": "style",
    "style": {"fill": {"type": "solid", "color": [1, 0, 0, 1]}},
    "children": [
      {"kind": "path", "trails": [
        {"start": [0, 0], "closed": true, "segments": [
          {"line": [100, 0]}, {"line": [0, 100]},
          {"line": [-100, 0]}, {"line": [0, -100]}
        ]}
      ]}
    ]
  }
}`

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"no input", Options{}, true},
		{"path only", Options{Path: "scene.json"}, false},
		{"data only", Options{Data: []byte("{}")}, false},
		{"negative width", Options{Data: []byte("{}"), Width: -1}, true},
		{"negative height", Options{Data: []byte("{}"), Height: -5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAndSetDefaults() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptionsSizeSpec(t *testing.T) {
	opts := Options{Width: 400}
	spec := opts.SizeSpec()
	if spec.Width == nil || *spec.Width != 400 {
		t.Errorf("Width = %v, want 400", spec.Width)
	}
	if spec.Height != nil {
		t.Errorf("Height = %v, want nil", *spec.Height)
	}
}

func TestExecuteInline(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{
		Data:    []byte(testScene),
		NoCache: true,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	out := string(result.SVG)
	if !strings.Contains(out, "<svg") {
		t.Errorf("output missing svg root:\n%s", out)
	}
	if !strings.Contains(out, `width="100"`) || !strings.Contains(out, `height="100"`) {
		t.Errorf("expected natural 100x100 dimensions:\n%s", out)
	}
	if result.Width != 100 || result.Height != 100 {
		t.Errorf("resolved size = %gx%g, want 100x100", result.Width, result.Height)
	}
	if result.SceneHash == "" {
		t.Error("expected scene hash")
	}
	if result.CacheInfo.ArtifactHit {
		t.Error("NoCache run must not report a cache hit")
	}
}

func TestExecuteFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte(testScene), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{Path: path, Width: 50})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Width != 50 || result.Height != 50 {
		t.Errorf("resolved size = %gx%g, want 50x50", result.Width, result.Height)
	}
}

func TestExecuteArtifactCaching(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	ctx := context.Background()
	opts := Options{Data: []byte(testScene)}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.ArtifactHit {
		t.Error("first run should miss")
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.ArtifactHit {
		t.Error("second run should hit the artifact cache")
	}
	if string(first.SVG) != string(second.SVG) {
		t.Error("cached artifact must match rendered output")
	}

	// Different options must not share an entry.
	third, err := r.Execute(ctx, Options{Data: []byte(testScene), Pretty: true})
	if err != nil {
		t.Fatalf("third Execute: %v", err)
	}
	if third.CacheInfo.ArtifactHit {
		t.Error("pretty run must not hit the compact entry")
	}

	// Refresh recomputes even when cached.
	fourth, err := r.Execute(ctx, Options{Data: []byte(testScene), Refresh: true})
	if err != nil {
		t.Fatalf("fourth Execute: %v", err)
	}
	if fourth.CacheInfo.ArtifactHit {
		t.Error("refresh run must not report a cache hit")
	}
}

func TestExecuteMissingFile(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	_, err := r.Execute(context.Background(), Options{Path: filepath.Join(t.TempDir(), "nope.json")})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
