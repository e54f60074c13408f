package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

const testScene = `{
  "natural_width": 100,
  "natural_height": 100,
  "scene": {
    "kind": "style",
    "style": {"fill": {"type": "solid", "color": [0, 0, 1, 1]}},
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

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx := withLogger(context.Background(), newLogger(io.Discard, log.ErrorLevel))
	cfg := defaultConfig()
	cfg.CacheDir = t.TempDir()
	return withConfig(ctx, cfg)
}

func TestRunRender(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "scene.json")
	if err := os.WriteFile(input, []byte(testScene), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := renderOpts{noCache: true}
	if err := runRender(testContext(t), input, &opts); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	out, err := os.ReadFile(filepath.Join(dir, "scene.svg"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	svg := string(out)
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, `fill="rgb(0,0,255)"`) {
		t.Errorf("unexpected output:\n%s", svg)
	}
}

func TestRunRenderExplicitOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "scene.json")
	if err := os.WriteFile(input, []byte(testScene), 0o644); err != nil {
		t.Fatal(err)
	}

	output := filepath.Join(dir, "custom.svg")
	opts := renderOpts{output: output, width: 50, noCache: true}
	if err := runRender(testContext(t), input, &opts); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	out, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(out), `width="50"`) {
		t.Errorf("expected requested width in output:\n%s", out)
	}
}

func TestRunRenderCancelledContext(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "scene.json")
	if err := os.WriteFile(input, []byte(testScene), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	opts := renderOpts{noCache: true}
	if err := runRender(ctx, input, &opts); err == nil {
		t.Fatal("expected error for cancelled context")
	}

	// Cancellation is detected before the output file is written.
	if _, err := os.Stat(filepath.Join(dir, "scene.svg")); !os.IsNotExist(err) {
		t.Error("no output should be written after cancellation")
	}
}

func TestRunRenderMissingInput(t *testing.T) {
	opts := renderOpts{noCache: true}
	if err := runRender(testContext(t), filepath.Join(t.TempDir(), "nope.json"), &opts); err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestRunRenderInvalidScene(t *testing.T) {
	input := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(input, []byte(`{"scene":{"kind":"sprite"}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := renderOpts{noCache: true}
	if err := runRender(testContext(t), input, &opts); err == nil {
		t.Fatal("expected error for invalid scene")
	}
}
