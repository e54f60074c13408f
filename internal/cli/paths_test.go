package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	want := filepath.Join(home, ".cache", "scenesvg")
	if dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", "scenesvg") {
		t.Errorf("cacheDir() = %q, should honor XDG_CACHE_HOME", dir)
	}
}

func TestOutputFor(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"scene.json", "scene.svg"},
		{"dir/scene.json", "dir/scene.svg"},
		{"noext", "noext.svg"},
	}
	for _, tt := range tests {
		if got := outputFor(tt.input); got != tt.want {
			t.Errorf("outputFor(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Serve.Addr != ":8080" {
		t.Errorf("Serve.Addr = %q, want default :8080", cfg.Serve.Addr)
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadConfigTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := strings.Join([]string{
		`cache_dir = "/var/cache/scenesvg"`,
		`width = 640`,
		`pretty = true`,
		``,
		`[serve]`,
		`addr = ":9090"`,
		`redis_addr = "localhost:6379"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.CacheDir != "/var/cache/scenesvg" {
		t.Errorf("CacheDir = %q", cfg.CacheDir)
	}
	if cfg.Width != 640 || !cfg.Pretty {
		t.Errorf("Width = %g, Pretty = %t", cfg.Width, cfg.Pretty)
	}
	if cfg.Serve.Addr != ":9090" || cfg.Serve.RedisAddr != "localhost:6379" {
		t.Errorf("Serve = %+v", cfg.Serve)
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("width = [nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}
