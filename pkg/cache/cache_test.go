package cache

import (
	"context"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	key := "artifact:test"
	payload := []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)

	if _, ok, _ := c.Get(ctx, key); ok {
		t.Fatal("expected miss before Set")
	}

	if err := c.Set(ctx, key, payload, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("Get after Set: ok=%v err=%v", ok, err)
	}
	if string(got) != string(payload) {
		t.Errorf("Get = %q, want %q", got, payload)
	}

	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, key); ok {
		t.Error("expected miss after Delete")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "k", []byte("v"), -time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestFileCacheDeleteMissing(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	if err := c.Delete(context.Background(), "never-set"); err != nil {
		t.Errorf("Delete of missing key should be nil, got %v", err)
	}
}

func TestNullCacheNeverStores(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("NullCache should always miss")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()
	sceneHash := Hash([]byte(`{"scene":{}}`))

	a1 := k.ArtifactKey(sceneHash, ArtifactKeyOpts{Width: 100, Height: 100})
	a2 := k.ArtifactKey(sceneHash, ArtifactKeyOpts{Width: 200, Height: 100})
	if a1 == a2 {
		t.Error("different options should produce different artifact keys")
	}

	if k.ArtifactKey(sceneHash, ArtifactKeyOpts{Width: 100, Height: 100}) != a1 {
		t.Error("keying must be deterministic")
	}

	if k.SceneKey(sceneHash) == a1 {
		t.Error("scene and artifact keys must not collide")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "tenant:a:")

	h := Hash([]byte("scene"))
	if got := scoped.SceneKey(h); got != "tenant:a:"+inner.SceneKey(h) {
		t.Errorf("scoped key = %q, want prefixed inner key", got)
	}
}
