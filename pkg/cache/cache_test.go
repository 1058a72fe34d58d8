package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "missing"); hit || err != nil {
		t.Fatalf("Get(missing) = %v, %v", hit, err)
	}

	if err := c.Set(ctx, "graph:1", []byte(`{"nodes":[]}`), time.Hour); err != nil {
		t.Fatal(err)
	}
	data, hit, err := c.Get(ctx, "graph:1")
	if err != nil || !hit || string(data) != `{"nodes":[]}` {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}

	if err := c.Delete(ctx, "graph:1"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "graph:1"); hit {
		t.Error("entry should be gone after Delete")
	}
	if err := c.Delete(ctx, "graph:1"); err != nil {
		t.Errorf("Delete(missing) = %v, want nil", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "short", []byte("x"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "short"); hit {
		t.Error("expired entry should be a miss")
	}

	if err := c.Set(ctx, "forever", []byte("y"), 0); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("entry without ttl should not expire")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := c.path("bad")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, hit, err := c.Get(ctx, "bad"); hit || err != nil {
		t.Errorf("Get(corrupt) = %v, %v; want miss", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("Clear() = %d, want 3", n)
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("entries should be gone after Clear")
	}
	if c.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", c.Dir(), dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Error("Clear should keep the root directory")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	// SHA-256 produces 64 hex chars
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}

	j1, err := HashJSON([]string{"a->b"})
	if err != nil {
		t.Fatal(err)
	}
	j2, _ := HashJSON([]string{"b->a"})
	if j1 == j2 {
		t.Error("HashJSON should depend on content")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()
	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	gk1 := k.GraphKey(fen, "adjacency")
	gk2 := k.GraphKey(fen, "king_box")
	if gk1 == gk2 {
		t.Error("Different modes should produce different keys")
	}
	if gk1 != k.GraphKey(fen, "adjacency") {
		t.Error("GraphKey should be deterministic")
	}
	if !strings.HasPrefix(gk1, "graph:") {
		t.Errorf("GraphKey prefix unexpected: %s", gk1)
	}

	dk1 := k.DAGKey("hash123", DAGKeyOpts{Renderer: "diagon"})
	dk2 := k.DAGKey("hash123", DAGKeyOpts{Renderer: "diagon", ReversePrefilter: true})
	if dk1 == dk2 {
		t.Error("Different DAGKeyOpts should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "boardgraph:")

	key := scoped.GraphKey("8/8/8/8/8/8/8/8 w - - 0 1", "none")
	if !strings.HasPrefix(key, "boardgraph:graph:") {
		t.Errorf("ScopedKeyer GraphKey should be prefixed: %s", key)
	}
	if !strings.HasPrefix(scoped.DAGKey("h", DAGKeyOpts{}), "boardgraph:dag:") {
		t.Error("ScopedKeyer DAGKey should be prefixed")
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	scoped := NewScopedKeyer(nil, "prefix:")
	want := "prefix:" + NewDefaultKeyer().GraphKey("x", "none")
	if got := scoped.GraphKey("x", "none"); got != want {
		t.Errorf("Unexpected key with nil inner: %s", got)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"default is null", Options{}, false},
		{"none", Options{Backend: BackendNone}, false},
		{"file", Options{Backend: BackendFile, Dir: t.TempDir()}, false},
		{"file without dir", Options{Backend: BackendFile}, true},
		{"redis without addr", Options{Backend: BackendRedis}, true},
		{"mongo without uri", Options{Backend: BackendMongo}, true},
		{"mongo without collection", Options{Backend: BackendMongo, Mongo: MongoOptions{URI: "mongodb://localhost"}}, true},
		{"unknown", Options{Backend: "memcached"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Open(ctx, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				c.Close()
			}
		})
	}
}

func TestOpenDisabledIsNull(t *testing.T) {
	for _, b := range []Backend{"", BackendNone} {
		c, err := Open(context.Background(), Options{Backend: b})
		if err != nil {
			t.Fatalf("Open(%q) error = %v", b, err)
		}
		if _, ok := c.(NullCache); !ok {
			t.Errorf("Open(%q) = %T, want NullCache", b, c)
		}
	}
}
