package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/boardgraph/pkg/cache"
	"github.com/matzehuels/boardgraph/pkg/errors"
	"github.com/matzehuels/boardgraph/pkg/render"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boardgraph.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Server.Addr != ":8000" {
		t.Errorf("Server.Addr = %q, want :8000", cfg.Server.Addr)
	}
	if got := cfg.RenderOptions().Kind; got != render.KindDiagon {
		t.Errorf("renderer kind = %q, want diagon", got)
	}
	if got := cfg.CacheOptions().Backend; got != cache.BackendNone {
		t.Errorf("cache backend = %q, want none", got)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load(\"\") mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = "127.0.0.1:9000"
request_timeout = "5s"

[renderer]
kind = "plain"
args = ["GraphDAG", "-style=Unicode"]

[cache]
backend = "redis"
redis_addr = "localhost:6379"
redis_db = 2
ttl = "1h"

[log]
level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.RequestTimeout.Duration != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", cfg.Server.RequestTimeout)
	}
	if diff := cmp.Diff([]string{"GraphDAG", "-style=Unicode"}, cfg.Renderer.Args); diff != "" {
		t.Errorf("Renderer.Args mismatch (-want +got):\n%s", diff)
	}
	// Unset keys keep their defaults.
	if cfg.Renderer.Timeout.Duration != 10*time.Second {
		t.Errorf("Renderer.Timeout = %v, want default 10s", cfg.Renderer.Timeout)
	}
	opts := cfg.CacheOptions()
	if opts.Redis.Addr != "localhost:6379" || opts.Redis.DB != 2 {
		t.Errorf("redis options = %+v", opts.Redis)
	}
	if cfg.Cache.TTL.Duration != time.Hour {
		t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
	}
	if cfg.LogLevel() != log.DebugLevel {
		t.Errorf("LogLevel() = %v, want debug", cfg.LogLevel())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "[server\naddr = 1"},
		{"unknown key", "[server]\nport = 8000\n"},
		{"bad duration", "[renderer]\ntimeout = \"soon\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		if !errors.Is(err, errors.ErrCodeInvalidConfig) {
			t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
		}
	})
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"BOARDGRAPH_ADDR":              ":7000",
		"BOARDGRAPH_RENDERER":          "dot",
		"BOARDGRAPH_RENDERER_TIMEOUT":  "2s",
		"BOARDGRAPH_RENDERER_FALLBACK": "true",
		"BOARDGRAPH_CACHE_BACKEND":     "mongo",
		"BOARDGRAPH_MONGO_URI":         "mongodb://localhost:27017",
		"BOARDGRAPH_REDIS_DB":          "3",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatalf("ApplyEnv() error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if cfg.Server.Addr != ":7000" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Renderer.Kind != "dot" || !cfg.Renderer.Fallback {
		t.Errorf("Renderer = %+v", cfg.Renderer)
	}
	if cfg.Renderer.Timeout.Duration != 2*time.Second {
		t.Errorf("Renderer.Timeout = %v", cfg.Renderer.Timeout)
	}
	if cfg.Cache.Backend != "mongo" || cfg.Cache.RedisDB != 3 {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
}

func TestApplyEnvRejectsMalformed(t *testing.T) {
	for _, kv := range [][2]string{
		{"BOARDGRAPH_CACHE_TTL", "forever"},
		{"BOARDGRAPH_RENDERER_FALLBACK", "maybe"},
		{"BOARDGRAPH_REDIS_DB", "zero"},
	} {
		t.Run(kv[0], func(t *testing.T) {
			cfg := Default()
			err := cfg.ApplyEnv(func(k string) (string, bool) {
				if k == kv[0] {
					return kv[1], true
				}
				return "", false
			})
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("ApplyEnv() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"zero request timeout", func(c *Config) { c.Server.RequestTimeout.Duration = 0 }},
		{"unknown renderer", func(c *Config) { c.Renderer.Kind = "ascii-art" }},
		{"zero renderer timeout", func(c *Config) { c.Renderer.Timeout.Duration = 0 }},
		{"unknown backend", func(c *Config) { c.Cache.Backend = "memcached" }},
		{"file without dir", func(c *Config) { c.Cache.Backend = "file"; c.Cache.Dir = "" }},
		{"redis without addr", func(c *Config) { c.Cache.Backend = "redis" }},
		{"mongo without uri", func(c *Config) { c.Cache.Backend = "mongo" }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Validate() = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestStringRoundTrips(t *testing.T) {
	path := writeConfig(t, Default().String())
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(Default().String()) error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
