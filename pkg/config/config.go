// Package config loads boardgraph settings.
//
// Settings come from three layers, later ones winning:
//
//  1. [Default] values
//  2. a TOML file (see [Load])
//  3. BOARDGRAPH_* environment variables (see [Config.ApplyEnv])
//
// Command-line flags are applied on top by the CLI. Call [Config.Validate]
// after all layers are merged.
//
// Example file:
//
//	[server]
//	addr = ":8000"
//	request_timeout = "30s"
//
//	[renderer]
//	kind = "diagon"
//	timeout = "10s"
//	fallback = true
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	ttl = "24h"
//
//	[log]
//	level = "info"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/boardgraph/pkg/cache"
	"github.com/matzehuels/boardgraph/pkg/errors"
	"github.com/matzehuels/boardgraph/pkg/render"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "BOARDGRAPH_"

// Duration is a time.Duration that reads TOML strings like "30s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the complete application configuration.
type Config struct {
	Server   Server   `toml:"server"`
	Renderer Renderer `toml:"renderer"`
	Cache    Cache    `toml:"cache"`
	Log      Log      `toml:"log"`
}

// Server configures the HTTP transport.
type Server struct {
	Addr           string   `toml:"addr"`
	RequestTimeout Duration `toml:"request_timeout"`
}

// Renderer configures DAG rendering.
type Renderer struct {
	Kind     string   `toml:"kind"`
	Command  string   `toml:"command"`
	Args     []string `toml:"args"`
	Timeout  Duration `toml:"timeout"`
	Fallback bool     `toml:"fallback"`
}

// Cache configures result caching.
type Cache struct {
	Backend         string   `toml:"backend"`
	Dir             string   `toml:"dir"`
	TTL             Duration `toml:"ttl"`
	Prefix          string   `toml:"prefix"`
	RedisAddr       string   `toml:"redis_addr"`
	RedisPassword   string   `toml:"redis_password"`
	RedisDB         int      `toml:"redis_db"`
	MongoURI        string   `toml:"mongo_uri"`
	MongoDatabase   string   `toml:"mongo_database"`
	MongoCollection string   `toml:"mongo_collection"`
}

// Log configures logging.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: Server{
			Addr:           ":8000",
			RequestTimeout: Duration{30 * time.Second},
		},
		Renderer: Renderer{
			Kind:     string(render.KindDiagon),
			Command:  "diagon",
			Args:     []string{"GraphDAG"},
			Timeout:  Duration{10 * time.Second},
			Fallback: false,
		},
		Cache: Cache{
			Backend:         string(cache.BackendNone),
			Dir:             DefaultCacheDir(),
			TTL:             Duration{cache.TTLGraph},
			MongoDatabase:   "boardgraph",
			MongoCollection: "cache",
		},
		Log: Log{Level: "info"},
	}
}

// DefaultCacheDir returns the per-user cache directory for the file backend.
func DefaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "boardgraph")
	}
	return filepath.Join(os.TempDir(), "boardgraph-cache")
}

// Load reads path on top of the defaults. An empty path returns the
// defaults unchanged. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ApplyEnv overlays BOARDGRAPH_* variables read through lookup (usually
// os.LookupEnv). Malformed values are reported, not ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	dur := func(name string, dst *Duration) error {
		if v, ok := lookup(EnvPrefix + name); ok {
			if err := dst.UnmarshalText([]byte(v)); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s%s", EnvPrefix, name)
			}
		}
		return nil
	}

	str("ADDR", &c.Server.Addr)
	str("RENDERER", &c.Renderer.Kind)
	str("RENDERER_COMMAND", &c.Renderer.Command)
	str("CACHE_BACKEND", &c.Cache.Backend)
	str("CACHE_DIR", &c.Cache.Dir)
	str("CACHE_PREFIX", &c.Cache.Prefix)
	str("REDIS_ADDR", &c.Cache.RedisAddr)
	str("REDIS_PASSWORD", &c.Cache.RedisPassword)
	str("MONGO_URI", &c.Cache.MongoURI)
	str("MONGO_DATABASE", &c.Cache.MongoDatabase)
	str("MONGO_COLLECTION", &c.Cache.MongoCollection)
	str("LOG_LEVEL", &c.Log.Level)

	for name, dst := range map[string]*Duration{
		"REQUEST_TIMEOUT":  &c.Server.RequestTimeout,
		"RENDERER_TIMEOUT": &c.Renderer.Timeout,
		"CACHE_TTL":        &c.Cache.TTL,
	} {
		if err := dur(name, dst); err != nil {
			return err
		}
	}

	if v, ok := lookup(EnvPrefix + "RENDERER_FALLBACK"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%sRENDERER_FALLBACK", EnvPrefix)
		}
		c.Renderer.Fallback = b
	}
	if v, ok := lookup(EnvPrefix + "REDIS_DB"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%sREDIS_DB", EnvPrefix)
		}
		c.Cache.RedisDB = n
	}
	return nil
}

// Validate checks the merged configuration.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr must not be empty")
	}
	if c.Server.RequestTimeout.Duration <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.request_timeout must be positive")
	}
	if _, err := render.ParseKind(c.Renderer.Kind); err != nil {
		return err
	}
	if c.Renderer.Timeout.Duration <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "renderer.timeout must be positive")
	}
	switch cache.Backend(c.Cache.Backend) {
	case cache.BackendNone:
	case cache.BackendFile:
		if c.Cache.Dir == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.dir is required for the file backend")
		}
	case cache.BackendRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
		}
	case cache.BackendMongo:
		if c.Cache.MongoURI == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.mongo_uri is required for the mongo backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache.backend %q", c.Cache.Backend)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "log.level")
	}
	return nil
}

// RenderOptions converts the renderer section.
func (c Config) RenderOptions() render.Options {
	return render.Options{
		Kind:     render.Kind(c.Renderer.Kind),
		Command:  c.Renderer.Command,
		Args:     c.Renderer.Args,
		Timeout:  c.Renderer.Timeout.Duration,
		Fallback: c.Renderer.Fallback,
	}
}

// CacheOptions converts the cache section.
func (c Config) CacheOptions() cache.Options {
	return cache.Options{
		Backend: cache.Backend(c.Cache.Backend),
		Dir:     c.Cache.Dir,
		Redis: cache.RedisOptions{
			Addr:     c.Cache.RedisAddr,
			Password: c.Cache.RedisPassword,
			DB:       c.Cache.RedisDB,
		},
		Mongo: cache.MongoOptions{
			URI:        c.Cache.MongoURI,
			Database:   c.Cache.MongoDatabase,
			Collection: c.Cache.MongoCollection,
		},
	}
}

// LogLevel returns the parsed log level, defaulting to Info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// String renders the configuration as TOML for `boardgraph config`.
func (c Config) String() string {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(c); err != nil {
		return fmt.Sprintf("<config: %v>", err)
	}
	return b.String()
}
