// Package cli implements the boardgraph command-line interface.
//
// # Commands
//
//   - graph: build the relation graph of a position
//   - kingbox: print the king safety boxes of a position
//   - dag: assemble an edge list into an acyclic graph and render it
//   - explore: browse every relation mode of a position interactively
//   - serve: run the HTTP API
//   - cache: inspect or clear the file cache
//   - config: print the effective configuration
//
// # Configuration
//
// Settings are read from --config (or $BOARDGRAPH_CONFIG, or
// ~/.config/boardgraph/config.toml when present), then BOARDGRAPH_*
// environment variables, then flags. See package config.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs pipeline and cache events. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/boardgraph/pkg/cache"
	"github.com/matzehuels/boardgraph/pkg/config"
	"github.com/matzehuels/boardgraph/pkg/pipeline"
	"github.com/matzehuels/boardgraph/pkg/render"
)

const appName = "boardgraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath   string
	cacheBackend string
	verbose      bool
}

// New creates a CLI that logs to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig merges file, environment and persistent flags into c.Config.
func (c *CLI) loadConfig(lookup func(string) (string, bool)) error {
	path := c.configPath
	if path == "" {
		if v, ok := lookup(config.EnvPrefix + "CONFIG"); ok {
			path = v
		}
	}
	if path == "" {
		path = defaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return err
	}
	if c.cacheBackend != "" {
		cfg.Cache.Backend = c.cacheBackend
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

// defaultConfigPath returns the user config file if it exists, or "".
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, appName, "config.toml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// newRunner creates a pipeline runner from the effective configuration.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	store, err := cache.Open(ctx, c.Config.CacheOptions())
	if err != nil {
		return nil, err
	}
	r, err := render.New(c.Config.RenderOptions())
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	var keyer cache.Keyer = cache.NewDefaultKeyer()
	if c.Config.Cache.Prefix != "" {
		keyer = cache.NewScopedKeyer(keyer, c.Config.Cache.Prefix)
	}

	runner := pipeline.NewRunner(store, keyer, loggerFromContext(ctx))
	runner.Renderer = r
	runner.GraphTTL = c.Config.Cache.TTL.Duration
	return runner, nil
}
