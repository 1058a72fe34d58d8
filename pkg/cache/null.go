package cache

import (
	"context"
	"time"
)

// NullCache backs the "none" backend: every lookup misses, so the runner
// rebuilds graphs and re-renders diagrams on each request.
type NullCache struct{}

// NewNullCache returns the cache used when caching is disabled.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }

var _ Cache = NullCache{}
