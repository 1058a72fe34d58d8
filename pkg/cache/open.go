package cache

import (
	"context"
	"fmt"
)

// Backend names a cache implementation.
type Backend string

const (
	BackendNone  Backend = "none"
	BackendFile  Backend = "file"
	BackendRedis Backend = "redis"
	BackendMongo Backend = "mongo"
)

// Options selects and configures a backend for Open.
type Options struct {
	Backend Backend
	Dir     string // file backend
	Redis   RedisOptions
	Mongo   MongoOptions
}

// Open returns the cache described by opts. An empty backend disables
// caching.
func Open(ctx context.Context, opts Options) (Cache, error) {
	switch opts.Backend {
	case BackendNone, "":
		return NewNullCache(), nil
	case BackendFile:
		if opts.Dir == "" {
			return nil, fmt.Errorf("file cache: directory is required")
		}
		return NewFileCache(opts.Dir)
	case BackendRedis:
		return NewRedisCache(ctx, opts.Redis)
	case BackendMongo:
		return NewMongoCache(ctx, opts.Mongo)
	}
	return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
}
