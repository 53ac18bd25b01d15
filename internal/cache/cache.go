// Package cache stores serialized profile responses with a time-to-live.
//
// Three backends exist: [Null] never stores anything, [Memory] keeps entries
// in the process, and [Redis] shares entries between server instances.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Cache is a byte-oriented key/value store with expiry.
// A miss is reported as ok == false with a nil error.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Backend names accepted by New.
const (
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Options selects and configures a backend.
type Options struct {
	Backend   string
	RedisAddr string
	RedisDB   int
	// Prefix namespaces keys in shared backends.
	Prefix string
}

// New builds the backend named in opts. An empty backend disables caching.
func New(ctx context.Context, opts Options) (Cache, error) {
	switch strings.ToLower(opts.Backend) {
	case "", BackendNone:
		return Null{}, nil
	case BackendMemory:
		return NewMemory(), nil
	case BackendRedis:
		return NewRedis(ctx, opts.RedisAddr, opts.RedisDB, opts.Prefix)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
	}
}

// Null is a cache that never stores anything.
type Null struct{}

func (Null) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (Null) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (Null) Delete(context.Context, string) error { return nil }
func (Null) Close() error { return nil }

// Ensure Null implements Cache.
var _ Cache = Null{}
