package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/hbarmarket/base/ctx"
)

// Forever disables key expiration
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redis.ErrNil
	// ErrNoTTL is returned by TTL when the key exists without expiration
	ErrNoTTL = errors.New("key has no ttl")
	// ErrNoPool is returned when no pool is configured
	ErrNoPool = errors.New("no redis pool")
)

// Service is the subset of redis commands the caches rely on
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	// GetDel reads and deletes key in one round trip.
	GetDel(context ctx.Ctx, key string) ([]byte, error)
	Del(context ctx.Ctx, keys ...string) (int, error)
	// PTTL returns the remaining ttl of key.
	PTTL(context ctx.Ctx, key string) (time.Duration, error)
	Ping(context ctx.Ctx) error
	Name() string
}
