// Package redis is the shared provider, visible to every process using the
// same redis.
package redis

import (
	"time"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/service/cache/provider"
	"github.com/x-xyz/hbarmarket/service/redis"
)

type impl struct {
	redis redis.Service
}

func NewRedis(redis redis.Service) provider.Provider {
	return &impl{redis}
}

func notFound(err error) error {
	if err == redis.ErrNotFound {
		return provider.ErrNotFound
	}
	return err
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, err := im.redis.Get(c, key)
	if err != nil {
		return nil, 0, notFound(err)
	}
	ttl, err := im.redis.PTTL(c, key)
	switch err {
	case nil:
	case redis.ErrNoTTL:
		ttl = 0
	default:
		// expired between the two reads
		return nil, 0, notFound(err)
	}
	return val, ttl, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = redis.Forever
	}
	return im.redis.Set(c, key, value, ttl)
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	_, err := im.redis.Del(c, key)
	return err
}

func (im *impl) Take(c ctx.Ctx, key string) ([]byte, error) {
	val, err := im.redis.GetDel(c, key)
	if err != nil {
		return nil, notFound(err)
	}
	return val, nil
}
