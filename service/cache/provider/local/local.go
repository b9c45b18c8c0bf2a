// Package local is an in-process provider backed by freecache.
package local

import (
	"sync"
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/base/metrics"
	"github.com/x-xyz/hbarmarket/service/cache/provider"
)

const bytesPerMB = 1024 * 1024

type local struct {
	name  string
	cache *freecache.Cache
	met   metrics.Service

	// takeMu makes get-then-delete atomic
	takeMu sync.Mutex
}

// New allocates sizeMB of cache memory. freecache keeps at least 512KB.
func New(name string, sizeMB int) provider.Provider {
	return &local{
		name:  name,
		cache: freecache.NewCache(sizeMB * bytesPerMB),
		met:   metrics.New("cache.local"),
	}
}

func (l *local) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, expireAt, err := l.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		l.met.BumpSum("miss", 1, "cache", l.name)
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("freecache.GetWithExpiration failed")
		return nil, 0, err
	}
	l.met.BumpSum("hit", 1, "cache", l.name)
	return val, remaining(expireAt), nil
}

// remaining converts freecache's absolute expiry, 0 meaning none.
func remaining(expireAt uint32) time.Duration {
	if expireAt == 0 {
		return 0
	}
	d := time.Until(time.Unix(int64(expireAt), 0))
	if d < 0 {
		return 0
	}
	return d
}

func (l *local) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := l.cache.Set([]byte(key), value, ttlSeconds(ttl)); err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"key":  key,
			"size": len(value),
		}).Error("freecache.Set failed")
		return err
	}
	return nil
}

// ttlSeconds rounds sub second ttls up so they do not turn into no expiry.
func ttlSeconds(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	s := int(ttl / time.Second)
	if ttl%time.Second != 0 {
		s++
	}
	return s
}

func (l *local) Del(c ctx.Ctx, key string) error {
	l.cache.Del([]byte(key))
	return nil
}

func (l *local) Take(c ctx.Ctx, key string) ([]byte, error) {
	l.takeMu.Lock()
	defer l.takeMu.Unlock()

	val, err := l.cache.Get([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("freecache.Get failed")
		return nil, err
	}
	l.cache.Del([]byte(key))
	return val, nil
}
