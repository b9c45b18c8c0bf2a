// Package layered stacks providers, nearest first. The last layer is the
// shared one and decides single use takes.
package layered

import (
	"time"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/service/cache/provider"
)

type layered struct {
	layers []provider.Provider
}

func New(layers ...provider.Provider) provider.Provider {
	if len(layers) == 1 {
		return layers[0]
	}
	return &layered{layers: layers}
}

// Get returns the first hit and backfills the nearer layers with its
// remaining ttl. A backfill failure does not fail the read.
func (l *layered) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	for idx, lyr := range l.layers {
		val, ttl, err := lyr.Get(c, key)
		if err == provider.ErrNotFound {
			continue
		} else if err != nil {
			return nil, 0, err
		}

		for _, near := range l.layers[:idx] {
			if err := near.Set(c, key, val, ttl); err != nil {
				c.WithFields(log.Fields{"key": key, "err": err}).Warn("backfill failed")
			}
		}
		return val, ttl, nil
	}
	return nil, 0, provider.ErrNotFound
}

// Set writes the shared layer first so a failed write never leaves a value
// visible only locally.
func (l *layered) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	for i := len(l.layers) - 1; i >= 0; i-- {
		if err := l.layers[i].Set(c, key, value, ttl); err != nil {
			return err
		}
	}
	return nil
}

func (l *layered) Del(c ctx.Ctx, key string) error {
	var firstErr error
	for _, lyr := range l.layers {
		if err := lyr.Del(c, key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (l *layered) Take(c ctx.Ctx, key string) ([]byte, error) {
	last := len(l.layers) - 1
	val, err := l.layers[last].Take(c, key)
	for _, near := range l.layers[:last] {
		if err := near.Del(c, key); err != nil {
			c.WithFields(log.Fields{"key": key, "err": err}).Warn("evict failed")
		}
	}
	return val, err
}
