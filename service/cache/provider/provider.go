package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/hbarmarket/base/ctx"
)

var ErrNotFound = errors.New("cache: key not found")

// Provider stores raw bytes under a key. Implementations are safe for
// concurrent use.
type Provider interface {
	// Get returns the value and its remaining ttl.
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
	// Take returns the value and removes it. Of concurrent takers of one
	// key at most one succeeds.
	Take(c ctx.Ctx, key string) ([]byte, error)
}
