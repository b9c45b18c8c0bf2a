package repository

import (
	"errors"
	"time"

	"github.com/x-xyz/hbarmarket/base/ctx"
	hcdomain "github.com/x-xyz/hbarmarket/domain/healthcheck"
	"github.com/x-xyz/hbarmarket/service/cache"
	"github.com/x-xyz/hbarmarket/service/chain"
)

const (
	pingTimeout = 2 * time.Second
	probeKey    = "probe"
)

var errProbeMismatch = errors.New("cache returned a different probe value")

type impl struct {
	chain chain.Client
	cache cache.Service
	now   func() time.Time
}

func New(chain chain.Client, cache cache.Service) hcdomain.HealthCheckRepo {
	return &impl{chain: chain, cache: cache, now: time.Now}
}

func (im *impl) PingChain(c ctx.Ctx) (uint64, error) {
	tc, cancel := ctx.WithTimeout(c, pingTimeout)
	defer cancel()
	return im.chain.BlockNumber(tc)
}

// PingCache round trips a timestamp through the cache, which with redis
// configured reaches the shared layer.
func (im *impl) PingCache(c ctx.Ctx) error {
	tc, cancel := ctx.WithTimeout(c, pingTimeout)
	defer cancel()

	want := im.now().UnixNano()
	if err := im.cache.Set(tc, probeKey, want); err != nil {
		return err
	}
	var got int64
	if err := im.cache.Get(tc, probeKey, &got); err != nil {
		return err
	}
	if got != want {
		return errProbeMismatch
	}
	return nil
}
