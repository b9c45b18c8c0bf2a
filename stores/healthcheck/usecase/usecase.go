package usecase

import (
	"time"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/log"
	hcdomain "github.com/x-xyz/hbarmarket/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
	now  func() time.Time
}

func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{repo: repo, now: time.Now}
}

// Check probes the chain then the cache. A failed chain probe does not skip the
// cache probe so the report names every broken dependency.
func (im *impl) Check(c ctx.Ctx) (*hcdomain.Report, error) {
	r := &hcdomain.Report{Healthy: true}

	im.probe(c, r, hcdomain.ComponentChain, func() error {
		n, err := im.repo.PingChain(c)
		r.BlockNumber = n
		return err
	})
	im.probe(c, r, hcdomain.ComponentCache, func() error {
		return im.repo.PingCache(c)
	})

	if !r.Healthy {
		return r, hcdomain.ErrUnhealthy
	}
	return r, nil
}

func (im *impl) probe(c ctx.Ctx, r *hcdomain.Report, name string, ping func() error) {
	start := im.now()
	err := ping()
	comp := hcdomain.Component{
		Name:      name,
		Ok:        err == nil,
		LatencyMs: im.now().Sub(start).Milliseconds(),
	}
	if err != nil {
		c.WithFields(log.Fields{"component": name, "err": err}).Warn("health probe failed")
		comp.Error = err.Error()
		r.Healthy = false
	}
	r.Components = append(r.Components, comp)
}
