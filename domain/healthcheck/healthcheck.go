package healthcheck

import (
	"errors"

	"github.com/x-xyz/hbarmarket/base/ctx"
)

var ErrUnhealthy = errors.New("unhealthy dependency")

const (
	ComponentChain = "chain"
	ComponentCache = "cache"
)

// Component is the result of probing one dependency.
type Component struct {
	Name      string `json:"name"`
	Ok        bool   `json:"ok"`
	LatencyMs int64  `json:"latencyMs"`
	Error     string `json:"error,omitempty"`
}

// Report is healthy only when every component is.
type Report struct {
	Healthy     bool        `json:"healthy"`
	BlockNumber uint64      `json:"blockNumber,omitempty"`
	Components  []Component `json:"components"`
}

type HealthCheckUsecase interface {
	// Check probes every dependency and always returns a report. The error is
	// ErrUnhealthy when any probe failed.
	Check(c ctx.Ctx) (*Report, error)
}

type HealthCheckRepo interface {
	// PingChain returns the latest block number seen by the rpc endpoint.
	PingChain(c ctx.Ctx) (uint64, error)
	// PingCache writes and reads back a probe key.
	PingCache(c ctx.Ctx) error
}
