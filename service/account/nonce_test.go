package account

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/metrics"
)

func TestPickNonce(t *testing.T) {
	start := time.Unix(1700000000, 0)
	tests := []struct {
		name    string
		local   uint64
		pending uint64
		elapsed time.Duration
		want    uint64
	}{
		{name: "node ahead", local: 3, pending: 5, want: 5},
		{name: "node in sync", local: 5, pending: 5, want: 5},
		{name: "node lagging after broadcast", local: 6, pending: 5, elapsed: time.Second, want: 6},
		{name: "dropped transaction", local: 9, pending: 5, elapsed: 2 * nonceResyncAfter, want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := start
			p := &impl{metrics: metrics.New("account"), now: func() time.Time { return now }}
			p.advanceNonce(tt.local - 1)
			now = now.Add(tt.elapsed)

			require.Equal(t, tt.want, p.pickNonce(ctx.Background(), tt.pending))
		})
	}
}

func TestResyncedNonceIsReused(t *testing.T) {
	now := time.Unix(1700000000, 0)
	p := &impl{metrics: metrics.New("account"), now: func() time.Time { return now }}
	p.advanceNonce(8)
	now = now.Add(2 * nonceResyncAfter)

	c := ctx.Background()
	require.Equal(t, uint64(5), p.pickNonce(c, 5))
	p.advanceNonce(5)
	require.Equal(t, uint64(6), p.pickNonce(c, 5))
}
