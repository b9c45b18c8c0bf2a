package chain

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/hbarmarket/domain"
)

type slowBackend struct {
	domain.EthClientRepo
	inflight int32
	peak     int32
	release  chan struct{}
}

func (b *slowBackend) BlockNumber(context.Context) (uint64, error) {
	n := atomic.AddInt32(&b.inflight, 1)
	for {
		p := atomic.LoadInt32(&b.peak)
		if n <= p || atomic.CompareAndSwapInt32(&b.peak, p, n) {
			break
		}
	}
	<-b.release
	atomic.AddInt32(&b.inflight, -1)
	return 296, nil
}

func TestThrottledInflight(t *testing.T) {
	req := require.New(t)
	b := &slowBackend{release: make(chan struct{})}
	th := newThrottled(b, 2, 0)

	done := make(chan error, 5)
	for i := 0; i < 5; i++ {
		go func() {
			_, err := th.BlockNumber(context.Background())
			done <- err
		}()
	}

	req.Eventually(func() bool { return atomic.LoadInt32(&b.inflight) == 2 }, time.Second, 5*time.Millisecond)
	close(b.release)
	for i := 0; i < 5; i++ {
		req.NoError(<-done)
	}
	req.EqualValues(2, atomic.LoadInt32(&b.peak))
}

func TestThrottledCancelled(t *testing.T) {
	req := require.New(t)
	b := &slowBackend{release: make(chan struct{})}
	th := newThrottled(b, 1, 0)

	go th.BlockNumber(context.Background())
	req.Eventually(func() bool { return atomic.LoadInt32(&b.inflight) == 1 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := th.BlockNumber(ctx)
	req.ErrorIs(err, context.DeadlineExceeded)
	close(b.release)
}

func TestThrottledRate(t *testing.T) {
	if testing.Short() {
		t.Skip("timing")
	}
	req := require.New(t)
	b := &slowBackend{release: make(chan struct{})}
	close(b.release)
	th := newThrottled(b, 1, 20)

	start := time.Now()
	for i := 0; i < 5; i++ {
		_, err := th.BlockNumber(context.Background())
		req.NoError(err)
	}
	// burst of 1 then 4 more at 20/s
	req.GreaterOrEqual(time.Since(start), 150*time.Millisecond)
}
