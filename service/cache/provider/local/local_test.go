package local

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/service/cache/provider"
)

func TestGetSet(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	p := New("test", 1)

	_, _, err := p.Get(c, "nonce:0xabc")
	req.Equal(provider.ErrNotFound, err)

	req.NoError(p.Set(c, "nonce:0xabc", []byte("42"), time.Minute))
	v, ttl, err := p.Get(c, "nonce:0xabc")
	req.NoError(err)
	req.Equal([]byte("42"), v)
	req.True(ttl > 58*time.Second && ttl <= time.Minute, ttl)

	req.NoError(p.Set(c, "forever", []byte("1"), 0))
	_, ttl, err = p.Get(c, "forever")
	req.NoError(err)
	req.Zero(ttl)

	req.NoError(p.Del(c, "nonce:0xabc"))
	_, _, err = p.Get(c, "nonce:0xabc")
	req.Equal(provider.ErrNotFound, err)
}

func TestExpire(t *testing.T) {
	if testing.Short() {
		t.Skip("sleeps past a ttl")
	}
	c := ctx.Background()
	p := New("test", 1)

	require.NoError(t, p.Set(c, "k", []byte("v"), 500*time.Millisecond))
	time.Sleep(1100 * time.Millisecond)
	_, _, err := p.Get(c, "k")
	require.Equal(t, provider.ErrNotFound, err)
}

func TestTakeOnce(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	p := New("test", 1)
	req.NoError(p.Set(c, "nonce", []byte("7"), time.Minute))

	var (
		wg    sync.WaitGroup
		taken int32
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if v, err := p.Take(c, "nonce"); err == nil {
				req.Equal([]byte("7"), v)
				atomic.AddInt32(&taken, 1)
			}
		}()
	}
	wg.Wait()
	req.Equal(int32(1), taken)

	_, err := p.Take(c, "nonce")
	req.Equal(provider.ErrNotFound, err)
}

func TestTtlSeconds(t *testing.T) {
	require.Equal(t, 0, ttlSeconds(0))
	require.Equal(t, 1, ttlSeconds(10*time.Millisecond))
	require.Equal(t, 2, ttlSeconds(1500*time.Millisecond))
	require.Equal(t, 60, ttlSeconds(time.Minute))
}
