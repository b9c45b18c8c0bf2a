package layered

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/service/cache/provider"
	"github.com/x-xyz/hbarmarket/service/cache/provider/local"
)

var mockCtx = ctx.Background()

// failing rejects every write.
type failing struct {
	provider.Provider
}

func (failing) Set(ctx.Ctx, string, []byte, time.Duration) error {
	return errors.New("write refused")
}

type testsuite struct {
	suite.Suite
	near   provider.Provider
	shared provider.Provider
	im     provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.near = local.New("near", 1)
	ts.shared = local.New("shared", 1)
	ts.im = New(ts.near, ts.shared)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSetWritesEveryLayer() {
	ts.NoError(ts.im.Set(mockCtx, "k", []byte("v"), time.Minute))
	for _, lyr := range []provider.Provider{ts.near, ts.shared} {
		v, _, err := lyr.Get(mockCtx, "k")
		ts.NoError(err)
		ts.Equal([]byte("v"), v)
	}
}

func (ts *testsuite) TestGetBackfills() {
	ts.NoError(ts.shared.Set(mockCtx, "k", []byte("v"), time.Minute))

	v, ttl, err := ts.im.Get(mockCtx, "k")
	ts.NoError(err)
	ts.Equal([]byte("v"), v)
	ts.True(ttl > 0)

	v, _, err = ts.near.Get(mockCtx, "k")
	ts.NoError(err)
	ts.Equal([]byte("v"), v)
}

func (ts *testsuite) TestGetMiss() {
	_, _, err := ts.im.Get(mockCtx, "missing")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestBackfillFailureStillReads() {
	im := New(failing{ts.near}, ts.shared)
	ts.NoError(ts.shared.Set(mockCtx, "k", []byte("v"), time.Minute))

	v, _, err := im.Get(mockCtx, "k")
	ts.NoError(err)
	ts.Equal([]byte("v"), v)
}

func (ts *testsuite) TestTakeUsesSharedLayer() {
	ts.NoError(ts.im.Set(mockCtx, "nonce", []byte("1"), time.Minute))

	v, err := ts.im.Take(mockCtx, "nonce")
	ts.NoError(err)
	ts.Equal([]byte("1"), v)

	_, _, err = ts.near.Get(mockCtx, "nonce")
	ts.Equal(provider.ErrNotFound, err)
	_, err = ts.im.Take(mockCtx, "nonce")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestTakeEvictsStaleNearCopy() {
	ts.NoError(ts.near.Set(mockCtx, "nonce", []byte("stale"), time.Minute))

	_, err := ts.im.Take(mockCtx, "nonce")
	ts.Equal(provider.ErrNotFound, err)
	_, _, err = ts.near.Get(mockCtx, "nonce")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestDel() {
	ts.NoError(ts.im.Set(mockCtx, "k", []byte("v"), time.Minute))
	ts.NoError(ts.im.Del(mockCtx, "k"))
	_, _, err := ts.im.Get(mockCtx, "k")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestSingleLayerIsUnwrapped() {
	ts.Equal(ts.near, New(ts.near))
}
