package redis

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/service/cache/provider"
	"github.com/x-xyz/hbarmarket/service/redis"
	mockRedis "github.com/x-xyz/hbarmarket/service/redis/mocks"
)

var (
	mockCtx = ctx.Background()
	errConn = errors.New("connection refused")
)

type testsuite struct {
	suite.Suite
	im    provider.Provider
	redis *mockRedis.Service
}

func (ts *testsuite) SetupTest() {
	ts.redis = mockRedis.NewService(ts.T())
	ts.im = NewRedis(ts.redis)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	ts.redis.On("Set", mockCtx, "k", []byte("v"), time.Second).Return(nil).Once()
	ts.NoError(ts.im.Set(mockCtx, "k", []byte("v"), time.Second))

	ts.redis.On("Set", mockCtx, "forever", []byte("v"), redis.Forever).Return(nil).Once()
	ts.NoError(ts.im.Set(mockCtx, "forever", []byte("v"), 0))
}

func (ts *testsuite) TestGet() {
	cases := []struct {
		desc    string
		getErr  error
		ttl     time.Duration
		ttlErr  error
		wantTtl time.Duration
		wantErr error
	}{
		{desc: "hit", ttl: 3 * time.Second, wantTtl: 3 * time.Second},
		{desc: "no expiry", ttlErr: redis.ErrNoTTL},
		{desc: "miss", getErr: redis.ErrNotFound, wantErr: provider.ErrNotFound},
		{desc: "expired between reads", ttlErr: redis.ErrNotFound, wantErr: provider.ErrNotFound},
		{desc: "connection", getErr: errConn, wantErr: errConn},
	}
	for _, c := range cases {
		ts.Run(c.desc, func() {
			ts.redis = mockRedis.NewService(ts.T())
			ts.im = NewRedis(ts.redis)

			if c.getErr != nil {
				ts.redis.On("Get", mockCtx, "k").Return(nil, c.getErr).Once()
			} else {
				ts.redis.On("Get", mockCtx, "k").Return([]byte("v"), nil).Once()
				ts.redis.On("PTTL", mockCtx, "k").Return(c.ttl, c.ttlErr).Once()
			}

			v, ttl, err := ts.im.Get(mockCtx, "k")
			ts.Equal(c.wantErr, err)
			if c.wantErr == nil {
				ts.Equal([]byte("v"), v)
				ts.Equal(c.wantTtl, ttl)
			}
		})
	}
}

func (ts *testsuite) TestTake() {
	ts.redis.On("GetDel", mockCtx, "nonce").Return([]byte("9"), nil).Once()
	v, err := ts.im.Take(mockCtx, "nonce")
	ts.NoError(err)
	ts.Equal([]byte("9"), v)

	ts.redis.On("GetDel", mockCtx, "nonce").Return(nil, redis.ErrNotFound).Once()
	_, err = ts.im.Take(mockCtx, "nonce")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestDel() {
	ts.redis.On("Del", mockCtx, "k").Return(1, nil).Once()
	ts.NoError(ts.im.Del(mockCtx, "k"))
}
