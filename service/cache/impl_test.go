package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/domain/keys"
	"github.com/x-xyz/hbarmarket/service/cache/provider"
	"github.com/x-xyz/hbarmarket/service/cache/provider/local"
)

var mockCtx = ctx.Background()

type outcome struct {
	Hash   string `json:"hash"`
	Status string `json:"status"`
}

type testsuite struct {
	suite.Suite
	im    Service
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = local.New("test", 1)
	ts.im = New(ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   keys.PfxTxOutcome,
		Cache: ts.cache,
	})
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSetGet() {
	got := &outcome{}
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "0xabc", got))

	ts.NoError(ts.im.Set(mockCtx, "0xabc", outcome{"0xabc", "pending"}))
	raw, _, err := ts.cache.Get(mockCtx, "txOutcome:0xabc")
	ts.NoError(err)
	ts.JSONEq(`{"hash":"0xabc","status":"pending"}`, string(raw))

	ts.NoError(ts.im.Get(mockCtx, "0xabc", got))
	ts.Equal(outcome{"0xabc", "pending"}, *got)
}

func (ts *testsuite) TestGetCorrupt() {
	ts.NoError(ts.cache.Set(mockCtx, "txOutcome:0xbad", []byte("{"), time.Minute))
	ts.Error(ts.im.Get(mockCtx, "0xbad", &outcome{}))
}

func (ts *testsuite) TestGetByFunc() {
	calls := 0
	getter := func() (interface{}, error) {
		calls++
		return &outcome{"0xabc", "confirmed"}, nil
	}

	for i := 0; i < 3; i++ {
		got := &outcome{}
		ts.NoError(ts.im.GetByFunc(mockCtx, "0xabc", got, getter))
		ts.Equal("confirmed", got.Status)
	}
	ts.Equal(1, calls)
}

func (ts *testsuite) TestGetByFuncGetterError() {
	errRead := errors.New("rpc down")
	err := ts.im.GetByFunc(mockCtx, "0xabc", &outcome{}, func() (interface{}, error) {
		return nil, errRead
	})
	ts.Equal(errRead, err)
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "0xabc", &outcome{}))
}

func (ts *testsuite) TestTake() {
	ts.NoError(ts.im.Set(mockCtx, "0xabc", outcome{Hash: "0xabc"}))

	got := &outcome{}
	ts.NoError(ts.im.Take(mockCtx, "0xabc", got))
	ts.Equal("0xabc", got.Hash)
	ts.Equal(ErrNotFound, ts.im.Take(mockCtx, "0xabc", got))
}

func (ts *testsuite) TestDel() {
	ts.NoError(ts.im.Set(mockCtx, "0xabc", outcome{}))
	ts.NoError(ts.im.Del(mockCtx, "0xabc"))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "0xabc", &outcome{}))
}
