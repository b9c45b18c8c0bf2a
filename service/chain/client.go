package chain

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	bCtx "github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/domain"
)

var ErrUnexpectedChain = errors.New("rpc reports an unexpected chain id")

type ClientCfg struct {
	RpcUrl  string
	ChainId domain.ChainId
	// MaxInflight bounds concurrent rpc requests, 0 disables the bound
	MaxInflight int
	// Rps caps requests per second, 0 disables the limiter
	Rps float64
}

// Client reads contract state from the one configured network.
type Client interface {
	Call(c bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	CodeAt(c bCtx.Ctx, addr common.Address) ([]byte, error)
	BalanceAt(c bCtx.Ctx, addr common.Address) (*big.Int, error)
	BlockNumber(c bCtx.Ctx) (uint64, error)
	Backend() domain.EthClientRepo
}

type clientImpl struct {
	backend domain.EthClientRepo
}

// Dial connects to cfg.RpcUrl and verifies the chain id it reports.
func Dial(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"url": cfg.RpcUrl,
		}).Error("failed to dial rpc")
		return nil, err
	}

	var backend domain.EthClientRepo = client
	if cfg.MaxInflight > 0 || cfg.Rps > 0 {
		backend = newThrottled(client, cfg.MaxInflight, cfg.Rps)
	}

	chainId, err := backend.ChainID(ctx)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"url": cfg.RpcUrl,
		}).Error("backend.ChainID failed")
		return nil, err
	}
	if chainId.Int64() != int64(cfg.ChainId) {
		ctx.WithFields(log.Fields{
			"expected": cfg.ChainId,
			"actual":   chainId,
		}).Error("chain id mismatch")
		return nil, ErrUnexpectedChain
	}
	return NewClient(backend), nil
}

// MustDial is Dial that panics, for process start up.
func MustDial(ctx bCtx.Ctx, cfg *ClientCfg) Client {
	c, err := Dial(ctx, cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"url": cfg.RpcUrl, "err": err}).Panic("fail to connect rpc")
	}
	return c
}

func NewClient(backend domain.EthClientRepo) Client {
	return &clientImpl{backend: backend}
}

func (c *clientImpl) Backend() domain.EthClientRepo {
	return c.backend
}

func (c *clientImpl) Call(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := c.backend.CallContract(ctx, msg, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Warn("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Warn("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) CodeAt(ctx bCtx.Ctx, addr common.Address) ([]byte, error) {
	code, err := c.backend.CodeAt(ctx, addr, nil)
	if err != nil {
		ctx.WithField("err", err).Error("client.CodeAt failed")
		return nil, err
	}
	return code, nil
}

func (c *clientImpl) BalanceAt(ctx bCtx.Ctx, addr common.Address) (*big.Int, error) {
	balance, err := c.backend.BalanceAt(ctx, addr, nil)
	if err != nil {
		ctx.WithField("err", err).Error("client.BalanceAt failed")
		return nil, err
	}
	return balance, nil
}

func (c *clientImpl) BlockNumber(ctx bCtx.Ctx) (uint64, error) {
	n, err := c.backend.BlockNumber(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.BlockNumber failed")
		return 0, err
	}
	return n, nil
}
