package account

import (
	"crypto/ecdsa"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/xerrors"

	"github.com/x-xyz/hbarmarket/base/ctx"
	bEthereum "github.com/x-xyz/hbarmarket/base/ethereum"
	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/base/metrics"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/account"
	"github.com/x-xyz/hbarmarket/domain/txn"
)

// nonceResyncAfter is how long a locally advanced nonce is trusted over a
// lower pending nonce from the node.
const nonceResyncAfter = time.Minute

type Config struct {
	PrivateKey  string
	ChainId     domain.ChainId
	ProjectId   string
	ExplorerUrl string
	Approver    account.Approver
	Backend     domain.EthClientRepo
}

type impl struct {
	key         *ecdsa.PrivateKey
	address     common.Address
	chainId     domain.ChainId
	projectId   string
	explorerUrl string
	approver    account.Approver
	backend     domain.EthClientRepo
	metrics     metrics.Service

	// mu serializes every signature made by the account
	mu         sync.Mutex
	nextNonce  uint64
	nonceSetAt time.Time
	now        func() time.Time
}

// NewProvider builds the account context. A missing key, chain id or
// project id is a configuration error.
func NewProvider(cfg *Config) (account.Provider, error) {
	if cfg.PrivateKey == "" {
		return nil, xerrors.Errorf("private key: %w", domain.ErrMissingConfig)
	}
	if cfg.ProjectId == "" {
		return nil, xerrors.Errorf("project id: %w", domain.ErrMissingConfig)
	}
	if cfg.ChainId == 0 {
		return nil, xerrors.Errorf("chain id: %w", domain.ErrMissingConfig)
	}
	if cfg.Backend == nil {
		return nil, xerrors.Errorf("backend: %w", domain.ErrMissingConfig)
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, xerrors.Errorf("invalid private key: %w", domain.ErrMissingConfig)
	}
	approver := cfg.Approver
	if approver == nil {
		approver = AutoApprover{}
	}
	return &impl{
		key:         key,
		address:     crypto.PubkeyToAddress(key.PublicKey),
		chainId:     cfg.ChainId,
		projectId:   cfg.ProjectId,
		explorerUrl: strings.TrimSuffix(cfg.ExplorerUrl, "/"),
		approver:    approver,
		backend:     cfg.Backend,
		metrics:     metrics.New("account"),
		now:         time.Now,
	}, nil
}

func MustNewProvider(cfg *Config) account.Provider {
	p, err := NewProvider(cfg)
	if err != nil {
		log.Log().WithField("err", err).Panic("account.NewProvider failed")
	}
	return p
}

func (p *impl) Address() domain.Address {
	return domain.NewAddress(p.address)
}

func (p *impl) ChainId() domain.ChainId {
	return p.chainId
}

func (p *impl) ProjectId() string {
	return p.projectId
}

func (p *impl) ExplorerUrl() string {
	return p.explorerUrl
}

func (p *impl) Submit(c ctx.Ctx, call txn.Call) (domain.TxHash, error) {
	if err := call.Validate(); err != nil {
		return "", err
	}
	defer p.metrics.BumpTime("submit.time", "method", call.Method).End()

	p.mu.Lock()
	defer p.mu.Unlock()

	action := account.Action{
		Kind:     account.ActionCall,
		Label:    call.Label,
		To:       call.To,
		Method:   call.Method,
		Value:    call.Value,
		GasLimit: call.GasLimit,
	}
	if err := p.approver.Approve(c, action); err != nil {
		return "", txn.Classify(err, txn.OpCall)
	}

	opts, err := p.transactOpts(c, call.Value, call.GasLimit)
	if err != nil {
		return "", err
	}
	contract := bind.NewBoundContract(call.To.ToCommon(), *call.ABI, p.backend, p.backend, p.backend)
	tx, err := contract.Transact(opts, call.Method, call.Args...)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "to": call.To, "method": call.Method}).Error("contract.Transact failed")
		p.metrics.BumpSum("submit.err", 1, "method", call.Method)
		return "", txn.Classify(err, txn.OpCall)
	}
	p.advanceNonce(tx.Nonce())

	c.WithFields(log.Fields{"hash": tx.Hash().Hex(), "method": call.Method, "nonce": tx.Nonce()}).Info("transaction submitted")
	return domain.TxHash(tx.Hash().Hex()), nil
}

func (p *impl) Deploy(c ctx.Ctx, d txn.Deploy) (domain.TxHash, domain.Address, error) {
	if err := d.Validate(); err != nil {
		return "", domain.EmptyAddress, err
	}
	defer p.metrics.BumpTime("deploy.time").End()

	p.mu.Lock()
	defer p.mu.Unlock()

	action := account.Action{
		Kind:     account.ActionDeploy,
		Label:    d.Label,
		GasLimit: d.GasLimit,
	}
	if err := p.approver.Approve(c, action); err != nil {
		return "", domain.EmptyAddress, txn.Classify(err, txn.OpDeploy)
	}

	opts, err := p.transactOpts(c, nil, d.GasLimit)
	if err != nil {
		return "", domain.EmptyAddress, err
	}
	addr, tx, _, err := bind.DeployContract(opts, *d.ABI, d.Bytecode, p.backend, d.Args...)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "label": d.Label}).Error("bind.DeployContract failed")
		p.metrics.BumpSum("deploy.err", 1)
		return "", domain.EmptyAddress, txn.Classify(err, txn.OpDeploy)
	}
	p.advanceNonce(tx.Nonce())

	c.WithFields(log.Fields{"hash": tx.Hash().Hex(), "address": addr.Hex(), "label": d.Label}).Info("deployment submitted")
	return domain.TxHash(tx.Hash().Hex()), domain.NewAddress(addr), nil
}

func (p *impl) SignMessage(c ctx.Ctx, message string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.approver.Approve(c, account.Action{Kind: account.ActionSign, Message: message}); err != nil {
		return "", txn.Classify(err, txn.OpSign)
	}
	sig, err := bEthereum.SignMsg(p.key, []byte(message))
	if err != nil {
		c.WithField("err", err).Error("ethereum.SignMsg failed")
		return "", err
	}
	return sig, nil
}

func (p *impl) Balance(c ctx.Ctx) (*big.Int, error) {
	balance, err := p.backend.BalanceAt(c, p.address, nil)
	if err != nil {
		c.WithField("err", err).Error("backend.BalanceAt failed")
		return nil, domain.NewUserError(domain.ErrReadFailed, "Failed to read balance", err)
	}
	return balance, nil
}

// transactOpts must be called with mu held.
func (p *impl) transactOpts(c ctx.Ctx, value *big.Int, gasLimit uint64) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(p.key, big.NewInt(int64(p.chainId)))
	if err != nil {
		return nil, err
	}
	pending, err := p.backend.PendingNonceAt(c, p.address)
	if err != nil {
		c.WithField("err", err).Error("backend.PendingNonceAt failed")
		return nil, domain.NewUserError(domain.ErrReadFailed, "Failed to read account nonce", err)
	}
	nonce := p.pickNonce(c, pending)
	opts.Context = c
	opts.Nonce = new(big.Int).SetUint64(nonce)
	opts.Value = value
	opts.GasLimit = gasLimit
	return opts, nil
}

// advanceNonce must be called with mu held.
func (p *impl) advanceNonce(used uint64) {
	p.nextNonce = used + 1
	p.nonceSetAt = p.now()
}

// pickNonce prefers the local nonce while the node may still be catching up
// with our last broadcast. A gap older than nonceResyncAfter means a
// transaction was dropped, so the pending nonce of the node wins.
func (p *impl) pickNonce(c ctx.Ctx, pending uint64) uint64 {
	if p.nextNonce <= pending {
		return pending
	}
	if p.now().Sub(p.nonceSetAt) < nonceResyncAfter {
		return p.nextNonce
	}
	c.WithFields(log.Fields{"local": p.nextNonce, "pending": pending}).Warn("nonce gap, resync from pending nonce")
	p.metrics.BumpSum("nonce.resync", 1)
	p.nextNonce = pending
	return pending
}
