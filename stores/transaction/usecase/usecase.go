package usecase

import (
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/goroutine"
	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/account"
	"github.com/x-xyz/hbarmarket/domain/txn"
)

type TransactionUseCaseCfg struct {
	Provider account.Provider
	Watcher  txn.Watcher
	Repo     txn.Repository
	// Background tracks receipt watches started by Submit, nil uses a private group
	Background *goroutine.Group
}

type impl struct {
	provider account.Provider
	watcher  txn.Watcher
	repo     txn.Repository
	bg       *goroutine.Group
	now      func() time.Time
}

func New(cfg *TransactionUseCaseCfg) txn.UseCase {
	bg := cfg.Background
	if bg == nil {
		bg = &goroutine.Group{Name: "txn"}
	}
	return &impl{
		provider: cfg.Provider,
		watcher:  cfg.Watcher,
		repo:     cfg.Repo,
		bg:       bg,
		now:      time.Now,
	}
}

func (im *impl) Submit(c ctx.Ctx, req txn.Request) (*txn.Outcome, error) {
	o, err := im.submit(c, req)
	if err != nil {
		return nil, err
	}

	watched := *o
	detached := ctx.Detach(c)
	im.bg.Go("watch "+string(o.Hash), func() {
		im.finalize(detached, &watched, req.Event)
	})

	return o, nil
}

func (im *impl) SubmitAndWait(c ctx.Ctx, req txn.Request) (*txn.Outcome, error) {
	o, err := im.submit(c, req)
	if err != nil {
		return nil, err
	}
	return o, im.finalize(c, o, req.Event)
}

func (im *impl) Deploy(c ctx.Ctx, d txn.Deploy) (*txn.Outcome, error) {
	hash, addr, err := im.provider.Deploy(c, d)
	if err != nil {
		return nil, err
	}
	o := im.newOutcome(d.Label, hash)
	o.ContractAddress = addr
	im.store(c, o)
	return o, im.finalize(c, o, nil)
}

// Get returns the stored outcome. A pending outcome whose watch ended without
// a receipt is watched again in background.
func (im *impl) Get(c ctx.Ctx, hash domain.TxHash) (*txn.Outcome, error) {
	o, err := im.repo.Get(c, hash)
	if err != nil {
		return nil, err
	}
	if o.Status == txn.StatusPending && o.Error != "" {
		o.Error = ""
		im.store(c, o)
		watched := *o
		detached := ctx.Detach(c)
		im.bg.Go("rewatch "+string(hash), func() {
			im.finalize(detached, &watched, nil)
		})
	}
	return o, nil
}

func (im *impl) Hook(spec txn.HookSpec) txn.Hook {
	return &hook{uc: im, spec: spec, status: txn.HookStatus{State: txn.HookIdle}}
}

func (im *impl) submit(c ctx.Ctx, req txn.Request) (*txn.Outcome, error) {
	hash, err := im.provider.Submit(c, req.Call)
	if err != nil {
		return nil, err
	}
	o := im.newOutcome(req.Call.Label, hash)
	im.store(c, o)
	return o, nil
}

// finalize waits for the receipt of o and records its terminal state. The
// returned error is the watch error, ErrEventNotFound included.
func (im *impl) finalize(c ctx.Ctx, o *txn.Outcome, event *abi.Event) error {
	r, err := im.watcher.Watch(c, o.Hash, event)
	if r != nil && r.Receipt != nil {
		o.BlockNumber = r.Receipt.BlockNumber.Uint64()
		if r.Receipt.ContractAddress != (common.Address{}) {
			o.ContractAddress = domain.NewAddress(r.Receipt.ContractAddress)
		}
		o.EventName = r.EventName
		o.Event = r.Event
	}
	o.Finalize(err, im.now())
	im.store(c, o)

	fields := log.Fields{"hash": o.Hash, "label": o.Label, "status": o.Status}
	if err != nil && !errors.Is(err, domain.ErrEventNotFound) {
		c.WithFields(fields).WithField("err", err).Warn("transaction not confirmed")
	} else {
		c.WithFields(fields).Info("transaction finalized")
	}
	return err
}

func (im *impl) newOutcome(label string, hash domain.TxHash) *txn.Outcome {
	o := &txn.Outcome{
		Hash:        hash,
		Label:       label,
		Status:      txn.StatusPending,
		SubmittedAt: im.now(),
	}
	if url := im.provider.ExplorerUrl(); url != "" {
		o.ExplorerUrl = url + "/transaction/" + string(hash)
	}
	return o
}

// store is best effort, a lost outcome only affects later lookups by hash.
func (im *impl) store(c ctx.Ctx, o *txn.Outcome) {
	if im.repo == nil {
		return
	}
	if err := im.repo.Store(c, o); err != nil {
		c.WithFields(log.Fields{"hash": o.Hash, "err": err}).Warn("repo.Store failed")
	}
}
