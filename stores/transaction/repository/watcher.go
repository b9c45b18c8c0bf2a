package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	bAbi "github.com/x-xyz/hbarmarket/base/abi"
	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/base/metrics"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/txn"
)

var errPending = errors.New("receipt not available yet")

// ErrMsgUnconfirmed is shown when the wait ends before a receipt. The
// transaction may still be mined, so it must not read as a failure.
const ErrMsgUnconfirmed = "Transaction submitted but not confirmed yet, check its status before retrying"

// ReceiptReader is the part of an rpc client the watcher polls.
type ReceiptReader interface {
	TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
}

type WatcherCfg struct {
	Reader ReceiptReader
	// PollStart is the first poll interval, doubled up to PollLimit.
	PollStart time.Duration
	PollLimit time.Duration
	// Timeout bounds one wait. Zero waits until ctx ends.
	Timeout time.Duration
}

type watcher struct {
	reader    ReceiptReader
	pollStart time.Duration
	pollLimit time.Duration
	timeout   time.Duration
	met       metrics.Service
}

func NewWatcher(cfg *WatcherCfg) txn.Watcher {
	w := &watcher{
		reader:    cfg.Reader,
		pollStart: cfg.PollStart,
		pollLimit: cfg.PollLimit,
		timeout:   cfg.Timeout,
		met:       metrics.New("txn.watcher"),
	}
	if w.pollStart <= 0 {
		w.pollStart = 500 * time.Millisecond
	}
	if w.pollLimit <= 0 {
		w.pollLimit = 5 * time.Second
	}
	return w
}

func (w *watcher) WaitReceipt(c ctx.Ctx, hash domain.TxHash) (*types.Receipt, error) {
	defer w.met.BumpTime("wait.time").End()

	if w.timeout > 0 {
		var cancel context.CancelFunc
		c, cancel = ctx.WithTimeout(c, w.timeout)
		defer cancel()
	}

	var (
		receipt  *types.Receipt
		attempts int
	)
	poll := func() error {
		attempts++
		r, err := w.reader.TransactionReceipt(c, hash.ToCommon())
		switch {
		case err == nil && r != nil:
			receipt = r
			return nil
		case err == nil, errors.Is(err, ethereum.NotFound):
			return errPending
		}
		// rpc hiccups do not end the wait, only ctx does
		c.WithFields(log.Fields{"hash": hash, "err": err}).Warn("reader.TransactionReceipt failed")
		return err
	}

	if err := backoff.Retry(poll, backoff.WithContext(w.newBackOff(), c)); err != nil {
		c.WithFields(log.Fields{"hash": hash, "attempts": attempts, "err": err}).Warn("stop waiting for receipt")
		return nil, domain.NewUserError(domain.ErrReadFailed, ErrMsgUnconfirmed, err)
	}

	if receipt.Status == types.ReceiptStatusFailed {
		c.WithFields(log.Fields{"hash": hash, "block": receipt.BlockNumber}).Warn("transaction reverted")
		w.met.BumpSum("reverted", 1)
		return receipt, domain.NewUserError(domain.ErrTxFailed, "Transaction failed", nil)
	}
	return receipt, nil
}

// newBackOff doubles the poll interval from pollStart up to pollLimit and
// never gives up on its own.
func (w *watcher) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = w.pollStart
	b.MaxInterval = w.pollLimit
	b.Multiplier = 2
	b.RandomizationFactor = 0.1
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

func (w *watcher) Watch(c ctx.Ctx, hash domain.TxHash, event *abi.Event) (*txn.Receipt, error) {
	receipt, err := w.WaitReceipt(c, hash)
	if receipt == nil {
		return nil, err
	}
	res := &txn.Receipt{Receipt: receipt}
	if err != nil || event == nil {
		return res, err
	}

	_, decoded, ok := bAbi.FindEvent(event, receipt.Logs)
	if !ok {
		c.WithFields(log.Fields{"hash": hash, "event": event.Name, "logs": len(receipt.Logs)}).Warn("event not found in receipt")
		return res, xerrors.Errorf("%s: %w", event.Name, domain.ErrEventNotFound)
	}
	res.EventName = event.Name
	res.Event = decoded
	return res, nil
}
