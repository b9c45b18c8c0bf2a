package usecase

import (
	"errors"
	"math/big"
	"sync"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/txn"
)

type hook struct {
	uc   *impl
	spec txn.HookSpec

	mu     sync.RWMutex
	status txn.HookStatus
}

// Send submits exactly once. A failed send is never retried.
func (h *hook) Send(c ctx.Ctx, value *big.Int, args ...interface{}) (*txn.Outcome, error) {
	h.set(txn.HookStatus{State: txn.HookPending})

	req := txn.Request{
		Call: txn.Call{
			Label:    h.spec.Label,
			To:       h.spec.To,
			ABI:      h.spec.ABI,
			Method:   h.spec.Method,
			Args:     args,
			Value:    value,
			GasLimit: h.spec.GasLimit,
		},
		Event: h.spec.Event,
	}

	var o *txn.Outcome
	var err error
	if h.spec.Wait {
		o, err = h.uc.SubmitAndWait(c, req)
	} else {
		o, err = h.uc.Submit(c, req)
	}

	st := txn.HookStatus{State: txn.HookSuccess}
	if o != nil {
		st.Hash = o.Hash
	}
	if err != nil && !errors.Is(err, domain.ErrEventNotFound) {
		st.State = txn.HookError
		st.Error = domain.UserMessage(err)
	}
	h.set(st)
	return o, err
}

func (h *hook) Status() txn.HookStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}

func (h *hook) Reset() {
	h.set(txn.HookStatus{State: txn.HookIdle})
}

func (h *hook) set(st txn.HookStatus) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = st
}
