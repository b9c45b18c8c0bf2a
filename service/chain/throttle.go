package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/x-xyz/hbarmarket/domain"
)

// throttled bounds in-flight requests and their rate against one rpc relay.
// Public relays such as hashio reject bursts with 429.
type throttled struct {
	domain.EthClientRepo
	sem     *semaphore.Weighted
	limiter *rate.Limiter
}

func newThrottled(backend domain.EthClientRepo, maxInflight int, rps float64) *throttled {
	t := &throttled{EthClientRepo: backend}
	if maxInflight > 0 {
		t.sem = semaphore.NewWeighted(int64(maxInflight))
	}
	if rps > 0 {
		burst := maxInflight
		if burst < 1 {
			burst = 1
		}
		t.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
	return t
}

// acquire blocks until a slot is free and the limiter allows one more request.
// It fails only when ctx is done first.
func (t *throttled) acquire(ctx context.Context) (func(), error) {
	if t.sem != nil {
		if err := t.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
	}
	release := func() {
		if t.sem != nil {
			t.sem.Release(1)
		}
	}
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			release()
			return nil, err
		}
	}
	return release, nil
}

func (t *throttled) ChainID(ctx context.Context) (*big.Int, error) {
	release, err := t.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	return t.EthClientRepo.ChainID(ctx)
}

func (t *throttled) BlockNumber(ctx context.Context) (uint64, error) {
	release, err := t.acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer release()
	return t.EthClientRepo.BlockNumber(ctx)
}

func (t *throttled) BalanceAt(ctx context.Context, account common.Address, number *big.Int) (*big.Int, error) {
	release, err := t.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	return t.EthClientRepo.BalanceAt(ctx, account, number)
}

func (t *throttled) CodeAt(ctx context.Context, account common.Address, number *big.Int) ([]byte, error) {
	release, err := t.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	return t.EthClientRepo.CodeAt(ctx, account, number)
}

func (t *throttled) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	release, err := t.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	return t.EthClientRepo.CallContract(ctx, msg, number)
}

func (t *throttled) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	release, err := t.acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer release()
	return t.EthClientRepo.PendingNonceAt(ctx, account)
}

func (t *throttled) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	release, err := t.acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer release()
	return t.EthClientRepo.EstimateGas(ctx, msg)
}

func (t *throttled) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	release, err := t.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return t.EthClientRepo.SendTransaction(ctx, tx)
}

func (t *throttled) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	release, err := t.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()
	return t.EthClientRepo.TransactionReceipt(ctx, hash)
}
