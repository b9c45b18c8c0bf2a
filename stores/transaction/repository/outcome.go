package repository

import (
	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/txn"
	"github.com/x-xyz/hbarmarket/service/cache"
)

type outcomeRepo struct {
	cache cache.Service
}

// NewOutcomeRepo keeps outcomes in cache. The cache prefix and ttl bound how
// long a hash stays queryable.
func NewOutcomeRepo(cache cache.Service) txn.Repository {
	return &outcomeRepo{cache: cache}
}

func (r *outcomeRepo) Get(c ctx.Ctx, hash domain.TxHash) (*txn.Outcome, error) {
	o := &txn.Outcome{}
	if err := r.cache.Get(c, hash.ToCommon().Hex(), o); err == cache.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *outcomeRepo) Store(c ctx.Ctx, o *txn.Outcome) error {
	return r.cache.Set(c, o.Hash.ToCommon().Hex(), o)
}
