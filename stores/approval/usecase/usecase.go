package usecase

import (
	"errors"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/account"
	"github.com/x-xyz/hbarmarket/domain/approval"
	"github.com/x-xyz/hbarmarket/domain/txn"
)

// ApprovalContract reads and grants operator approval on an asset contract.
type ApprovalContract interface {
	IsApprovedForAll(c ctx.Ctx, asset, owner, operator domain.Address) (bool, error)
	SetApprovalForAllSpec(asset domain.Address) txn.HookSpec
}

type ApprovalUseCaseCfg struct {
	Provider account.Provider
	Contract ApprovalContract
	Txn      txn.UseCase
	// Operator is the marketplace address approvals are granted to.
	Operator domain.Address
}

type impl struct {
	provider account.Provider
	contract ApprovalContract
	txn      txn.UseCase
	operator domain.Address
}

func New(cfg *ApprovalUseCaseCfg) approval.UseCase {
	return &impl{
		provider: cfg.Provider,
		contract: cfg.Contract,
		txn:      cfg.Txn,
		operator: cfg.Operator,
	}
}

func (u *impl) Check(c ctx.Ctx, asset domain.Address) (*approval.Gate, error) {
	g := approval.NewGate(u.provider.Address(), u.operator, asset)
	if err := u.check(c, g); err != nil {
		return g, err
	}
	return g, nil
}

func (u *impl) check(c ctx.Ctx, g *approval.Gate) error {
	if err := g.Transition(approval.StateChecking); err != nil {
		return err
	}

	approved, err := u.contract.IsApprovedForAll(c, g.Asset, g.Owner, g.Operator)
	if err != nil {
		c.WithFields(log.Fields{
			"asset": g.Asset,
			"owner": g.Owner,
			"err":   err,
		}).Error("contract.IsApprovedForAll failed")
		_ = g.Transition(approval.StateUnknown)
		return domain.NewUserError(domain.ErrReadFailed, "Failed to check approval status", err)
	}

	if approved {
		return g.Transition(approval.StateApproved)
	}
	return g.Transition(approval.StateNotApproved)
}

func (u *impl) Approve(c ctx.Ctx, asset domain.Address) (*approval.Result, error) {
	g, err := u.Check(c, asset)
	res := &approval.Result{Gate: g}
	if err != nil {
		return res, err
	}
	if g.CanList() {
		return res, nil
	}

	if err := g.Transition(approval.StateApproving); err != nil {
		return res, err
	}

	hook := u.txn.Hook(u.contract.SetApprovalForAllSpec(asset))
	o, err := hook.Send(c, nil, g.Operator.ToCommon(), true)
	res.Outcome = o
	if o != nil {
		g.TxHash = o.Hash
	}
	// a confirmed receipt is enough, the ApprovalForAll log is informational
	if err != nil && !errors.Is(err, domain.ErrEventNotFound) {
		c.WithFields(log.Fields{
			"asset": asset,
			"err":   err,
		}).Warn("setApprovalForAll failed")
		_ = g.Transition(approval.StateNotApproved)
		return res, err
	}

	if err := g.Transition(approval.StateApproved); err != nil {
		return res, err
	}
	return res, nil
}
