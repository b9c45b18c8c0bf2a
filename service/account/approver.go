package account

import (
	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/base/units"
	"github.com/x-xyz/hbarmarket/domain/account"
)

// AutoApprover consents to every action. Used by the api server where the
// operator has already authorized the key.
type AutoApprover struct{}

func (AutoApprover) Approve(c ctx.Ctx, a account.Action) error {
	fields := log.Fields{"kind": a.Kind, "label": a.Label}
	if a.Method != "" {
		fields["to"] = a.To
		fields["method"] = a.Method
	}
	if a.Value != nil && a.Value.Sign() > 0 {
		fields["value"] = units.FormatNative(a.Value)
	}
	c.WithFields(fields).Info("action approved")
	return nil
}

// ApproverFunc adapts a function to account.Approver.
type ApproverFunc func(ctx.Ctx, account.Action) error

func (f ApproverFunc) Approve(c ctx.Ctx, a account.Action) error {
	return f(c, a)
}
