package main

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/units"
	"github.com/x-xyz/hbarmarket/domain/account"
)

// errDeclined reads as a wallet rejection so it is classified as one.
var errDeclined = errors.New("user rejected the request")

// promptApprover asks on the terminal before each signature.
type promptApprover struct {
	out *printer
}

func (a *promptApprover) Approve(c ctx.Ctx, act account.Action) error {
	a.describe(act)

	prompt := promptui.Prompt{
		Label:     "Sign",
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		if err == promptui.ErrAbort || err == promptui.ErrInterrupt || err == promptui.ErrEOF {
			return errDeclined
		}
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	return nil
}

func (a *promptApprover) describe(act account.Action) {
	p := a.out
	p.warn.Fprintf(p.w, "%s requested: %s\n", act.Kind, act.Label)
	if len(act.To) > 0 {
		p.field("to", act.To)
	}
	if len(act.Method) > 0 {
		p.field("method", act.Method)
	}
	if act.Value != nil && act.Value.Sign() > 0 {
		p.field("value", units.FormatNative(act.Value)+" HBAR")
	}
	if act.GasLimit > 0 {
		p.field("gas limit", act.GasLimit)
	}
	if len(act.Message) > 0 {
		p.field("message", act.Message)
	}
}
