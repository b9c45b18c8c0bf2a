package usecase

import (
	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/units"
	"github.com/x-xyz/hbarmarket/domain/account"
)

type impl struct {
	provider account.Provider
}

func New(provider account.Provider) account.Usecase {
	return &impl{provider: provider}
}

func (im *impl) Get(c ctx.Ctx) (*account.Info, error) {
	info := &account.Info{
		Address:     im.provider.Address(),
		ChainId:     im.provider.ChainId(),
		ProjectId:   im.provider.ProjectId(),
		ExplorerUrl: im.provider.ExplorerUrl(),
	}

	balance, err := im.provider.Balance(c)
	if err != nil {
		c.WithField("err", err).Error("provider.Balance failed")
		return nil, err
	}
	info.Balance = units.FormatNative(balance)
	info.BalanceWei = balance.String()
	return info, nil
}
