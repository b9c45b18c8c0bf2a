package contract

import (
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	baseabi "github.com/x-xyz/hbarmarket/base/abi"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/txn"
)

type Factory struct {
	abi     ethabi.ABI
	address domain.Address
}

func NewFactory(address domain.Address) *Factory {
	return &Factory{
		abi:     baseabi.FactoryABI,
		address: address,
	}
}

func (f *Factory) Address() domain.Address {
	return f.address
}

func (f *Factory) DeployNftSpec() txn.HookSpec {
	ev := f.abi.Events["NFTContractDeployed"]
	return txn.HookSpec{
		Label:  "deployNFT",
		To:     f.address,
		ABI:    &f.abi,
		Method: "deployNFT",
		Event:  &ev,
		Wait:   true,
	}
}
