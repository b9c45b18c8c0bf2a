package account

import (
	"math/big"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/txn"
)

type ActionKind string

const (
	ActionCall   ActionKind = "transaction"
	ActionDeploy ActionKind = "deploy"
	ActionSign   ActionKind = "sign"
)

// Action is what the account holder is asked to consent to before signing.
type Action struct {
	Kind     ActionKind
	Label    string
	To       domain.Address
	Method   string
	Value    *big.Int
	GasLimit uint64
	Message  string
}

// Approver gates every signature. Declining returns an error whose message
// contains "user rejected".
type Approver interface {
	Approve(ctx.Ctx, Action) error
}

// Provider is the one account/session context of a running instance.
type Provider interface {
	Address() domain.Address
	ChainId() domain.ChainId
	ProjectId() string
	ExplorerUrl() string
	// Submit signs and broadcasts one call. Calls from the account are serialized.
	Submit(ctx.Ctx, txn.Call) (domain.TxHash, error)
	// Deploy signs and broadcasts a contract creation.
	Deploy(ctx.Ctx, txn.Deploy) (domain.TxHash, domain.Address, error)
	// SignMessage returns an EIP-191 personal signature in hex.
	SignMessage(ctx.Ctx, string) (string, error)
	Balance(ctx.Ctx) (*big.Int, error)
}

type Info struct {
	Address     domain.Address `json:"address"`
	ChainId     domain.ChainId `json:"chainId"`
	ProjectId   string         `json:"projectId"`
	Balance     string         `json:"balance"`
	BalanceWei  string         `json:"balanceWei"`
	ExplorerUrl string         `json:"explorerUrl"`
}

type Usecase interface {
	Get(ctx.Ctx) (*Info, error)
}
