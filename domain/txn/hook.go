package txn

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/domain"
)

type HookState string

const (
	HookIdle    HookState = "idle"
	HookPending HookState = "pending"
	HookSuccess HookState = "success"
	HookError   HookState = "error"
)

// HookSpec binds a contract method. Wait makes Send block for the receipt.
type HookSpec struct {
	Label    string
	To       domain.Address
	ABI      *abi.ABI
	Method   string
	GasLimit uint64
	Event    *abi.Event
	Wait     bool
}

type HookStatus struct {
	State HookState     `json:"state"`
	Hash  domain.TxHash `json:"hash,omitempty"`
	Error string        `json:"error,omitempty"`
}

type Hook interface {
	Send(c ctx.Ctx, value *big.Int, args ...interface{}) (*Outcome, error)
	Status() HookStatus
	Reset()
}
