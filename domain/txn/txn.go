package txn

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/domain"
	"golang.org/x/xerrors"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// Call describes one state-changing contract call. Amounts are base units.
type Call struct {
	Label    string
	To       domain.Address
	ABI      *abi.ABI
	Method   string
	Args     []interface{}
	Value    *big.Int
	GasLimit uint64
}

func (c Call) Validate() error {
	if c.ABI == nil {
		return xerrors.Errorf("missing abi for %s: %w", c.Method, domain.ErrBadParamInput)
	}
	if c.To.IsEmpty() {
		return xerrors.Errorf("missing target for %s: %w", c.Method, domain.ErrBadParamInput)
	}
	if _, ok := c.ABI.Methods[c.Method]; !ok {
		return xerrors.Errorf("unknown method %s: %w", c.Method, domain.ErrBadParamInput)
	}
	return nil
}

// Deploy describes a contract creation.
type Deploy struct {
	Label    string
	ABI      *abi.ABI
	Bytecode []byte
	Args     []interface{}
	GasLimit uint64
}

func (d Deploy) Validate() error {
	if d.ABI == nil || len(d.Bytecode) == 0 {
		return xerrors.Errorf("missing abi or bytecode for %s: %w", d.Label, domain.ErrBadParamInput)
	}
	return nil
}

// Request is a call plus the event its receipt is expected to carry.
type Request struct {
	Call  Call
	Event *abi.Event
}

type Outcome struct {
	Hash            domain.TxHash          `json:"hash"`
	Label           string                 `json:"label,omitempty"`
	Status          Status                 `json:"status"`
	EventName       string                 `json:"eventName,omitempty"`
	Event           map[string]interface{} `json:"event,omitempty"`
	ContractAddress domain.Address         `json:"contractAddress,omitempty"`
	BlockNumber     uint64                 `json:"blockNumber,omitempty"`
	Error           string                 `json:"error,omitempty"`
	ExplorerUrl     string                 `json:"explorerUrl,omitempty"`
	SubmittedAt     time.Time              `json:"submittedAt"`
	FinalizedAt     *time.Time             `json:"finalizedAt,omitempty"`
}

func (o *Outcome) IsFinal() bool {
	return o.Status != StatusPending
}

// Finalize records the result of a receipt wait. err nil means confirmed.
// A wait that ended without a receipt leaves the outcome pending, the
// transaction may still be mined.
func (o *Outcome) Finalize(err error, at time.Time) {
	if xerrors.Is(err, domain.ErrReadFailed) {
		o.Status = StatusPending
		o.Error = domain.UserMessage(err)
		return
	}
	o.FinalizedAt = &at
	if err == nil {
		o.Status = StatusConfirmed
		o.Error = ""
		return
	}
	// a confirmed receipt without the expected event is not a failed transaction
	if xerrors.Is(err, domain.ErrEventNotFound) {
		o.Status = StatusConfirmed
	} else {
		o.Status = StatusFailed
	}
	o.Error = domain.UserMessage(err)
}

// Receipt is what the watcher resolves to.
type Receipt struct {
	Receipt   *types.Receipt
	EventName string
	Event     map[string]interface{}
}

type Watcher interface {
	// WaitReceipt blocks until the transaction has a final receipt.
	WaitReceipt(ctx.Ctx, domain.TxHash) (*types.Receipt, error)
	// Watch waits for the receipt and decodes the first log matching event.
	Watch(ctx.Ctx, domain.TxHash, *abi.Event) (*Receipt, error)
}

type Repository interface {
	Get(ctx.Ctx, domain.TxHash) (*Outcome, error)
	Store(ctx.Ctx, *Outcome) error
}

type UseCase interface {
	// Submit broadcasts once and watches the receipt in background.
	Submit(ctx.Ctx, Request) (*Outcome, error)
	// SubmitAndWait broadcasts once and returns the final outcome.
	SubmitAndWait(ctx.Ctx, Request) (*Outcome, error)
	// Deploy creates a contract and waits for its receipt.
	Deploy(ctx.Ctx, Deploy) (*Outcome, error)
	Get(ctx.Ctx, domain.TxHash) (*Outcome, error)
	// Hook binds one contract method for repeated invocation.
	Hook(HookSpec) Hook
}
