package approval

import (
	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/txn"
	"golang.org/x/xerrors"
)

var ErrInvalidTransition = xerrors.New("invalid approval state transition")

type State int

const (
	StateUnknown State = iota
	StateChecking
	StateNotApproved
	StateApproving
	StateApproved
)

var stateNames = map[State]string{
	StateUnknown:     "unknown",
	StateChecking:    "checking",
	StateNotApproved: "not-approved",
	StateApproving:   "approving",
	StateApproved:    "approved",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "invalid"
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

var transitions = map[State][]State{
	StateUnknown:     {StateChecking},
	StateChecking:    {StateNotApproved, StateApproved, StateUnknown},
	StateNotApproved: {StateApproving, StateChecking},
	StateApproving:   {StateApproved, StateNotApproved},
	StateApproved:    {StateChecking},
}

func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Gate tracks whether operator may move owner's tokens of asset.
// A gate lives for one request and is never cached.
type Gate struct {
	Owner    domain.Address `json:"owner"`
	Operator domain.Address `json:"operator"`
	Asset    domain.Address `json:"asset"`
	State    State          `json:"state"`
	TxHash   domain.TxHash  `json:"txHash,omitempty"`
}

func NewGate(owner, operator, asset domain.Address) *Gate {
	return &Gate{Owner: owner, Operator: operator, Asset: asset, State: StateUnknown}
}

func (g *Gate) Transition(to State) error {
	if !CanTransition(g.State, to) {
		return xerrors.Errorf("%s -> %s: %w", g.State, to, ErrInvalidTransition)
	}
	g.State = to
	return nil
}

// CanList reports whether listing creation is allowed.
func (g *Gate) CanList() bool {
	return g.State == StateApproved
}

type Result struct {
	Gate    *Gate        `json:"gate"`
	Outcome *txn.Outcome `json:"outcome,omitempty"`
}

type UseCase interface {
	// Check queries isApprovedForAll and leaves the gate approved or not-approved.
	Check(c ctx.Ctx, asset domain.Address) (*Gate, error)
	// Approve sends setApprovalForAll and waits for its receipt when not approved yet.
	Approve(c ctx.Ctx, asset domain.Address) (*Result, error)
}
