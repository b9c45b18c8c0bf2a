package listing

import (
	"math/big"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/txn"
)

// DefaultDuration is the validity window of a new listing in seconds (30 days).
const DefaultDuration = 30 * 24 * 60 * 60

// BuyGasLimit is the gas ceiling of buy and cancel calls.
const BuyGasLimit = 500000

type Status uint8

const (
	StatusUnset Status = iota
	StatusCreated
	StatusCompleted
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "active"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	}
	return "unset"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type TokenType uint8

const (
	TokenTypeERC721 TokenType = iota
	TokenTypeERC1155
)

func (t TokenType) MarshalText() ([]byte, error) {
	if t == TokenTypeERC1155 {
		return []byte("erc1155"), nil
	}
	return []byte("erc721"), nil
}

// Listing mirrors the marketplace contract's listing record.
type Listing struct {
	ListingId      *big.Int       `json:"listingId"`
	TokenId        *big.Int       `json:"tokenId"`
	Quantity       *big.Int       `json:"quantity"`
	PricePerToken  *big.Int       `json:"pricePerToken"`
	StartTimestamp *big.Int       `json:"startTimestamp"`
	EndTimestamp   *big.Int       `json:"endTimestamp"`
	ListingCreator domain.Address `json:"listingCreator"`
	AssetContract  domain.Address `json:"assetContract"`
	Currency       domain.Address `json:"currency"`
	TokenType      TokenType      `json:"tokenType"`
	Status         Status         `json:"status"`
	Reserved       bool           `json:"reserved"`
}

func (l *Listing) IsActive() bool {
	return l.Status == StatusCreated
}

func (l *Listing) IsNative() bool {
	return l.Currency.IsZero()
}

func (l *Listing) IsCreator(a domain.Address) bool {
	return !a.IsEmpty() && l.ListingCreator.Equals(a)
}

// TotalPrice returns pricePerToken * quantity exactly, for 1 <= quantity <= available.
func TotalPrice(pricePerToken, quantity, available *big.Int) (*big.Int, error) {
	if pricePerToken == nil || quantity == nil || available == nil {
		return nil, domain.ErrBadParamInput
	}
	if quantity.Cmp(big.NewInt(1)) < 0 || quantity.Cmp(available) > 0 {
		return nil, domain.NewUserError(domain.ErrBadParamInput, "Quantity must be between 1 and "+available.String(), nil)
	}
	return new(big.Int).Mul(pricePerToken, quantity), nil
}

type CreateParams struct {
	AssetContract domain.Address `json:"assetContract"`
	TokenId       string         `json:"tokenId"`
	// Price is the per token price in HBAR, e.g. "1.5".
	Price       string `json:"price"`
	AutoApprove bool   `json:"autoApprove"`
	Wait        bool   `json:"wait"`
}

type BuyParams struct {
	ListingId *big.Int
	Quantity  *big.Int
	Wait      bool
}

// CreateResult carries the approval transaction when one had to be sent
// before the listing itself.
type CreateResult struct {
	Approval *txn.Outcome `json:"approval,omitempty"`
	Listing  *txn.Outcome `json:"listing"`
}

type UseCase interface {
	// List returns the valid listings projected for the connected account.
	List(ctx.Ctx) ([]View, error)
	// Mine returns listings created by the connected account.
	Mine(ctx.Ctx) ([]View, error)
	Get(ctx.Ctx, *big.Int) (*View, error)
	Create(ctx.Ctx, CreateParams) (*CreateResult, error)
	Buy(ctx.Ctx, BuyParams) (*txn.Outcome, error)
	Cancel(c ctx.Ctx, listingId *big.Int, wait bool) (*txn.Outcome, error)
}
