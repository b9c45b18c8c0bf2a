package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/x-xyz/hbarmarket/base/abi"
	bCtx "github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/listing"
	"github.com/x-xyz/hbarmarket/domain/txn"
	"github.com/x-xyz/hbarmarket/service/chain"
)

type Marketplace struct {
	chainService chain.Client
	abi          ethabi.ABI
	address      domain.Address
}

func NewMarketplace(chainService chain.Client, address domain.Address) *Marketplace {
	return &Marketplace{
		chainService: chainService,
		abi:          baseabi.MarketplaceABI,
		address:      address,
	}
}

func (m *Marketplace) Address() domain.Address {
	return m.address
}

func (m *Marketplace) TotalListings(ctx bCtx.Ctx) (*big.Int, error) {
	unpacked, err := m.chainService.Call(ctx, m.address.ToCommon(), m.abi, "totalListings")
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

// GetAllValidListings returns the valid listings with ids in [start, end].
func (m *Marketplace) GetAllValidListings(ctx bCtx.Ctx, start, end *big.Int) ([]listing.Listing, error) {
	unpacked, err := m.chainService.Call(ctx, m.address.ToCommon(), m.abi, "getAllValidListings", start, end)
	if err != nil {
		return nil, err
	}
	raw := *ethabi.ConvertType(unpacked[0], new([]baseabi.MarketplaceListing)).(*[]baseabi.MarketplaceListing)
	res := make([]listing.Listing, 0, len(raw))
	for _, l := range raw {
		res = append(res, ToListing(l))
	}
	return res, nil
}

func (m *Marketplace) GetListing(ctx bCtx.Ctx, listingId *big.Int) (*listing.Listing, error) {
	unpacked, err := m.chainService.Call(ctx, m.address.ToCommon(), m.abi, "getListing", listingId)
	if err != nil {
		return nil, err
	}
	raw := *ethabi.ConvertType(unpacked[0], new(baseabi.MarketplaceListing)).(*baseabi.MarketplaceListing)
	l := ToListing(raw)
	return &l, nil
}

func (m *Marketplace) CreateListingSpec() txn.HookSpec {
	ev := m.abi.Events["NewListing"]
	return txn.HookSpec{
		Label:  "createListing",
		To:     m.address,
		ABI:    &m.abi,
		Method: "createListing",
		Event:  &ev,
	}
}

func (m *Marketplace) BuyFromListingSpec() txn.HookSpec {
	ev := m.abi.Events["NewSale"]
	return txn.HookSpec{
		Label:    "buyFromListing",
		To:       m.address,
		ABI:      &m.abi,
		Method:   "buyFromListing",
		GasLimit: listing.BuyGasLimit,
		Event:    &ev,
	}
}

func (m *Marketplace) CancelListingSpec() txn.HookSpec {
	ev := m.abi.Events["CancelledListing"]
	return txn.HookSpec{
		Label:    "cancelListing",
		To:       m.address,
		ABI:      &m.abi,
		Method:   "cancelListing",
		GasLimit: listing.BuyGasLimit,
		Event:    &ev,
	}
}

// NewListingParameters fills the listing defaults: one token, native
// currency and a 30 day window starting at start.
func NewListingParameters(asset domain.Address, tokenId, pricePerToken *big.Int, start int64) baseabi.MarketplaceListingParameters {
	return baseabi.MarketplaceListingParameters{
		AssetContract:  asset.ToCommon(),
		TokenId:        tokenId,
		Quantity:       big.NewInt(1),
		Currency:       common.Address{},
		PricePerToken:  pricePerToken,
		StartTimestamp: big.NewInt(start),
		EndTimestamp:   big.NewInt(start + listing.DefaultDuration),
		Reserved:       false,
	}
}

func ToListing(l baseabi.MarketplaceListing) listing.Listing {
	return listing.Listing{
		ListingId:      l.ListingId,
		TokenId:        l.TokenId,
		Quantity:       l.Quantity,
		PricePerToken:  l.PricePerToken,
		StartTimestamp: l.StartTimestamp,
		EndTimestamp:   l.EndTimestamp,
		ListingCreator: domain.NewAddress(l.ListingCreator),
		AssetContract:  domain.NewAddress(l.AssetContract),
		Currency:       domain.NewAddress(l.Currency),
		TokenType:      listing.TokenType(l.TokenType),
		Status:         listing.Status(l.Status),
		Reserved:       l.Reserved,
	}
}
