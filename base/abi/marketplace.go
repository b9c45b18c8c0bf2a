package abi

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var MarketplaceABI abi.ABI

const listingTuple = `{"components":[{"name":"listingId","type":"uint256"},{"name":"tokenId","type":"uint256"},{"name":"quantity","type":"uint256"},{"name":"pricePerToken","type":"uint256"},{"name":"startTimestamp","type":"uint128"},{"name":"endTimestamp","type":"uint128"},{"name":"listingCreator","type":"address"},{"name":"assetContract","type":"address"},{"name":"currency","type":"address"},{"name":"tokenType","type":"uint8"},{"name":"status","type":"uint8"},{"name":"reserved","type":"bool"}],"name":"%s","type":"%s"}`

var marketplaceABI = `[` +
	`{"type":"function","name":"createListing","stateMutability":"nonpayable","inputs":[{"components":[{"name":"assetContract","type":"address"},{"name":"tokenId","type":"uint256"},{"name":"quantity","type":"uint256"},{"name":"currency","type":"address"},{"name":"pricePerToken","type":"uint256"},{"name":"startTimestamp","type":"uint128"},{"name":"endTimestamp","type":"uint128"},{"name":"reserved","type":"bool"}],"name":"_params","type":"tuple"}],"outputs":[{"name":"listingId","type":"uint256"}]},` +
	`{"type":"function","name":"buyFromListing","stateMutability":"payable","inputs":[{"name":"_listingId","type":"uint256"},{"name":"_buyFor","type":"address"},{"name":"_quantity","type":"uint256"},{"name":"_currency","type":"address"},{"name":"_expectedTotalPrice","type":"uint256"}],"outputs":[]},` +
	`{"type":"function","name":"cancelListing","stateMutability":"nonpayable","inputs":[{"name":"_listingId","type":"uint256"}],"outputs":[]},` +
	`{"type":"function","name":"totalListings","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},` +
	`{"type":"function","name":"getListing","stateMutability":"view","inputs":[{"name":"_listingId","type":"uint256"}],"outputs":[` + tupleOf("listing", "tuple") + `]},` +
	`{"type":"function","name":"getAllListings","stateMutability":"view","inputs":[{"name":"_startId","type":"uint256"},{"name":"_endId","type":"uint256"}],"outputs":[` + tupleOf("_allListings", "tuple[]") + `]},` +
	`{"type":"function","name":"getAllValidListings","stateMutability":"view","inputs":[{"name":"_startId","type":"uint256"},{"name":"_endId","type":"uint256"}],"outputs":[` + tupleOf("_validListings", "tuple[]") + `]},` +
	`{"type":"event","anonymous":false,"name":"NewListing","inputs":[{"indexed":true,"name":"listingCreator","type":"address"},{"indexed":true,"name":"listingId","type":"uint256"},{"indexed":true,"name":"assetContract","type":"address"},` + tupleOf("listing", "tuple") + `]},` +
	`{"type":"event","anonymous":false,"name":"CancelledListing","inputs":[{"indexed":true,"name":"listingCreator","type":"address"},{"indexed":true,"name":"listingId","type":"uint256"}]},` +
	`{"type":"event","anonymous":false,"name":"NewSale","inputs":[{"indexed":true,"name":"listingCreator","type":"address"},{"indexed":true,"name":"listingId","type":"uint256"},{"indexed":true,"name":"assetContract","type":"address"},{"indexed":false,"name":"tokenId","type":"uint256"},{"indexed":false,"name":"buyer","type":"address"},{"indexed":false,"name":"quantityBought","type":"uint256"},{"indexed":false,"name":"totalPricePaid","type":"uint256"}]}` +
	`]`

func tupleOf(name, typ string) string {
	return fmt.Sprintf(listingTuple, name, typ)
}

func init() {
	_abi, err := abi.JSON(strings.NewReader(marketplaceABI))
	if err != nil {
		panic("Failed to parse marketplace abi")
	}
	MarketplaceABI = _abi
}

// MarketplaceListing mirrors the contract's Listing struct. Field names must
// match the abi components for abi.ConvertType.
type MarketplaceListing struct {
	ListingId      *big.Int
	TokenId        *big.Int
	Quantity       *big.Int
	PricePerToken  *big.Int
	StartTimestamp *big.Int
	EndTimestamp   *big.Int
	ListingCreator common.Address
	AssetContract  common.Address
	Currency       common.Address
	TokenType      uint8
	Status         uint8
	Reserved       bool
}

// MarketplaceListingParameters is the createListing argument.
type MarketplaceListingParameters struct {
	AssetContract  common.Address
	TokenId        *big.Int
	Quantity       *big.Int
	Currency       common.Address
	PricePerToken  *big.Int
	StartTimestamp *big.Int
	EndTimestamp   *big.Int
	Reserved       bool
}

type NewListingLog struct {
	ListingCreator common.Address // indexed
	ListingId      *big.Int       // indexed
	AssetContract  common.Address // indexed
	Listing        MarketplaceListing
}

func ToNewListingLog(log *types.Log) (*NewListingLog, error) {
	if len(log.Topics) != 4 {
		return nil, ErrEventMismatch
	}
	var l NewListingLog
	if err := MarketplaceABI.UnpackIntoInterface(&l, "NewListing", log.Data); err != nil {
		return nil, err
	}
	l.ListingCreator = common.BytesToAddress(log.Topics[1].Bytes())
	l.ListingId = log.Topics[2].Big()
	l.AssetContract = common.BytesToAddress(log.Topics[3].Bytes())
	return &l, nil
}
