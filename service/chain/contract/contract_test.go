package contract

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	baseabi "github.com/x-xyz/hbarmarket/base/abi"
	bCtx "github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/listing"
	"github.com/x-xyz/hbarmarket/service/chain/mocks"
)

var (
	mockCtx     = bCtx.Background()
	marketAddr  = domain.Address("0x84f3123d1254013d3feef9af1eebbc6e2466d5c8")
	nftAddr     = domain.Address("0x00000000000000000000000000000000000a11ce")
	creatorAddr = common.HexToAddress("0x00000000000000000000000000000000000000b0")
)

func rawListing(id int64, status uint8) baseabi.MarketplaceListing {
	return baseabi.MarketplaceListing{
		ListingId:      big.NewInt(id),
		TokenId:        big.NewInt(3),
		Quantity:       big.NewInt(1),
		PricePerToken:  big.NewInt(1e18),
		StartTimestamp: big.NewInt(1),
		EndTimestamp:   big.NewInt(2),
		ListingCreator: creatorAddr,
		AssetContract:  nftAddr.ToCommon(),
		Status:         status,
	}
}

func TestMarketplaceReads(t *testing.T) {
	req := require.New(t)
	client := mocks.NewClient(t)
	m := NewMarketplace(client, marketAddr)

	client.On("Call", mockCtx, marketAddr.ToCommon(), baseabi.MarketplaceABI, "totalListings").
		Return([]interface{}{big.NewInt(2)}, nil).Once()
	total, err := m.TotalListings(mockCtx)
	req.NoError(err)
	req.Equal(int64(2), total.Int64())

	client.On("Call", mockCtx, marketAddr.ToCommon(), baseabi.MarketplaceABI, "getAllValidListings", big.NewInt(0), big.NewInt(1)).
		Return([]interface{}{[]baseabi.MarketplaceListing{rawListing(0, 1), rawListing(1, 1)}}, nil).Once()
	ls, err := m.GetAllValidListings(mockCtx, big.NewInt(0), big.NewInt(1))
	req.NoError(err)
	req.Len(ls, 2)
	req.Equal(listing.StatusCreated, ls[1].Status)
	req.Equal(domain.NewAddress(creatorAddr), ls[1].ListingCreator)
	req.True(ls[1].Currency.IsZero())

	client.On("Call", mockCtx, marketAddr.ToCommon(), baseabi.MarketplaceABI, "getListing", big.NewInt(9)).
		Return(nil, errors.New("execution reverted")).Once()
	_, err = m.GetListing(mockCtx, big.NewInt(9))
	req.Error(err)
}

func TestNewListingParameters(t *testing.T) {
	req := require.New(t)
	p := NewListingParameters(nftAddr, big.NewInt(7), big.NewInt(5e17), 1700000000)
	req.Equal(nftAddr.ToCommon(), p.AssetContract)
	req.Equal(int64(1), p.Quantity.Int64())
	req.Equal(common.Address{}, p.Currency)
	req.Equal(int64(1700000000+2592000), p.EndTimestamp.Int64())
	req.False(p.Reserved)

	// the parameters must encode as the createListing tuple
	_, err := baseabi.MarketplaceABI.Pack("createListing", p)
	req.NoError(err)
}

func TestSpecs(t *testing.T) {
	req := require.New(t)
	m := NewMarketplace(nil, marketAddr)

	buy := m.BuyFromListingSpec()
	req.Equal(uint64(500000), buy.GasLimit)
	req.Equal("NewSale", buy.Event.Name)
	cancel := m.CancelListingSpec()
	req.Equal(uint64(500000), cancel.GasLimit)
	req.Zero(m.CreateListingSpec().GasLimit)

	f := NewFactory(marketAddr).DeployNftSpec()
	req.Equal("NFTContractDeployed", f.Event.Name)
	req.True(f.Wait)
}

func TestNftReads(t *testing.T) {
	req := require.New(t)
	client := mocks.NewClient(t)
	n := NewNft(client)

	client.On("Call", mockCtx, nftAddr.ToCommon(), baseabi.NftABI, "ownerOf", big.NewInt(3)).
		Return([]interface{}{creatorAddr}, nil).Once()
	owner, err := n.OwnerOf(mockCtx, nftAddr, big.NewInt(3))
	req.NoError(err)
	req.Equal(domain.NewAddress(creatorAddr), owner)

	client.On("Call", mockCtx, nftAddr.ToCommon(), baseabi.NftABI, "supportsInterface", baseabi.InterfaceIdErc721).
		Return([]interface{}{false}, nil).Once()
	client.On("Call", mockCtx, nftAddr.ToCommon(), baseabi.NftABI, "supportsInterface", baseabi.InterfaceIdErc1155).
		Return([]interface{}{true}, nil).Once()
	typ, err := n.TokenType(mockCtx, nftAddr)
	req.NoError(err)
	req.Equal(domain.TokenType1155, typ)

	client.On("Call", mockCtx, nftAddr.ToCommon(), baseabi.NftABI, "isApprovedForAll", creatorAddr, marketAddr.ToCommon()).
		Return([]interface{}{true}, nil).Once()
	ok, err := n.IsApprovedForAll(mockCtx, nftAddr, domain.NewAddress(creatorAddr), marketAddr)
	req.NoError(err)
	req.True(ok)

	client.On("Call", mockCtx, nftAddr.ToCommon(), baseabi.NftABI, "tokenURI", mock.Anything).
		Return([]interface{}{"ipfs://cid/3"}, nil).Once()
	uri, err := n.TokenURI(mockCtx, nftAddr, big.NewInt(3))
	req.NoError(err)
	req.Equal("ipfs://cid/3", uri)
}

func TestSubstituteId(t *testing.T) {
	require.Equal(t,
		"https://x/000000000000000000000000000000000000000000000000000000000000000a.json",
		SubstituteId("https://x/{id}.json", big.NewInt(10)))
	require.Equal(t, "ipfs://cid/1.json", SubstituteId("ipfs://cid/1.json", big.NewInt(1)))
}
