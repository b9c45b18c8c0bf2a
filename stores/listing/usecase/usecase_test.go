package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	baseabi "github.com/x-xyz/hbarmarket/base/abi"
	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/domain"
	accountMocks "github.com/x-xyz/hbarmarket/domain/account/mocks"
	"github.com/x-xyz/hbarmarket/domain/approval"
	approvalMocks "github.com/x-xyz/hbarmarket/domain/approval/mocks"
	"github.com/x-xyz/hbarmarket/domain/listing"
	"github.com/x-xyz/hbarmarket/domain/txn"
	txnMocks "github.com/x-xyz/hbarmarket/domain/txn/mocks"
)

const (
	me          = domain.Address("0x1111111111111111111111111111111111111111")
	seller      = domain.Address("0x4444444444444444444444444444444444444444")
	marketplace = domain.Address("0x2222222222222222222222222222222222222222")
	asset       = domain.Address("0x3333333333333333333333333333333333333333")
	erc20       = domain.Address("0x5555555555555555555555555555555555555555")
)

type fakeMarketplace struct {
	total    *big.Int
	listings map[int64]listing.Listing
	err      error
	ranges   [][2]int64
}

func (f *fakeMarketplace) Address() domain.Address { return marketplace }

func (f *fakeMarketplace) TotalListings(ctx.Ctx) (*big.Int, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.total, nil
}

func (f *fakeMarketplace) GetAllValidListings(_ ctx.Ctx, start, end *big.Int) ([]listing.Listing, error) {
	f.ranges = append(f.ranges, [2]int64{start.Int64(), end.Int64()})
	res := []listing.Listing{}
	for i := start.Int64(); i <= end.Int64(); i++ {
		if l, ok := f.listings[i]; ok && l.IsActive() {
			res = append(res, l)
		}
	}
	return res, nil
}

func (f *fakeMarketplace) GetListing(_ ctx.Ctx, id *big.Int) (*listing.Listing, error) {
	l, ok := f.listings[id.Int64()]
	if !ok {
		return &listing.Listing{ListingCreator: domain.EmptyAddress}, nil
	}
	return &l, nil
}

func (f *fakeMarketplace) CreateListingSpec() txn.HookSpec {
	return txn.HookSpec{Label: "createListing", To: marketplace, Method: "createListing"}
}

func (f *fakeMarketplace) BuyFromListingSpec() txn.HookSpec {
	return txn.HookSpec{Label: "buyFromListing", To: marketplace, Method: "buyFromListing", GasLimit: listing.BuyGasLimit}
}

func (f *fakeMarketplace) CancelListingSpec() txn.HookSpec {
	return txn.HookSpec{Label: "cancelListing", To: marketplace, Method: "cancelListing", GasLimit: listing.BuyGasLimit}
}

func newListing(id int64, creator, currency domain.Address, status listing.Status) listing.Listing {
	return listing.Listing{
		ListingId:      big.NewInt(id),
		TokenId:        big.NewInt(id + 100),
		Quantity:       big.NewInt(2),
		PricePerToken:  big.NewInt(1e17),
		ListingCreator: creator,
		AssetContract:  asset,
		Currency:       currency,
		Status:         status,
	}
}

type listingSuite struct {
	suite.Suite

	ctx         ctx.Ctx
	provider    *accountMocks.Provider
	approval    *approvalMocks.UseCase
	txn         *txnMocks.UseCase
	hook        *txnMocks.Hook
	marketplace *fakeMarketplace
	uc          *impl
}

func TestListingSuite(t *testing.T) {
	suite.Run(t, new(listingSuite))
}

func (s *listingSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.provider = accountMocks.NewProvider(s.T())
	s.provider.On("Address").Return(me).Maybe()
	s.approval = approvalMocks.NewUseCase(s.T())
	s.txn = txnMocks.NewUseCase(s.T())
	s.hook = txnMocks.NewHook(s.T())
	s.marketplace = &fakeMarketplace{
		total: big.NewInt(4),
		listings: map[int64]listing.Listing{
			0: newListing(0, me, domain.EmptyAddress, listing.StatusCreated),
			1: newListing(1, seller, domain.EmptyAddress, listing.StatusCreated),
			2: newListing(2, seller, domain.EmptyAddress, listing.StatusCompleted),
			3: newListing(3, seller, erc20, listing.StatusCreated),
		},
	}
	s.uc = New(&ListingUseCaseCfg{
		Provider:    s.provider,
		Marketplace: s.marketplace,
		Approval:    s.approval,
		Txn:         s.txn,
	}).(*impl)
	s.uc.now = func() time.Time { return time.Unix(1700000000, 0) }
}

func (s *listingSuite) TestList() {
	views, err := s.uc.List(s.ctx)
	s.NoError(err)
	s.Equal([][2]int64{{0, 3}}, s.marketplace.ranges)
	s.Len(views, 3)

	s.True(views[0].CanCancel)
	s.True(views[0].CanBuy)
	s.False(views[1].CanCancel)
	s.False(views[2].CanBuy)
	s.Equal("Only native token (HBAR) purchases are supported", views[2].BuyDisabledReason)
}

func (s *listingSuite) TestListEmpty() {
	s.marketplace.total = big.NewInt(0)
	views, err := s.uc.List(s.ctx)
	s.NoError(err)
	s.Empty(views)
	s.Empty(s.marketplace.ranges)
}

func (s *listingSuite) TestListReadFailure() {
	s.marketplace.err = errors.New("rpc down")
	_, err := s.uc.List(s.ctx)
	s.ErrorIs(err, domain.ErrReadFailed)
	s.Equal("Failed to load listings", domain.UserMessage(err))
}

func (s *listingSuite) TestMine() {
	views, err := s.uc.Mine(s.ctx)
	s.NoError(err)
	s.Len(views, 1)
	s.Equal(int64(0), views[0].ListingId.Int64())
}

func (s *listingSuite) TestGetNotFound() {
	_, err := s.uc.Get(s.ctx, big.NewInt(42))
	s.ErrorIs(err, domain.ErrNotFound)
	s.Equal("Listing not found", domain.UserMessage(err))
}

func (s *listingSuite) TestCreateValidation() {
	tests := []struct {
		name string
		p    listing.CreateParams
		err  error
	}{
		{"missing asset", listing.CreateParams{TokenId: "1", Price: "1"}, domain.ErrMissingFields},
		{"missing price", listing.CreateParams{AssetContract: asset, TokenId: "1"}, domain.ErrMissingFields},
		{"bad token id", listing.CreateParams{AssetContract: asset, TokenId: "-1", Price: "1"}, domain.ErrInvalidNumberFormat},
		{"bad price", listing.CreateParams{AssetContract: asset, TokenId: "1", Price: "abc"}, domain.ErrInvalidNumberFormat},
		{"zero price", listing.CreateParams{AssetContract: asset, TokenId: "1", Price: "0"}, domain.ErrBadParamInput},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.uc.Create(s.ctx, tt.p)
			s.ErrorIs(err, tt.err)
		})
	}
}

func (s *listingSuite) TestCreateBlockedWithoutApproval() {
	s.approval.On("Check", s.ctx, asset).Return(&approval.Gate{State: approval.StateNotApproved}, nil).Once()

	_, err := s.uc.Create(s.ctx, listing.CreateParams{AssetContract: asset, TokenId: "7", Price: "1.5"})
	s.ErrorIs(err, domain.ErrNotApproved)
}

func (s *listingSuite) TestCreateWithAutoApprove() {
	approvalTx := &txn.Outcome{Hash: "0xa1", Status: txn.StatusConfirmed}
	listingTx := &txn.Outcome{Hash: "0xb2", Status: txn.StatusConfirmed}
	s.approval.On("Check", s.ctx, asset).Return(&approval.Gate{State: approval.StateNotApproved}, nil).Once()
	s.approval.On("Approve", s.ctx, asset).Return(&approval.Result{
		Gate:    &approval.Gate{State: approval.StateApproved},
		Outcome: approvalTx,
	}, nil).Once()

	s.txn.On("Hook", mock.MatchedBy(func(spec txn.HookSpec) bool {
		return spec.Method == "createListing" && spec.Wait
	})).Return(s.hook).Once()
	s.hook.On("Send", s.ctx, (*big.Int)(nil), mock.MatchedBy(func(p baseabi.MarketplaceListingParameters) bool {
		price, _ := new(big.Int).SetString("1500000000000000000", 10)
		return p.AssetContract == asset.ToCommon() &&
			p.TokenId.Int64() == 7 &&
			p.Quantity.Int64() == 1 &&
			p.PricePerToken.Cmp(price) == 0 &&
			p.Currency == domain.EmptyAddress.ToCommon() &&
			p.StartTimestamp.Int64() == 1700000000 &&
			p.EndTimestamp.Int64() == 1700000000+2592000
	})).Return(listingTx, nil).Once()

	res, err := s.uc.Create(s.ctx, listing.CreateParams{
		AssetContract: asset,
		TokenId:       "7",
		Price:         "1.5",
		AutoApprove:   true,
		Wait:          true,
	})
	s.NoError(err)
	s.Equal(approvalTx, res.Approval)
	s.Equal(listingTx, res.Listing)
}

func (s *listingSuite) TestCreateApprovalRejected() {
	rejected := domain.NewUserError(domain.ErrUserRejected, "Transaction was rejected by user", nil)
	s.approval.On("Check", s.ctx, asset).Return(&approval.Gate{State: approval.StateNotApproved}, nil).Once()
	s.approval.On("Approve", s.ctx, asset).Return(&approval.Result{
		Gate: &approval.Gate{State: approval.StateNotApproved},
	}, rejected).Once()

	res, err := s.uc.Create(s.ctx, listing.CreateParams{AssetContract: asset, TokenId: "7", Price: "1", AutoApprove: true})
	s.ErrorIs(err, domain.ErrUserRejected)
	s.Nil(res.Listing)
}

func (s *listingSuite) TestBuy() {
	o := &txn.Outcome{Hash: "0xc3", Status: txn.StatusPending}
	total := big.NewInt(2e17)
	s.txn.On("Hook", mock.MatchedBy(func(spec txn.HookSpec) bool {
		return spec.Method == "buyFromListing" && spec.GasLimit == listing.BuyGasLimit
	})).Return(s.hook).Once()
	s.hook.On("Send", s.ctx, total, big.NewInt(1), me.ToCommon(), big.NewInt(2), domain.EmptyAddress.ToCommon(), total).Return(o, nil).Once()

	res, err := s.uc.Buy(s.ctx, listing.BuyParams{ListingId: big.NewInt(1), Quantity: big.NewInt(2)})
	s.NoError(err)
	s.Equal(o, res)
}

func (s *listingSuite) TestBuyRejected() {
	tests := []struct {
		name string
		p    listing.BuyParams
		err  error
	}{
		{"inactive", listing.BuyParams{ListingId: big.NewInt(2)}, domain.ErrListingInactive},
		{"erc20", listing.BuyParams{ListingId: big.NewInt(3)}, domain.ErrUnsupportedCurrency},
		{"too many", listing.BuyParams{ListingId: big.NewInt(1), Quantity: big.NewInt(3)}, domain.ErrBadParamInput},
		{"zero quantity", listing.BuyParams{ListingId: big.NewInt(1), Quantity: big.NewInt(0)}, domain.ErrBadParamInput},
		{"unknown", listing.BuyParams{ListingId: big.NewInt(9)}, domain.ErrNotFound},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.uc.Buy(s.ctx, tt.p)
			s.ErrorIs(err, tt.err)
		})
	}
}

func (s *listingSuite) TestCancel() {
	o := &txn.Outcome{Hash: "0xd4", Status: txn.StatusConfirmed}
	s.txn.On("Hook", mock.MatchedBy(func(spec txn.HookSpec) bool {
		return spec.Method == "cancelListing" && spec.Wait
	})).Return(s.hook).Once()
	s.hook.On("Send", s.ctx, (*big.Int)(nil), big.NewInt(0)).Return(o, nil).Once()

	res, err := s.uc.Cancel(s.ctx, big.NewInt(0), true)
	s.NoError(err)
	s.Equal(o, res)
}

func (s *listingSuite) TestCancelRejected() {
	_, err := s.uc.Cancel(s.ctx, big.NewInt(1), true)
	s.ErrorIs(err, domain.ErrNotListingCreator)

	_, err = s.uc.Cancel(s.ctx, big.NewInt(2), true)
	s.ErrorIs(err, domain.ErrListingInactive)
}
