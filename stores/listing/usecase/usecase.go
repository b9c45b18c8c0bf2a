package usecase

import (
	"math/big"
	"time"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/base/units"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/account"
	"github.com/x-xyz/hbarmarket/domain/approval"
	"github.com/x-xyz/hbarmarket/domain/listing"
	"github.com/x-xyz/hbarmarket/domain/txn"
	"github.com/x-xyz/hbarmarket/service/chain/contract"
)

// MarketplaceContract is the read side and the bound write methods of the
// marketplace.
type MarketplaceContract interface {
	Address() domain.Address
	TotalListings(ctx.Ctx) (*big.Int, error)
	GetAllValidListings(c ctx.Ctx, start, end *big.Int) ([]listing.Listing, error)
	GetListing(ctx.Ctx, *big.Int) (*listing.Listing, error)
	CreateListingSpec() txn.HookSpec
	BuyFromListingSpec() txn.HookSpec
	CancelListingSpec() txn.HookSpec
}

type ListingUseCaseCfg struct {
	Provider    account.Provider
	Marketplace MarketplaceContract
	Approval    approval.UseCase
	Txn         txn.UseCase
}

type impl struct {
	provider    account.Provider
	marketplace MarketplaceContract
	approval    approval.UseCase
	txn         txn.UseCase
	now         func() time.Time
}

func New(cfg *ListingUseCaseCfg) listing.UseCase {
	return &impl{
		provider:    cfg.Provider,
		marketplace: cfg.Marketplace,
		approval:    cfg.Approval,
		txn:         cfg.Txn,
		now:         time.Now,
	}
}

func (u *impl) List(c ctx.Ctx) ([]listing.View, error) {
	ls, err := u.validListings(c)
	if err != nil {
		return nil, err
	}
	return listing.NewViews(ls, u.provider.Address()), nil
}

func (u *impl) Mine(c ctx.Ctx) ([]listing.View, error) {
	ls, err := u.validListings(c)
	if err != nil {
		return nil, err
	}
	me := u.provider.Address()
	mine := make([]listing.Listing, 0, len(ls))
	for _, l := range ls {
		if l.IsCreator(me) {
			mine = append(mine, l)
		}
	}
	return listing.NewViews(mine, me), nil
}

func (u *impl) validListings(c ctx.Ctx) ([]listing.Listing, error) {
	total, err := u.marketplace.TotalListings(c)
	if err != nil {
		c.WithField("err", err).Error("marketplace.TotalListings failed")
		return nil, domain.NewUserError(domain.ErrReadFailed, "Failed to load listings", err)
	}
	if total.Sign() <= 0 {
		return []listing.Listing{}, nil
	}

	end := new(big.Int).Sub(total, big.NewInt(1))
	ls, err := u.marketplace.GetAllValidListings(c, big.NewInt(0), end)
	if err != nil {
		c.WithFields(log.Fields{
			"total": total,
			"err":   err,
		}).Error("marketplace.GetAllValidListings failed")
		return nil, domain.NewUserError(domain.ErrReadFailed, "Failed to load listings", err)
	}
	return ls, nil
}

func (u *impl) Get(c ctx.Ctx, listingId *big.Int) (*listing.View, error) {
	if listingId == nil || listingId.Sign() < 0 {
		return nil, domain.ErrBadParamInput
	}
	l, err := u.marketplace.GetListing(c, listingId)
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": listingId,
			"err":       err,
		}).Warn("marketplace.GetListing failed")
		return nil, domain.NewUserError(domain.ErrNotFound, "Listing not found", err)
	}
	// unknown ids read back as a zeroed record
	if l.ListingCreator.IsEmpty() || l.ListingCreator.IsZero() {
		return nil, domain.NewUserError(domain.ErrNotFound, "Listing not found", nil)
	}
	v := listing.NewView(*l, u.provider.Address())
	return &v, nil
}

func (u *impl) Create(c ctx.Ctx, p listing.CreateParams) (*listing.CreateResult, error) {
	if p.AssetContract.IsEmpty() || len(p.TokenId) == 0 || len(p.Price) == 0 {
		return nil, domain.NewUserError(domain.ErrMissingFields, "Please fill in all fields", nil)
	}
	tokenId, err := domain.TokenId(p.TokenId).ToBigInt()
	if err != nil {
		return nil, domain.NewUserError(domain.ErrInvalidNumberFormat, "Token ID must be a non-negative integer", err)
	}
	price, err := units.ParseNative(p.Price)
	if err != nil {
		return nil, domain.NewUserError(domain.ErrInvalidNumberFormat, "Invalid price: "+err.Error(), err)
	}
	if price.Sign() == 0 {
		return nil, domain.NewUserError(domain.ErrBadParamInput, "Price must be greater than 0", nil)
	}

	res := &listing.CreateResult{}
	gate, err := u.approval.Check(c, p.AssetContract)
	if err != nil {
		return nil, err
	}
	if !gate.CanList() {
		if !p.AutoApprove {
			return nil, domain.NewUserError(domain.ErrNotApproved, "Please approve the marketplace to transfer your NFT first", nil)
		}
		// approval and listing are two independent transactions
		ar, err := u.approval.Approve(c, p.AssetContract)
		if ar != nil {
			res.Approval = ar.Outcome
		}
		if err != nil {
			return res, err
		}
		if !ar.Gate.CanList() {
			return res, domain.ErrNotApproved
		}
	}

	params := contract.NewListingParameters(p.AssetContract, tokenId, price, u.now().Unix())
	spec := u.marketplace.CreateListingSpec()
	spec.Wait = p.Wait
	o, err := u.txn.Hook(spec).Send(c, nil, params)
	res.Listing = o
	if err != nil {
		c.WithFields(log.Fields{
			"asset":   p.AssetContract,
			"tokenId": tokenId,
			"err":     err,
		}).Warn("createListing failed")
		return res, err
	}
	return res, nil
}

func (u *impl) Buy(c ctx.Ctx, p listing.BuyParams) (*txn.Outcome, error) {
	v, err := u.Get(c, p.ListingId)
	if err != nil {
		return nil, err
	}
	if !v.Active {
		return nil, domain.NewUserError(domain.ErrListingInactive, "Listing is not active", nil)
	}
	if !v.IsNativeCurrency {
		return nil, domain.NewUserError(domain.ErrUnsupportedCurrency, "Only native token (HBAR) purchases are supported", nil)
	}

	quantity := p.Quantity
	if quantity == nil {
		quantity = big.NewInt(1)
	}
	total, err := listing.TotalPrice(v.PricePerToken, quantity, v.Quantity)
	if err != nil {
		return nil, err
	}

	buyer := u.provider.Address()
	spec := u.marketplace.BuyFromListingSpec()
	spec.Wait = p.Wait
	o, err := u.txn.Hook(spec).Send(c, total, v.ListingId, buyer.ToCommon(), quantity, v.Currency.ToCommon(), total)
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": v.ListingId,
			"total":     total,
			"err":       err,
		}).Warn("buyFromListing failed")
		return o, err
	}
	return o, nil
}

func (u *impl) Cancel(c ctx.Ctx, listingId *big.Int, wait bool) (*txn.Outcome, error) {
	v, err := u.Get(c, listingId)
	if err != nil {
		return nil, err
	}
	if !v.Active {
		return nil, domain.NewUserError(domain.ErrListingInactive, "Listing is not active", nil)
	}
	if !v.CanCancel {
		return nil, domain.NewUserError(domain.ErrNotListingCreator, "Only the listing creator can cancel this listing", nil)
	}

	spec := u.marketplace.CancelListingSpec()
	spec.Wait = wait
	o, err := u.txn.Hook(spec).Send(c, nil, v.ListingId)
	if err != nil {
		c.WithFields(log.Fields{
			"listingId": v.ListingId,
			"err":       err,
		}).Warn("cancelListing failed")
		return o, err
	}
	return o, nil
}
