package listing

import (
	"github.com/x-xyz/hbarmarket/base/units"
	"github.com/x-xyz/hbarmarket/domain"
)

const (
	reasonInactive    = "Listing is not active"
	reasonUnsupported = "Only native token (HBAR) purchases are supported"
)

// View is a listing as seen by one connected account.
type View struct {
	Listing
	Active            bool   `json:"active"`
	IsNativeCurrency  bool   `json:"isNative"`
	Price             string `json:"price"`
	CanBuy            bool   `json:"canBuy"`
	BuyDisabledReason string `json:"buyDisabledReason,omitempty"`
	CanCancel         bool   `json:"canCancel"`
}

func NewView(l Listing, connected domain.Address) View {
	v := View{
		Listing:          l,
		Active:           l.IsActive(),
		IsNativeCurrency: l.IsNative(),
		Price:            units.FormatNative(l.PricePerToken),
	}
	switch {
	case !v.Active:
		v.BuyDisabledReason = reasonInactive
	case !v.IsNativeCurrency:
		v.BuyDisabledReason = reasonUnsupported
	default:
		v.CanBuy = true
	}
	v.CanCancel = v.Active && l.IsCreator(connected)
	return v
}

func NewViews(ls []Listing, connected domain.Address) []View {
	res := make([]View, 0, len(ls))
	for _, l := range ls {
		res = append(res, NewView(l, connected))
	}
	return res
}
