package listing

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x-xyz/hbarmarket/domain"
)

const (
	creator = domain.Address("0xAbCdEf0000000000000000000000000000000001")
	other   = domain.Address("0x2222222222222222222222222222222222222222")
	erc20   = domain.Address("0x3333333333333333333333333333333333333333")
)

func newListing(status Status, currency domain.Address) Listing {
	return Listing{
		ListingId:      big.NewInt(1),
		TokenId:        big.NewInt(3),
		Quantity:       big.NewInt(1),
		PricePerToken:  new(big.Int).Mul(big.NewInt(15), big.NewInt(1e17)),
		ListingCreator: creator,
		Currency:       currency,
		Status:         status,
	}
}

func TestNewView(t *testing.T) {
	tests := []struct {
		name      string
		listing   Listing
		connected domain.Address
		canBuy    bool
		canCancel bool
		reason    string
	}{
		{"active native creator", newListing(StatusCreated, domain.EmptyAddress), creator, true, true, ""},
		{"active native other", newListing(StatusCreated, domain.EmptyAddress), other, true, false, ""},
		{"creator upper case", newListing(StatusCreated, domain.EmptyAddress), domain.Address("0xabcdef0000000000000000000000000000000001"), true, true, ""},
		{"not connected", newListing(StatusCreated, domain.EmptyAddress), "", true, false, ""},
		{"erc20 currency", newListing(StatusCreated, erc20), creator, false, true, reasonUnsupported},
		{"completed", newListing(StatusCompleted, domain.EmptyAddress), creator, false, false, reasonInactive},
		{"cancelled", newListing(StatusCancelled, domain.EmptyAddress), creator, false, false, reasonInactive},
		{"unset", newListing(StatusUnset, domain.EmptyAddress), creator, false, false, reasonInactive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewView(tt.listing, tt.connected)
			assert.Equal(t, tt.canBuy, v.CanBuy)
			assert.Equal(t, tt.canCancel, v.CanCancel)
			assert.Equal(t, tt.reason, v.BuyDisabledReason)
			assert.Equal(t, "1.5", v.Price)
		})
	}
}

func TestTotalPrice(t *testing.T) {
	req := require.New(t)

	// 0.1 HBAR does not survive float64 multiplication exactly
	p := big.NewInt(1e17)
	total, err := TotalPrice(p, big.NewInt(3), big.NewInt(5))
	req.NoError(err)
	req.Equal("300000000000000000", total.String())

	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	total, err = TotalPrice(huge, big.NewInt(7), big.NewInt(7))
	req.NoError(err)
	req.Equal("864197523086419752308641975230", total.String())

	_, err = TotalPrice(p, big.NewInt(0), big.NewInt(5))
	req.ErrorIs(err, domain.ErrBadParamInput)
	_, err = TotalPrice(p, big.NewInt(6), big.NewInt(5))
	req.ErrorIs(err, domain.ErrBadParamInput)
	_, err = TotalPrice(nil, big.NewInt(1), big.NewInt(1))
	req.ErrorIs(err, domain.ErrBadParamInput)
}

func TestStatusText(t *testing.T) {
	b, err := StatusCreated.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "active", string(b))
	require.Equal(t, "cancelled", StatusCancelled.String())
}
