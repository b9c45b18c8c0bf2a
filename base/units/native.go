package units

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

// NativeDecimals is the base unit exponent of HBAR on the EVM relay.
const NativeDecimals = 18

var (
	ErrInvalidAmount  = xerrors.New("invalid amount")
	ErrTooManyDecimal = xerrors.New("amount has more than 18 decimal places")
	ErrNegativeAmount = xerrors.New("amount must not be negative")
)

// ParseNative converts a decimal HBAR string into base units without rounding.
func ParseNative(amount string) (*big.Int, error) {
	return Parse(amount, NativeDecimals)
}

// Parse converts a decimal string into an integer scaled by 10^decimals.
func Parse(amount string, decimals int32) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return nil, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", amount, ErrInvalidAmount)
	}
	if d.IsNegative() {
		return nil, ErrNegativeAmount
	}
	shifted := d.Shift(decimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, ErrTooManyDecimal
	}
	return shifted.BigInt(), nil
}

// FormatNative renders base units as a trimmed decimal HBAR string.
func FormatNative(v *big.Int) string {
	return Format(v, NativeDecimals)
}

func Format(v *big.Int, decimals int32) string {
	if v == nil {
		return "0"
	}
	return decimal.NewFromBigInt(v, -decimals).String()
}
