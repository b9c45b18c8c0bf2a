package units

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNative(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  error
	}{
		{"1", "1000000000000000000", nil},
		{"1.5", "1500000000000000000", nil},
		{" 0.1 ", "100000000000000000", nil},
		{"0.000000000000000001", "1", nil},
		{"0", "0", nil},
		{"0.0000000000000000001", "", ErrTooManyDecimal},
		{"-1", "", ErrNegativeAmount},
		{"abc", "", ErrInvalidAmount},
		{"", "", ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNative(tt.in)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got.String())
		})
	}
}

func TestFormatNative(t *testing.T) {
	req := require.New(t)
	req.Equal("1.5", FormatNative(big.NewInt(1500000000000000000)))
	req.Equal("0.000000000000000001", FormatNative(big.NewInt(1)))
	req.Equal("0", FormatNative(nil))
	req.Equal("2", FormatNative(new(big.Int).Mul(big.NewInt(2), big.NewInt(1e18))))
}
