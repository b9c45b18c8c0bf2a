// Package validator registers the address and integer tags request bodies use
// with go-playground/validator and plugs it into echo.
package validator

import (
	"math/big"
	"regexp"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const (
	// TagEvmAddress accepts a 0x prefixed 20 byte hex address in any case.
	TagEvmAddress = "evmaddr"
	// TagTxHash accepts a 0x prefixed 32 byte hex hash.
	TagTxHash = "txhash"
	// TagUintString accepts a non-negative base 10 integer of any size, e.g. a token id.
	TagUintString = "uintstr"
)

var txHashRe = regexp.MustCompile("^0x[0-9a-fA-F]{64}$")

// IsValidAddress reports whether address is 0x followed by 40 hex digits.
// Mixed case input is not checksum verified.
func IsValidAddress(address string) bool {
	return common.IsHexAddress(address) && len(address) == 2+2*common.AddressLength && address[:2] == "0x"
}

func IsValidTxHash(hash string) bool {
	return txHashRe.MatchString(hash)
}

func IsValidUintString(s string) bool {
	n, ok := new(big.Int).SetString(s, 10)
	return ok && n.Sign() >= 0
}

type echoValidator struct {
	v *validator.Validate
}

// NewCustomValidator registers the tags above on v.
func NewCustomValidator(v *validator.Validate) echo.Validator {
	for tag, fn := range map[string]func(string) bool{
		TagEvmAddress: IsValidAddress,
		TagTxHash:     IsValidTxHash,
		TagUintString: IsValidUintString,
	} {
		fn := fn
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		})
	}
	return &echoValidator{v}
}

func (ev *echoValidator) Validate(i interface{}) error {
	return ev.v.Struct(i)
}
