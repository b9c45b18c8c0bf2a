package contract

import (
	"math/big"
	"strings"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	baseabi "github.com/x-xyz/hbarmarket/base/abi"
	bCtx "github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/service/chain"
)

type Erc1155 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc1155(chainService chain.Client) *Erc1155 {
	return &Erc1155{
		chainService: chainService,
		abi:          baseabi.GameItemsABI,
	}
}

func (e *Erc1155) BalanceOf(ctx bCtx.Ctx, addr, owner domain.Address, id *big.Int) (*big.Int, error) {
	unpacked, err := e.chainService.Call(ctx, addr.ToCommon(), e.abi, "balanceOf", owner.ToCommon(), id)
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

// Uri returns the token uri with the {id} placeholder substituted.
func (e *Erc1155) Uri(ctx bCtx.Ctx, addr domain.Address, id *big.Int) (string, error) {
	unpacked, err := e.chainService.Call(ctx, addr.ToCommon(), e.abi, "uri", id)
	if err != nil {
		return "", err
	}
	return SubstituteId(unpacked[0].(string), id), nil
}

// SubstituteId replaces {id} with the 64 char lower case hex id.
func SubstituteId(uri string, id *big.Int) string {
	hexId := id.Text(16)
	if len(hexId) < 64 {
		hexId = strings.Repeat("0", 64-len(hexId)) + hexId
	}
	return strings.ReplaceAll(uri, "{id}", hexId)
}
