package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/x-xyz/hbarmarket/base/abi"
	bCtx "github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/txn"
	"github.com/x-xyz/hbarmarket/service/chain"
)

// Nft reads ERC-721 contracts. Approval methods are shared with ERC-1155.
type Nft struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewNft(chainService chain.Client) *Nft {
	return &Nft{
		chainService: chainService,
		abi:          baseabi.NftABI,
	}
}

func (e *Nft) call(ctx bCtx.Ctx, addr domain.Address, method string, params ...interface{}) ([]interface{}, error) {
	return e.chainService.Call(ctx, addr.ToCommon(), e.abi, method, params...)
}

func (e *Nft) OwnerOf(ctx bCtx.Ctx, addr domain.Address, tokenId *big.Int) (domain.Address, error) {
	unpacked, err := e.call(ctx, addr, "ownerOf", tokenId)
	if err != nil {
		return "", err
	}
	return domain.NewAddress(unpacked[0].(common.Address)), nil
}

func (e *Nft) TokenURI(ctx bCtx.Ctx, addr domain.Address, tokenId *big.Int) (string, error) {
	unpacked, err := e.call(ctx, addr, "tokenURI", tokenId)
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}

func (e *Nft) Owner(ctx bCtx.Ctx, addr domain.Address) (domain.Address, error) {
	unpacked, err := e.call(ctx, addr, "owner")
	if err != nil {
		return "", err
	}
	return domain.NewAddress(unpacked[0].(common.Address)), nil
}

func (e *Nft) IsApprovedForAll(ctx bCtx.Ctx, addr, owner, operator domain.Address) (bool, error) {
	unpacked, err := e.call(ctx, addr, "isApprovedForAll", owner.ToCommon(), operator.ToCommon())
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (e *Nft) SupportsInterface(ctx bCtx.Ctx, addr domain.Address, interfaceId [4]byte) (bool, error) {
	unpacked, err := e.call(ctx, addr, "supportsInterface", interfaceId)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

// TokenType detects the token standard through ERC-165, 0 when neither.
func (e *Nft) TokenType(ctx bCtx.Ctx, addr domain.Address) (domain.TokenType, error) {
	is721, err := e.SupportsInterface(ctx, addr, baseabi.InterfaceIdErc721)
	if err != nil {
		return 0, err
	}
	if is721 {
		return domain.TokenType721, nil
	}
	is1155, err := e.SupportsInterface(ctx, addr, baseabi.InterfaceIdErc1155)
	if err != nil {
		return 0, err
	}
	if is1155 {
		return domain.TokenType1155, nil
	}
	return 0, nil
}

func (e *Nft) MintSpec(addr domain.Address) txn.HookSpec {
	ev := e.abi.Events["Transfer"]
	return txn.HookSpec{
		Label:  "mint",
		To:     addr,
		ABI:    &e.abi,
		Method: "mint",
		Event:  &ev,
		Wait:   true,
	}
}

func (e *Nft) SetApprovalForAllSpec(addr domain.Address) txn.HookSpec {
	ev := e.abi.Events["ApprovalForAll"]
	return txn.HookSpec{
		Label:  "setApprovalForAll",
		To:     addr,
		ABI:    &e.abi,
		Method: "setApprovalForAll",
		Event:  &ev,
		Wait:   true,
	}
}
