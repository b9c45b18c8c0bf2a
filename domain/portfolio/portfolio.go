package portfolio

import (
	"fmt"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/domain"
)

// DefaultMaxTokenId bounds the probed id range [0, N).
const DefaultMaxTokenId = 20

const noDescription = "No description available"

type OwnedToken struct {
	TokenId         domain.TokenId      `json:"tokenId"`
	ContractAddress domain.Address      `json:"contractAddress"`
	Owner           domain.Address      `json:"owner"`
	Uri             string              `json:"uri,omitempty"`
	Metadata        *domain.NftMetadata `json:"metadata,omitempty"`
	ImageUrl        string              `json:"imageUrl,omitempty"`
	// Balance is set for ERC-1155 tokens only.
	Balance string `json:"balance,omitempty"`
}

func (t *OwnedToken) DisplayName() string {
	if t.Metadata != nil && len(t.Metadata.Name) > 0 {
		return t.Metadata.Name
	}
	return fmt.Sprintf("NFT #%s", t.TokenId)
}

func (t *OwnedToken) DisplayDescription() string {
	if t.Metadata != nil && len(t.Metadata.Description) > 0 {
		return t.Metadata.Description
	}
	return noDescription
}

type UseCase interface {
	// Scan probes ids [0, N) of one contract. A failing ownerOf means not owned.
	Scan(c ctx.Ctx, owner, contract domain.Address) ([]OwnedToken, error)
	// ScanAll scans every configured contract, results in configured order.
	ScanAll(c ctx.Ctx, owner domain.Address) ([]OwnedToken, error)
}
