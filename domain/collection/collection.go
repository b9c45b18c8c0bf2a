package collection

import (
	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/txn"
)

const (
	FactorySignMessage   = "Deploy NFT Factory contract"
	GameItemsSignMessage = "Deploy GameItems contract"
	MintSuccessMessage   = "NFT minted successfully!"
)

type DeployResult struct {
	Signature       string         `json:"signature,omitempty"`
	ContractAddress domain.Address `json:"contractAddress,omitempty"`
	Outcome         *txn.Outcome   `json:"outcome"`
}

type NftParams struct {
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
	BaseUri string `json:"baseUri"`
}

type Contract struct {
	Address   domain.Address   `json:"address"`
	Owner     domain.Address   `json:"owner,omitempty"`
	TokenType domain.TokenType `json:"tokenType,omitempty"`
}

type MintResult struct {
	Outcome *txn.Outcome `json:"outcome"`
	TokenId string       `json:"tokenId,omitempty"`
	Message string       `json:"message,omitempty"`
}

type UseCase interface {
	// DeployFactory signs the deploy message then deploys the factory artifact.
	DeployFactory(ctx.Ctx) (*DeployResult, error)
	// DeployGameItems signs the deploy message then deploys the ERC-1155 artifact.
	DeployGameItems(ctx.Ctx) (*DeployResult, error)
	// DeployNft calls deployNFT on the factory and reads the address from its event.
	DeployNft(ctx.Ctx, NftParams) (*DeployResult, error)
	// Connect validates an existing contract address and reads its owner.
	Connect(c ctx.Ctx, address string) (*Contract, error)
	// Mint mints one token of contract to the connected account.
	Mint(c ctx.Ctx, contract domain.Address) (*MintResult, error)
}
