package usecase

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/x-xyz/hbarmarket/base/abi"
	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/account"
	"github.com/x-xyz/hbarmarket/domain/collection"
	"github.com/x-xyz/hbarmarket/domain/txn"
)

type CodeReader interface {
	CodeAt(c ctx.Ctx, addr common.Address) ([]byte, error)
}

type NftContract interface {
	Owner(c ctx.Ctx, addr domain.Address) (domain.Address, error)
	TokenType(c ctx.Ctx, addr domain.Address) (domain.TokenType, error)
	MintSpec(addr domain.Address) txn.HookSpec
}

type FactoryContract interface {
	Address() domain.Address
	DeployNftSpec() txn.HookSpec
}

type CollectionUseCaseCfg struct {
	Provider account.Provider
	Txn      txn.UseCase
	Code     CodeReader
	Nft      NftContract
	Factory  FactoryContract
	// artifacts are optional, their deploy operations fail without them
	FactoryArtifact   *baseabi.Artifact
	GameItemsArtifact *baseabi.Artifact
}

type impl struct {
	provider          account.Provider
	txn               txn.UseCase
	code              CodeReader
	nft               NftContract
	factory           FactoryContract
	factoryArtifact   *baseabi.Artifact
	gameItemsArtifact *baseabi.Artifact
}

func NewCollection(cfg *CollectionUseCaseCfg) collection.UseCase {
	return &impl{
		provider:          cfg.Provider,
		txn:               cfg.Txn,
		code:              cfg.Code,
		nft:               cfg.Nft,
		factory:           cfg.Factory,
		factoryArtifact:   cfg.FactoryArtifact,
		gameItemsArtifact: cfg.GameItemsArtifact,
	}
}

func (im *impl) DeployFactory(c ctx.Ctx) (*collection.DeployResult, error) {
	return im.deployArtifact(c, "factory", collection.FactorySignMessage, im.factoryArtifact)
}

func (im *impl) DeployGameItems(c ctx.Ctx) (*collection.DeployResult, error) {
	return im.deployArtifact(c, "gameItems", collection.GameItemsSignMessage, im.gameItemsArtifact)
}

// deployArtifact signs msg first and only deploys once the signature is given.
func (im *impl) deployArtifact(c ctx.Ctx, label, msg string, art *baseabi.Artifact) (*collection.DeployResult, error) {
	if art == nil {
		return nil, domain.NewUserError(domain.ErrMissingConfig, "Contract artifact for "+label+" is not configured", nil)
	}

	sig, err := im.provider.SignMessage(c, msg)
	if err != nil {
		c.WithFields(log.Fields{
			"label": label,
			"err":   err,
		}).Warn("provider.SignMessage failed")
		return nil, err
	}

	o, err := im.txn.Deploy(c, txn.Deploy{
		Label:    label,
		ABI:      &art.ABI,
		Bytecode: art.Bytecode,
	})
	res := &collection.DeployResult{Signature: sig, Outcome: o}
	if o != nil {
		res.ContractAddress = o.ContractAddress
	}
	if err != nil {
		c.WithFields(log.Fields{
			"label": label,
			"err":   err,
		}).Warn("txn.Deploy failed")
		return res, err
	}
	return res, nil
}

func (im *impl) DeployNft(c ctx.Ctx, p collection.NftParams) (*collection.DeployResult, error) {
	if len(p.Name) == 0 || len(p.Symbol) == 0 || len(p.BaseUri) == 0 {
		return nil, domain.NewUserError(domain.ErrMissingFields, "Please fill in all fields", nil)
	}
	if im.factory == nil || im.factory.Address().IsEmpty() {
		return nil, domain.NewUserError(domain.ErrMissingConfig, "Factory contract address is not configured", nil)
	}

	o, err := im.txn.Hook(im.factory.DeployNftSpec()).Send(c, nil, p.Name, p.Symbol, p.BaseUri)
	res := &collection.DeployResult{Outcome: o}
	if errors.Is(err, domain.ErrEventNotFound) {
		return res, domain.NewUserError(domain.ErrEventNotFound, "Contract deployed but unable to find contract address", err)
	}
	if err != nil {
		c.WithFields(log.Fields{
			"name": p.Name,
			"err":  err,
		}).Warn("deployNFT failed")
		return res, err
	}

	addr, ok := o.Event["nftContract"].(common.Address)
	if !ok {
		return res, domain.NewUserError(domain.ErrEventNotFound, "Contract deployed but unable to find contract address", nil)
	}
	res.ContractAddress = domain.NewAddress(addr)
	return res, nil
}

func (im *impl) Connect(c ctx.Ctx, address string) (*collection.Contract, error) {
	address = strings.TrimSpace(address)
	if len(address) == 0 {
		return nil, domain.NewUserError(domain.ErrMissingFields, "Please enter a contract address", nil)
	}
	if !strings.HasPrefix(address, "0x") {
		return nil, domain.NewUserError(domain.ErrInvalidAddress, "Address must start with 0x", nil)
	}
	if !common.IsHexAddress(address) {
		return nil, domain.NewUserError(domain.ErrInvalidAddress, "Invalid address", nil)
	}

	addr := domain.NewAddress(common.HexToAddress(address))
	code, err := im.code.CodeAt(c, addr.ToCommon())
	if err != nil {
		c.WithFields(log.Fields{
			"address": addr,
			"err":     err,
		}).Error("CodeAt failed")
		return nil, domain.NewUserError(domain.ErrReadFailed, "Failed to read contract", err)
	}
	if len(code) == 0 {
		return nil, domain.NewUserError(domain.ErrContractNotFound, "No contract found at this address", nil)
	}

	res := &collection.Contract{Address: addr}
	if owner, err := im.nft.Owner(c, addr); err != nil {
		c.WithFields(log.Fields{
			"address": addr,
			"err":     err,
		}).Info("contract is not ownable")
	} else {
		res.Owner = owner
	}
	if tokenType, err := im.nft.TokenType(c, addr); err != nil {
		c.WithFields(log.Fields{
			"address": addr,
			"err":     err,
		}).Info("contract does not support erc165")
	} else {
		res.TokenType = tokenType
	}
	return res, nil
}

func (im *impl) Mint(c ctx.Ctx, contract domain.Address) (*collection.MintResult, error) {
	if contract.IsEmpty() {
		return nil, domain.NewUserError(domain.ErrMissingFields, "Please enter a contract address", nil)
	}

	to := im.provider.Address()
	o, err := im.txn.Hook(im.nft.MintSpec(contract)).Send(c, nil, to.ToCommon())
	res := &collection.MintResult{Outcome: o}
	if err != nil && !errors.Is(err, domain.ErrEventNotFound) {
		c.WithFields(log.Fields{
			"contract": contract,
			"err":      err,
		}).Warn("mint failed")
		return res, err
	}

	if o != nil {
		if id, ok := o.Event["tokenId"].(*big.Int); ok {
			res.TokenId = id.String()
		}
	}
	res.Message = collection.MintSuccessMessage
	return res, nil
}
