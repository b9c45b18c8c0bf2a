package usecase

import (
	"math/big"

	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/portfolio"
)

// OwnershipContract reads ERC-721 ownership and token uris.
type OwnershipContract interface {
	OwnerOf(c ctx.Ctx, contract domain.Address, tokenId *big.Int) (domain.Address, error)
	TokenURI(c ctx.Ctx, contract domain.Address, tokenId *big.Int) (string, error)
}

// MultiTokenContract reads ERC-1155 balances and uris.
type MultiTokenContract interface {
	BalanceOf(c ctx.Ctx, contract, owner domain.Address, id *big.Int) (*big.Int, error)
	Uri(c ctx.Ctx, contract domain.Address, id *big.Int) (string, error)
}

type TokenTypeReader interface {
	TokenType(c ctx.Ctx, contract domain.Address) (domain.TokenType, error)
}

type PortfolioUseCaseCfg struct {
	Contract OwnershipContract
	// MultiToken and Types are optional, without them every contract is
	// scanned as ERC-721.
	MultiToken  MultiTokenContract
	Types       TokenTypeReader
	Metadata    domain.MetadataUseCase
	WebResource domain.WebResourceUseCase
	// Contracts are scanned by ScanAll in this order.
	Contracts []domain.Address
	// MaxTokenId is N of the probed range [0, N).
	MaxTokenId int
	// Concurrency bounds how many contracts ScanAll probes at once.
	Concurrency int
}

type impl struct {
	contract    OwnershipContract
	multiToken  MultiTokenContract
	types       TokenTypeReader
	metadata    domain.MetadataUseCase
	webResource domain.WebResourceUseCase
	contracts   []domain.Address
	maxTokenId  int
	concurrency int
}

func New(cfg *PortfolioUseCaseCfg) portfolio.UseCase {
	maxTokenId := cfg.MaxTokenId
	if maxTokenId <= 0 {
		maxTokenId = portfolio.DefaultMaxTokenId
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}
	return &impl{
		contract:    cfg.Contract,
		multiToken:  cfg.MultiToken,
		types:       cfg.Types,
		metadata:    cfg.Metadata,
		webResource: cfg.WebResource,
		contracts:   cfg.Contracts,
		maxTokenId:  maxTokenId,
		concurrency: concurrency,
	}
}

func (u *impl) Scan(c ctx.Ctx, owner, contract domain.Address) ([]portfolio.OwnedToken, error) {
	if owner.IsEmpty() || contract.IsEmpty() {
		return nil, domain.ErrBadParamInput
	}

	probe := u.probeErc721
	if u.isErc1155(c, contract) {
		probe = u.probeErc1155
	}

	res := []portfolio.OwnedToken{}
	for i := 0; i < u.maxTokenId; i++ {
		if err := c.Err(); err != nil {
			return nil, err
		}
		if t, ok := probe(c, owner, contract, big.NewInt(int64(i))); ok {
			res = append(res, t)
		}
	}
	return res, nil
}

func (u *impl) isErc1155(c ctx.Ctx, contract domain.Address) bool {
	if u.types == nil || u.multiToken == nil {
		return false
	}
	tt, err := u.types.TokenType(c, contract)
	if err != nil {
		c.WithFields(log.Fields{
			"contract": contract,
			"err":      err,
		}).Warn("types.TokenType failed")
		return false
	}
	return tt == domain.TokenType1155
}

func (u *impl) probeErc721(c ctx.Ctx, owner, contract domain.Address, tokenId *big.Int) (portfolio.OwnedToken, bool) {
	holder, err := u.contract.OwnerOf(c, contract, tokenId)
	if err != nil {
		// nonexistent ids revert, treated as not owned
		return portfolio.OwnedToken{}, false
	}
	if !holder.Equals(owner) {
		return portfolio.OwnedToken{}, false
	}
	t := u.newToken(owner, contract, tokenId)
	uri, err := u.contract.TokenURI(c, contract, tokenId)
	u.describe(c, &t, uri, err)
	return t, true
}

func (u *impl) probeErc1155(c ctx.Ctx, owner, contract domain.Address, tokenId *big.Int) (portfolio.OwnedToken, bool) {
	bal, err := u.multiToken.BalanceOf(c, contract, owner, tokenId)
	if err != nil || bal == nil || bal.Sign() <= 0 {
		return portfolio.OwnedToken{}, false
	}
	t := u.newToken(owner, contract, tokenId)
	t.Balance = bal.String()
	uri, err := u.multiToken.Uri(c, contract, tokenId)
	u.describe(c, &t, uri, err)
	return t, true
}

func (u *impl) newToken(owner, contract domain.Address, tokenId *big.Int) portfolio.OwnedToken {
	return portfolio.OwnedToken{
		TokenId:         domain.TokenId(tokenId.String()),
		ContractAddress: contract,
		Owner:           owner,
	}
}

// describe resolves metadata for t. Every failure leaves the placeholder
// fields empty.
func (u *impl) describe(c ctx.Ctx, t *portfolio.OwnedToken, uri string, uriErr error) {
	if uriErr != nil {
		c.WithFields(log.Fields{
			"contract": t.ContractAddress,
			"tokenId":  t.TokenId,
			"err":      uriErr,
		}).Warn("token uri read failed")
		return
	}
	t.Uri = uri
	if len(uri) == 0 {
		return
	}

	m, err := u.metadata.GetFromUrl(c, uri)
	if err != nil {
		c.WithFields(log.Fields{
			"uri": uri,
			"err": err,
		}).Warn("metadata.GetFromUrl failed")
		return
	}
	t.Metadata = m
	if len(m.Image) > 0 {
		t.ImageUrl = u.webResource.GatewayUrl(m.Image)
	}
}

type scanResult struct {
	idx    int
	tokens []portfolio.OwnedToken
}

func (u *impl) ScanAll(c ctx.Ctx, owner domain.Address) ([]portfolio.OwnedToken, error) {
	if owner.IsEmpty() {
		return nil, domain.ErrBadParamInput
	}
	if len(u.contracts) == 0 {
		return []portfolio.OwnedToken{}, nil
	}

	b := goroutines.NewBatch(u.concurrency, goroutines.WithBatchSize(len(u.contracts)))
	defer b.Close()
	for i := range u.contracts {
		idx := i
		b.Queue(func() (interface{}, error) {
			tokens, err := u.Scan(c, owner, u.contracts[idx])
			if err != nil {
				return nil, err
			}
			return scanResult{idx: idx, tokens: tokens}, nil
		})
	}
	b.QueueComplete()

	perContract := make([][]portfolio.OwnedToken, len(u.contracts))
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("portfolio scan failed")
			return nil, ret.Error()
		}
		r := ret.Value().(scanResult)
		perContract[r.idx] = r.tokens
	}

	res := []portfolio.OwnedToken{}
	for _, tokens := range perContract {
		res = append(res, tokens...)
	}
	c.WithFields(log.Fields{
		"owner":     owner,
		"contracts": len(u.contracts),
		"owned":     len(res),
	}).Info("portfolio scanned")
	return res, nil
}
