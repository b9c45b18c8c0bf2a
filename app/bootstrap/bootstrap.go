// Package bootstrap builds the one account context and every use case of a
// running instance from configuration.
package bootstrap

import (
	"net/http"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"

	baseabi "github.com/x-xyz/hbarmarket/base/abi"
	"github.com/x-xyz/hbarmarket/base/ctx"
	"github.com/x-xyz/hbarmarket/base/database/redisclient"
	"github.com/x-xyz/hbarmarket/base/goroutine"
	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/base/metrics"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/account"
	"github.com/x-xyz/hbarmarket/domain/approval"
	"github.com/x-xyz/hbarmarket/domain/collection"
	"github.com/x-xyz/hbarmarket/domain/healthcheck"
	"github.com/x-xyz/hbarmarket/domain/keys"
	"github.com/x-xyz/hbarmarket/domain/listing"
	"github.com/x-xyz/hbarmarket/domain/portfolio"
	"github.com/x-xyz/hbarmarket/domain/txn"
	accountService "github.com/x-xyz/hbarmarket/service/account"
	"github.com/x-xyz/hbarmarket/service/cache"
	"github.com/x-xyz/hbarmarket/service/cache/provider"
	"github.com/x-xyz/hbarmarket/service/cache/provider/layered"
	"github.com/x-xyz/hbarmarket/service/cache/provider/local"
	cacheRedis "github.com/x-xyz/hbarmarket/service/cache/provider/redis"
	"github.com/x-xyz/hbarmarket/service/chain"
	"github.com/x-xyz/hbarmarket/service/chain/contract"
	"github.com/x-xyz/hbarmarket/service/redis"
	account_usecase "github.com/x-xyz/hbarmarket/stores/account/usecase"
	approval_usecase "github.com/x-xyz/hbarmarket/stores/approval/usecase"
	auth_usecase "github.com/x-xyz/hbarmarket/stores/auth/usecase"
	collection_usecase "github.com/x-xyz/hbarmarket/stores/collection/usecase"
	hc_repo "github.com/x-xyz/hbarmarket/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/hbarmarket/stores/healthcheck/usecase"
	listing_usecase "github.com/x-xyz/hbarmarket/stores/listing/usecase"
	metadata_usecase "github.com/x-xyz/hbarmarket/stores/metadata/usecase"
	portfolio_usecase "github.com/x-xyz/hbarmarket/stores/portfolio/usecase"
	txn_repository "github.com/x-xyz/hbarmarket/stores/transaction/repository"
	txn_usecase "github.com/x-xyz/hbarmarket/stores/transaction/usecase"
	webresource_repository "github.com/x-xyz/hbarmarket/stores/web_resource/repository"
	webresource_usecase "github.com/x-xyz/hbarmarket/stores/web_resource/usecase"
)

type App struct {
	Config      *Config
	Chain       chain.Client
	Provider    account.Provider
	Txn         txn.UseCase
	Auth        domain.AuthUsecase
	Account     account.Usecase
	Approval    approval.UseCase
	Listing     listing.UseCase
	Portfolio   portfolio.UseCase
	Collection  collection.UseCase
	WebResource domain.WebResourceUseCase
	HealthCheck healthcheck.HealthCheckUsecase
	// Background holds receipt watches started by non-blocking submissions.
	Background *goroutine.Group
}

// Build dials the network and wires the use cases. approver nil approves
// every signature.
func Build(c ctx.Ctx, cfg *Config, approver account.Approver) (*App, error) {
	c.WithFields(log.Fields{
		"network.rpcUrl":        cfg.RpcUrl,
		"network.chainId":       cfg.ChainId,
		"contracts.marketplace": cfg.Marketplace,
		"contracts.factory":     cfg.Factory,
		"session.projectId":     cfg.ProjectId,
		"ipfs.gateway":          cfg.IpfsGateway,
		"redis_cache.uri":       cfg.RedisUri,
	}).Info("config")

	chainClient, err := chain.Dial(c, &chain.ClientCfg{
		RpcUrl:      cfg.RpcUrl,
		ChainId:     cfg.ChainId,
		MaxInflight: cfg.MaxInflight,
		Rps:         cfg.Rps,
	})
	if err != nil {
		return nil, err
	}

	provider, err := accountService.NewProvider(&accountService.Config{
		PrivateKey:  cfg.PrivateKey,
		ChainId:     cfg.ChainId,
		ProjectId:   cfg.ProjectId,
		ExplorerUrl: cfg.ExplorerUrl,
		Approver:    approver,
		Backend:     chainClient.Backend(),
	})
	if err != nil {
		return nil, err
	}

	cacheProvider, err := newCacheProvider(c, cfg)
	if err != nil {
		return nil, err
	}

	background := &goroutine.Group{Name: "txn"}
	txnUC := txn_usecase.New(&txn_usecase.TransactionUseCaseCfg{
		Provider:   provider,
		Background: background,
		Watcher: txn_repository.NewWatcher(&txn_repository.WatcherCfg{
			Reader:    chainClient.Backend(),
			PollStart: cfg.WatchPollStart,
			PollLimit: cfg.WatchPollLimit,
			Timeout:   cfg.WatchTimeout,
		}),
		Repo: txn_repository.NewOutcomeRepo(cache.New(cache.ServiceConfig{
			Ttl:   cfg.OutcomeTtl,
			Pfx:   keys.Scoped(int64(cfg.ChainId), keys.PfxTxOutcome),
			Cache: cacheProvider,
		})),
	})

	webResource := newWebResource(cfg)
	metadata := metadata_usecase.NewMetadataUseCase(&metadata_usecase.MetadataUseCaseCfg{
		WebResource: webResource,
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   cfg.MetadataTtl,
			Pfx:   keys.Scoped(int64(cfg.ChainId), keys.PfxMetadata),
			Cache: cacheProvider,
		}),
	})

	nft := contract.NewNft(chainClient)
	marketplace := contract.NewMarketplace(chainClient, cfg.Marketplace)

	approvalUC := approval_usecase.New(&approval_usecase.ApprovalUseCaseCfg{
		Provider: provider,
		Contract: nft,
		Txn:      txnUC,
		Operator: marketplace.Address(),
	})

	collectionCfg := &collection_usecase.CollectionUseCaseCfg{
		Provider: provider,
		Txn:      txnUC,
		Code:     chainClient,
		Nft:      nft,
		Factory:  contract.NewFactory(cfg.Factory),
	}
	if collectionCfg.FactoryArtifact, err = loadArtifact(c, cfg.FactoryArtifact); err != nil {
		return nil, err
	}
	if collectionCfg.GameItemsArtifact, err = loadArtifact(c, cfg.GameItemsArtifact); err != nil {
		return nil, err
	}

	return &App{
		Config:   cfg,
		Chain:    chainClient,
		Provider: provider,
		Txn:      txnUC,
		Auth: auth_usecase.New(&auth_usecase.AuthUseCaseCfg{
			JwtSecret:          cfg.JwtSecret,
			Issuer:             cfg.ProjectId,
			ChainId:            cfg.ChainId,
			TokenTtl:           cfg.TokenTtl,
			Operator:           provider.Address(),
			SigningMsgTemplate: cfg.SignatureMsg,
			Nonces: cache.New(cache.ServiceConfig{
				Ttl:   cfg.NonceTtl,
				Pfx:   keys.Scoped(int64(cfg.ChainId), keys.PfxNonce),
				Cache: cacheProvider,
			}),
		}),
		Account:  account_usecase.New(provider),
		Approval: approvalUC,
		Listing: listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
			Provider:    provider,
			Marketplace: marketplace,
			Approval:    approvalUC,
			Txn:         txnUC,
		}),
		Portfolio: portfolio_usecase.New(&portfolio_usecase.PortfolioUseCaseCfg{
			Contract:    nft,
			MultiToken:  contract.NewErc1155(chainClient),
			Types:       nft,
			Metadata:    metadata,
			WebResource: webResource,
			Contracts:   cfg.PortfolioContracts,
			MaxTokenId:  cfg.MaxTokenId,
			Concurrency: cfg.ScanConcurrency,
		}),
		Collection:  collection_usecase.NewCollection(collectionCfg),
		WebResource: webResource,
		HealthCheck: hc_usecase.New(hc_repo.New(chainClient, cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   keys.Scoped(int64(cfg.ChainId), keys.PfxHealthCheck),
			Cache: cacheProvider,
		}))),
		Background: background,
	}, nil
}

// MustBuild is the fatal initialization path for process start up.
func MustBuild(c ctx.Ctx, cfg *Config, approver account.Approver) *App {
	app, err := Build(c, cfg, approver)
	if err != nil {
		log.Log().WithField("err", err).Panic("failed to initialize")
	}
	return app
}

// newCacheProvider layers the in-process cache in front of redis when redis
// is configured.
func newCacheProvider(c ctx.Ctx, cfg *Config) (provider.Provider, error) {
	sizeMB := cfg.CacheSizeMB
	if sizeMB <= 0 {
		sizeMB = 32
	}
	near := local.New("local", sizeMB)
	if len(cfg.RedisUri) == 0 {
		return near, nil
	}

	c.Info("init redis cache")
	pool, err := redisclient.ConnectRedis(c, redisclient.Config{
		Uri:            cfg.RedisUri,
		Password:       cfg.RedisPassword,
		PoolMultiplier: cfg.RedisPoolMultiplier,
		Attempts:       3,
	})
	if err != nil {
		return nil, err
	}
	name := cfg.RedisName
	if len(name) == 0 {
		name = "redis_cache"
	}
	r := redis.New(name, metrics.New(name), &redis.Pools{Src: pool})
	return layered.New(near, cacheRedis.NewRedis(r)), nil
}

func newWebResource(cfg *Config) domain.WebResourceUseCase {
	client := &http.Client{}
	ipfsGateway := cfg.IpfsGateway
	if len(ipfsGateway) == 0 {
		ipfsGateway = webresource_usecase.DefaultIpfsGateway
	}
	arGateway := cfg.ArweaveGateway
	if len(arGateway) == 0 {
		arGateway = webresource_usecase.DefaultArweaveGateway
	}

	var ipfsReaders []domain.WebResourceReaderRepository
	if len(cfg.IpfsApi) > 0 {
		ipfsReaders = append(ipfsReaders, webresource_repository.NewIpfsNodeReaderRepo(ipfsapi.NewShell(cfg.IpfsApi), cfg.HttpTimeout))
	}
	ipfsReaders = append(ipfsReaders, webresource_repository.NewGatewayReaderRepo(client, ipfsGateway, "", cfg.HttpTimeout))

	return webresource_usecase.NewWebResourceUseCase(&webresource_usecase.WebResourceUseCaseCfg{
		HttpReader:     webresource_repository.NewHttpReaderRepo(client, cfg.HttpTimeout, nil),
		IpfsReaders:    ipfsReaders,
		DataUriReader:  webresource_repository.NewDataUriReaderRepo(),
		ArUriReader:    webresource_repository.NewGatewayReaderRepo(client, arGateway, "ar://", cfg.HttpTimeout),
		IpfsGateway:    ipfsGateway,
		ArweaveGateway: arGateway,
	})
}

func loadArtifact(c ctx.Ctx, path string) (*baseabi.Artifact, error) {
	if len(path) == 0 {
		return nil, nil
	}
	art, err := baseabi.LoadArtifact(path)
	if err != nil {
		c.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Error("baseabi.LoadArtifact failed")
		return nil, err
	}
	return art, nil
}
