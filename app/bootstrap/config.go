package bootstrap

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/x-xyz/hbarmarket/base/log"
	"github.com/x-xyz/hbarmarket/domain"
)

const envPrefix = "HBARMARKET"

// DefaultConfigFile is relative to the repository root.
const DefaultConfigFile = "infra/configs/config.yaml"

var requiredKeys = []string{
	"network.rpcUrl",
	"network.chainId",
	"contracts.marketplace",
	"contracts.factory",
	"session.projectId",
	"account.privateKey",
	"auth.jwtSecret",
}

type Config struct {
	RpcUrl      string
	ChainId     domain.ChainId
	MaxInflight int
	Rps         float64
	ExplorerUrl string

	PrivateKey string
	ProjectId  string

	Marketplace        domain.Address
	Factory            domain.Address
	PortfolioContracts []domain.Address
	MaxTokenId         int
	ScanConcurrency    int

	FactoryArtifact   string
	GameItemsArtifact string

	IpfsGateway    string
	IpfsApi        string
	ArweaveGateway string
	HttpTimeout    time.Duration

	WatchPollStart time.Duration
	WatchPollLimit time.Duration
	WatchTimeout   time.Duration

	RedisName           string
	RedisUri            string
	RedisPassword       string
	RedisPoolMultiplier float64
	CacheSizeMB         int
	OutcomeTtl          time.Duration
	MetadataTtl         time.Duration
	NonceTtl            time.Duration

	JwtSecret    string
	SignatureMsg string
	TokenTtl     time.Duration

	ServerAddress string
}

// ReadConfig loads file into viper. HBARMARKET_NETWORK_RPCURL style env
// vars override file values.
func ReadConfig(file string) error {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(file)
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		return err
	}

	log.SetDebug(viper.GetBool("debug"))
	return nil
}

// LoadConfig reads the loaded settings. A missing required key is
// ErrMissingConfig.
func LoadConfig() (*Config, error) {
	var missing []string
	for _, k := range requiredKeys {
		if len(strings.TrimSpace(viper.GetString(k))) == 0 {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		log.Log().WithField("keys", missing).Error("missing required configuration")
		return nil, domain.NewUserError(domain.ErrMissingConfig, "Missing required configuration: "+strings.Join(missing, ", "), nil)
	}

	var portfolio []domain.Address
	for _, a := range viper.GetStringSlice("contracts.portfolio") {
		portfolio = append(portfolio, domain.Address(a).ToLower())
	}

	return &Config{
		RpcUrl:      viper.GetString("network.rpcUrl"),
		ChainId:     domain.ChainId(viper.GetInt32("network.chainId")),
		MaxInflight: viper.GetInt("network.maxInflight"),
		Rps:         viper.GetFloat64("network.rps"),
		ExplorerUrl: viper.GetString("network.explorerUrl"),

		PrivateKey: viper.GetString("account.privateKey"),
		ProjectId:  viper.GetString("session.projectId"),

		Marketplace:        domain.Address(viper.GetString("contracts.marketplace")).ToLower(),
		Factory:            domain.Address(viper.GetString("contracts.factory")).ToLower(),
		PortfolioContracts: portfolio,
		MaxTokenId:         viper.GetInt("portfolio.maxTokenId"),
		ScanConcurrency:    viper.GetInt("portfolio.concurrency"),

		FactoryArtifact:   viper.GetString("artifacts.factory"),
		GameItemsArtifact: viper.GetString("artifacts.gameItems"),

		IpfsGateway:    viper.GetString("ipfs.gateway"),
		IpfsApi:        viper.GetString("ipfs.api"),
		ArweaveGateway: viper.GetString("arweave.gateway"),
		HttpTimeout:    viper.GetDuration("http.timeout"),

		WatchPollStart: viper.GetDuration("watcher.pollStart"),
		WatchPollLimit: viper.GetDuration("watcher.pollLimit"),
		WatchTimeout:   viper.GetDuration("watcher.timeout"),

		RedisName:           viper.GetString("redis_cache.name"),
		RedisUri:            viper.GetString("redis_cache.uri"),
		RedisPassword:       viper.GetString("redis_cache.password"),
		RedisPoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
		CacheSizeMB:         viper.GetInt("cache.sizeMB"),
		OutcomeTtl:          viper.GetDuration("cache.outcomeTtl"),
		MetadataTtl:         viper.GetDuration("cache.metadataTtl"),
		NonceTtl:            viper.GetDuration("cache.nonceTtl"),

		JwtSecret:    viper.GetString("auth.jwtSecret"),
		SignatureMsg: viper.GetString("auth.signatureMsg"),
		TokenTtl:     viper.GetDuration("auth.tokenTtl"),

		ServerAddress: viper.GetString("server.address"),
	}, nil
}
