package bootstrap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/hbarmarket/domain"
)

const fullConfig = `
network:
  rpcUrl: https://testnet.hashio.io/api
  chainId: 296
contracts:
  marketplace: "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
  factory: "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
  portfolio:
    - "0xCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCC"
session:
  projectId: project
account:
  privateKey: "0x01"
auth:
  jwtSecret: secret
  tokenTtl: 1h
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	f := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(f, []byte(body), 0o600))
	return f
}

func TestLoadConfig(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Reset()
	require.NoError(t, ReadConfig(writeConfig(t, fullConfig)))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, domain.ChainId(296), cfg.ChainId)
	require.Equal(t, domain.Address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"), cfg.Marketplace)
	require.Equal(t, []domain.Address{"0xcccccccccccccccccccccccccccccccccccccccc"}, cfg.PortfolioContracts)
	require.Equal(t, time.Hour, cfg.TokenTtl)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Reset()
	t.Setenv("HBARMARKET_SESSION_PROJECTID", "from-env")
	require.NoError(t, ReadConfig(writeConfig(t, fullConfig)))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.ProjectId)
}

func TestLoadConfigMissing(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Reset()
	require.NoError(t, ReadConfig(writeConfig(t, "network:\n  chainId: 296\n")))

	_, err := LoadConfig()
	require.ErrorIs(t, err, domain.ErrMissingConfig)
	require.Contains(t, domain.UserMessage(err), "contracts.marketplace")
	require.Contains(t, domain.UserMessage(err), "auth.jwtSecret")
}

func TestLoadConfigBlankSecret(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Reset()
	t.Setenv("HBARMARKET_AUTH_JWTSECRET", "  ")
	require.NoError(t, ReadConfig(writeConfig(t, strings.Replace(fullConfig, "jwtSecret: secret", "jwtSecret: \"\"", 1))))

	_, err := LoadConfig()
	require.ErrorIs(t, err, domain.ErrMissingConfig)
}
