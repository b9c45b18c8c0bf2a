// Package keys names the cache namespaces. Keys are ":" joined and scoped by
// chain id so testnet and mainnet deployments can share one redis.
package keys

import (
	"strconv"
	"strings"
)

const (
	PfxHealthCheck = "healthcheck"
	// PfxNonce holds the pending sign-in nonce per address.
	PfxNonce = "nonce"
	// PfxTxOutcome holds transaction outcomes by hash.
	PfxTxOutcome = "txOutcome"
	// PfxMetadata holds decoded token metadata by uri.
	PfxMetadata = "metadata"
)

const sep = ":"

func Join(parts ...string) string {
	return strings.Join(parts, sep)
}

// Scoped prefixes pfx with the chain id, e.g. "296:txOutcome".
func Scoped(chainId int64, pfx string) string {
	return Join(strconv.FormatInt(chainId, 10), pfx)
}

// Prefix drops the last segment of key, e.g. "296:nonce:0xabc" gives
// "296:nonce". It is used as a low cardinality metric tag.
func Prefix(key string) string {
	i := strings.LastIndex(key, sep)
	if i < 0 {
		return ""
	}
	return key[:i]
}
