// Package chaintest runs contracts on an in-memory chain for tests.
package chaintest

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind/backends"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/crypto"
)

// SimulatedChainId is the chain id of the simulated backend.
const SimulatedChainId = 1337

var (
	// StopCode deploys a contract that accepts any call and does nothing.
	StopCode = hexutil.MustDecode("0x6001600c60003960016000f300")
	// RevertCode deploys a contract that reverts every call.
	RevertCode = hexutil.MustDecode("0x6004600c60003960046000f3600080fd")
	// PingedABI describes the event emitted by PingCode.
	PingedABI = `[{"type":"event","anonymous":false,"name":"Pinged","inputs":[]},{"type":"function","name":"ping","stateMutability":"nonpayable","inputs":[],"outputs":[]}]`
	// PingCode deploys a contract that emits Pinged() on every call.
	PingCode = pingCode()
	// RecordedTopic is the only topic of the logs written by RecorderCode.
	RecordedTopic = common.BytesToHash(crypto.Keccak256([]byte("Recorded(bytes)")))
	// RecorderCode deploys a contract that accepts any call and value and logs
	// the raw calldata under RecordedTopic.
	RecorderCode = recorderCode()
)

func pingCode() []byte {
	topic := crypto.Keccak256([]byte("Pinged()"))
	runtime := append([]byte{0x7f}, topic...)
	runtime = append(runtime, 0x60, 0x00, 0x60, 0x00, 0xa1, 0x00)
	return append(deployPrefix(len(runtime)), runtime...)
}

func recorderCode() []byte {
	// CALLDATASIZE 0 0 CALLDATACOPY, then LOG1(0, CALLDATASIZE, topic)
	runtime := []byte{0x36, 0x60, 0x00, 0x60, 0x00, 0x37, 0x7f}
	runtime = append(runtime, RecordedTopic.Bytes()...)
	runtime = append(runtime, 0x36, 0x60, 0x00, 0xa1, 0x00)
	return append(deployPrefix(len(runtime)), runtime...)
}

// deployPrefix is init code returning the n bytes of runtime that follow it.
func deployPrefix(n int) []byte {
	return []byte{0x60, byte(n), 0x60, 0x0c, 0x60, 0x00, 0x39, 0x60, byte(n), 0x60, 0x00, 0xf3}
}

// Backend adds the rpc methods the simulated backend lacks.
type Backend struct {
	*backends.SimulatedBackend
}

func (b *Backend) ChainID(context.Context) (*big.Int, error) {
	return big.NewInt(SimulatedChainId), nil
}

func (b *Backend) BlockNumber(context.Context) (uint64, error) {
	return b.Blockchain().CurrentBlock().NumberU64(), nil
}

// NewBackend returns a chain where every key is funded with 100 ether.
func NewBackend(keys ...*ecdsa.PrivateKey) *Backend {
	alloc := core.GenesisAlloc{}
	funds := new(big.Int).Mul(big.NewInt(100), big.NewInt(1e18))
	for _, k := range keys {
		alloc[crypto.PubkeyToAddress(k.PublicKey)] = core.GenesisAccount{Balance: funds}
	}
	return &Backend{backends.NewSimulatedBackend(alloc, 30000000)}
}

// NewKey returns a fresh key and its hex encoding.
func NewKey() (*ecdsa.PrivateKey, string) {
	k, err := crypto.GenerateKey()
	if err != nil {
		panic(err)
	}
	return k, hexutil.Encode(crypto.FromECDSA(k))
}

func Address(k *ecdsa.PrivateKey) common.Address {
	return crypto.PubkeyToAddress(k.PublicKey)
}
