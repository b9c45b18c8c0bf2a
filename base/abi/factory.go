package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var FactoryABI abi.ABI

var factoryABI = `[` +
	`{"type":"constructor","stateMutability":"nonpayable","inputs":[]},` +
	`{"type":"function","name":"deployNFT","stateMutability":"nonpayable","inputs":[{"name":"name","type":"string"},{"name":"symbol","type":"string"},{"name":"baseURI","type":"string"}],"outputs":[{"name":"","type":"address"}]},` +
	`{"type":"event","anonymous":false,"name":"NFTContractDeployed","inputs":[{"indexed":true,"name":"nftContract","type":"address"},{"indexed":false,"name":"name","type":"string"},{"indexed":false,"name":"symbol","type":"string"},{"indexed":true,"name":"owner","type":"address"}]}` +
	`]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(factoryABI))
	if err != nil {
		panic("Failed to parse factory abi")
	}
	FactoryABI = _abi
}

type NftContractDeployedLog struct {
	NftContract common.Address // indexed
	Name        string
	Symbol      string
	Owner       common.Address // indexed
}

func ToNftContractDeployedLog(log *types.Log) (*NftContractDeployedLog, error) {
	if len(log.Topics) != 3 || log.Topics[0] != FactoryABI.Events["NFTContractDeployed"].ID {
		return nil, ErrEventMismatch
	}
	var l NftContractDeployedLog
	if err := FactoryABI.UnpackIntoInterface(&l, "NFTContractDeployed", log.Data); err != nil {
		return nil, err
	}
	l.NftContract = common.BytesToAddress(log.Topics[1].Bytes())
	l.Owner = common.BytesToAddress(log.Topics[2].Bytes())
	return &l, nil
}
