package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// GameItemsABI is the ERC-1155 collection deployed from a compiled artifact.
var GameItemsABI abi.ABI

var gameItemsABI = `[` +
	`{"type":"constructor","stateMutability":"nonpayable","inputs":[]},` +
	`{"type":"event","anonymous":false,"name":"TransferSingle","inputs":[{"type":"address","name":"operator","indexed":true},{"type":"address","name":"from","indexed":true},{"type":"address","name":"to","indexed":true},{"type":"uint256","name":"id"},{"type":"uint256","name":"value"}]},` +
	`{"type":"event","anonymous":false,"name":"TransferBatch","inputs":[{"type":"address","name":"operator","indexed":true},{"type":"address","name":"from","indexed":true},{"type":"address","name":"to","indexed":true},{"type":"uint256[]","name":"ids"},{"type":"uint256[]","name":"values"}]},` +
	`{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"type":"address","name":"account"},{"type":"uint256","name":"id"}],"outputs":[{"type":"uint256","name":""}]},` +
	`{"type":"function","name":"uri","stateMutability":"view","inputs":[{"type":"uint256","name":"id"}],"outputs":[{"type":"string","name":""}]},` +
	`{"type":"function","name":"setApprovalForAll","stateMutability":"nonpayable","inputs":[{"type":"address","name":"operator"},{"type":"bool","name":"approved"}],"outputs":[]},` +
	`{"type":"function","name":"isApprovedForAll","stateMutability":"view","inputs":[{"type":"address","name":"account"},{"type":"address","name":"operator"}],"outputs":[{"type":"bool","name":""}]},` +
	`{"type":"function","name":"supportsInterface","stateMutability":"view","inputs":[{"type":"bytes4","name":"interfaceId"}],"outputs":[{"type":"bool","name":""}]}` +
	`]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(gameItemsABI))
	if err != nil {
		panic("Failed to parse erc1155 abi")
	}
	GameItemsABI = _abi
}
