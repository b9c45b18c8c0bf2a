package abi

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"
)

var ErrEventMismatch = xerrors.New("log does not match event")

// DecodeLog decodes log against event into named arguments. Indexed
// arguments are read from the topics, the rest from the data.
func DecodeLog(event *abi.Event, log *types.Log) (map[string]interface{}, error) {
	if event == nil || log == nil {
		return nil, ErrEventMismatch
	}
	if !event.Anonymous && (len(log.Topics) == 0 || log.Topics[0] != event.ID) {
		return nil, ErrEventMismatch
	}

	var indexed abi.Arguments
	for _, arg := range event.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	topics := log.Topics
	if !event.Anonymous {
		topics = topics[1:]
	}
	if len(topics) != len(indexed) {
		return nil, xerrors.Errorf("%s expects %d indexed topics, got %d: %w", event.Name, len(indexed), len(topics), ErrEventMismatch)
	}

	out := map[string]interface{}{}
	if err := event.Inputs.NonIndexed().UnpackIntoMap(out, log.Data); err != nil {
		return nil, err
	}
	if err := abi.ParseTopicsIntoMap(out, indexed, topics); err != nil {
		return nil, err
	}
	return out, nil
}

// FindEvent returns the first log of logs decodable as event.
func FindEvent(event *abi.Event, logs []*types.Log) (*types.Log, map[string]interface{}, bool) {
	for _, l := range logs {
		decoded, err := DecodeLog(event, l)
		if err != nil {
			continue
		}
		return l, decoded, true
	}
	return nil, nil, false
}
