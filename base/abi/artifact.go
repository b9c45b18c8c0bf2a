package abi

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/xerrors"
)

var ErrInvalidArtifact = xerrors.New("invalid contract artifact")

// Artifact is a compiled contract: its abi and creation bytecode.
type Artifact struct {
	ABI      abi.ABI
	Bytecode []byte
}

type artifactJson struct {
	ABI      json.RawMessage `json:"abi"`
	Bytecode interface{}     `json:"bytecode"`
	Evm      struct {
		Bytecode struct {
			Object string `json:"object"`
		} `json:"bytecode"`
	} `json:"evm"`
}

// LoadArtifact reads a hardhat style {abi, bytecode} file or a solc
// contract output {abi, evm.bytecode.object}.
func LoadArtifact(path string) (*Artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseArtifact(raw)
}

func ParseArtifact(raw []byte) (*Artifact, error) {
	var a artifactJson
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, xerrors.Errorf("%v: %w", err, ErrInvalidArtifact)
	}
	if len(a.ABI) == 0 {
		return nil, xerrors.Errorf("missing abi: %w", ErrInvalidArtifact)
	}
	parsed, err := abi.JSON(bytes.NewReader(a.ABI))
	if err != nil {
		return nil, xerrors.Errorf("%v: %w", err, ErrInvalidArtifact)
	}

	code := a.Evm.Bytecode.Object
	switch b := a.Bytecode.(type) {
	case string:
		code = b
	case map[string]interface{}:
		if obj, ok := b["object"].(string); ok {
			code = obj
		}
	}
	if len(code) == 0 {
		return nil, xerrors.Errorf("missing bytecode: %w", ErrInvalidArtifact)
	}
	if !strings.HasPrefix(code, "0x") {
		code = "0x" + code
	}
	bytecode, err := hexutil.Decode(code)
	if err != nil {
		return nil, xerrors.Errorf("bytecode: %v: %w", err, ErrInvalidArtifact)
	}
	return &Artifact{ABI: parsed, Bytecode: bytecode}, nil
}
