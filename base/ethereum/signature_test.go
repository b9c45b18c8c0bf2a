package ethereum

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestSignMsg(t *testing.T) {
	req := require.New(t)
	key, err := crypto.GenerateKey()
	req.NoError(err)
	signer := crypto.PubkeyToAddress(key.PublicKey)
	message := []byte("Deploy NFT Factory contract")

	sig, err := SignMsg(key, message)
	req.NoError(err)
	raw := hexutil.MustDecode(sig)
	req.Len(raw, crypto.SignatureLength)
	req.Contains([]byte{27, 28}, raw[crypto.RecoveryIDOffset])

	recovered, err := RecoverMsgSigner(message, sig)
	req.NoError(err)
	req.Equal(signer, recovered)
}

func TestValidateMsgSignature(t *testing.T) {
	key, _ := crypto.GenerateKey()
	stranger, _ := crypto.GenerateKey()
	message := []byte("hbarmarket login nonce 123456")
	sig, err := SignMsg(key, message)
	require.NoError(t, err)

	// same signature with V in {0, 1}
	raw := hexutil.MustDecode(sig)
	raw[crypto.RecoveryIDOffset] -= 27
	lowV := hexutil.Encode(raw)

	// V outside both encodings
	raw = hexutil.MustDecode(sig)
	raw[crypto.RecoveryIDOffset] = 29
	badV := hexutil.Encode(raw)

	tests := []struct {
		name    string
		message []byte
		sig     string
		signer  string
		want    bool
		wantErr bool
	}{
		{name: "ok", message: message, sig: sig, signer: crypto.PubkeyToAddress(key.PublicKey).Hex(), want: true},
		{name: "lowercase signer", message: message, sig: sig, signer: "0x" + hexutil.Encode(crypto.PubkeyToAddress(key.PublicKey).Bytes())[2:], want: true},
		{name: "v 0/1", message: message, sig: lowV, signer: crypto.PubkeyToAddress(key.PublicKey).Hex(), want: true},
		{name: "other message", message: []byte("654321"), sig: sig, signer: crypto.PubkeyToAddress(key.PublicKey).Hex()},
		{name: "other signer", message: message, sig: sig, signer: crypto.PubkeyToAddress(stranger.PublicKey).Hex()},
		{name: "not hex", message: message, sig: "0xnothex", wantErr: true},
		{name: "short", message: message, sig: "0x1234", wantErr: true},
		{name: "bad v", message: message, sig: badV, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateMsgSignature(tt.message, tt.sig, tt.signer)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
