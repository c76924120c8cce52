package ethutils

import (
	"crypto/ecdsa"
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/deepernetwork/dprparams/primitives"
)

func HexToPrivKey(key string) (*ecdsa.PrivateKey, []byte, error) {
	key = strings.TrimSpace(key)
	key = strings.TrimPrefix(key, "0x")
	data, err := hex.DecodeString(key)
	if err != nil {
		return nil, nil, err
	}
	privKey, err := crypto.ToECDSA(data)
	return privKey, data, err
}

func PrivKeyToSigner(key *ecdsa.PrivateKey) primitives.MultiSigner {
	return primitives.MultiSigner{
		Scheme:    primitives.Ecdsa,
		PublicKey: crypto.CompressPubkey(&key.PublicKey),
	}
}

func PrivKeyToAccount(key *ecdsa.PrivateKey) primitives.AccountId {
	acc, err := PrivKeyToSigner(key).IntoAccount()
	if err != nil {
		panic(err) // CompressPubkey always yields 33 bytes
	}
	return acc
}

// Sign signs BlakeTwo256(msg) and returns an ecdsa MultiSignature.
func Sign(msg []byte, key *ecdsa.PrivateKey) (primitives.MultiSignature, error) {
	digest := primitives.BlakeTwo256(msg)
	sig, err := crypto.Sign(digest[:], key)
	if err != nil {
		return primitives.MultiSignature{}, err
	}
	return primitives.NewMultiSignature(primitives.Ecdsa, sig)
}
