package testutils

import (
	"crypto/ecdsa"

	"github.com/ChainSafe/go-schnorrkel"
	"github.com/tendermint/tendermint/crypto/ed25519"

	"github.com/deepernetwork/dprparams/internal/ethutils"
	"github.com/deepernetwork/dprparams/primitives"
)

var TestKeys = []string{
	"0xe3d9be2e6430a9db8291ab1853f5ec2467822b33a1a08825a22fab1425d2bff9",
	"0x5a09e9d6be2cdc7de8f6beba300e52823493cd23357b1ca14a9c36764d600f5e",
	"0x7e01af236f9c9536d9d28b07cea24ccf21e21c9bc9f2b2c11471cd82dbb63162",
	"0x1f67c31733dc3fd02c1f9ce9cb9e05b1d2f1b7b5463fef8acf6cf17f3bd01467",
}

// Keypair signs messages for one of the supported schemes.
type Keypair struct {
	Signer primitives.MultiSigner
	sign   func(msg []byte) primitives.MultiSignature
}

func (k *Keypair) Account() primitives.AccountId {
	acc, err := k.Signer.IntoAccount()
	if err != nil {
		panic(err)
	}
	return acc
}

func (k *Keypair) Sign(msg []byte) primitives.MultiSignature {
	return k.sign(msg)
}

func (k *Keypair) SignNonce(nonce uint64) []byte {
	return k.sign(primitives.NonceMessage(nonce)).Encode()
}

func GenEd25519Keypair() *Keypair {
	privKey := ed25519.GenPrivKey()
	return &Keypair{
		Signer: mustSigner(primitives.Ed25519, privKey.PubKey().Bytes()),
		sign: func(msg []byte) primitives.MultiSignature {
			sig, err := privKey.Sign(msg)
			if err != nil {
				panic(err)
			}
			return mustSignature(primitives.Ed25519, sig)
		},
	}
}

func GenSr25519Keypair() *Keypair {
	secretKey, publicKey, err := schnorrkel.GenerateKeypair()
	if err != nil {
		panic(err)
	}
	pub := publicKey.Encode()
	return &Keypair{
		Signer: mustSigner(primitives.Sr25519, pub[:]),
		sign: func(msg []byte) primitives.MultiSignature {
			sig, err := secretKey.Sign(schnorrkel.NewSigningContext([]byte("substrate"), msg))
			if err != nil {
				panic(err)
			}
			bz := sig.Encode()
			return mustSignature(primitives.Sr25519, bz[:])
		},
	}
}

func GenEcdsaKeypair(hexKey string) *Keypair {
	privKey, _, err := ethutils.HexToPrivKey(hexKey)
	if err != nil {
		panic(err)
	}
	return ecdsaKeypair(privKey)
}

func ecdsaKeypair(privKey *ecdsa.PrivateKey) *Keypair {
	return &Keypair{
		Signer: ethutils.PrivKeyToSigner(privKey),
		sign: func(msg []byte) primitives.MultiSignature {
			sig, err := ethutils.Sign(msg, privKey)
			if err != nil {
				panic(err)
			}
			return sig
		},
	}
}

// AllSchemeKeypairs returns one fresh keypair per supported scheme.
func AllSchemeKeypairs() []*Keypair {
	return []*Keypair{
		GenEd25519Keypair(),
		GenSr25519Keypair(),
		GenEcdsaKeypair(TestKeys[0]),
	}
}

func mustSigner(scheme primitives.SignatureScheme, pubKey []byte) primitives.MultiSigner {
	s, err := primitives.NewMultiSigner(scheme, pubKey)
	if err != nil {
		panic(err)
	}
	return s
}

func mustSignature(scheme primitives.SignatureScheme, sig []byte) primitives.MultiSignature {
	s, err := primitives.NewMultiSignature(scheme, sig)
	if err != nil {
		panic(err)
	}
	return s
}
