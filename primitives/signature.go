package primitives

import (
	"github.com/ChainSafe/go-schnorrkel"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/tendermint/tendermint/crypto/ed25519"
)

// SignatureScheme enumerates the closed set of schemes a MultiSignature may carry.
// The numeric values are the encoded variant indexes and must never change.
type SignatureScheme uint8

const (
	Ed25519 SignatureScheme = iota
	Sr25519
	Ecdsa
)

const (
	Ed25519PublicKeyLen = 32
	Sr25519PublicKeyLen = 32
	EcdsaPublicKeyLen   = 33 // compressed secp256k1

	Ed25519SignatureLen = 64
	Sr25519SignatureLen = 64
	EcdsaSignatureLen   = 65 // r || s || recovery id
)

var sr25519SigningContext = []byte("substrate")

var (
	ErrUnknownScheme       = errors.New("unknown signature scheme")
	ErrInvalidSignature    = errors.New("invalid signature length")
	ErrInvalidPublicKey    = errors.New("invalid public key length")
	ErrEmptySignatureBytes = errors.New("empty signature bytes")
)

func (s SignatureScheme) String() string {
	switch s {
	case Ed25519:
		return "ed25519"
	case Sr25519:
		return "sr25519"
	case Ecdsa:
		return "ecdsa"
	default:
		return "unknown"
	}
}

func (s SignatureScheme) signatureLen() (int, error) {
	switch s {
	case Ed25519:
		return Ed25519SignatureLen, nil
	case Sr25519:
		return Sr25519SignatureLen, nil
	case Ecdsa:
		return EcdsaSignatureLen, nil
	}
	return 0, errors.Wrapf(ErrUnknownScheme, "%d", uint8(s))
}

func (s SignatureScheme) publicKeyLen() (int, error) {
	switch s {
	case Ed25519:
		return Ed25519PublicKeyLen, nil
	case Sr25519:
		return Sr25519PublicKeyLen, nil
	case Ecdsa:
		return EcdsaPublicKeyLen, nil
	}
	return 0, errors.Wrapf(ErrUnknownScheme, "%d", uint8(s))
}

// MultiSigner is the public key of any supported scheme.
type MultiSigner struct {
	Scheme    SignatureScheme
	PublicKey []byte
}

func NewMultiSigner(scheme SignatureScheme, pubKey []byte) (MultiSigner, error) {
	n, err := scheme.publicKeyLen()
	if err != nil {
		return MultiSigner{}, err
	}
	if len(pubKey) != n {
		return MultiSigner{}, errors.Wrapf(ErrInvalidPublicKey, "%s key has %d bytes", scheme, len(pubKey))
	}
	return MultiSigner{Scheme: scheme, PublicKey: append([]byte(nil), pubKey...)}, nil
}

// IntoAccount maps the public key to its account. 32-byte keys are used as-is,
// compressed ECDSA keys are hashed with BlakeTwo256.
func (s MultiSigner) IntoAccount() (AccountId, error) {
	n, err := s.Scheme.publicKeyLen()
	if err != nil {
		return AccountId{}, err
	}
	if len(s.PublicKey) != n {
		return AccountId{}, errors.Wrapf(ErrInvalidPublicKey, "%s key has %d bytes", s.Scheme, len(s.PublicKey))
	}
	if s.Scheme == Ecdsa {
		return AccountId(BlakeTwo256(s.PublicKey)), nil
	}
	return AccountIdFromBytes(s.PublicKey)
}

// MultiSignature is a signature of any supported scheme. Its encoding is the
// variant index byte followed by the raw signature bytes.
type MultiSignature struct {
	Scheme SignatureScheme
	Bytes  []byte
}

func NewMultiSignature(scheme SignatureScheme, sig []byte) (MultiSignature, error) {
	n, err := scheme.signatureLen()
	if err != nil {
		return MultiSignature{}, err
	}
	if len(sig) != n {
		return MultiSignature{}, errors.Wrapf(ErrInvalidSignature, "%s signature has %d bytes", scheme, len(sig))
	}
	return MultiSignature{Scheme: scheme, Bytes: append([]byte(nil), sig...)}, nil
}

func DecodeMultiSignature(bz []byte) (MultiSignature, error) {
	if len(bz) == 0 {
		return MultiSignature{}, ErrEmptySignatureBytes
	}
	return NewMultiSignature(SignatureScheme(bz[0]), bz[1:])
}

func (s MultiSignature) Encode() []byte {
	out := make([]byte, 0, 1+len(s.Bytes))
	out = append(out, byte(s.Scheme))
	return append(out, s.Bytes...)
}

// Verify reports whether the signature over msg was produced by the key behind signer.
// Malformed signatures verify as false.
func (s MultiSignature) Verify(msg []byte, signer AccountId) bool {
	n, err := s.Scheme.signatureLen()
	if err != nil || len(s.Bytes) != n {
		return false
	}
	switch s.Scheme {
	case Ed25519:
		return ed25519.PubKey(signer[:]).VerifySignature(msg, s.Bytes)
	case Sr25519:
		return verifySr25519(msg, s.Bytes, signer)
	case Ecdsa:
		return verifyEcdsa(msg, s.Bytes, signer)
	}
	return false
}

func verifySr25519(msg, sig []byte, signer AccountId) bool {
	var sig64 [Sr25519SignatureLen]byte
	copy(sig64[:], sig)
	signature := &schnorrkel.Signature{}
	if err := signature.Decode(sig64); err != nil {
		return false
	}
	publicKey := &schnorrkel.PublicKey{}
	if err := publicKey.Decode([Sr25519PublicKeyLen]byte(signer)); err != nil {
		return false
	}
	return publicKey.Verify(signature, schnorrkel.NewSigningContext(sr25519SigningContext, msg))
}

func verifyEcdsa(msg, sig []byte, signer AccountId) bool {
	rsv := make([]byte, EcdsaSignatureLen)
	copy(rsv, sig)
	if rsv[64] >= 27 {
		rsv[64] -= 27
	}
	if rsv[64] > 1 {
		return false
	}
	digest := BlakeTwo256(msg)
	pubKey, err := crypto.SigToPub(digest[:], rsv)
	if err != nil {
		return false
	}
	return BlakeTwo256(crypto.CompressPubkey(pubKey)) == Hash(signer)
}
