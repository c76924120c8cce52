package primitives

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

var (
	ErrInputTooLong     = errors.New("input too long")
	ErrInvalidPalletId  = errors.New("pallet id must be exactly 8 bytes")
	palletAccountPrefix = []byte("modl")
)

// SignatureVerifier checks device signatures over a nonce.
type SignatureVerifier interface {
	VerifySignature(nonce uint64, signature []byte, sender AccountId) bool
}

// PaymentLimitPolicy decides whether a single payment stays under the chain's ceiling.
type PaymentLimitPolicy interface {
	IsWithinSingleMaxLimit(amount *Balance) bool
}

// AccountCreator derives well-known accounts from human readable seeds.
type AccountCreator interface {
	CreateAccount(seed string) (AccountId, error)
}

// NopSignatureVerifier accepts everything. It is only meant for tests and
// bootstrap configurations; production runtimes must wire a real verifier.
type NopSignatureVerifier struct{}

func (NopSignatureVerifier) VerifySignature(uint64, []byte, AccountId) bool {
	return true
}

// NopPaymentLimitPolicy enforces no limit at all.
type NopPaymentLimitPolicy struct{}

func (NopPaymentLimitPolicy) IsWithinSingleMaxLimit(*Balance) bool {
	return true
}

// TrailingZeroAccountCreator copies the seed bytes into the front of the account
// and leaves the remaining bytes zero. Seeds wider than the account are rejected.
type TrailingZeroAccountCreator struct{}

func (TrailingZeroAccountCreator) CreateAccount(seed string) (AccountId, error) {
	return trailingZeroAccount([]byte(seed))
}

func trailingZeroAccount(bz []byte) (AccountId, error) {
	var id AccountId
	if len(bz) > AccountIdLen {
		return id, errors.Wrapf(ErrInputTooLong, "%d bytes, max %d", len(bz), AccountIdLen)
	}
	copy(id[:], bz)
	return id, nil
}

// MustCreateAccount is for package-level well-known accounts, where a bad seed is a programming error.
func MustCreateAccount(creator AccountCreator, seed string) AccountId {
	id, err := creator.CreateAccount(seed)
	if err != nil {
		panic(err)
	}
	return id
}

// MultiSignatureVerifier verifies an encoded MultiSignature over the
// little-endian encoding of the nonce.
type MultiSignatureVerifier struct{}

func NonceMessage(nonce uint64) []byte {
	var msg [8]byte
	binary.LittleEndian.PutUint64(msg[:], nonce)
	return msg[:]
}

func (MultiSignatureVerifier) VerifySignature(nonce uint64, signature []byte, sender AccountId) bool {
	sig, err := DecodeMultiSignature(signature)
	if err != nil {
		return false
	}
	return sig.Verify(NonceMessage(nonce), sender)
}

// SingleMaxLimitPolicy accepts amounts up to and including Limit.
type SingleMaxLimitPolicy struct {
	Limit Balance
}

func NewSingleMaxLimitPolicy(limit *Balance) (*SingleMaxLimitPolicy, error) {
	if err := CheckBalance(limit); err != nil {
		return nil, err
	}
	return &SingleMaxLimitPolicy{Limit: *limit}, nil
}

func (p *SingleMaxLimitPolicy) IsWithinSingleMaxLimit(amount *Balance) bool {
	if amount == nil {
		return true
	}
	return !amount.Gt(&p.Limit)
}

// PalletId identifies a pallet that owns funds, e.g. "py/trsry" for the treasury.
type PalletId [8]byte

func PalletIdFromString(s string) (PalletId, error) {
	var id PalletId
	if len(s) != len(id) {
		return id, errors.Wrapf(ErrInvalidPalletId, "%q", s)
	}
	copy(id[:], s)
	return id, nil
}

// IntoAccount derives the pallet's sovereign account: "modl" || id, zero padded.
func (p PalletId) IntoAccount() AccountId {
	seed := make([]byte, 0, len(palletAccountPrefix)+len(p))
	seed = append(seed, palletAccountPrefix...)
	seed = append(seed, p[:]...)
	id, _ := trailingZeroAccount(seed) // 12 bytes always fit
	return id
}

var (
	_ SignatureVerifier  = NopSignatureVerifier{}
	_ SignatureVerifier  = MultiSignatureVerifier{}
	_ PaymentLimitPolicy = NopPaymentLimitPolicy{}
	_ PaymentLimitPolicy = (*SingleMaxLimitPolicy)(nil)
	_ AccountCreator     = TrailingZeroAccountCreator{}
)
