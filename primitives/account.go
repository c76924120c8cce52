package primitives

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

const AccountIdLen = 32

var ErrInvalidAccountId = errors.New("invalid account id")

// Some way of identifying an account on the chain. It is intentionally equivalent
// to the public key of the transaction signing scheme, see MultiSigner.IntoAccount.
type AccountId [AccountIdLen]byte

func AccountIdFromBytes(bz []byte) (AccountId, error) {
	var id AccountId
	if len(bz) != AccountIdLen {
		return id, errors.Wrapf(ErrInvalidAccountId, "length %d", len(bz))
	}
	copy(id[:], bz)
	return id, nil
}

// HexToAccountId accepts a 0x-prefixed hex string of exactly 32 bytes.
func HexToAccountId(s string) (AccountId, error) {
	var id AccountId
	bz, err := hexutil.Decode(s)
	if err != nil {
		return id, errors.Wrap(ErrInvalidAccountId, err.Error())
	}
	return AccountIdFromBytes(bz)
}

func (id AccountId) Bytes() []byte {
	return id[:]
}

func (id AccountId) Hex() string {
	return hexutil.Encode(id[:])
}

func (id AccountId) String() string {
	return id.Hex()
}

func (id AccountId) IsZero() bool {
	return id == AccountId{}
}

func (id AccountId) MarshalText() ([]byte, error) {
	return hexutil.Bytes(id[:]).MarshalText()
}

func (id *AccountId) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("AccountId", input, id[:])
}
