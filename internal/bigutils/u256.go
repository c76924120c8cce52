package bigutils

import (
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/deepernetwork/dprparams/primitives"
)

var ErrInvalidNumber = errors.New("invalid number")

func NewU256(u64 uint64) *uint256.Int {
	u256 := uint256.NewInt(0)
	u256.SetUint64(u64)
	return u256
}

func ParseU256(s string) (*uint256.Int, bool) {
	i := big.NewInt(0)
	ok := false
	if strings.HasPrefix(s, "0x") {
		i, ok = i.SetString(s[2:], 16)
	} else {
		i, ok = i.SetString(s, 10)
	}
	if ok && i.Sign() >= 0 {
		u, overflow := uint256.FromBig(i)
		return u, !overflow
	}
	return nil, false
}

// ParseBalance parses a decimal or 0x-hex string and rejects values wider than 128 bits.
func ParseBalance(s string) (*primitives.Balance, error) {
	u, ok := ParseU256(strings.TrimSpace(s))
	if !ok {
		return nil, errors.Wrapf(ErrInvalidNumber, "%q", s)
	}
	if err := primitives.CheckBalance(u); err != nil {
		return nil, err
	}
	return u, nil
}

// MulBalance returns a*b, failing when the product no longer fits a Balance.
func MulBalance(a, b *uint256.Int) (*primitives.Balance, error) {
	prod := new(big.Int).Mul(a.ToBig(), b.ToBig())
	if prod.BitLen() > primitives.BalanceBits {
		return nil, errors.Wrapf(primitives.ErrBalanceOverflow, "%s", prod.String())
	}
	res, _ := uint256.FromBig(prod)
	return res, nil
}

// MulDivU64 computes floor(a*b/c) without intermediate overflow. c must be non-zero.
func MulDivU64(a, b, c uint64) (uint64, bool) {
	prod := new(uint256.Int).Mul(NewU256(a), NewU256(b))
	q := prod.Div(prod, NewU256(c))
	if !q.IsUint64() {
		return 0, false
	}
	return q.Uint64(), true
}
