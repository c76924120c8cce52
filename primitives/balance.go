package primitives

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

var ErrBalanceOverflow = errors.New("balance exceeds 128 bits")

// MaxBalance returns a fresh copy of 2^128-1.
func MaxBalance() *Balance {
	one := uint256.NewInt(1)
	max := new(uint256.Int).Lsh(one, BalanceBits)
	return max.Sub(max, one)
}

func NewBalance(v uint64) *Balance {
	return uint256.NewInt(v)
}

func CheckBalance(b *Balance) error {
	if b.BitLen() > BalanceBits {
		return errors.Wrapf(ErrBalanceOverflow, "%s", b.ToBig().String())
	}
	return nil
}
