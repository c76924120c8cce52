package bigutils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepernetwork/dprparams/primitives"
)

func TestParseU256(t *testing.T) {
	u, ok := ParseU256("65536")
	require.True(t, ok)
	require.Equal(t, "0x10000", u.Hex())

	u, ok = ParseU256("0x10000")
	require.True(t, ok)
	require.Equal(t, "0x10000", u.Hex())

	_, ok = ParseU256("abc")
	require.False(t, ok)

	_, ok = ParseU256("-1")
	require.False(t, ok)
}

func TestParseBalance(t *testing.T) {
	b, err := ParseBalance("1000000000000000000")
	require.NoError(t, err)
	require.Equal(t, uint64(1_000_000_000_000_000_000), b.Uint64())

	b, err = ParseBalance("0xffffffffffffffffffffffffffffffff")
	require.NoError(t, err)
	require.True(t, b.Eq(primitives.MaxBalance()))

	_, err = ParseBalance("0x100000000000000000000000000000000")
	require.ErrorIs(t, err, primitives.ErrBalanceOverflow)

	_, err = ParseBalance("-1")
	require.ErrorIs(t, err, ErrInvalidNumber)

	// -(2^256 - 5) would wrap to 5 in two's complement
	_, err = ParseBalance("-115792089237316195423570985008687907853269984665640564039457584007913129639931")
	require.ErrorIs(t, err, ErrInvalidNumber)

	_, err = ParseBalance("-0x1")
	require.ErrorIs(t, err, ErrInvalidNumber)
}

func TestMulBalance(t *testing.T) {
	p, err := MulBalance(NewU256(2158), NewU256(2))
	require.NoError(t, err)
	require.Equal(t, uint64(4316), p.Uint64())

	_, err = MulBalance(primitives.MaxBalance(), NewU256(2))
	require.ErrorIs(t, err, primitives.ErrBalanceOverflow)
}

func TestMulDivU64(t *testing.T) {
	q, ok := MulDivU64(2880, 5000, 5000)
	require.True(t, ok)
	require.Equal(t, uint64(2880), q)

	q, ok = MulDivU64(math.MaxUint64, 4, 8)
	require.True(t, ok)
	require.Equal(t, uint64(math.MaxUint64/2), q)

	_, ok = MulDivU64(math.MaxUint64, 3, 2)
	require.False(t, ok)
}
