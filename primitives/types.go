// Package primitives holds the low-level types shared by every runtime module:
// identities, balances, timestamps, block numbers, hashes and signatures.
package primitives

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// An index to a block.
type BlockNumber = uint32

// The type for looking up accounts. We don't expect more than 4 billion of them.
type AccountIndex = uint32

// Index of a transaction in the chain.
type Index = uint32

// Type used for expressing timestamp.
type Moment = uint64

// A timestamp: milliseconds since the unix epoch.
// uint64 is enough to represent a duration of half a billion years, when the
// time scale is milliseconds.
type Timestamp = uint64

// A hash of some data used by the chain. Always produced by BlakeTwo256.
type Hash = common.Hash

// Balance of an account. Only the low 128 bits may ever be set, see CheckBalance.
type Balance = uint256.Int

const BalanceBits = 128
