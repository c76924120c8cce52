//go:build !params_testnet
// +build !params_testnet

package param

import "github.com/deepernetwork/dprparams/primitives"

//FILE: consensus configurable params collected here!
const (
	/**time consensus params**/
	// Average expected block time. Blocks are produced at a minimum of SlotDuration,
	// and since all slots are assigned (secondary slots enabled) the two are equal.
	MillisecsPerBlock primitives.Moment = 5000

	// 1 in 4 blocks (on average, not counting collisions) will be primary BABE blocks.
	PrimaryProbabilityNumerator   uint64 = 1
	PrimaryProbabilityDenominator uint64 = 4

	/**currency consensus params**/
	MilliCents uint64 = 10_000_000_000_000

	// genesis allocation, in DPR
	GenesisAccountCount        uint64 = 2158 // 2 DPR each
	GenesisAccountBalanceDPR   uint64 = 2
	GenesisValidatorCount      uint64 = 7   // chain validators
	GenesisValidatorBalanceDPR uint64 = 110 // 100 for stash, 10 for controller
	// 250_000_000 DPR are bridged from Ethereum at genesis; more is bridged when the
	// remaining mining reward runs low
	TotalSupplyDPR uint64 = 250_000_000

	/**network params**/
	NetworkSS58Prefix uint16 = primitives.SS58Prefix
	IsTestnet         bool   = false
)
