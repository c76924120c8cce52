//go:build params_testnet
// +build params_testnet

package param

import "github.com/deepernetwork/dprparams/primitives"

//FILE: consensus configurable params collected here!
const (
	/**time consensus params**/
	MillisecsPerBlock primitives.Moment = 3000

	PrimaryProbabilityNumerator   uint64 = 1
	PrimaryProbabilityDenominator uint64 = 4

	/**currency consensus params**/
	MilliCents uint64 = 10_000_000_000_000

	GenesisAccountCount        uint64 = 16
	GenesisAccountBalanceDPR   uint64 = 1_000
	GenesisValidatorCount      uint64 = 3
	GenesisValidatorBalanceDPR uint64 = 110
	TotalSupplyDPR             uint64 = 250_000_000

	/**network params**/
	NetworkSS58Prefix uint16 = primitives.SS58Prefix
	IsTestnet         bool   = true
)
