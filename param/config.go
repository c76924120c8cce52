package param

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/deepernetwork/dprparams/internal/bigutils"
	"github.com/deepernetwork/dprparams/primitives"
)

const (
	ConfigDirName  = "config"
	ConfigFileName = "params.toml"
)

// ChainParamsConfig is the on-disk form of the chain parameters. Balances are
// decimal or 0x-hex strings in the smallest unit.
type ChainParamsConfig struct {
	// time
	MillisecsPerBlock             uint64 `mapstructure:"millisecs_per_block"`
	SlotDuration                  uint64 `mapstructure:"slot_duration"`
	PrimaryProbabilityNumerator   uint64 `mapstructure:"primary_probability_numerator"`
	PrimaryProbabilityDenominator uint64 `mapstructure:"primary_probability_denominator"`

	// currency
	MilliCents              uint64 `mapstructure:"millicents"`
	GenesisAccountCount     uint64 `mapstructure:"genesis_account_count"`
	GenesisAccountBalance   string `mapstructure:"genesis_account_balance"`
	GenesisValidatorCount   uint64 `mapstructure:"genesis_validator_count"`
	GenesisValidatorBalance string `mapstructure:"genesis_validator_balance"`
	TotalSupply             string `mapstructure:"total_supply"`

	// network and policies
	SS58Prefix       uint16 `mapstructure:"ss58_prefix"`
	VerifySignatures bool   `mapstructure:"verify_signatures"`
	// empty means no limit
	SingleMaxLimit string `mapstructure:"single_max_limit"`
}

func DefaultChainParamsConfig() *ChainParamsConfig {
	cc := DefaultCurrencyConfig()
	return &ChainParamsConfig{
		MillisecsPerBlock:             MillisecsPerBlock,
		SlotDuration:                  SlotDuration,
		PrimaryProbabilityNumerator:   PrimaryProbabilityNumerator,
		PrimaryProbabilityDenominator: PrimaryProbabilityDenominator,
		MilliCents:                    cc.MilliCents,
		GenesisAccountCount:           cc.GenesisAccountCount,
		GenesisAccountBalance:         cc.GenesisAccountBalance.ToBig().String(),
		GenesisValidatorCount:         cc.GenesisValidatorCount,
		GenesisValidatorBalance:       cc.GenesisValidatorBalance.ToBig().String(),
		TotalSupply:                   cc.TotalSupply.ToBig().String(),
		SS58Prefix:                    NetworkSS58Prefix,
		VerifySignatures:              true,
	}
}

func ConfigFilePath(home string) string {
	return filepath.Join(home, ConfigDirName, ConfigFileName)
}

func (c *ChainParamsConfig) TimeConfig() TimeConfig {
	return TimeConfig{
		MillisecsPerBlock: c.MillisecsPerBlock,
		SlotDuration:      c.SlotDuration,
		PrimaryProbability: Ratio{
			Numerator:   c.PrimaryProbabilityNumerator,
			Denominator: c.PrimaryProbabilityDenominator,
		},
	}
}

func (c *ChainParamsConfig) CurrencyConfig() (CurrencyConfig, error) {
	cc := CurrencyConfig{
		MilliCents:            c.MilliCents,
		GenesisAccountCount:   c.GenesisAccountCount,
		GenesisValidatorCount: c.GenesisValidatorCount,
	}
	fields := []struct {
		name string
		in   string
		out  *primitives.Balance
	}{
		{"genesis_account_balance", c.GenesisAccountBalance, &cc.GenesisAccountBalance},
		{"genesis_validator_balance", c.GenesisValidatorBalance, &cc.GenesisValidatorBalance},
		{"total_supply", c.TotalSupply, &cc.TotalSupply},
	}
	for _, f := range fields {
		b, err := bigutils.ParseBalance(f.in)
		if err != nil {
			return cc, errors.Wrap(err, f.name)
		}
		f.out.Set(b)
	}
	return cc, nil
}

func (c *ChainParamsConfig) PaymentLimitPolicy() (primitives.PaymentLimitPolicy, error) {
	if c.SingleMaxLimit == "" {
		return primitives.NopPaymentLimitPolicy{}, nil
	}
	limit, err := bigutils.ParseBalance(c.SingleMaxLimit)
	if err != nil {
		return nil, errors.Wrap(err, "single_max_limit")
	}
	return primitives.NewSingleMaxLimitPolicy(limit)
}

func (c *ChainParamsConfig) SignatureVerifier() primitives.SignatureVerifier {
	if c.VerifySignatures {
		return primitives.MultiSignatureVerifier{}
	}
	return primitives.NopSignatureVerifier{}
}

// ChainParams is the validated, derived parameter set plus the policies the
// runtime is assembled with. It is read-only after Build.
type ChainParams struct {
	Time              TimeParams
	Currency          *CurrencyParams
	SS58Prefix        uint16
	PaymentLimit      primitives.PaymentLimitPolicy
	SignatureVerifier primitives.SignatureVerifier
	AccountCreator    primitives.AccountCreator
}

func (c *ChainParamsConfig) Build(logger log.Logger) (*ChainParams, error) {
	logger = logger.With("module", "param")

	timeParams, err := c.TimeConfig().Derive()
	if err != nil {
		logger.Error("invalid time params", "err", err)
		return nil, err
	}
	cc, err := c.CurrencyConfig()
	if err != nil {
		logger.Error("invalid currency config", "err", err)
		return nil, err
	}
	currencyParams, err := cc.Derive()
	if err != nil {
		logger.Error("invalid currency params", "err", err)
		return nil, err
	}
	if _, err := (primitives.AccountId{}).SS58(c.SS58Prefix); err != nil {
		logger.Error("invalid ss58 prefix", "err", err)
		return nil, err
	}
	limit, err := c.PaymentLimitPolicy()
	if err != nil {
		logger.Error("invalid payment limit", "err", err)
		return nil, err
	}

	p := &ChainParams{
		Time:              timeParams,
		Currency:          currencyParams,
		SS58Prefix:        c.SS58Prefix,
		PaymentLimit:      limit,
		SignatureVerifier: c.SignatureVerifier(),
		AccountCreator:    primitives.TrailingZeroAccountCreator{},
	}
	if !c.VerifySignatures {
		logger.Info("signature verification disabled, every device signature is accepted")
	}
	logger.Info("chain params derived",
		"millisecs_per_block", timeParams.MillisecsPerBlock,
		"epoch_blocks", timeParams.EpochDurationInBlocks,
		"epoch_slots", timeParams.EpochDurationInSlots,
		"blocks_per_era", timeParams.BlocksPerEra,
		"dpr", currencyParams.DPR.ToBig().String(),
		"total_mining_reward", currencyParams.TotalMiningReward.ToBig().String())
	return p, nil
}

// DefaultChainParams builds the compiled-in network parameters.
func DefaultChainParams(logger log.Logger) *ChainParams {
	p, err := DefaultChainParamsConfig().Build(logger)
	if err != nil {
		panic(err)
	}
	return p
}
