package param

import (
	"github.com/pkg/errors"

	"github.com/deepernetwork/dprparams/internal/bigutils"
	"github.com/deepernetwork/dprparams/primitives"
)

// Block-based time units for the compiled-in network. A MillisecsPerBlock below
// one second makes the Minutes division fail to compile.
const (
	SecsPerBlock primitives.Moment = MillisecsPerBlock / 1000

	// These time units are defined in number of blocks.
	Minutes primitives.BlockNumber = 60 / primitives.BlockNumber(SecsPerBlock)
	Hours                          = Minutes * 60
	Days                           = Hours * 24

	SlotDuration primitives.Moment = MillisecsPerBlock

	EpochDurationInBlocks primitives.BlockNumber = 240 * Minutes

	// EpochDurationInBlocks scaled by the slot fill rate MillisecsPerBlock/SlotDuration,
	// truncated toward zero.
	EpochDurationInSlots uint64 = uint64(EpochDurationInBlocks) * MillisecsPerBlock / SlotDuration

	BlocksPerEra primitives.BlockNumber = 6 * EpochDurationInBlocks
)

var PrimaryProbability = Ratio{
	Numerator:   PrimaryProbabilityNumerator,
	Denominator: PrimaryProbabilityDenominator,
}

var (
	ErrSubSecondBlockTime = errors.New("millisecs per block must be at least 1000")
	ErrZeroSlotDuration   = errors.New("slot duration must be positive")
	ErrInvalidProbability = errors.New("primary probability must be a fraction in [0, 1]")
	ErrZeroEpoch          = errors.New("block time too long, an epoch would contain no blocks")
	ErrSlotOverflow       = errors.New("epoch duration in slots overflows uint64")
	ErrZeroEpochSlots     = errors.New("slot duration too long, an epoch would contain no slots")
)

// Ratio is an exact fraction, e.g. the BABE `c` parameter.
type Ratio struct {
	Numerator   uint64 `json:"numerator" toml:"numerator"`
	Denominator uint64 `json:"denominator" toml:"denominator"`
}

type AllowedSlots uint8

const (
	PrimarySlots AllowedSlots = iota
	PrimaryAndSecondaryPlainSlots
	PrimaryAndSecondaryVRFSlots
)

// BabeEpochConfiguration is the block production config put in genesis.
type BabeEpochConfiguration struct {
	C            Ratio        `json:"c" toml:"c"`
	AllowedSlots AllowedSlots `json:"allowed_slots" toml:"allowed_slots"`
}

type TimeConfig struct {
	MillisecsPerBlock  primitives.Moment
	SlotDuration       primitives.Moment
	PrimaryProbability Ratio
}

func DefaultTimeConfig() TimeConfig {
	return TimeConfig{
		MillisecsPerBlock:  MillisecsPerBlock,
		SlotDuration:       SlotDuration,
		PrimaryProbability: PrimaryProbability,
	}
}

func (c TimeConfig) Validate() error {
	if c.MillisecsPerBlock < 1000 {
		return errors.Wrapf(ErrSubSecondBlockTime, "got %d", c.MillisecsPerBlock)
	}
	if c.SlotDuration == 0 {
		return ErrZeroSlotDuration
	}
	p := c.PrimaryProbability
	if p.Denominator == 0 || p.Numerator > p.Denominator {
		return errors.Wrapf(ErrInvalidProbability, "%d/%d", p.Numerator, p.Denominator)
	}
	if 60/(c.MillisecsPerBlock/1000) == 0 {
		return errors.Wrapf(ErrZeroEpoch, "millisecs per block %d", c.MillisecsPerBlock)
	}
	return nil
}

type TimeParams struct {
	MillisecsPerBlock     primitives.Moment      `json:"millisecs_per_block" toml:"millisecs_per_block"`
	SecsPerBlock          primitives.Moment      `json:"secs_per_block" toml:"secs_per_block"`
	SlotDuration          primitives.Moment      `json:"slot_duration" toml:"slot_duration"`
	Minutes               primitives.BlockNumber `json:"minutes" toml:"minutes"`
	Hours                 primitives.BlockNumber `json:"hours" toml:"hours"`
	Days                  primitives.BlockNumber `json:"days" toml:"days"`
	EpochDurationInBlocks primitives.BlockNumber `json:"epoch_duration_in_blocks" toml:"epoch_duration_in_blocks"`
	EpochDurationInSlots  uint64                 `json:"epoch_duration_in_slots" toml:"epoch_duration_in_slots"`
	BlocksPerEra          primitives.BlockNumber `json:"blocks_per_era" toml:"blocks_per_era"`
	PrimaryProbability    Ratio                  `json:"primary_probability" toml:"primary_probability"`
}

// Derive computes every block-count time unit from the block time. The slot
// count uses exact integer arithmetic, which equals truncating the float product.
func (c TimeConfig) Derive() (TimeParams, error) {
	if err := c.Validate(); err != nil {
		return TimeParams{}, err
	}
	p := TimeParams{
		MillisecsPerBlock:  c.MillisecsPerBlock,
		SecsPerBlock:       c.MillisecsPerBlock / 1000,
		SlotDuration:       c.SlotDuration,
		PrimaryProbability: c.PrimaryProbability,
	}
	p.Minutes = primitives.BlockNumber(60 / p.SecsPerBlock)
	p.Hours = p.Minutes * 60
	p.Days = p.Hours * 24
	p.EpochDurationInBlocks = 240 * p.Minutes
	p.BlocksPerEra = 6 * p.EpochDurationInBlocks

	slots, ok := bigutils.MulDivU64(uint64(p.EpochDurationInBlocks), c.MillisecsPerBlock, c.SlotDuration)
	if !ok {
		return TimeParams{}, errors.Wrapf(ErrSlotOverflow, "%d blocks * %d / %d",
			p.EpochDurationInBlocks, c.MillisecsPerBlock, c.SlotDuration)
	}
	if slots == 0 {
		return TimeParams{}, errors.Wrapf(ErrZeroEpochSlots, "%d blocks * %d / %d",
			p.EpochDurationInBlocks, c.MillisecsPerBlock, c.SlotDuration)
	}
	p.EpochDurationInSlots = slots
	return p, nil
}

func MustDeriveTime(c TimeConfig) TimeParams {
	p, err := c.Derive()
	if err != nil {
		panic(err)
	}
	return p
}

func (p TimeParams) BabeGenesisConfig() BabeEpochConfiguration {
	return BabeEpochConfiguration{
		C:            p.PrimaryProbability,
		AllowedSlots: PrimaryAndSecondaryPlainSlots,
	}
}
