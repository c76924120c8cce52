package param

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveTime5000(t *testing.T) {
	p, err := TimeConfig{
		MillisecsPerBlock:  5000,
		SlotDuration:       5000,
		PrimaryProbability: Ratio{1, 4},
	}.Derive()
	require.NoError(t, err)
	require.EqualValues(t, 5, p.SecsPerBlock)
	require.EqualValues(t, 12, p.Minutes)
	require.EqualValues(t, 720, p.Hours)
	require.EqualValues(t, 17280, p.Days)
	require.EqualValues(t, 2880, p.EpochDurationInBlocks)
	require.EqualValues(t, 2880, p.EpochDurationInSlots)
	require.EqualValues(t, 17280, p.BlocksPerEra)
	require.Equal(t, Ratio{1, 4}, p.PrimaryProbability)
}

func TestDeriveTimeTruncates(t *testing.T) {
	// 7500 ms blocks: 7 s per block, 8 blocks a minute
	p, err := TimeConfig{MillisecsPerBlock: 7500, SlotDuration: 7500, PrimaryProbability: Ratio{1, 4}}.Derive()
	require.NoError(t, err)
	require.EqualValues(t, 7, p.SecsPerBlock)
	require.EqualValues(t, 8, p.Minutes)
	require.EqualValues(t, 1920, p.EpochDurationInBlocks)

	// fill rate 2/3: 2880 * 2/3 = 1920 exactly
	p, err = TimeConfig{MillisecsPerBlock: 4000, SlotDuration: 6000, PrimaryProbability: Ratio{1, 4}}.Derive()
	require.NoError(t, err)
	require.EqualValues(t, 3600, p.EpochDurationInBlocks)
	require.EqualValues(t, 2400, p.EpochDurationInSlots)

	// 14400 * 1000/7000 = 2057.14.. truncates to 2057
	p, err = TimeConfig{MillisecsPerBlock: 1000, SlotDuration: 7000, PrimaryProbability: Ratio{1, 4}}.Derive()
	require.NoError(t, err)
	require.EqualValues(t, 14400, p.EpochDurationInBlocks)
	require.EqualValues(t, 2057, p.EpochDurationInSlots)
}

func TestDeriveTimeMatchesFloatFormula(t *testing.T) {
	for _, ms := range []uint64{1000, 1500, 2000, 3000, 5000, 6000, 9999, 12000, 60000} {
		for _, slot := range []uint64{1, 7, 999, 1000, 3000, 5000, 6000, 60000} {
			p, err := TimeConfig{MillisecsPerBlock: ms, SlotDuration: slot, PrimaryProbability: Ratio{1, 4}}.Derive()
			require.NoError(t, err)
			fillRate := float64(ms) / float64(slot)
			want := uint64(float64(p.EpochDurationInBlocks) * fillRate)
			require.Equal(t, want, p.EpochDurationInSlots, "ms=%d slot=%d", ms, slot)
		}
	}
}

func TestTimeConfigValidate(t *testing.T) {
	ok := TimeConfig{MillisecsPerBlock: 5000, SlotDuration: 5000, PrimaryProbability: Ratio{1, 4}}
	require.NoError(t, ok.Validate())

	c := ok
	c.MillisecsPerBlock = 999
	require.ErrorIs(t, c.Validate(), ErrSubSecondBlockTime)
	c.MillisecsPerBlock = 0
	_, err := c.Derive()
	require.ErrorIs(t, err, ErrSubSecondBlockTime)

	c = ok
	c.SlotDuration = 0
	require.ErrorIs(t, c.Validate(), ErrZeroSlotDuration)

	c = ok
	c.PrimaryProbability = Ratio{1, 0}
	require.ErrorIs(t, c.Validate(), ErrInvalidProbability)
	c.PrimaryProbability = Ratio{5, 4}
	require.ErrorIs(t, c.Validate(), ErrInvalidProbability)

	c = ok
	c.MillisecsPerBlock = 61_000
	c.SlotDuration = 61_000
	require.ErrorIs(t, c.Validate(), ErrZeroEpoch)
	c.MillisecsPerBlock = 60_000
	require.NoError(t, c.Validate())
}

func TestDeriveTimeLongBlocks(t *testing.T) {
	_, err := TimeConfig{MillisecsPerBlock: math.MaxUint64 / 2, SlotDuration: 1, PrimaryProbability: Ratio{1, 4}}.Derive()
	require.ErrorIs(t, err, ErrZeroEpoch)

	_, err = TimeConfig{MillisecsPerBlock: 1000, SlotDuration: 1, PrimaryProbability: Ratio{1, 4}}.Derive()
	require.NoError(t, err)
}

func TestCompiledTimeConstants(t *testing.T) {
	p := MustDeriveTime(DefaultTimeConfig())
	require.Equal(t, SecsPerBlock, p.SecsPerBlock)
	require.Equal(t, Minutes, p.Minutes)
	require.Equal(t, Hours, p.Hours)
	require.Equal(t, Days, p.Days)
	require.Equal(t, EpochDurationInBlocks, p.EpochDurationInBlocks)
	require.Equal(t, EpochDurationInSlots, p.EpochDurationInSlots)
	require.Equal(t, BlocksPerEra, p.BlocksPerEra)
	require.Equal(t, MillisecsPerBlock, SlotDuration)

	require.Panics(t, func() { MustDeriveTime(TimeConfig{}) })
}

func TestBabeGenesisConfig(t *testing.T) {
	cfg := MustDeriveTime(DefaultTimeConfig()).BabeGenesisConfig()
	require.Equal(t, PrimaryProbability, cfg.C)
	require.Equal(t, PrimaryAndSecondaryPlainSlots, cfg.AllowedSlots)
}

func TestDeriveTimeZeroEpochSlots(t *testing.T) {
	// 2880 blocks of 5 s fit in one 14_400_000 ms slot, but not in a longer one
	p, err := TimeConfig{MillisecsPerBlock: 5000, SlotDuration: 14_400_000, PrimaryProbability: Ratio{1, 4}}.Derive()
	require.NoError(t, err)
	require.EqualValues(t, 1, p.EpochDurationInSlots)

	_, err = TimeConfig{MillisecsPerBlock: 5000, SlotDuration: 14_400_001, PrimaryProbability: Ratio{1, 4}}.Derive()
	require.ErrorIs(t, err, ErrZeroEpochSlots)

	_, err = TimeConfig{MillisecsPerBlock: 5000, SlotDuration: math.MaxUint64, PrimaryProbability: Ratio{1, 4}}.Derive()
	require.ErrorIs(t, err, ErrZeroEpochSlots)
}
