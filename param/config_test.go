package param

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/deepernetwork/dprparams/primitives"
)

func TestDefaultChainParams(t *testing.T) {
	p := DefaultChainParams(log.NewNopLogger())
	require.Equal(t, MustDeriveTime(DefaultTimeConfig()), p.Time)
	require.True(t, p.Currency.TotalMiningReward.Eq(TotalMiningReward()))
	require.Equal(t, NetworkSS58Prefix, p.SS58Prefix)
	require.IsType(t, primitives.MultiSignatureVerifier{}, p.SignatureVerifier)
	require.IsType(t, primitives.NopPaymentLimitPolicy{}, p.PaymentLimit)
	require.IsType(t, primitives.TrailingZeroAccountCreator{}, p.AccountCreator)
}

func TestBuildPolicies(t *testing.T) {
	c := DefaultChainParamsConfig()
	c.VerifySignatures = false
	c.SingleMaxLimit = "0x64"
	p, err := c.Build(log.NewNopLogger())
	require.NoError(t, err)
	require.IsType(t, primitives.NopSignatureVerifier{}, p.SignatureVerifier)
	require.True(t, p.PaymentLimit.IsWithinSingleMaxLimit(primitives.NewBalance(100)))
	require.False(t, p.PaymentLimit.IsWithinSingleMaxLimit(primitives.NewBalance(101)))
}

func TestBuildRejectsBadConfig(t *testing.T) {
	c := DefaultChainParamsConfig()
	c.MillisecsPerBlock = 500
	_, err := c.Build(log.NewNopLogger())
	require.ErrorIs(t, err, ErrSubSecondBlockTime)

	c = DefaultChainParamsConfig()
	c.TotalSupply = "1000"
	_, err = c.Build(log.NewNopLogger())
	require.ErrorIs(t, err, ErrGenesisExceedsSupply)

	c = DefaultChainParamsConfig()
	c.GenesisAccountBalance = "two"
	_, err = c.Build(log.NewNopLogger())
	require.Error(t, err)

	c = DefaultChainParamsConfig()
	c.SingleMaxLimit = "0x1ffffffffffffffffffffffffffffffff"
	_, err = c.Build(log.NewNopLogger())
	require.ErrorIs(t, err, primitives.ErrBalanceOverflow)

	c = DefaultChainParamsConfig()
	c.SS58Prefix = 20000
	_, err = c.Build(log.NewNopLogger())
	require.ErrorIs(t, err, primitives.ErrInvalidSS58Prefix)
}

func TestConfigFileRoundTrip(t *testing.T) {
	home := t.TempDir()
	c := DefaultChainParamsConfig()
	c.MillisecsPerBlock = 6000
	c.SlotDuration = 6000
	c.SingleMaxLimit = "5000000000000000000000"
	c.VerifySignatures = false
	c.SS58Prefix = 1000
	WriteConfigFile(ConfigFilePath(home), c)

	parsed, err := ParseConfig(home)
	require.NoError(t, err)
	require.Equal(t, c, parsed)

	p, err := parsed.Build(log.NewNopLogger())
	require.NoError(t, err)
	require.EqualValues(t, 10, p.Time.Minutes)
}

func TestParseConfigMissingFile(t *testing.T) {
	_, err := ParseConfig(t.TempDir())
	require.Error(t, err)
}

func TestParseConfigTOML(t *testing.T) {
	conf, err := ParseConfigTOML(strings.NewReader(`
millisecs_per_block = 6000
slot_duration = 6000
single_max_limit = "100"
verify_signatures = false
`))
	require.NoError(t, err)
	require.EqualValues(t, 6000, conf.MillisecsPerBlock)
	require.Equal(t, "100", conf.SingleMaxLimit)
	require.False(t, conf.VerifySignatures)
	// untouched keys keep their defaults
	require.Equal(t, DefaultChainParamsConfig().TotalSupply, conf.TotalSupply)

	_, err = ParseConfigTOML(strings.NewReader("millisecs_per_block = ["))
	require.Error(t, err)
}

func TestParseConfigTOMLRejectsOutOfRange(t *testing.T) {
	for _, doc := range []string{
		"slot_duration = -1",
		"millisecs_per_block = -6000",
		"ss58_prefix = 65578",
		"ss58_prefix = -1",
		"millicents = 1.5",
	} {
		_, err := ParseConfigTOML(strings.NewReader(doc))
		require.ErrorIs(t, err, ErrConfigValueRange, doc)
	}

	conf, err := ParseConfigTOML(strings.NewReader("ss58_prefix = 65535"))
	require.NoError(t, err)
	require.EqualValues(t, 65535, conf.SS58Prefix)
}

func TestBuildRejectsNegativeBalances(t *testing.T) {
	for _, doc := range []string{
		`single_max_limit = "-115792089237316195423570985008687907853269984665640564039457584007913129639931"`,
		`total_supply = "-1"`,
		`genesis_account_balance = "-100"`,
		`genesis_validator_balance = "-0x10"`,
	} {
		conf, err := ParseConfigTOML(strings.NewReader(doc))
		require.NoError(t, err)
		_, err = conf.Build(log.NewNopLogger())
		require.Error(t, err, doc)
	}
}

func TestBuildRejectsZeroEpochSlots(t *testing.T) {
	conf, err := ParseConfigTOML(strings.NewReader("slot_duration = 18000000000"))
	require.NoError(t, err)
	_, err = conf.Build(log.NewNopLogger())
	require.ErrorIs(t, err, ErrZeroEpochSlots)
}
