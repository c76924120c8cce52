package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/cli"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/deepernetwork/dprparams/param"
	"github.com/deepernetwork/dprparams/primitives"
)

func newTestContext() *Context {
	return NewContext(param.DefaultChainParamsConfig(), log.NewNopLogger())
}

func TestRenderParams(t *testing.T) {
	p, err := newTestContext().Params()
	require.NoError(t, err)
	v := newParamsView(p)
	require.Equal(t, param.TotalMiningReward().ToBig().String(), v.Currency.TotalMiningReward)
	require.Equal(t, param.Deposit(1, 0).ToBig().String(), v.Currency.DepositPerItem)

	out, err := renderParams(v, "json")
	require.NoError(t, err)
	var decoded paramsView
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Equal(t, v, decoded)

	out, err = renderParams(v, "toml")
	require.NoError(t, err)
	require.True(t, strings.Contains(out, "total_mining_reward"))
	require.True(t, strings.Contains(out, "epoch_duration_in_slots"))

	_, err = renderParams(v, "yaml")
	require.Error(t, err)
}

func TestParseAccount(t *testing.T) {
	acc, err := primitives.HexToAccountId("0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d")
	require.NoError(t, err)

	got, err := parseAccount(acc.Hex())
	require.NoError(t, err)
	require.Equal(t, acc, got)

	got, err = parseAccount("5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY")
	require.NoError(t, err)
	require.Equal(t, acc, got)

	_, err = parseAccount("not-an-address")
	require.Error(t, err)
}

func TestConfigCmd(t *testing.T) {
	home := t.TempDir()
	viper.Set(cli.HomeFlag, home)
	defer viper.Set(cli.HomeFlag, "")

	ctx := newTestContext()
	path := param.ConfigFilePath(home)
	require.Error(t, runConfigCmd(ctx, []string{"millisecs_per_block", "6000"}))

	param.WriteConfigFile(path, ctx.Config)
	require.NoError(t, runConfigCmd(ctx, []string{"millisecs_per_block", "6000"}))
	require.NoError(t, runConfigCmd(ctx, []string{"slot_duration", "6000"}))
	require.NoError(t, runConfigCmd(ctx, []string{"single_max_limit", "1000"}))
	require.NoError(t, runConfigCmd(ctx, []string{"verify_signatures", "false"}))

	require.Error(t, runConfigCmd(ctx, []string{"millisecs_per_block", "999"}))
	require.Error(t, runConfigCmd(ctx, []string{"total_supply", "1"}))
	require.Error(t, runConfigCmd(ctx, []string{"no_such_key", "1"}))
	require.Error(t, runConfigCmd(ctx, []string{"verify_signatures", "maybe"}))

	conf, err := param.ParseConfig(home)
	require.NoError(t, err)
	require.EqualValues(t, 6000, conf.MillisecsPerBlock)
	require.EqualValues(t, 6000, conf.SlotDuration)
	require.Equal(t, "1000", conf.SingleMaxLimit)
	require.False(t, conf.VerifySignatures)
	require.Equal(t, ctx.Config.TotalSupply, conf.TotalSupply)
}
