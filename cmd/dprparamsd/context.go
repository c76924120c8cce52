package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/cli"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/deepernetwork/dprparams/param"
)

const flagLogLevel = "log-level"

var (
	DefaultNodeHome = os.ExpandEnv("$HOME/.dprparamsd")
)

type Context struct {
	Config *param.ChainParamsConfig
	Logger log.Logger
}

func NewDefaultContext() *Context {
	return NewContext(
		param.DefaultChainParamsConfig(),
		log.NewTMLogger(log.NewSyncWriter(os.Stderr)),
	)
}

func NewContext(config *param.ChainParamsConfig, logger log.Logger) *Context {
	return &Context{config, logger}
}

// Params derives the chain params from the loaded config.
func (ctx *Context) Params() (*param.ChainParams, error) {
	return ctx.Config.Build(ctx.Logger)
}

func FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !os.IsNotExist(err)
}

// PersistentPreRunEFn loads params.toml from --home when present, else keeps the compiled-in defaults.
func PersistentPreRunEFn(context *Context) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger := log.NewTMLogger(log.NewSyncWriter(os.Stderr))
		level, _ := cmd.Flags().GetString(flagLogLevel)
		option, err := log.AllowLevel(level)
		if err != nil {
			return err
		}
		context.Logger = log.NewFilter(logger, option).With("module", "main")

		home := viper.GetString(cli.HomeFlag)
		if !FileExists(param.ConfigFilePath(home)) {
			context.Logger.Debug("no params config, using compiled-in defaults", "home", home)
			return nil
		}
		config, err := param.ParseConfig(home)
		if err != nil {
			return err
		}
		context.Config = config
		return nil
	}
}
