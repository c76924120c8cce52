package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/cli"

	"github.com/deepernetwork/dprparams/param"
)

const flagOverwrite = "overwrite"

func InitCmd(ctx *Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default params.toml",
		Long:  `Write the compiled-in chain parameters to <home>/config/params.toml.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := param.ConfigFilePath(viper.GetString(cli.HomeFlag))
			overwrite, _ := cmd.Flags().GetBool(flagOverwrite)
			if FileExists(path) && !overwrite {
				return fmt.Errorf("%s already exists, use --%s to replace it", path, flagOverwrite)
			}
			// validate before writing anything
			if _, err := ctx.Params(); err != nil {
				return err
			}
			param.WriteConfigFile(path, ctx.Config)
			_, _ = fmt.Fprintf(os.Stderr, "params written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolP(flagOverwrite, "o", false, "overwrite an existing params.toml")
	return cmd
}
