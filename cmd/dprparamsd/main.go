package main

import (
	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/libs/cli"
)

func main() {
	rootCmd := createDprparamsdCmd()
	executor := cli.PrepareBaseCmd(rootCmd, "DPR", DefaultNodeHome)
	err := executor.Execute()
	if err != nil {
		panic(err)
	}
}

func createDprparamsdCmd() *cobra.Command {
	cobra.EnableCommandSorting = false
	ctx := NewDefaultContext()
	rootCmd := &cobra.Command{
		Use:               "dprparamsd",
		Short:             "Deeper chain parameter and account tool",
		PersistentPreRunE: PersistentPreRunEFn(ctx),
	}
	rootCmd.PersistentFlags().String(flagLogLevel, "info", "log level: debug, info, error or none")
	rootCmd.AddCommand(InitCmd(ctx))
	rootCmd.AddCommand(ShowCmd(ctx))
	rootCmd.AddCommand(AccountCmd(ctx))
	rootCmd.AddCommand(PalletAccountCmd(ctx))
	rootCmd.AddCommand(SignNonceCmd(ctx))
	rootCmd.AddCommand(VerifyNonceCmd(ctx))
	rootCmd.AddCommand(ConfigCmd(ctx))
	rootCmd.AddCommand(VersionCmd())
	return rootCmd
}
