package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/deepernetwork/dprparams/param"
)

var (
	GitTag    = "v0.1.0"
	GitCommit = ""
	GitDate   = ""
)

func VersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Version:", GitTag)
			fmt.Println("IsTestnet:", param.IsTestnet)
			if GitCommit != "" {
				fmt.Println("Git Commit:", GitCommit)
			}
			if GitDate != "" {
				fmt.Println("Git Commit Date:", GitDate)
			}
			fmt.Println("Architecture:", runtime.GOARCH)
			fmt.Println("Go Version:", runtime.Version())
			fmt.Println("Operating System:", runtime.GOOS)
			return nil
		},
	}

	return cmd
}
