package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deepernetwork/dprparams/primitives"
)

func printAccount(acc primitives.AccountId, prefix uint16) error {
	addr, err := acc.SS58(prefix)
	if err != nil {
		return err
	}
	fmt.Println("AccountId:", acc.Hex())
	fmt.Println("SS58:", addr)
	return nil
}

// parseAccount accepts either a 0x hex account or an SS58 address.
func parseAccount(s string) (primitives.AccountId, error) {
	if len(s) > 2 && s[:2] == "0x" {
		return primitives.HexToAccountId(s)
	}
	acc, _, err := primitives.ParseSS58(s)
	return acc, err
}

func AccountCmd(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "account [seed]",
		Short: "Derive a well-known account from a seed of at most 32 bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := ctx.Params()
			if err != nil {
				return err
			}
			acc, err := p.AccountCreator.CreateAccount(args[0])
			if err != nil {
				return err
			}
			return printAccount(acc, p.SS58Prefix)
		},
	}
}

func PalletAccountCmd(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "pallet-account [pallet_id]",
		Short: "Derive the sovereign account of an 8-byte pallet id, e.g. py/trsry",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := primitives.PalletIdFromString(args[0])
			if err != nil {
				return err
			}
			return printAccount(id.IntoAccount(), ctx.Config.SS58Prefix)
		},
	}
}
