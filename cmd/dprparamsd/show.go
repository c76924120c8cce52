package main

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"

	"github.com/deepernetwork/dprparams/param"
	"github.com/deepernetwork/dprparams/primitives"
)

const flagFormat = "format"

// balances are printed as decimal strings, they do not fit TOML or JSON integers
type currencyView struct {
	MilliCents                 string `json:"millicents" toml:"millicents"`
	Cents                      string `json:"cents" toml:"cents"`
	Dollars                    string `json:"dollars" toml:"dollars"`
	DPR                        string `json:"dpr" toml:"dpr"`
	GenesisAccountsTotal       string `json:"genesis_accounts_total" toml:"genesis_accounts_total"`
	GenesisValidatorsTotal     string `json:"genesis_validators_total" toml:"genesis_validators_total"`
	TotalSupply                string `json:"total_supply" toml:"total_supply"`
	TotalMiningReward          string `json:"total_mining_reward" toml:"total_mining_reward"`
	MicropaymentToCreditFactor string `json:"micropayment_to_credit_factor" toml:"micropayment_to_credit_factor"`
	DepositPerItem             string `json:"deposit_per_item" toml:"deposit_per_item"`
	DepositPerByte             string `json:"deposit_per_byte" toml:"deposit_per_byte"`
}

type paramsView struct {
	IsTestnet  bool                         `json:"is_testnet" toml:"is_testnet"`
	SS58Prefix uint16                       `json:"ss58_prefix" toml:"ss58_prefix"`
	Time       param.TimeParams             `json:"time" toml:"time"`
	Babe       param.BabeEpochConfiguration `json:"babe" toml:"babe"`
	Currency   currencyView                 `json:"currency" toml:"currency"`
}

func dec(b *primitives.Balance) string {
	return b.ToBig().String()
}

func newParamsView(p *param.ChainParams) paramsView {
	c := p.Currency
	return paramsView{
		IsTestnet:  param.IsTestnet,
		SS58Prefix: p.SS58Prefix,
		Time:       p.Time,
		Babe:       p.Time.BabeGenesisConfig(),
		Currency: currencyView{
			MilliCents:                 dec(&c.MilliCents),
			Cents:                      dec(&c.Cents),
			Dollars:                    dec(&c.Dollars),
			DPR:                        dec(&c.DPR),
			GenesisAccountsTotal:       dec(&c.GenesisAccountsTotal),
			GenesisValidatorsTotal:     dec(&c.GenesisValidatorsTotal),
			TotalSupply:                dec(&c.TotalSupply),
			TotalMiningReward:          dec(&c.TotalMiningReward),
			MicropaymentToCreditFactor: dec(&c.MicropaymentToCreditFactor),
			DepositPerItem:             dec(c.Deposit(1, 0)),
			DepositPerByte:             dec(c.Deposit(0, 1)),
		},
	}
}

func ShowCmd(ctx *Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the derived chain parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := ctx.Params()
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString(flagFormat)
			out, err := renderParams(newParamsView(p), format)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
	cmd.Flags().String(flagFormat, "json", "output format: json or toml")
	return cmd
}

func renderParams(v paramsView, format string) (string, error) {
	switch format {
	case "json":
		bz, err := json.MarshalIndent(v, "", "  ")
		return string(bz), err
	case "toml":
		bz, err := toml.Marshal(v)
		return string(bz), err
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
