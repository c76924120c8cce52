package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/cli"

	"github.com/deepernetwork/dprparams/param"
)

func ConfigCmd(ctx *Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "Print or modify params.toml",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigCmd(ctx, args)
		},
	}
	return cmd
}

func runConfigCmd(ctx *Context, args []string) error {
	cfgFile := param.ConfigFilePath(viper.GetString(cli.HomeFlag))

	// load configuration
	tree, err := loadConfigFile(cfgFile)
	if err != nil {
		return err
	}

	// print the config and exit
	if len(args) == 0 {
		s, err := tree.ToTomlString()
		if err != nil {
			return err
		}
		fmt.Print(s)
		return nil
	}
	key := args[0]
	if len(args) == 1 {
		fmt.Println(tree.Get(key))
		return nil
	}
	value := args[1]

	switch key {
	case "genesis_account_balance", "genesis_validator_balance", "total_supply", "single_max_limit":
		tree.Set(key, value)
	case "verify_signatures":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		tree.Set(key, boolVal)
	case "millisecs_per_block", "slot_duration", "primary_probability_numerator",
		"primary_probability_denominator", "millicents", "genesis_account_count",
		"genesis_validator_count", "ss58_prefix":
		uintVal, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		tree.Set(key, uintVal)
	default:
		return errUnknownConfigKey(key)
	}

	// refuse to save a file that would not derive
	if err := validateTree(ctx, tree); err != nil {
		return err
	}

	// save configuration to disk
	if err := saveConfigFile(cfgFile, tree); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stderr, "configuration saved to %s\n", cfgFile)
	return nil
}

func validateTree(ctx *Context, tree *toml.Tree) error {
	s, err := tree.ToTomlString()
	if err != nil {
		return err
	}
	conf, err := param.ParseConfigTOML(strings.NewReader(s))
	if err != nil {
		return err
	}
	_, err = conf.Build(ctx.Logger)
	return err
}

func loadConfigFile(cfgFile string) (*toml.Tree, error) {
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		_, _ = fmt.Fprintf(os.Stderr, "%s does not exist, run init first\n", cfgFile)
		return nil, err
	}

	bz, err := ioutil.ReadFile(cfgFile)
	if err != nil {
		return nil, err
	}

	tree, err := toml.LoadBytes(bz)
	if err != nil {
		return nil, err
	}

	return tree, nil
}

func saveConfigFile(cfgFile string, tree *toml.Tree) error {
	fp, err := os.OpenFile(cfgFile, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	defer fp.Close()

	_, err = tree.WriteTo(fp)
	return err
}

func errUnknownConfigKey(key string) error {
	return fmt.Errorf("unknown configuration key: %q", key)
}
