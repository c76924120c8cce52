package param

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"text/template"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	tmos "github.com/tendermint/tendermint/libs/os"
)

const defaultConfigTemplate = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml
# Every value below is consensus critical. Changing one after genesis is a hard fork.

# average block time in milliseconds, at least 1000
millisecs_per_block = {{ .MillisecsPerBlock }}

# BABE slot duration in milliseconds
slot_duration = {{ .SlotDuration }}

# fraction of slots expected to carry a primary block
primary_probability_numerator = {{ .PrimaryProbabilityNumerator }}
primary_probability_denominator = {{ .PrimaryProbabilityDenominator }}

# smallest named denomination; a cent is 1000 millicents and a DPR 100 cents
millicents = {{ .MilliCents }}

# genesis allocation, balances in the smallest unit
genesis_account_count = {{ .GenesisAccountCount }}
genesis_account_balance = "{{ .GenesisAccountBalance }}"
genesis_validator_count = {{ .GenesisValidatorCount }}
genesis_validator_balance = "{{ .GenesisValidatorBalance }}"
total_supply = "{{ .TotalSupply }}"

# address format prefix
ss58_prefix = {{ .SS58Prefix }}

# verify device signatures; false accepts every signature and is for test networks only
verify_signatures = {{ .VerifySignatures }}

# upper bound of a single payment, empty for no limit
single_max_limit = "{{ .SingleMaxLimit }}"
`

var configTemplate *template.Template

func init() {
	var err error
	tmpl := template.New("paramsConfigFileTemplate")
	if configTemplate, err = tmpl.Parse(defaultConfigTemplate); err != nil {
		panic(err)
	}
}

// ParseConfig reads <home>/config/params.toml on top of the compiled-in defaults.
func ParseConfig(home string) (*ChainParamsConfig, error) {
	v := viper.New()
	v.SetConfigFile(ConfigFilePath(home))
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "read params config")
	}
	return decodeConfig(v)
}

func ParseConfigTOML(r io.Reader) (*ChainParamsConfig, error) {
	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(r); err != nil {
		return nil, errors.Wrap(err, "read params config")
	}
	return decodeConfig(v)
}

var ErrConfigValueRange = errors.New("config value out of range")

func decodeConfig(v *viper.Viper) (*ChainParamsConfig, error) {
	conf := DefaultChainParamsConfig()
	err := v.Unmarshal(conf, viper.DecodeHook(unsignedRangeHook), func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = false
	})
	if err != nil {
		return nil, errors.Wrap(err, "decode params config")
	}
	return conf, nil
}

// unsignedRangeHook rejects numbers that would wrap or truncate when stored
// in an unsigned field.
func unsignedRangeHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	switch to.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	target := reflect.Zero(to)
	val := reflect.ValueOf(data)
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := val.Int()
		if i < 0 || target.OverflowUint(uint64(i)) {
			return nil, errors.Wrapf(ErrConfigValueRange, "%d does not fit %s", i, to)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if u := val.Uint(); target.OverflowUint(u) {
			return nil, errors.Wrapf(ErrConfigValueRange, "%d does not fit %s", u, to)
		}
	case reflect.Float32, reflect.Float64:
		return nil, errors.Wrapf(ErrConfigValueRange, "%v is not an integer", data)
	}
	return data, nil
}

func WriteConfigFile(configFilePath string, config *ChainParamsConfig) {
	var buffer bytes.Buffer
	if err := configTemplate.Execute(&buffer, config); err != nil {
		panic(err)
	}
	if err := tmos.EnsureDir(filepath.Dir(configFilePath), os.ModePerm); err != nil {
		panic(err)
	}
	tmos.MustWriteFile(configFilePath, buffer.Bytes(), 0644)
}
