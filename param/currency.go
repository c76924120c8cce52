package param

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/deepernetwork/dprparams/internal/bigutils"
	"github.com/deepernetwork/dprparams/primitives"
)

// Money matters.
const (
	Cents   uint64 = 1_000 * MilliCents // assume this is worth about a cent.
	Dollars uint64 = 100 * Cents
	DPR     uint64 = Dollars

	// 1 credit per 10 MB of micropayment traffic
	MicropaymentToCreditFactor uint64 = DPR * 10 / (1024 * 1024)
)

var (
	ErrZeroMilliCents       = errors.New("millicents must be positive")
	ErrGenesisExceedsSupply = errors.New("genesis allocations leave no mining reward")
)

type CurrencyConfig struct {
	MilliCents              uint64
	GenesisAccountCount     uint64
	GenesisAccountBalance   primitives.Balance
	GenesisValidatorCount   uint64
	GenesisValidatorBalance primitives.Balance
	TotalSupply             primitives.Balance
}

func DefaultCurrencyConfig() CurrencyConfig {
	dpr := uint256.NewInt(DPR)
	return CurrencyConfig{
		MilliCents:              MilliCents,
		GenesisAccountCount:     GenesisAccountCount,
		GenesisAccountBalance:   *new(uint256.Int).Mul(uint256.NewInt(GenesisAccountBalanceDPR), dpr),
		GenesisValidatorCount:   GenesisValidatorCount,
		GenesisValidatorBalance: *new(uint256.Int).Mul(uint256.NewInt(GenesisValidatorBalanceDPR), dpr),
		TotalSupply:             *new(uint256.Int).Mul(uint256.NewInt(TotalSupplyDPR), dpr),
	}
}

type CurrencyParams struct {
	MilliCents                 primitives.Balance
	Cents                      primitives.Balance
	Dollars                    primitives.Balance
	DPR                        primitives.Balance
	GenesisAccountsTotal       primitives.Balance
	GenesisValidatorsTotal     primitives.Balance
	TotalSupply                primitives.Balance
	TotalMiningReward          primitives.Balance
	MicropaymentToCreditFactor primitives.Balance
}

// Derive computes the denominations and the mining reward left after the genesis
// allocations. The reward must be strictly positive.
func (c CurrencyConfig) Derive() (*CurrencyParams, error) {
	if c.MilliCents == 0 {
		return nil, ErrZeroMilliCents
	}
	for _, b := range []*primitives.Balance{&c.GenesisAccountBalance, &c.GenesisValidatorBalance, &c.TotalSupply} {
		if err := primitives.CheckBalance(b); err != nil {
			return nil, err
		}
	}

	p := &CurrencyParams{}
	p.MilliCents.SetUint64(c.MilliCents)
	p.Cents.Mul(&p.MilliCents, uint256.NewInt(1_000))
	p.Dollars.Mul(&p.Cents, uint256.NewInt(100))
	p.DPR.Set(&p.Dollars)

	accounts, err := bigutils.MulBalance(uint256.NewInt(c.GenesisAccountCount), &c.GenesisAccountBalance)
	if err != nil {
		return nil, errors.Wrap(err, "genesis accounts")
	}
	validators, err := bigutils.MulBalance(uint256.NewInt(c.GenesisValidatorCount), &c.GenesisValidatorBalance)
	if err != nil {
		return nil, errors.Wrap(err, "genesis validators")
	}
	p.GenesisAccountsTotal.Set(accounts)
	p.GenesisValidatorsTotal.Set(validators)
	p.TotalSupply.Set(&c.TotalSupply)

	allocated := new(uint256.Int).Add(accounts, validators)
	if !allocated.Lt(&c.TotalSupply) {
		return nil, errors.Wrapf(ErrGenesisExceedsSupply, "allocated %s of total supply %s",
			allocated.ToBig().String(), c.TotalSupply.ToBig().String())
	}
	p.TotalMiningReward.Sub(&c.TotalSupply, allocated)

	p.MicropaymentToCreditFactor.Mul(&p.DPR, uint256.NewInt(10))
	p.MicropaymentToCreditFactor.Div(&p.MicropaymentToCreditFactor, uint256.NewInt(1024*1024))
	return p, nil
}

func MustDeriveCurrency(c CurrencyConfig) *CurrencyParams {
	p, err := c.Derive()
	if err != nil {
		panic(err)
	}
	return p
}

// Deposit prices storage: 15 cents per item plus 6 cents per byte.
func (p *CurrencyParams) Deposit(items, bytes uint32) *primitives.Balance {
	return deposit(&p.Cents, items, bytes)
}

func deposit(cents *uint256.Int, items, bytes uint32) *primitives.Balance {
	perItem := new(uint256.Int).Mul(uint256.NewInt(15), cents)
	perByte := new(uint256.Int).Mul(uint256.NewInt(6), cents)
	res := perItem.Mul(perItem, uint256.NewInt(uint64(items)))
	return res.Add(res, perByte.Mul(perByte, uint256.NewInt(uint64(bytes))))
}

// Deposit prices storage under the compiled-in denominations.
func Deposit(items, bytes uint32) *primitives.Balance {
	return deposit(uint256.NewInt(Cents), items, bytes)
}

// derived once at startup; a bad genesis allocation panics here.
var currency = MustDeriveCurrency(DefaultCurrencyConfig())

func TotalSupply() *primitives.Balance {
	return new(uint256.Int).Set(&currency.TotalSupply)
}

func TotalMiningReward() *primitives.Balance {
	return new(uint256.Int).Set(&currency.TotalMiningReward)
}

func GenesisAccountsTotal() *primitives.Balance {
	return new(uint256.Int).Set(&currency.GenesisAccountsTotal)
}

func GenesisValidatorsTotal() *primitives.Balance {
	return new(uint256.Int).Set(&currency.GenesisValidatorsTotal)
}
