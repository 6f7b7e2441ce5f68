package token

import (
	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
	"github.com/iov-one/swapkit/gconf"
)

const optKey = "token"

// GenesisAccount describes an account created from the genesis file.
type GenesisAccount struct {
	ID     swapkit.Address `json:"id"`
	Ticker string          `json:"ticker"`
	Owner  swapkit.Address `json:"owner"`
	Amount uint64          `json:"amount"`
	Frozen bool            `json:"frozen"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ swapkit.Initializer = Initializer{}

// FromGenesis stores the token configuration and creates all genesis
// accounts. Genesis accounts are created without a deposit.
func (Initializer) FromGenesis(opts swapkit.Options, db swapkit.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(db, opts, optKey, &conf); err != nil {
		return errors.Wrap(err, "init config")
	}

	var state struct {
		Accounts []GenesisAccount `json:"accounts"`
	}
	if err := opts.ReadOptions(optKey, &state); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	ctrl := &Controller{accounts: NewAccountBucket()}
	for i, a := range state.Accounts {
		acc := &Account{
			Metadata: &swapkit.Metadata{Schema: 1},
			Ticker:   a.Ticker,
			Owner:    a.Owner,
			Amount:   a.Amount,
			Frozen:   a.Frozen,
		}
		if err := ctrl.create(db, a.ID, acc); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
	}
	return nil
}
