package escrow

import (
	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
	"github.com/iov-one/swapkit/gconf"
)

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ swapkit.Initializer = Initializer{}

// FromGenesis stores the escrow configuration. Escrows can only be created
// by transactions, so there is no genesis state besides the configuration.
func (Initializer) FromGenesis(opts swapkit.Options, db swapkit.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(db, opts, optKey, &conf); err != nil {
		return errors.Wrap(err, "init config")
	}
	if _, err := VaultAuthority(conf.ProgramID); err != nil {
		return err
	}
	return nil
}
