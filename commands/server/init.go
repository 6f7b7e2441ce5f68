package server

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/crypto"
	"github.com/iov-one/swapkit/errors"
	cmn "github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
	tmtypes "github.com/tendermint/tendermint/types"
)

const (
	appStateKey = "app_state"
	flagForce   = "f"
)

// GenOptions can parse command-line and flag to
// generate default app_state for the genesis file.
// This is application-specific
type GenOptions func(args []string) (json.RawMessage, error)

// GenerateCoinKey returns a new private key together with the address
// derived from it. You can give coins to this address and hand the key
// to the user to access them.
func GenerateCoinKey() (swapkit.Address, *crypto.PrivateKey) {
	privKey := crypto.GenPrivKeyEd25519()
	return privKey.PublicKey().Address(), privKey
}

// GenesisPath returns the location of the genesis file within given home
// directory.
func GenesisPath(home string) string {
	return filepath.Join(home, "config", "genesis.json")
}

// InitCmd writes the application state into the genesis file. A minimal
// genesis file with a random chain id is created if none exists. An
// already initialized app_state is only replaced when the -f flag is set.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	var force bool
	initFlags := flag.NewFlagSet("init", flag.ContinueOnError)
	initFlags.BoolVar(&force, flagForce, false, "overwrite existing app_state")
	if err := initFlags.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	genFile := GenesisPath(home)
	if err := initGenesisFile(genFile, logger); err != nil {
		return err
	}

	options, err := gen(initFlags.Args())
	if err != nil {
		return errors.Wrap(err, "generate app state")
	}
	if err := addGenesisOptions(genFile, options, force); err != nil {
		return err
	}
	logger.Info("App state written", "path", genFile)
	return nil
}

// initGenesisFile creates a genesis file holding only a chain id.
// Validators are provided by the node configuration.
func initGenesisFile(genFile string, logger log.Logger) error {
	if fileExists(genFile) {
		logger.Info("Found genesis file", "path", genFile)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(genFile), 0755); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	genDoc := tmtypes.GenesisDoc{
		ChainID: fmt.Sprintf("test-chain-%v", cmn.RandStr(6)),
	}
	if err := genDoc.SaveAs(genFile); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	logger.Info("Generated genesis file", "path", genFile)
	return nil
}

func fileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !os.IsNotExist(err)
}

// GenesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type GenesisDoc map[string]json.RawMessage

func addGenesisOptions(filename string, options json.RawMessage, force bool) error {
	bz, err := ioutil.ReadFile(filename)
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	var doc GenesisDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if state, ok := doc[appStateKey]; ok && !force && len(state) > 0 && string(state) != "null" {
		return errors.Wrapf(errors.ErrState, "%s already set in %s, use -%s to overwrite", appStateKey, filename, flagForce)
	}

	doc[appStateKey] = options
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return ioutil.WriteFile(filename, out, 0600)
}
