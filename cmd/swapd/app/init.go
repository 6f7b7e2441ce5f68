package app

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/commands/server"
	"github.com/iov-one/swapkit/crypto"
	"github.com/iov-one/swapkit/errors"
	"github.com/iov-one/swapkit/x/cash"
	"github.com/iov-one/swapkit/x/escrow"
	"github.com/iov-one/swapkit/x/token"
	"github.com/prometheus/client_golang/prometheus"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	// genesisCash is the native balance of the dev account.
	genesisCash = 1000000
	// genesisTokens is the balance of every dev token account.
	genesisTokens = 1000000
)

// DefaultTickers are the token accounts created for the dev account when
// no ticker is given to GenInitOptions.
var DefaultTickers = []string{"AAA", "BBB"}

// ProgramID is the identity the escrow vault authority is derived from in
// genesis files generated by GenInitOptions.
var ProgramID = swapkit.NewCondition("escrow", "program", []byte("swapd")).Address()

// GenesisTokenID returns the id of the dev token account holding given
// ticker.
func GenesisTokenID(owner swapkit.Address, ticker string) swapkit.Address {
	return swapkit.NewCondition("genesis", "token", append([]byte(ticker+":"), owner...)).Address()
}

type genesisConf struct {
	Token  *token.Configuration  `json:"token"`
	Escrow *escrow.Configuration `json:"escrow"`
}

type genesisState struct {
	Cash  []cash.GenesisAccount `json:"cash"`
	Token struct {
		Accounts []token.GenesisAccount `json:"accounts"`
	} `json:"token"`
	Conf genesisConf `json:"conf"`
}

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode.
//
// The first argument is the address of the account. A new key is
// generated and printed if it is missing. The remaining arguments are
// the tickers of the token accounts created for it.
func GenInitOptions(args []string) (json.RawMessage, error) {
	var addr swapkit.Address
	if len(args) > 0 {
		a, err := swapkit.ParseAddress(args[0])
		if err != nil {
			return nil, errors.Wrap(err, "account address")
		}
		addr = a
	} else {
		// if no address provided, auto-generate one
		// and print out the keys
		a, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = a
		fmt.Println(keys)
	}

	tickers := DefaultTickers
	if len(args) > 1 {
		tickers = args[1:]
	}

	var state genesisState
	state.Cash = []cash.GenesisAccount{{Address: addr, Amount: genesisCash}}
	for _, t := range tickers {
		if !token.IsTicker(t) {
			return nil, errors.Wrapf(errors.ErrInput, "invalid ticker %q", t)
		}
		state.Token.Accounts = append(state.Token.Accounts, token.GenesisAccount{
			ID:     GenesisTokenID(addr, t),
			Ticker: t,
			Owner:  addr,
			Amount: genesisTokens,
		})
	}
	state.Conf = genesisConf{
		Token: &token.Configuration{
			Metadata:       &swapkit.Metadata{Schema: 1},
			AccountDeposit: 10,
		},
		Escrow: &escrow.Configuration{
			Metadata:      &swapkit.Metadata{Schema: 1},
			ProgramID:     ProgramID,
			RecordDeposit: 5,
		},
	}
	return json.MarshalIndent(state, "", "  ")
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "swap.db")
	}

	stack, err := Stack(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, err
	}
	application, err := Application("swapd", stack, TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(Initializers())

	// set the logger and return
	application.WithLogger(logger)
	return application, nil
}

type output struct {
	Address swapkit.Address    `json:"address"`
	Pubkey  *crypto.PublicKey  `json:"pub_key"`
	Secret  *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a new key,
// along with a json representation of the keys.
// You can give coins to this address and
// import the keys in a client to use them
func GenerateCoinKey() (swapkit.Address, string, error) {
	addr, privKey := server.GenerateCoinKey()
	out := output{Address: addr, Pubkey: privKey.PublicKey(), Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrInput, err.Error())
	}
	return addr, string(keys), nil
}
