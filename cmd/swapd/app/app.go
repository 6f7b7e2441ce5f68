/*
Package app links together all the various components
to construct the swapd application.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/app"
	"github.com/iov-one/swapkit/errors"
	"github.com/iov-one/swapkit/store/iavl"
	"github.com/iov-one/swapkit/x"
	"github.com/iov-one/swapkit/x/cash"
	"github.com/iov-one/swapkit/x/escrow"
	"github.com/iov-one/swapkit/x/sigs"
	"github.com/iov-one/swapkit/x/token"
	"github.com/iov-one/swapkit/x/utils"
	"github.com/prometheus/client_golang/prometheus"
	dbm "github.com/tendermint/tendermint/libs/db"
)

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// metrics, logging, and recovery. A nil registerer disables metrics.
func Chain(reg prometheus.Registerer) (app.Decorators, error) {
	var metrics *utils.Metrics
	if reg != nil {
		m, err := utils.NewMetrics(reg)
		if err != nil {
			return app.Decorators{}, err
		}
		metrics = m
	}
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		metrics,
		utils.NewActionTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	), nil
}

// Router returns a router dispatching to the cash, token and escrow
// handlers.
func Router(authFn x.Authenticator) *app.Router {
	r := app.NewRouter()
	wallets := cash.NewController(cash.NewWalletBucket())
	cash.RegisterRoutes(r, authFn, wallets)

	// the vault authority granted by escrow handlers is accepted
	// by the token accounts only
	tokens := token.NewController(x.ChainAuth(authFn, escrow.Authenticate{}), wallets)
	token.RegisterRoutes(r, tokens)
	escrow.RegisterRoutes(r, authFn, tokens, wallets)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/wallets", "/auth", "/tokens" and "/escrows"
func QueryRouter() swapkit.QueryRouter {
	r := swapkit.NewQueryRouter()
	r.RegisterAll(
		escrow.RegisterQuery,
		token.RegisterQuery,
		cash.RegisterQuery,
		sigs.RegisterQuery,
	)
	return r
}

// Initializers returns the genesis loaders of all extensions.
func Initializers() swapkit.Initializer {
	return swapkit.ChainInitializers(
		cash.Initializer{},
		token.Initializer{},
		escrow.Initializer{},
	)
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack(reg prometheus.Registerer) (swapkit.Handler, error) {
	authFn := Authenticator()
	chain, err := Chain(reg)
	if err != nil {
		return nil, err
	}
	return chain.WithHandler(Router(authFn)), nil
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h swapkit.Handler, tx swapkit.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {
	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, tx, h, debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (swapkit.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.NewCommitStoreFromDB(dbm.NewMemDB()), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
