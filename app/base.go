package app

import (
	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// DefaultMaxTxSize is the largest serialized transaction accepted unless
// configured otherwise.
const DefaultMaxTxSize = 64 * 1024

// BaseApp adds DeliverTx and CheckTx handlers to the storage and query
// functionality of StoreApp
type BaseApp struct {
	*StoreApp
	decoder   swapkit.TxDecoder
	handler   swapkit.Handler
	maxTxSize int
	debug     bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp constructs a basic abci application
func NewBaseApp(store *StoreApp, decoder swapkit.TxDecoder, handler swapkit.Handler, debug bool) BaseApp {
	return BaseApp{
		StoreApp:  store,
		decoder:   decoder,
		handler:   handler,
		maxTxSize: DefaultMaxTxSize,
		debug:     debug,
	}
}

// WithMaxTxSize returns a copy of the app that rejects transactions
// larger than given size. Zero disables the limit.
func (b BaseApp) WithMaxTxSize(size int) BaseApp {
	b.maxTxSize = size
	return b
}

// DeliverTx - ABCI - dispatches to the handler
func (b BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return swapkit.DeliverTxError(err, b.debug)
	}

	ctx := swapkit.WithLogInfo(b.BlockContext(),
		"call", "deliver_tx",
		"path", swapkit.GetPath(tx))

	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	return swapkit.DeliverOrError(res, err, b.debug)
}

// CheckTx - ABCI - dispatches to the handler
func (b BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return swapkit.CheckTxError(err, b.debug)
	}

	ctx := swapkit.WithLogInfo(b.BlockContext(),
		"call", "check_tx",
		"path", swapkit.GetPath(tx))

	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return swapkit.CheckOrError(res, err, b.debug)
}

// loadTx calls the decoder, and capture any panics
func (b BaseApp) loadTx(txBytes []byte) (tx swapkit.Tx, err error) {
	if b.maxTxSize > 0 && len(txBytes) > b.maxTxSize {
		return nil, errors.Wrapf(errors.ErrInput, "transaction of %d bytes exceeds the %d bytes limit", len(txBytes), b.maxTxSize)
	}
	defer errors.Recover(&err)
	tx, err = b.decoder(txBytes)
	return
}
