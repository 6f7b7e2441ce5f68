package cash

import (
	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
	"github.com/iov-one/swapkit/orm"
)

// CoinMover is the part of the controller needed to pay and refund
// deposits.
type CoinMover interface {
	// MoveCoins moves the given amount from src to dest.
	MoveCoins(db swapkit.KVStore, src, dest swapkit.Address, amount uint64) error
}

// Controller is the functionality needed by cash.SendHandler and the
// genesis initializer. Other extensions should depend on CoinMover only.
type Controller interface {
	CoinMover
	// Balance returns the native balance of an address. Unknown
	// addresses hold zero.
	Balance(db swapkit.ReadOnlyKVStore, addr swapkit.Address) (uint64, error)
	// IssueCoins adds to the balance of dest.
	IssueCoins(db swapkit.KVStore, dest swapkit.Address, amount uint64) error
}

// BaseController is the default Controller implementation.
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller operating on given wallet bucket.
func NewController(bucket orm.ModelBucket) BaseController {
	return BaseController{bucket: bucket}
}

func (c BaseController) load(db swapkit.ReadOnlyKVStore, addr swapkit.Address) (*Wallet, error) {
	var w Wallet
	switch err := c.bucket.One(db, addr, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return newWallet(), nil
	default:
		return nil, errors.Wrap(err, "cannot load wallet")
	}
}

// Balance returns the amount held by given address.
func (c BaseController) Balance(db swapkit.ReadOnlyKVStore, addr swapkit.Address) (uint64, error) {
	w, err := c.load(db, addr)
	if err != nil {
		return 0, err
	}
	return w.Amount, nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(db swapkit.KVStore, src, dest swapkit.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}

	sender, err := c.load(db, src)
	if err != nil {
		return err
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}
	if err := c.bucket.Put(db, src, sender); err != nil {
		return errors.Wrap(err, "cannot save sender")
	}

	// Recipient is loaded after the sender is saved so that moving coins
	// to the same wallet is a no-op.
	recipient, err := c.load(db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	if err := c.bucket.Put(db, dest, recipient); err != nil {
		return errors.Wrap(err, "cannot save recipient")
	}
	return nil
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
func (c BaseController) IssueCoins(db swapkit.KVStore, dest swapkit.Address, amount uint64) error {
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	w, err := c.load(db, dest)
	if err != nil {
		return err
	}
	if err := w.Add(amount); err != nil {
		return err
	}
	return c.bucket.Put(db, dest, w)
}
