package token

import (
	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
	"github.com/iov-one/swapkit/gconf"
	"github.com/iov-one/swapkit/orm"
	"github.com/iov-one/swapkit/x"
	"github.com/iov-one/swapkit/x/cash"
)

// Controller implements all custody operations on token accounts. Every
// operation that changes an account requires its owner to be
// authenticated.
type Controller struct {
	accounts orm.ModelBucket
	cash     cash.CoinMover
	auth     x.Authenticator
}

// NewController returns a controller using given authenticator to
// authorize account owners. Deposits are paid and refunded with the cash
// mover.
func NewController(auth x.Authenticator, mover cash.CoinMover) *Controller {
	return &Controller{
		accounts: NewAccountBucket(),
		cash:     mover,
		auth:     auth,
	}
}

// Account returns the account stored under given address.
func (c *Controller) Account(db swapkit.ReadOnlyKVStore, id swapkit.Address) (*Account, error) {
	var a Account
	if err := c.accounts.One(db, id, &a); err != nil {
		return nil, errors.Wrapf(err, "account %s", id)
	}
	return &a, nil
}

// Balance returns the amount of tokens held by an account.
func (c *Controller) Balance(db swapkit.ReadOnlyKVStore, id swapkit.Address) (uint64, error) {
	a, err := c.Account(db, id)
	if err != nil {
		return 0, err
	}
	return a.Amount, nil
}

// Authorize returns the account stored under given address if its owner is
// authenticated.
func (c *Controller) Authorize(ctx swapkit.Context, db swapkit.ReadOnlyKVStore, id swapkit.Address) (*Account, error) {
	a, err := c.Account(db, id)
	if err != nil {
		return nil, err
	}
	if !c.auth.HasAddress(ctx, a.Owner) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "owner of %s", id)
	}
	return a, nil
}

// CreateAccount creates an empty account owned by owner. The payer must be
// authenticated and is charged the configured account deposit.
func (c *Controller) CreateAccount(ctx swapkit.Context, db swapkit.KVStore, payer, id swapkit.Address, ticker string, owner swapkit.Address) error {
	if !c.auth.HasAddress(ctx, payer) {
		return errors.Wrap(errors.ErrUnauthorized, "payer signature missing")
	}
	var conf Configuration
	if err := gconf.Load(db, "token", &conf); err != nil {
		return errors.Wrap(err, "load configuration")
	}
	acc := &Account{
		Metadata: &swapkit.Metadata{Schema: 1},
		Ticker:   ticker,
		Owner:    owner,
		Deposit:  conf.AccountDeposit,
	}
	if err := c.create(db, id, acc); err != nil {
		return err
	}
	if acc.Deposit > 0 {
		if err := c.cash.MoveCoins(db, payer, DepositAddress(id), acc.Deposit); err != nil {
			return errors.Wrap(err, "pay account deposit")
		}
	}
	return nil
}

func (c *Controller) create(db swapkit.KVStore, id swapkit.Address, acc *Account) error {
	if err := id.Validate(); err != nil {
		return errors.Wrap(err, "account id")
	}
	switch err := c.accounts.Has(db, id); {
	case err == nil:
		return errors.Wrapf(errors.ErrDuplicate, "account %s", id)
	case !errors.ErrNotFound.Is(err):
		return err
	}
	return c.accounts.Put(db, id, acc)
}

// Issue mints tokens into an account. This is not authorized and must be
// used only by the genesis initializer and tests.
func (c *Controller) Issue(db swapkit.KVStore, id swapkit.Address, amount uint64) error {
	a, err := c.Account(db, id)
	if err != nil {
		return err
	}
	if a.Amount+amount < a.Amount {
		return errors.Wrap(errors.ErrOverflow, "issue")
	}
	a.Amount += amount
	return c.accounts.Put(db, id, a)
}

// Transfer moves amount of tokens between two accounts. Owner of the
// source account must be authenticated.
func (c *Controller) Transfer(ctx swapkit.Context, db swapkit.KVStore, from, to swapkit.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	if from.Equals(to) {
		return errors.Wrap(errors.ErrInput, "source and destination must differ")
	}
	src, err := c.Authorize(ctx, db, from)
	if err != nil {
		return err
	}
	dst, err := c.Account(db, to)
	if err != nil {
		return err
	}
	if src.Frozen {
		return errors.Wrapf(ErrAccountFrozen, "account %s", from)
	}
	if dst.Frozen {
		return errors.Wrapf(ErrAccountFrozen, "account %s", to)
	}
	if src.Ticker != dst.Ticker {
		return errors.Wrapf(ErrTickerMismatch, "%s to %s", src.Ticker, dst.Ticker)
	}
	if src.Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, want %d", src.Amount, amount)
	}
	if dst.Amount+amount < dst.Amount {
		return errors.Wrapf(errors.ErrOverflow, "account %s", to)
	}

	src.Amount -= amount
	dst.Amount += amount
	if err := c.accounts.Put(db, from, src); err != nil {
		return errors.Wrap(err, "save source")
	}
	if err := c.accounts.Put(db, to, dst); err != nil {
		return errors.Wrap(err, "save destination")
	}
	return nil
}

// SetAuthority changes the owner of an account. The current owner must be
// authenticated.
func (c *Controller) SetAuthority(ctx swapkit.Context, db swapkit.KVStore, id, newOwner swapkit.Address) error {
	if err := newOwner.Validate(); err != nil {
		return errors.Wrap(err, "new owner")
	}
	a, err := c.Authorize(ctx, db, id)
	if err != nil {
		return err
	}
	if a.Frozen {
		return errors.Wrapf(ErrAccountFrozen, "account %s", id)
	}
	a.Owner = newOwner
	return c.accounts.Put(db, id, a)
}

// CloseAccount removes an empty account and refunds its deposit to dest.
// The owner must be authenticated.
func (c *Controller) CloseAccount(ctx swapkit.Context, db swapkit.KVStore, id, dest swapkit.Address) error {
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	a, err := c.Authorize(ctx, db, id)
	if err != nil {
		return err
	}
	if a.Amount != 0 {
		return errors.Wrapf(ErrNonEmptyAccount, "balance %d", a.Amount)
	}
	if a.Deposit > 0 {
		if err := c.cash.MoveCoins(db, DepositAddress(id), dest, a.Deposit); err != nil {
			return errors.Wrap(err, "refund deposit")
		}
	}
	return c.accounts.Delete(db, id)
}
