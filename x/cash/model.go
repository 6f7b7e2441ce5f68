package cash

import (
	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
	"github.com/iov-one/swapkit/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

var _ orm.Model = (*Wallet)(nil)

// Validate requires the metadata to be present.
func (w *Wallet) Validate() error {
	return errors.Wrap(w.Metadata.Validate(), "metadata")
}

// Add increases the balance, failing on overflow.
func (w *Wallet) Add(amount uint64) error {
	sum := w.Amount + amount
	if sum < w.Amount {
		return errors.Wrapf(errors.ErrOverflow, "cannot add %d to %d", amount, w.Amount)
	}
	w.Amount = sum
	return nil
}

// Subtract decreases the balance, failing if the wallet does not hold
// enough.
func (w *Wallet) Subtract(amount uint64) error {
	if w.Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, want %d", w.Amount, amount)
	}
	w.Amount -= amount
	return nil
}

// NewWalletBucket returns a bucket for storing wallets, keyed by address.
func NewWalletBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Wallet{})
}

func newWallet() *Wallet {
	return &Wallet{Metadata: &swapkit.Metadata{Schema: 1}}
}
