package token

import (
	"regexp"

	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
	"github.com/iov-one/swapkit/orm"
)

// BucketName is where the accounts are stored.
const BucketName = "tokens"

// IsTicker is the RegExp to ensure valid ticker codes.
var IsTicker = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

var _ orm.Model = (*Account)(nil)

// Validate ensures the account is consistent.
func (a *Account) Validate() error {
	if err := a.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if !IsTicker(a.Ticker) {
		return errors.Wrapf(errors.ErrInput, "invalid ticker %q", a.Ticker)
	}
	if err := a.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

// NewAccountBucket returns a bucket for storing token accounts keyed by
// the account address.
func NewAccountBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Account{})
}

// DepositAddress returns the native wallet address that holds the deposit
// paid for given account.
func DepositAddress(id swapkit.Address) swapkit.Address {
	return swapkit.NewCondition("token", "deposit", id).Address()
}

// Validate ensures the configuration is complete.
func (c *Configuration) Validate() error {
	return errors.Wrap(c.Metadata.Validate(), "metadata")
}
