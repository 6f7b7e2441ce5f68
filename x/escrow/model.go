package escrow

import (
	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
	"github.com/iov-one/swapkit/orm"
	"github.com/iov-one/swapkit/x/cash"
)

// BucketName is where the escrow records are stored.
const BucketName = "escrows"

// MaxEscrowIDLength is the longest escrow ID accepted.
const MaxEscrowIDLength = 32

var _ orm.Model = (*Escrow)(nil)

// Validate ensures the escrow is a consistent live record or tombstone.
func (e *Escrow) Validate() error {
	if err := e.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if !e.Initialized {
		if len(e.Initializer) != 0 || len(e.Vault) != 0 || len(e.InitializerReceive) != 0 {
			return errors.Wrap(errors.ErrState, "destroyed escrow must not reference accounts")
		}
		return nil
	}
	var errs error
	errs = errors.Append(errs, errors.Wrap(e.Initializer.Validate(), "initializer"))
	errs = errors.Append(errs, errors.Wrap(e.InitializerReceive.Validate(), "initializer receive"))
	errs = errors.Append(errs, errors.Wrap(e.Vault.Validate(), "vault"))
	if e.ExpectedAmount == 0 {
		errs = errors.Append(errs, errors.Wrap(ErrInvalidExchangeAmount, "expected amount must be positive"))
	}
	return errs
}

// Validate ensures the configuration is complete.
func (c *Configuration) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return errors.Wrap(c.ProgramID.Validate(), "program id")
}

func validateEscrowID(id []byte) error {
	switch n := len(id); {
	case n == 0:
		return errors.Wrap(errors.ErrEmpty, "escrow id")
	case n > MaxEscrowIDLength:
		return errors.Wrapf(errors.ErrInput, "escrow id too long: %d", n)
	}
	return nil
}

// DepositAddress returns the native wallet address that holds the deposit
// paid for given escrow record.
func DepositAddress(id []byte) swapkit.Address {
	return swapkit.NewCondition("escrow", "deposit", id).Address()
}

// RecordStore keeps escrow records keyed by their ID. Storing a record
// is paid with a native deposit that is refunded when the record is
// destroyed.
type RecordStore struct {
	bucket orm.ModelBucket
	cash   cash.CoinMover
}

// NewRecordStore returns a store that charges deposits using given mover.
func NewRecordStore(mover cash.CoinMover) *RecordStore {
	return &RecordStore{
		bucket: orm.NewModelBucket(BucketName, &Escrow{}),
		cash:   mover,
	}
}

// RegisterQuery exposes the records under given name.
func (s *RecordStore) RegisterQuery(name string, qr swapkit.QueryRouter) {
	s.bucket.Register(name, qr)
}

// Load returns the live escrow stored under given ID. Missing and
// destroyed records both fail with ErrRecordNotFound.
func (s *RecordStore) Load(db swapkit.ReadOnlyKVStore, id []byte) (*Escrow, error) {
	e, err := s.lookup(db, id)
	if err != nil {
		return nil, err
	}
	if e == nil || !e.Initialized {
		return nil, errors.Wrapf(ErrRecordNotFound, "escrow %X", id)
	}
	return e, nil
}

// CheckAbsent fails if the ID was ever used. A live record fails with
// ErrAlreadyInitialized, a destroyed one with ErrRecordNotFound.
func (s *RecordStore) CheckAbsent(db swapkit.ReadOnlyKVStore, id []byte) error {
	e, err := s.lookup(db, id)
	switch {
	case err != nil:
		return err
	case e == nil:
		return nil
	case e.Initialized:
		return errors.Wrapf(ErrAlreadyInitialized, "escrow %X", id)
	default:
		return errors.Wrapf(ErrRecordNotFound, "escrow %X was destroyed", id)
	}
}

func (s *RecordStore) lookup(db swapkit.ReadOnlyKVStore, id []byte) (*Escrow, error) {
	if err := validateEscrowID(id); err != nil {
		return nil, err
	}
	var e Escrow
	switch err := s.bucket.One(db, id, &e); {
	case errors.ErrNotFound.Is(err):
		return nil, nil
	case err != nil:
		return nil, errors.Wrap(err, "load escrow")
	}
	return &e, nil
}

// Create stores a new record under given ID and charges its deposit from
// the payer wallet.
func (s *RecordStore) Create(db swapkit.KVStore, payer swapkit.Address, id []byte, e *Escrow) error {
	if err := s.CheckAbsent(db, id); err != nil {
		return err
	}
	if err := e.Validate(); err != nil {
		return errors.Wrap(err, "invalid escrow")
	}
	if e.Deposit > 0 {
		if err := s.cash.MoveCoins(db, payer, DepositAddress(id), e.Deposit); err != nil {
			return errors.Wrap(err, "pay record deposit")
		}
	}
	return s.bucket.Put(db, id, e)
}

// Destroy replaces a live record with a tombstone and refunds its deposit
// to given destination.
func (s *RecordStore) Destroy(db swapkit.KVStore, id []byte, refund swapkit.Address) error {
	e, err := s.Load(db, id)
	if err != nil {
		return err
	}
	if e.Deposit > 0 {
		if err := s.cash.MoveCoins(db, DepositAddress(id), refund, e.Deposit); err != nil {
			return errors.Wrap(err, "refund record deposit")
		}
	}
	tombstone := &Escrow{Metadata: &swapkit.Metadata{Schema: 1}}
	return s.bucket.Put(db, id, tombstone)
}
