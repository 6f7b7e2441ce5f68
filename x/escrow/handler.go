package escrow

import (
	"encoding/hex"

	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
	"github.com/iov-one/swapkit/gconf"
	"github.com/iov-one/swapkit/x"
	"github.com/iov-one/swapkit/x/cash"
	"github.com/iov-one/swapkit/x/token"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	initCost     int64 = 300
	exchangeCost int64 = 500
	cancelCost   int64 = 300

	optKey = "escrow"
)

// AssetTransfer is the custody service the escrow locks and releases
// vaults with. Every call is authorized by the conditions in the context.
type AssetTransfer interface {
	Authorize(ctx swapkit.Context, db swapkit.ReadOnlyKVStore, account swapkit.Address) (*token.Account, error)
	Balance(db swapkit.ReadOnlyKVStore, account swapkit.Address) (uint64, error)
	Transfer(ctx swapkit.Context, db swapkit.KVStore, from, to swapkit.Address, amount uint64) error
	SetAuthority(ctx swapkit.Context, db swapkit.KVStore, account, newOwner swapkit.Address) error
	CloseAccount(ctx swapkit.Context, db swapkit.KVStore, account, dest swapkit.Address) error
}

// RegisterQuery will register the escrow records as "/escrows"
func RegisterQuery(qr swapkit.QueryRouter) {
	NewRecordStore(nil).RegisterQuery("escrows", qr)
}

// RegisterRoutes will instantiate and register all handlers in this
// package. The auth must reveal transaction signers. The tokens service
// must accept the vault authority revealed by Authenticate.
func RegisterRoutes(r swapkit.Registry, auth x.Authenticator, tokens AssetTransfer, mover cash.CoinMover) {
	records := NewRecordStore(mover)
	r.Handle(InitMsg{}.Path(), InitHandler{auth: auth, tokens: tokens, records: records})
	r.Handle(ExchangeMsg{}.Path(), ExchangeHandler{auth: auth, tokens: tokens, records: records})
	r.Handle(CancelMsg{}.Path(), CancelHandler{auth: auth, tokens: tokens, records: records})
}

func loadConfig(db swapkit.ReadOnlyKVStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, optKey, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

func escrowTags(action string, id []byte) []common.KVPair {
	return []common.KVPair{
		swapkit.ActionTag("escrow", action),
		{Key: []byte("escrow.id"), Value: []byte(hex.EncodeToString(id))},
	}
}

// InitHandler creates an escrow and locks its vault.
type InitHandler struct {
	auth    x.Authenticator
	tokens  AssetTransfer
	records *RecordStore
}

var _ swapkit.Handler = InitHandler{}

// Check verifies the escrow can be created without changing any state.
func (h InitHandler) Check(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx) (*swapkit.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return swapkit.NewCheck(initCost, ""), nil
}

// Deliver stores the escrow and hands the vault over to the vault
// authority.
func (h InitHandler) Deliver(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx) (*swapkit.DeliverResult, error) {
	msg, conf, initializer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	authority, err := VaultAuthority(conf.ProgramID)
	if err != nil {
		return nil, err
	}

	rec := &Escrow{
		Metadata:           &swapkit.Metadata{Schema: 1},
		Initialized:        true,
		Initializer:        initializer,
		InitializerReceive: msg.InitializerReceive,
		Vault:              msg.Vault,
		ExpectedAmount:     msg.ExpectedAmount,
		Deposit:            conf.RecordDeposit,
	}
	if err := h.records.Create(db, initializer, msg.EscrowID, rec); err != nil {
		return nil, errors.Wrap(err, "create escrow")
	}
	if err := h.tokens.SetAuthority(ctx, db, msg.Vault, authority.Address()); err != nil {
		return nil, errors.Wrap(err, "lock vault")
	}

	swapkit.GetLogger(ctx).Info("escrow initialized",
		"escrow", hex.EncodeToString(msg.EscrowID),
		"initializer", initializer,
		"vault", msg.Vault)
	return &swapkit.DeliverResult{
		Data: msg.EscrowID,
		Tags: escrowTags("init", msg.EscrowID),
	}, nil
}

func (h InitHandler) validate(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx) (*InitMsg, *Configuration, swapkit.Address, error) {
	var msg InitMsg
	if err := swapkit.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "initializer signature missing")
	}
	conf, err := loadConfig(db)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := h.records.CheckAbsent(db, msg.EscrowID); err != nil {
		return nil, nil, nil, err
	}
	if msg.Vault.Equals(msg.InitializerReceive) {
		return nil, nil, nil, errors.Wrap(ErrInvalidAccount, "vault cannot receive the counter token")
	}
	// Only the vault owner can hand it over to the vault authority.
	vault, err := h.tokens.Authorize(ctx, db, msg.Vault)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "vault")
	}
	if vault.Amount == 0 {
		return nil, nil, nil, errors.Wrap(ErrInvalidAccount, "vault is empty")
	}
	return &msg, conf, signer.Address(), nil
}

// ExchangeHandler completes an escrow. The taker pays the expected amount
// and receives the vault content.
type ExchangeHandler struct {
	auth    x.Authenticator
	tokens  AssetTransfer
	records *RecordStore
}

var _ swapkit.Handler = ExchangeHandler{}

// Check verifies all accounts match the escrow without changing any state.
func (h ExchangeHandler) Check(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx) (*swapkit.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return swapkit.NewCheck(exchangeCost, ""), nil
}

// Deliver performs the swap, then closes the vault and destroys the
// escrow.
func (h ExchangeHandler) Deliver(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx) (*swapkit.DeliverResult, error) {
	msg, rec, authority, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// The taker payment is authorized by the taker signature only.
	if err := h.tokens.Transfer(ctx, db, msg.TakerSource, rec.InitializerReceive, rec.ExpectedAmount); err != nil {
		return nil, errors.Wrap(err, "pay initializer")
	}
	actx := withAuthority(ctx, authority)
	if err := release(actx, db, h.tokens, rec, msg.TakerReceive); err != nil {
		return nil, err
	}
	if err := h.records.Destroy(db, msg.EscrowID, rec.Initializer); err != nil {
		return nil, errors.Wrap(err, "destroy escrow")
	}

	swapkit.GetLogger(ctx).Info("escrow exchanged",
		"escrow", hex.EncodeToString(msg.EscrowID),
		"taker", x.MainSigner(ctx, h.auth).Address())
	return &swapkit.DeliverResult{
		Data: msg.EscrowID,
		Tags: escrowTags("exchange", msg.EscrowID),
	}, nil
}

func (h ExchangeHandler) validate(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx) (*ExchangeMsg, *Escrow, swapkit.Condition, error) {
	var msg ExchangeMsg
	if err := swapkit.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "taker signature missing")
	}
	conf, err := loadConfig(db)
	if err != nil {
		return nil, nil, nil, err
	}
	rec, err := h.records.Load(db, msg.EscrowID)
	if err != nil {
		return nil, nil, nil, err
	}
	if !msg.Initializer.Equals(rec.Initializer) {
		return nil, nil, nil, errors.Wrap(ErrInvalidAccount, "initializer")
	}
	if !msg.InitializerReceive.Equals(rec.InitializerReceive) {
		return nil, nil, nil, errors.Wrap(ErrInvalidAccount, "initializer receive")
	}
	if !msg.Vault.Equals(rec.Vault) {
		return nil, nil, nil, errors.Wrap(ErrInvalidAccount, "vault")
	}
	authority, err := checkAuthority(conf, msg.VaultAuthority)
	if err != nil {
		return nil, nil, nil, err
	}
	return &msg, rec, authority, nil
}

// CancelHandler returns the vault content to the initializer.
type CancelHandler struct {
	auth    x.Authenticator
	tokens  AssetTransfer
	records *RecordStore
}

var _ swapkit.Handler = CancelHandler{}

// Check verifies the initializer signed and all accounts match the escrow.
func (h CancelHandler) Check(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx) (*swapkit.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return swapkit.NewCheck(cancelCost, ""), nil
}

// Deliver refunds the vault, then closes it and destroys the escrow.
func (h CancelHandler) Deliver(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx) (*swapkit.DeliverResult, error) {
	msg, rec, authority, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	actx := withAuthority(ctx, authority)
	if err := release(actx, db, h.tokens, rec, msg.RefundDestination); err != nil {
		return nil, err
	}
	if err := h.records.Destroy(db, msg.EscrowID, rec.Initializer); err != nil {
		return nil, errors.Wrap(err, "destroy escrow")
	}

	swapkit.GetLogger(ctx).Info("escrow cancelled",
		"escrow", hex.EncodeToString(msg.EscrowID),
		"refund", msg.RefundDestination)
	return &swapkit.DeliverResult{
		Data: msg.EscrowID,
		Tags: escrowTags("cancel", msg.EscrowID),
	}, nil
}

func (h CancelHandler) validate(ctx swapkit.Context, db swapkit.KVStore, tx swapkit.Tx) (*CancelMsg, *Escrow, swapkit.Condition, error) {
	var msg CancelMsg
	if err := swapkit.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConfig(db)
	if err != nil {
		return nil, nil, nil, err
	}
	rec, err := h.records.Load(db, msg.EscrowID)
	if err != nil {
		return nil, nil, nil, err
	}
	if !msg.Initializer.Equals(rec.Initializer) || !h.auth.HasAddress(ctx, rec.Initializer) {
		return nil, nil, nil, errors.Wrap(ErrInvalidAccount, "initializer")
	}
	// All vaults share one authority, so the vault must be the recorded one.
	if !msg.Vault.Equals(rec.Vault) {
		return nil, nil, nil, errors.Wrap(ErrInvalidAccount, "vault")
	}
	authority, err := checkAuthority(conf, msg.VaultAuthority)
	if err != nil {
		return nil, nil, nil, err
	}
	return &msg, rec, authority, nil
}

// checkAuthority derives the vault authority and compares it with the
// address supplied by the caller.
func checkAuthority(conf *Configuration, supplied swapkit.Address) (swapkit.Condition, error) {
	authority, err := VaultAuthority(conf.ProgramID)
	if err != nil {
		return nil, err
	}
	if !supplied.Equals(authority.Address()) {
		return nil, errors.Wrap(ErrInvalidAccount, "vault authority")
	}
	return authority, nil
}

// release moves the whole vault balance to dest and closes the vault,
// refunding its deposit to the initializer. The context must carry the
// vault authority.
func release(ctx swapkit.Context, db swapkit.KVStore, tokens AssetTransfer, rec *Escrow, dest swapkit.Address) error {
	amount, err := tokens.Balance(db, rec.Vault)
	if err != nil {
		return errors.Wrap(err, "vault")
	}
	if amount > 0 {
		if err := tokens.Transfer(ctx, db, rec.Vault, dest, amount); err != nil {
			return errors.Wrap(err, "release vault")
		}
	}
	if err := tokens.CloseAccount(ctx, db, rec.Vault, rec.Initializer); err != nil {
		return errors.Wrap(err, "close vault")
	}
	return nil
}
