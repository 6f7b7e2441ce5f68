package app

import (
	"encoding/json"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/app"
	"github.com/iov-one/swapkit/crypto"
	"github.com/iov-one/swapkit/errors"
	"github.com/iov-one/swapkit/x/cash"
	"github.com/iov-one/swapkit/x/escrow"
	"github.com/iov-one/swapkit/x/sigs"
	"github.com/iov-one/swapkit/x/token"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const chainID = "test-swap-1"

type account struct {
	key *crypto.PrivateKey
	seq int64
}

func (a *account) address() swapkit.Address {
	return a.key.PublicKey().Address()
}

type testApp struct {
	t      *testing.T
	app    app.BaseApp
	height int64
}

func newTestApp(t *testing.T, state genesisState) *testApp {
	t.Helper()
	stack, err := Stack(prometheus.NewRegistry())
	require.NoError(t, err)
	base, err := Application("swapd", stack, TxDecoder, "", false)
	require.NoError(t, err)
	base.WithInit(Initializers())
	base.WithLogger(log.NewNopLogger())

	raw, err := json.Marshal(state)
	require.NoError(t, err)
	base.InitChain(abci.RequestInitChain{ChainId: chainID, AppStateBytes: raw})

	ta := &testApp{t: t, app: base}
	ta.commit()
	return ta
}

func (ta *testApp) commit() {
	ta.app.EndBlock(abci.RequestEndBlock{Height: ta.height})
	ta.app.Commit()
	ta.height++
	ta.app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{ChainID: chainID, Height: ta.height}})
}

// sign builds a transaction for given message, signed by the signer with
// its current sequence.
func (ta *testApp) sign(signer *account, msg swapkit.Msg) []byte {
	ta.t.Helper()
	tx, err := NewTx(msg)
	require.NoError(ta.t, err)
	sig, err := sigs.SignTx(signer.key, tx, chainID, signer.seq)
	require.NoError(ta.t, err)
	signer.seq++
	tx.Signatures = []*sigs.StdSignature{sig}
	raw, err := proto.Marshal(tx)
	require.NoError(ta.t, err)
	return raw
}

func (ta *testApp) deliver(signer *account, msg swapkit.Msg) abci.ResponseDeliverTx {
	ta.t.Helper()
	return ta.app.DeliverTx(ta.sign(signer, msg))
}

func (ta *testApp) tokenAccount(id swapkit.Address) *token.Account {
	ta.t.Helper()
	var acc token.Account
	if !ta.queryOne("/tokens", id, &acc) {
		return nil
	}
	return &acc
}

func (ta *testApp) wallet(addr swapkit.Address) uint64 {
	ta.t.Helper()
	var w cash.Wallet
	if !ta.queryOne("/wallets", addr, &w) {
		return 0
	}
	return w.Amount
}

func (ta *testApp) queryOne(path string, key []byte, dest swapkit.Persistent) bool {
	ta.t.Helper()
	res := ta.app.Query(abci.RequestQuery{Path: path, Data: key})
	require.Equal(ta.t, uint32(0), res.Code, res.Log)
	var values app.ResultSet
	require.NoError(ta.t, proto.Unmarshal(res.Value, &values))
	if len(values.Results) == 0 {
		return false
	}
	require.NoError(ta.t, app.UnmarshalOneResult(res.Value, dest))
	return true
}

func accountID(name string) swapkit.Address {
	return swapkit.NewCondition("test", "account", []byte(name)).Address()
}

func TestSwap(t *testing.T) {
	alice := &account{key: crypto.GenPrivKeyEd25519()}
	bob := &account{key: crypto.GenPrivKeyEd25519()}

	var (
		vault        = accountID("alice-vault")
		aliceReceive = accountID("alice-receive")
		bobSource    = accountID("bob-source")
		bobReceive   = accountID("bob-receive")
	)

	state := genesisState{
		Cash: []cash.GenesisAccount{
			{Address: alice.address(), Amount: 100},
			{Address: bob.address(), Amount: 100},
		},
	}
	state.Token.Accounts = []token.GenesisAccount{
		{ID: vault, Ticker: "AAA", Owner: alice.address(), Amount: 20},
		{ID: aliceReceive, Ticker: "BBB", Owner: alice.address()},
		{ID: bobSource, Ticker: "BBB", Owner: bob.address(), Amount: 50},
		{ID: bobReceive, Ticker: "AAA", Owner: bob.address()},
	}
	state.Conf = genesisConf{
		Token:  &token.Configuration{Metadata: &swapkit.Metadata{Schema: 1}, AccountDeposit: 10},
		Escrow: &escrow.Configuration{Metadata: &swapkit.Metadata{Schema: 1}, ProgramID: ProgramID, RecordDeposit: 5},
	}
	ta := newTestApp(t, state)

	authority, err := escrow.VaultAuthority(ProgramID)
	require.NoError(t, err)
	escrowID := []byte("swap-1")

	// alice locks 20 AAA expecting 10 BBB
	res := ta.deliver(alice, &escrow.InitMsg{
		Metadata:           &swapkit.Metadata{Schema: 1},
		EscrowID:           escrowID,
		InitializerReceive: aliceReceive,
		Vault:              vault,
		ExpectedAmount:     10,
	})
	require.Equal(t, uint32(0), res.Code, res.Log)
	assert.Equal(t, escrowID, res.Data)
	ta.commit()

	var rec escrow.Escrow
	require.True(t, ta.queryOne("/escrows", escrowID, &rec))
	assert.True(t, rec.Initialized)
	assert.Equal(t, alice.address(), rec.Initializer)
	assert.Equal(t, uint64(10), rec.ExpectedAmount)
	assert.Equal(t, authority.Address(), ta.tokenAccount(vault).Owner)
	assert.Equal(t, uint64(95), ta.wallet(alice.address()))

	// the vault cannot be moved by its former owner
	res = ta.deliver(alice, &token.TransferMsg{
		Metadata:    &swapkit.Metadata{Schema: 1},
		Source:      vault,
		Destination: bobReceive,
		Amount:      1,
	})
	assert.True(t, errors.ErrUnauthorized.Is(errors.ABCIError(res.Code, res.Log)), res.Log)

	exchange := &escrow.ExchangeMsg{
		Metadata:           &swapkit.Metadata{Schema: 1},
		EscrowID:           escrowID,
		Initializer:        alice.address(),
		InitializerReceive: aliceReceive,
		Vault:              vault,
		VaultAuthority:     authority.Address(),
		TakerSource:        bobSource,
		TakerReceive:       bobReceive,
	}
	res = ta.deliver(bob, exchange)
	require.Equal(t, uint32(0), res.Code, res.Log)
	ta.commit()

	assert.Equal(t, uint64(10), ta.tokenAccount(aliceReceive).Amount)
	assert.Equal(t, uint64(40), ta.tokenAccount(bobSource).Amount)
	assert.Equal(t, uint64(20), ta.tokenAccount(bobReceive).Amount)
	assert.Nil(t, ta.tokenAccount(vault))
	assert.Equal(t, uint64(100), ta.wallet(alice.address()))

	require.True(t, ta.queryOne("/escrows", escrowID, &rec))
	assert.False(t, rec.Initialized)

	// a settled escrow cannot be exchanged again
	res = ta.deliver(bob, exchange)
	wantCode, _ := errors.ABCIInfo(escrow.ErrRecordNotFound, false)
	assert.Equal(t, wantCode, res.Code, res.Log)
}

func TestCheckTxDoesNotChangeState(t *testing.T) {
	alice := &account{key: crypto.GenPrivKeyEd25519()}
	raw, err := GenInitOptions([]string{alice.address().String()})
	require.NoError(t, err)
	var state genesisState
	require.NoError(t, json.Unmarshal(raw, &state))
	ta := newTestApp(t, state)

	vault := GenesisTokenID(alice.address(), "AAA")
	receive := GenesisTokenID(alice.address(), "BBB")
	msg := &escrow.InitMsg{
		Metadata:           &swapkit.Metadata{Schema: 1},
		EscrowID:           []byte("check"),
		InitializerReceive: receive,
		Vault:              vault,
		ExpectedAmount:     1,
	}
	res := ta.app.CheckTx(ta.sign(alice, msg))
	require.Equal(t, uint32(0), res.Code, res.Log)
	ta.commit()

	var rec escrow.Escrow
	assert.False(t, ta.queryOne("/escrows", []byte("check"), &rec))
	assert.Equal(t, alice.address(), ta.tokenAccount(vault).Owner)
}

func TestTxEnvelope(t *testing.T) {
	_, err := NewTx(&msgStub{})
	assert.True(t, errors.ErrType.Is(err))

	var empty Tx
	_, err = empty.GetMsg()
	assert.True(t, errors.ErrMsg.Is(err))

	double := Tx{
		SendMsg:     &cash.SendMsg{},
		TransferMsg: &token.TransferMsg{},
	}
	_, err = double.GetMsg()
	assert.True(t, errors.ErrMsg.Is(err))

	tx, err := NewTx(&escrow.CancelMsg{
		Metadata: &swapkit.Metadata{Schema: 1},
		EscrowID: []byte("abc"),
	})
	require.NoError(t, err)
	tx.Signatures = []*sigs.StdSignature{{Sequence: 3}}
	raw, err := proto.Marshal(tx)
	require.NoError(t, err)

	decoded, err := TxDecoder(raw)
	require.NoError(t, err)
	msg, err := decoded.GetMsg()
	require.NoError(t, err)
	assert.Equal(t, "escrow/cancel", msg.Path())
	assert.Equal(t, []byte("abc"), msg.(*escrow.CancelMsg).EscrowID)
	assert.Len(t, decoded.(*Tx).GetSignatures(), 1)

	// signatures are not part of the signed bytes
	signBytes, err := tx.GetSignBytes()
	require.NoError(t, err)
	tx.Signatures = nil
	unsigned, err := proto.Marshal(tx)
	require.NoError(t, err)
	assert.Equal(t, unsigned, signBytes)
}

func TestGenInitOptions(t *testing.T) {
	addr := accountID("owner")
	raw, err := GenInitOptions([]string{addr.String(), "XYZ"})
	require.NoError(t, err)

	var state genesisState
	require.NoError(t, json.Unmarshal(raw, &state))
	require.Len(t, state.Cash, 1)
	assert.Equal(t, addr, state.Cash[0].Address)
	require.Len(t, state.Token.Accounts, 1)
	assert.Equal(t, "XYZ", state.Token.Accounts[0].Ticker)
	assert.Equal(t, GenesisTokenID(addr, "XYZ"), state.Token.Accounts[0].ID)
	assert.Equal(t, ProgramID, state.Conf.Escrow.ProgramID)

	_, err = GenInitOptions([]string{addr.String(), "invalid"})
	assert.True(t, errors.ErrInput.Is(err))
	_, err = GenInitOptions([]string{"not-hex"})
	assert.Error(t, err)
}

type msgStub struct{}

func (msgStub) Path() string    { return "stub/msg" }
func (msgStub) Validate() error { return nil }
func (msgStub) Reset()          {}
func (msgStub) String() string  { return "stub" }
func (msgStub) ProtoMessage()   {}
