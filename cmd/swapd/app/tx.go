package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
	"github.com/iov-one/swapkit/x/cash"
	"github.com/iov-one/swapkit/x/escrow"
	"github.com/iov-one/swapkit/x/sigs"
	"github.com/iov-one/swapkit/x/token"
)

// Tx is the envelope of every transaction accepted by the application.
// Exactly one of the message fields must be set.
type Tx struct {
	Signatures []*sigs.StdSignature `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`

	SendMsg           *cash.SendMsg           `protobuf:"bytes,51,opt,name=send_msg,json=sendMsg,proto3" json:"send_msg,omitempty"`
	CreateAccountMsg  *token.CreateAccountMsg `protobuf:"bytes,61,opt,name=create_account_msg,json=createAccountMsg,proto3" json:"create_account_msg,omitempty"`
	TransferMsg       *token.TransferMsg      `protobuf:"bytes,62,opt,name=transfer_msg,json=transferMsg,proto3" json:"transfer_msg,omitempty"`
	SetAuthorityMsg   *token.SetAuthorityMsg  `protobuf:"bytes,63,opt,name=set_authority_msg,json=setAuthorityMsg,proto3" json:"set_authority_msg,omitempty"`
	CloseAccountMsg   *token.CloseAccountMsg  `protobuf:"bytes,64,opt,name=close_account_msg,json=closeAccountMsg,proto3" json:"close_account_msg,omitempty"`
	InitEscrowMsg     *escrow.InitMsg         `protobuf:"bytes,71,opt,name=init_escrow_msg,json=initEscrowMsg,proto3" json:"init_escrow_msg,omitempty"`
	ExchangeEscrowMsg *escrow.ExchangeMsg     `protobuf:"bytes,72,opt,name=exchange_escrow_msg,json=exchangeEscrowMsg,proto3" json:"exchange_escrow_msg,omitempty"`
	CancelEscrowMsg   *escrow.CancelMsg       `protobuf:"bytes,73,opt,name=cancel_escrow_msg,json=cancelEscrowMsg,proto3" json:"cancel_escrow_msg,omitempty"`
}

// make sure tx fulfills all interfaces
var _ swapkit.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

func (m *Tx) Reset()         { *m = Tx{} }
func (m *Tx) String() string { return proto.CompactTextString(m) }
func (*Tx) ProtoMessage()    {}

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (swapkit.Tx, error) {
	tx := new(Tx)
	if err := proto.Unmarshal(bz, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// NewTx wraps given message into a new unsigned transaction.
func NewTx(msg swapkit.Msg) (*Tx, error) {
	tx := new(Tx)
	switch m := msg.(type) {
	case *cash.SendMsg:
		tx.SendMsg = m
	case *token.CreateAccountMsg:
		tx.CreateAccountMsg = m
	case *token.TransferMsg:
		tx.TransferMsg = m
	case *token.SetAuthorityMsg:
		tx.SetAuthorityMsg = m
	case *token.CloseAccountMsg:
		tx.CloseAccountMsg = m
	case *escrow.InitMsg:
		tx.InitEscrowMsg = m
	case *escrow.ExchangeMsg:
		tx.ExchangeEscrowMsg = m
	case *escrow.CancelMsg:
		tx.CancelEscrowMsg = m
	default:
		return nil, errors.Wrapf(errors.ErrType, "unsupported message %T", msg)
	}
	return tx, nil
}

// GetMsg returns the single message carried by the transaction.
func (m *Tx) GetMsg() (swapkit.Msg, error) {
	var msgs []swapkit.Msg
	if m.SendMsg != nil {
		msgs = append(msgs, m.SendMsg)
	}
	if m.CreateAccountMsg != nil {
		msgs = append(msgs, m.CreateAccountMsg)
	}
	if m.TransferMsg != nil {
		msgs = append(msgs, m.TransferMsg)
	}
	if m.SetAuthorityMsg != nil {
		msgs = append(msgs, m.SetAuthorityMsg)
	}
	if m.CloseAccountMsg != nil {
		msgs = append(msgs, m.CloseAccountMsg)
	}
	if m.InitEscrowMsg != nil {
		msgs = append(msgs, m.InitEscrowMsg)
	}
	if m.ExchangeEscrowMsg != nil {
		msgs = append(msgs, m.ExchangeEscrowMsg)
	}
	if m.CancelEscrowMsg != nil {
		msgs = append(msgs, m.CancelEscrowMsg)
	}

	switch len(msgs) {
	case 0:
		return nil, errors.Wrap(errors.ErrMsg, "no message")
	case 1:
		return msgs[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "%d messages in a single transaction", len(msgs))
	}
}

// GetSignatures returns all signatures attached to the transaction.
func (m *Tx) GetSignatures() []*sigs.StdSignature {
	return m.Signatures
}

// GetSignBytes returns the bytes to sign...
func (m *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	signatures := m.Signatures
	m.Signatures = nil

	bz, err := proto.Marshal(m)

	// reset the signatures after calculating the bytes
	m.Signatures = signatures
	return bz, err
}

