package token

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/swapkit"
)

// Account holds a balance of a single ticker. Only the owner can move the
// funds, hand over the ownership or close the account.
type Account struct {
	Metadata *swapkit.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Ticker   string            `protobuf:"bytes,2,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Owner    swapkit.Address   `protobuf:"bytes,3,opt,name=owner,proto3,casttype=github.com/iov-one/swapkit.Address" json:"owner,omitempty"`
	Amount   uint64            `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	// Deposit is the native amount paid on creation and refunded when the
	// account is closed.
	Deposit uint64 `protobuf:"varint,5,opt,name=deposit,proto3" json:"deposit,omitempty"`
	Frozen  bool   `protobuf:"varint,6,opt,name=frozen,proto3" json:"frozen,omitempty"`
}

func (m *Account) Reset()         { *m = Account{} }
func (m *Account) String() string { return proto.CompactTextString(m) }
func (*Account) ProtoMessage()    {}

// Configuration is the token extension configuration stored with gconf.
type Configuration struct {
	Metadata *swapkit.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// AccountDeposit is the native amount charged for creating an account.
	AccountDeposit uint64 `protobuf:"varint,2,opt,name=account_deposit,json=accountDeposit,proto3" json:"account_deposit,omitempty"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}

// CreateAccountMsg creates a new, empty account. Payer is charged the
// account deposit.
type CreateAccountMsg struct {
	Metadata *swapkit.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	ID       swapkit.Address   `protobuf:"bytes,2,opt,name=id,proto3,casttype=github.com/iov-one/swapkit.Address" json:"id,omitempty"`
	Ticker   string            `protobuf:"bytes,3,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Owner    swapkit.Address   `protobuf:"bytes,4,opt,name=owner,proto3,casttype=github.com/iov-one/swapkit.Address" json:"owner,omitempty"`
	Payer    swapkit.Address   `protobuf:"bytes,5,opt,name=payer,proto3,casttype=github.com/iov-one/swapkit.Address" json:"payer,omitempty"`
}

func (m *CreateAccountMsg) Reset()         { *m = CreateAccountMsg{} }
func (m *CreateAccountMsg) String() string { return proto.CompactTextString(m) }
func (*CreateAccountMsg) ProtoMessage()    {}

// TransferMsg moves tokens between two accounts of the same ticker.
type TransferMsg struct {
	Metadata    *swapkit.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Source      swapkit.Address   `protobuf:"bytes,2,opt,name=source,proto3,casttype=github.com/iov-one/swapkit.Address" json:"source,omitempty"`
	Destination swapkit.Address   `protobuf:"bytes,3,opt,name=destination,proto3,casttype=github.com/iov-one/swapkit.Address" json:"destination,omitempty"`
	Amount      uint64            `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *TransferMsg) Reset()         { *m = TransferMsg{} }
func (m *TransferMsg) String() string { return proto.CompactTextString(m) }
func (*TransferMsg) ProtoMessage()    {}

// SetAuthorityMsg hands the ownership of an account over to another
// address.
type SetAuthorityMsg struct {
	Metadata *swapkit.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Account  swapkit.Address   `protobuf:"bytes,2,opt,name=account,proto3,casttype=github.com/iov-one/swapkit.Address" json:"account,omitempty"`
	NewOwner swapkit.Address   `protobuf:"bytes,3,opt,name=new_owner,json=newOwner,proto3,casttype=github.com/iov-one/swapkit.Address" json:"new_owner,omitempty"`
}

func (m *SetAuthorityMsg) Reset()         { *m = SetAuthorityMsg{} }
func (m *SetAuthorityMsg) String() string { return proto.CompactTextString(m) }
func (*SetAuthorityMsg) ProtoMessage()    {}

// CloseAccountMsg removes an empty account and refunds its deposit.
type CloseAccountMsg struct {
	Metadata    *swapkit.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Account     swapkit.Address   `protobuf:"bytes,2,opt,name=account,proto3,casttype=github.com/iov-one/swapkit.Address" json:"account,omitempty"`
	Destination swapkit.Address   `protobuf:"bytes,3,opt,name=destination,proto3,casttype=github.com/iov-one/swapkit.Address" json:"destination,omitempty"`
}

func (m *CloseAccountMsg) Reset()         { *m = CloseAccountMsg{} }
func (m *CloseAccountMsg) String() string { return proto.CompactTextString(m) }
func (*CloseAccountMsg) ProtoMessage()    {}

