package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/swapkit"
)

// Wallet holds the native balance of a single address.
type Wallet struct {
	Metadata *swapkit.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Amount   uint64            `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Wallet) Reset()         { *m = Wallet{} }
func (m *Wallet) String() string { return proto.CompactTextString(m) }
func (*Wallet) ProtoMessage()    {}

// SendMsg moves native balance between two wallets.
type SendMsg struct {
	Metadata    *swapkit.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Source      swapkit.Address   `protobuf:"bytes,2,opt,name=source,proto3,casttype=github.com/iov-one/swapkit.Address" json:"source,omitempty"`
	Destination swapkit.Address   `protobuf:"bytes,3,opt,name=destination,proto3,casttype=github.com/iov-one/swapkit.Address" json:"destination,omitempty"`
	Amount      uint64            `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	Memo        string            `protobuf:"bytes,5,opt,name=memo,proto3" json:"memo,omitempty"`
}

func (m *SendMsg) Reset()         { *m = SendMsg{} }
func (m *SendMsg) String() string { return proto.CompactTextString(m) }
func (*SendMsg) ProtoMessage()    {}

