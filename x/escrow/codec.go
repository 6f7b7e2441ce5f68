package escrow

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/swapkit"
)

// Escrow is the state of a single swap. A destroyed escrow is stored with
// Initialized unset and all other fields cleared.
type Escrow struct {
	Metadata    *swapkit.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Initialized bool              `protobuf:"varint,2,opt,name=initialized,proto3" json:"initialized,omitempty"`
	// Initializer created the escrow. It receives the deposits back when
	// the escrow is destroyed.
	Initializer swapkit.Address `protobuf:"bytes,3,opt,name=initializer,proto3,casttype=github.com/iov-one/swapkit.Address" json:"initializer,omitempty"`
	// InitializerReceive is the token account that collects the counter
	// token on exchange.
	InitializerReceive swapkit.Address `protobuf:"bytes,4,opt,name=initializer_receive,json=initializerReceive,proto3,casttype=github.com/iov-one/swapkit.Address" json:"initializer_receive,omitempty"`
	// Vault is the token account locked by the escrow.
	Vault          swapkit.Address `protobuf:"bytes,5,opt,name=vault,proto3,casttype=github.com/iov-one/swapkit.Address" json:"vault,omitempty"`
	ExpectedAmount uint64          `protobuf:"varint,6,opt,name=expected_amount,json=expectedAmount,proto3" json:"expected_amount,omitempty"`
	// Deposit is the native amount paid for storing this record.
	Deposit uint64 `protobuf:"varint,7,opt,name=deposit,proto3" json:"deposit,omitempty"`
}

func (m *Escrow) Reset()         { *m = Escrow{} }
func (m *Escrow) String() string { return proto.CompactTextString(m) }
func (*Escrow) ProtoMessage()    {}

// Configuration is the escrow extension configuration stored with gconf.
type Configuration struct {
	Metadata *swapkit.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// ProgramID is the identity the vault authority is derived from.
	ProgramID swapkit.Address `protobuf:"bytes,2,opt,name=program_id,json=programId,proto3,casttype=github.com/iov-one/swapkit.Address" json:"program_id,omitempty"`
	// RecordDeposit is the native amount charged for storing an escrow.
	RecordDeposit uint64 `protobuf:"varint,3,opt,name=record_deposit,json=recordDeposit,proto3" json:"record_deposit,omitempty"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}

// InitMsg locks the vault and creates an escrow. The main signer becomes
// the initializer.
type InitMsg struct {
	Metadata           *swapkit.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	EscrowID           []byte            `protobuf:"bytes,2,opt,name=escrow_id,json=escrowId,proto3" json:"escrow_id,omitempty"`
	InitializerReceive swapkit.Address   `protobuf:"bytes,3,opt,name=initializer_receive,json=initializerReceive,proto3,casttype=github.com/iov-one/swapkit.Address" json:"initializer_receive,omitempty"`
	Vault              swapkit.Address   `protobuf:"bytes,4,opt,name=vault,proto3,casttype=github.com/iov-one/swapkit.Address" json:"vault,omitempty"`
	ExpectedAmount     uint64            `protobuf:"varint,5,opt,name=expected_amount,json=expectedAmount,proto3" json:"expected_amount,omitempty"`
}

func (m *InitMsg) Reset()         { *m = InitMsg{} }
func (m *InitMsg) String() string { return proto.CompactTextString(m) }
func (*InitMsg) ProtoMessage()    {}

// ExchangeMsg completes an escrow. The main signer is the taker and must
// own the taker source account.
type ExchangeMsg struct {
	Metadata           *swapkit.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	EscrowID           []byte            `protobuf:"bytes,2,opt,name=escrow_id,json=escrowId,proto3" json:"escrow_id,omitempty"`
	Initializer        swapkit.Address   `protobuf:"bytes,3,opt,name=initializer,proto3,casttype=github.com/iov-one/swapkit.Address" json:"initializer,omitempty"`
	InitializerReceive swapkit.Address   `protobuf:"bytes,4,opt,name=initializer_receive,json=initializerReceive,proto3,casttype=github.com/iov-one/swapkit.Address" json:"initializer_receive,omitempty"`
	Vault              swapkit.Address   `protobuf:"bytes,5,opt,name=vault,proto3,casttype=github.com/iov-one/swapkit.Address" json:"vault,omitempty"`
	VaultAuthority     swapkit.Address   `protobuf:"bytes,6,opt,name=vault_authority,json=vaultAuthority,proto3,casttype=github.com/iov-one/swapkit.Address" json:"vault_authority,omitempty"`
	TakerSource        swapkit.Address   `protobuf:"bytes,7,opt,name=taker_source,json=takerSource,proto3,casttype=github.com/iov-one/swapkit.Address" json:"taker_source,omitempty"`
	TakerReceive       swapkit.Address   `protobuf:"bytes,8,opt,name=taker_receive,json=takerReceive,proto3,casttype=github.com/iov-one/swapkit.Address" json:"taker_receive,omitempty"`
}

func (m *ExchangeMsg) Reset()         { *m = ExchangeMsg{} }
func (m *ExchangeMsg) String() string { return proto.CompactTextString(m) }
func (*ExchangeMsg) ProtoMessage()    {}

// CancelMsg returns the locked tokens to the initializer, who must sign it.
type CancelMsg struct {
	Metadata          *swapkit.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	EscrowID          []byte            `protobuf:"bytes,2,opt,name=escrow_id,json=escrowId,proto3" json:"escrow_id,omitempty"`
	Initializer       swapkit.Address   `protobuf:"bytes,3,opt,name=initializer,proto3,casttype=github.com/iov-one/swapkit.Address" json:"initializer,omitempty"`
	RefundDestination swapkit.Address   `protobuf:"bytes,4,opt,name=refund_destination,json=refundDestination,proto3,casttype=github.com/iov-one/swapkit.Address" json:"refund_destination,omitempty"`
	Vault             swapkit.Address   `protobuf:"bytes,5,opt,name=vault,proto3,casttype=github.com/iov-one/swapkit.Address" json:"vault,omitempty"`
	VaultAuthority    swapkit.Address   `protobuf:"bytes,6,opt,name=vault_authority,json=vaultAuthority,proto3,casttype=github.com/iov-one/swapkit.Address" json:"vault_authority,omitempty"`
}

func (m *CancelMsg) Reset()         { *m = CancelMsg{} }
func (m *CancelMsg) String() string { return proto.CompactTextString(m) }
func (*CancelMsg) ProtoMessage()    {}

