package swaptest

import (
	"fmt"

	"github.com/iov-one/swapkit"
)

// Tx represents a transaction carrying a single message.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg swapkit.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ swapkit.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (swapkit.Msg, error) {
	return tx.Msg, tx.Err
}

func (tx *Tx) Reset()         {}
func (tx *Tx) String() string { return fmt.Sprintf("swaptest.Tx{%v}", tx.Msg) }
func (*Tx) ProtoMessage()     {}

func (tx *Tx) Unmarshal([]byte) error {
	panic("not implemented")
}

func (tx *Tx) Marshal() ([]byte, error) {
	panic("not implemented")
}

// Msg is a request processed within a single transaction.
type Msg struct {
	// RoutePath is returned by the path method, consumed by the router.
	RoutePath string
	// Serialized represents the serialized form of this message.
	Serialized []byte
	// Err if set is returned by any method call.
	Err error
}

var _ swapkit.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Reset()         { m.Serialized = nil }
func (m *Msg) String() string { return fmt.Sprintf("swaptest.Msg{%s}", m.RoutePath) }
func (*Msg) ProtoMessage()    {}

func (m *Msg) Unmarshal(b []byte) error {
	m.Serialized = b
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}
