package orm

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/swapkit/errors"
)

// counter is a minimal model used across the orm tests.
type counter struct {
	Count int64 `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
}

func (c *counter) Reset()         { *c = counter{} }
func (c *counter) String() string { return proto.CompactTextString(c) }
func (*counter) ProtoMessage()    {}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrModel, "negative count")
	}
	return nil
}

// other is a model that cannot be loaded into a counter.
type other struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (o *other) Reset()         { *o = other{} }
func (o *other) String() string { return proto.CompactTextString(o) }
func (*other) ProtoMessage()    {}

func (o *other) Validate() error {
	return nil
}
