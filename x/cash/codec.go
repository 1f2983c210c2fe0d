package cash

import (
	"github.com/gogo/protobuf/proto"

	"github.com/cleareto/keep/coin"
)

// Set keeps the currency balances of one account.
//
// The serialization is protobuf, field numbers are part of the
// stored state and must not change.
type Set struct {
	Coins []*coin.Coin `protobuf:"bytes,1,rep,name=coins,proto3" json:"coins,omitempty"`
}

var _ proto.Message = (*Set)(nil)

// Reset implements proto.Message
func (s *Set) Reset() { *s = Set{} }

// String implements proto.Message
func (s *Set) String() string {
	return coin.Coins(s.Coins).String()
}

// ProtoMessage implements proto.Message
func (*Set) ProtoMessage() {}

// setPB mirrors Set without the Marshaler/Unmarshaler methods, so
// proto.Marshal/proto.Unmarshal use their reflection codec instead of
// dispatching back into Set.Marshal/Set.Unmarshal.
type setPB Set

func (s *setPB) Reset()         { *s = setPB{} }
func (s *setPB) String() string { return proto.CompactTextString(s) }
func (*setPB) ProtoMessage()    {}

// Marshal returns the protobuf encoding of the set
func (s *Set) Marshal() ([]byte, error) {
	return proto.Marshal((*setPB)(s))
}

// Unmarshal parses the protobuf encoding into the set
func (s *Set) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*setPB)(s))
}
