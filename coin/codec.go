package coin

import (
	"github.com/gogo/protobuf/proto"
)

// Coin can hold any amount between -1 billion and +1 billion
// at steps of 10^-9. It is a fixed-point decimal
// representation and uses the Ticker to identify the currency.
//
// The serialization is protobuf, field numbers are part of the
// stored state and must not change.
type Coin struct {
	// Whole coins, -10^15 < whole < 10^15
	Whole int64 `protobuf:"varint,1,opt,name=whole,proto3" json:"whole,omitempty"`
	// Billionth of coins. 0 <= abs(fractional) < 10^9
	// If fractional != 0, same sign as whole
	Fractional int64 `protobuf:"varint,2,opt,name=fractional,proto3" json:"fractional,omitempty"`
	// Ticker is 3-4 upper-case letters and all coins of the same
	// currency can be combined
	Ticker string `protobuf:"bytes,3,opt,name=ticker,proto3" json:"ticker,omitempty"`
}

var _ proto.Message = (*Coin)(nil)

// Reset implements proto.Message
func (c *Coin) Reset() { *c = Coin{} }

// ProtoMessage implements proto.Message
func (*Coin) ProtoMessage() {}

// coinPB mirrors Coin without the Marshaler/Unmarshaler methods, so
// proto.Marshal/proto.Unmarshal use their reflection codec instead of
// dispatching back into Coin.Marshal/Coin.Unmarshal.
type coinPB Coin

func (c *coinPB) Reset()         { *c = coinPB{} }
func (c *coinPB) String() string { return proto.CompactTextString(c) }
func (*coinPB) ProtoMessage()    {}

// Marshal returns the protobuf encoding of the coin
func (c *Coin) Marshal() ([]byte, error) {
	return proto.Marshal((*coinPB)(c))
}

// Unmarshal parses the protobuf encoding into the coin
func (c *Coin) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*coinPB)(c))
}
