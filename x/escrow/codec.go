package escrow

import (
	"github.com/gogo/protobuf/proto"

	"github.com/cleareto/keep"
	"github.com/cleareto/keep/coin"
)

// Status is the lifecycle position of an agreement.
type Status int32

const (
	// StatusInvalid is the zero value and is never stored.
	StatusInvalid Status = 0
	// StatusAwaitingDeposit means the agreement exists but holds no funds.
	StatusAwaitingDeposit Status = 1
	// StatusDeposited means the full amount is in custody.
	StatusDeposited Status = 2
	// StatusReleased is terminal, the funds were disbursed.
	StatusReleased Status = 3
	// StatusCancelled is terminal, the funds went back to the sender.
	StatusCancelled Status = 4
)

var statusName = map[Status]string{
	StatusInvalid:         "invalid",
	StatusAwaitingDeposit: "awaiting_deposit",
	StatusDeposited:       "deposited",
	StatusReleased:        "released",
	StatusCancelled:       "cancelled",
}

func (s Status) String() string {
	if name, ok := statusName[s]; ok {
		return name
	}
	return "unknown"
}

// Agreement is one escrow deal. Sender, receiver and amount are fixed
// at creation, only the status ever changes.
//
// The serialization is protobuf, field numbers are part of the stored
// state and must not change.
type Agreement struct {
	Sender   keep.Address `protobuf:"bytes,1,opt,name=sender,proto3,casttype=github.com/cleareto/keep.Address" json:"sender,omitempty"`
	Receiver keep.Address `protobuf:"bytes,2,opt,name=receiver,proto3,casttype=github.com/cleareto/keep.Address" json:"receiver,omitempty"`
	Amount   *coin.Coin   `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
	Status   Status       `protobuf:"varint,4,opt,name=status,proto3,enum=escrow.Status" json:"status,omitempty"`
}

var _ proto.Message = (*Agreement)(nil)

func (a *Agreement) Reset()         { *a = Agreement{} }
func (a *Agreement) String() string { return proto.CompactTextString(a) }
func (*Agreement) ProtoMessage()    {}

// agreementPB mirrors Agreement without the Marshaler/Unmarshaler
// methods, so proto.Marshal/proto.Unmarshal use their reflection codec
// instead of dispatching back into the methods below. The same pattern
// is used for every message in this file.
type agreementPB Agreement

func (a *agreementPB) Reset()         { *a = agreementPB{} }
func (a *agreementPB) String() string { return proto.CompactTextString(a) }
func (*agreementPB) ProtoMessage()    {}

func (a *Agreement) Marshal() ([]byte, error) {
	return proto.Marshal((*agreementPB)(a))
}

func (a *Agreement) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*agreementPB)(a))
}

// CreateEscrowMsg opens a new agreement. The signer becomes the
// sender.
type CreateEscrowMsg struct {
	Receiver keep.Address `protobuf:"bytes,1,opt,name=receiver,proto3,casttype=github.com/cleareto/keep.Address" json:"receiver,omitempty"`
	Amount   *coin.Coin   `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

var _ proto.Message = (*CreateEscrowMsg)(nil)

func (m *CreateEscrowMsg) Reset()         { *m = CreateEscrowMsg{} }
func (m *CreateEscrowMsg) String() string { return proto.CompactTextString(m) }
func (*CreateEscrowMsg) ProtoMessage()    {}

type createEscrowMsgPB CreateEscrowMsg

func (m *createEscrowMsgPB) Reset()         { *m = createEscrowMsgPB{} }
func (m *createEscrowMsgPB) String() string { return proto.CompactTextString(m) }
func (*createEscrowMsgPB) ProtoMessage()    {}

func (m *CreateEscrowMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*createEscrowMsgPB)(m))
}

func (m *CreateEscrowMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*createEscrowMsgPB)(m))
}

// DepositMsg funds an agreement with exactly the agreed amount.
type DepositMsg struct {
	EscrowID []byte     `protobuf:"bytes,1,opt,name=escrow_id,json=escrowId,proto3" json:"escrow_id,omitempty"`
	Amount   *coin.Coin `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

var _ proto.Message = (*DepositMsg)(nil)

func (m *DepositMsg) Reset()         { *m = DepositMsg{} }
func (m *DepositMsg) String() string { return proto.CompactTextString(m) }
func (*DepositMsg) ProtoMessage()    {}

type depositMsgPB DepositMsg

func (m *depositMsgPB) Reset()         { *m = depositMsgPB{} }
func (m *depositMsgPB) String() string { return proto.CompactTextString(m) }
func (*depositMsgPB) ProtoMessage()    {}

func (m *DepositMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*depositMsgPB)(m))
}

func (m *DepositMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*depositMsgPB)(m))
}

// ReleaseEscrowMsg pays the held amount out to the receiver.
type ReleaseEscrowMsg struct {
	EscrowID []byte `protobuf:"bytes,1,opt,name=escrow_id,json=escrowId,proto3" json:"escrow_id,omitempty"`
}

var _ proto.Message = (*ReleaseEscrowMsg)(nil)

func (m *ReleaseEscrowMsg) Reset()         { *m = ReleaseEscrowMsg{} }
func (m *ReleaseEscrowMsg) String() string { return proto.CompactTextString(m) }
func (*ReleaseEscrowMsg) ProtoMessage()    {}

type releaseEscrowMsgPB ReleaseEscrowMsg

func (m *releaseEscrowMsgPB) Reset()         { *m = releaseEscrowMsgPB{} }
func (m *releaseEscrowMsgPB) String() string { return proto.CompactTextString(m) }
func (*releaseEscrowMsgPB) ProtoMessage()    {}

func (m *ReleaseEscrowMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*releaseEscrowMsgPB)(m))
}

func (m *ReleaseEscrowMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*releaseEscrowMsgPB)(m))
}

// CancelEscrowMsg returns the held amount to the sender.
type CancelEscrowMsg struct {
	EscrowID []byte `protobuf:"bytes,1,opt,name=escrow_id,json=escrowId,proto3" json:"escrow_id,omitempty"`
}

var _ proto.Message = (*CancelEscrowMsg)(nil)

func (m *CancelEscrowMsg) Reset()         { *m = CancelEscrowMsg{} }
func (m *CancelEscrowMsg) String() string { return proto.CompactTextString(m) }
func (*CancelEscrowMsg) ProtoMessage()    {}

type cancelEscrowMsgPB CancelEscrowMsg

func (m *cancelEscrowMsgPB) Reset()         { *m = cancelEscrowMsgPB{} }
func (m *cancelEscrowMsgPB) String() string { return proto.CompactTextString(m) }
func (*cancelEscrowMsgPB) ProtoMessage()    {}

func (m *CancelEscrowMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*cancelEscrowMsgPB)(m))
}

func (m *CancelEscrowMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*cancelEscrowMsgPB)(m))
}

// ArbitrateMsg forces disbursement of a funded agreement to an
// arbitrary recipient, chosen by the arbitrator.
type ArbitrateMsg struct {
	EscrowID []byte       `protobuf:"bytes,1,opt,name=escrow_id,json=escrowId,proto3" json:"escrow_id,omitempty"`
	To       keep.Address `protobuf:"bytes,2,opt,name=to,proto3,casttype=github.com/cleareto/keep.Address" json:"to,omitempty"`
}

var _ proto.Message = (*ArbitrateMsg)(nil)

func (m *ArbitrateMsg) Reset()         { *m = ArbitrateMsg{} }
func (m *ArbitrateMsg) String() string { return proto.CompactTextString(m) }
func (*ArbitrateMsg) ProtoMessage()    {}

type arbitrateMsgPB ArbitrateMsg

func (m *arbitrateMsgPB) Reset()         { *m = arbitrateMsgPB{} }
func (m *arbitrateMsgPB) String() string { return proto.CompactTextString(m) }
func (*arbitrateMsgPB) ProtoMessage()    {}

func (m *ArbitrateMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*arbitrateMsgPB)(m))
}

func (m *ArbitrateMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*arbitrateMsgPB)(m))
}
