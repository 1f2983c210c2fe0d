package escrow

import (
	"strconv"

	"github.com/tendermint/tendermint/libs/common"

	"github.com/cleareto/keep"
	"github.com/cleareto/keep/errors"
	"github.com/cleareto/keep/orm"
	"github.com/cleareto/keep/x"
	"github.com/cleareto/keep/x/cash"
)

const (
	createEscrowCost int64 = 300
	transitionCost   int64 = 150
)

// RegisterRoutes will instantiate and register all handlers in this
// package. The arbiter address is fixed here for the lifetime of the
// router, there is no way to change it afterwards.
func RegisterRoutes(r keep.Registry, auth x.Authenticator, ctrl cash.Controller, arbiter keep.Address) {
	bucket := NewBucket()
	r.Handle(&CreateEscrowMsg{}, CreateEscrowHandler{auth, bucket})
	r.Handle(&DepositMsg{}, DepositHandler{auth, bucket, ctrl})
	r.Handle(&ReleaseEscrowMsg{}, ReleaseEscrowHandler{auth, bucket, ctrl})
	r.Handle(&CancelEscrowMsg{}, CancelEscrowHandler{auth, bucket, ctrl})
	r.Handle(&ArbitrateMsg{}, ArbitrateHandler{auth, bucket, ctrl, arbiter})
}

// CreateEscrowHandler opens new agreements.
type CreateEscrowHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
}

var _ keep.Handler = CreateEscrowHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h CreateEscrowHandler) Check(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return keep.NewCheck(createEscrowCost, ""), nil
}

// Deliver allocates the next id and stores the new agreement in
// AwaitingDeposit. No funds move yet.
func (h CreateEscrowHandler) Deliver(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	sender := x.MainSigner(ctx, h.auth).Address()

	ids := h.bucket.Sequence(SequenceName)
	id, err := ids.NextVal(db)
	if err != nil {
		return nil, err
	}

	amount := *msg.Amount
	agreement := &Agreement{
		Sender:   sender,
		Receiver: msg.Receiver,
		Amount:   &amount,
		Status:   StatusAwaitingDeposit,
	}
	if err := h.bucket.Put(db, id, agreement); err != nil {
		return nil, err
	}

	return &keep.DeliverResult{
		Data: id,
		Tags: []common.KVPair{
			keep.Pair("escrow-id", escrowIDString(id)),
			keep.Pair("sender", sender.String()),
			keep.Pair("receiver", msg.Receiver.String()),
			keep.Pair("amount", msg.Amount.String()),
		},
	}, nil
}

func (h CreateEscrowHandler) validate(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*CreateEscrowMsg, error) {
	var msg CreateEscrowMsg
	if err := keep.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if x.MainSigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return &msg, nil
}

// DepositHandler funds an existing agreement.
type DepositHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	cash   cash.Controller
}

var _ keep.Handler = DepositHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h DepositHandler) Check(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return keep.NewCheck(transitionCost, ""), nil
}

// Deliver moves the agreement to Deposited and pulls the amount into
// custody. On transfer failure nothing is committed and the status
// stays AwaitingDeposit.
func (h DepositHandler) Deliver(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.DeliverResult, error) {
	msg, agreement, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := deposit(db, h.bucket, h.cash, msg.EscrowID, agreement); err != nil {
		return nil, err
	}
	return &keep.DeliverResult{
		Data: msg.EscrowID,
		Tags: []common.KVPair{
			keep.Pair("escrow-id", escrowIDString(msg.EscrowID)),
			keep.Pair("amount", agreement.Amount.String()),
		},
	}, nil
}

func (h DepositHandler) validate(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*DepositMsg, *Agreement, error) {
	var msg DepositMsg
	if err := keep.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	agreement, err := LoadAgreement(db, h.bucket, msg.EscrowID)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, agreement.Sender) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the sender can deposit")
	}
	if agreement.Status != StatusAwaitingDeposit {
		return nil, nil, errors.Wrapf(errors.ErrState, "expected %s, got %s",
			StatusAwaitingDeposit, agreement.Status)
	}
	if !msg.Amount.Equals(*agreement.Amount) {
		return nil, nil, errors.Wrapf(ErrAmountMismatch, "agreed %s, offered %s",
			agreement.Amount, msg.Amount)
	}
	return &msg, agreement, nil
}

// ReleaseEscrowHandler pays a funded agreement out to the receiver.
type ReleaseEscrowHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	cash   cash.Controller
}

var _ keep.Handler = ReleaseEscrowHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h ReleaseEscrowHandler) Check(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return keep.NewCheck(transitionCost, ""), nil
}

// Deliver moves the agreement to Released and the funds from custody
// to the receiver.
func (h ReleaseEscrowHandler) Deliver(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.DeliverResult, error) {
	msg, agreement, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	recipient := agreement.Receiver
	if err := payout(db, h.bucket, h.cash, msg.EscrowID, agreement, recipient, StatusReleased); err != nil {
		return nil, err
	}
	return &keep.DeliverResult{
		Data: msg.EscrowID,
		Tags: []common.KVPair{
			keep.Pair("escrow-id", escrowIDString(msg.EscrowID)),
			keep.Pair("recipient", recipient.String()),
		},
	}, nil
}

func (h ReleaseEscrowHandler) validate(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*ReleaseEscrowMsg, *Agreement, error) {
	var msg ReleaseEscrowMsg
	if err := keep.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	agreement, err := LoadAgreement(db, h.bucket, msg.EscrowID)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, agreement.Sender) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the sender can release")
	}
	if agreement.Status != StatusDeposited {
		return nil, nil, errors.Wrapf(errors.ErrState, "expected %s, got %s",
			StatusDeposited, agreement.Status)
	}
	return &msg, agreement, nil
}

// CancelEscrowHandler returns the funds of a funded agreement to the
// sender.
type CancelEscrowHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	cash   cash.Controller
}

var _ keep.Handler = CancelEscrowHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h CancelEscrowHandler) Check(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return keep.NewCheck(transitionCost, ""), nil
}

// Deliver moves the agreement to Cancelled and refunds the sender.
func (h CancelEscrowHandler) Deliver(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.DeliverResult, error) {
	msg, agreement, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := payout(db, h.bucket, h.cash, msg.EscrowID, agreement, agreement.Sender, StatusCancelled); err != nil {
		return nil, err
	}
	return &keep.DeliverResult{
		Data: msg.EscrowID,
		Tags: []common.KVPair{
			keep.Pair("escrow-id", escrowIDString(msg.EscrowID)),
		},
	}, nil
}

func (h CancelEscrowHandler) validate(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*CancelEscrowMsg, *Agreement, error) {
	var msg CancelEscrowMsg
	if err := keep.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	agreement, err := LoadAgreement(db, h.bucket, msg.EscrowID)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, agreement.Sender) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the sender can cancel")
	}
	if agreement.Status != StatusDeposited {
		return nil, nil, errors.Wrapf(errors.ErrState, "expected %s, got %s",
			StatusDeposited, agreement.Status)
	}
	return &msg, agreement, nil
}

// ArbitrateHandler lets the fixed arbitrator force disbursement of a
// funded agreement to any recipient. The recipient may differ from
// the original receiver, this is a trust assumption placed on the
// arbitrator.
type ArbitrateHandler struct {
	auth    x.Authenticator
	bucket  orm.ModelBucket
	cash    cash.Controller
	arbiter keep.Address
}

var _ keep.Handler = ArbitrateHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h ArbitrateHandler) Check(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return keep.NewCheck(transitionCost, ""), nil
}

// Deliver moves the agreement to Released and the funds from custody
// to the recipient named in the message.
func (h ArbitrateHandler) Deliver(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.DeliverResult, error) {
	msg, agreement, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := payout(db, h.bucket, h.cash, msg.EscrowID, agreement, msg.To, StatusReleased); err != nil {
		return nil, err
	}
	return &keep.DeliverResult{
		Data: msg.EscrowID,
		Tags: []common.KVPair{
			keep.Pair("escrow-id", escrowIDString(msg.EscrowID)),
			keep.Pair("recipient", msg.To.String()),
		},
	}, nil
}

func (h ArbitrateHandler) validate(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*ArbitrateMsg, *Agreement, error) {
	var msg ArbitrateMsg
	if err := keep.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	agreement, err := LoadAgreement(db, h.bucket, msg.EscrowID)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, h.arbiter) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the arbitrator can arbitrate")
	}
	if agreement.Status != StatusDeposited {
		return nil, nil, errors.Wrapf(errors.ErrState, "expected %s, got %s",
			StatusDeposited, agreement.Status)
	}
	return &msg, agreement, nil
}

func escrowIDString(id []byte) string {
	return strconv.FormatInt(orm.DecodeSequence(id), 10)
}
