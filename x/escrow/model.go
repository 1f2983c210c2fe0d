package escrow

import (
	"github.com/cleareto/keep"
	"github.com/cleareto/keep/errors"
	"github.com/cleareto/keep/orm"
)

// BucketName is where the agreements live
const BucketName = "esc"

// SequenceName is the id counter scoped to the bucket
const SequenceName = "id"

var _ orm.Model = (*Agreement)(nil)

// Validate ensures the agreement is complete and consistent before
// it hits the database.
func (a *Agreement) Validate() error {
	if err := a.Sender.Validate(); err != nil {
		return errors.Wrap(err, "sender")
	}
	if err := a.Receiver.Validate(); err != nil {
		return errors.Wrap(err, "receiver")
	}
	if a.Amount == nil {
		return errors.Wrap(errors.ErrAmount, "missing amount")
	}
	if err := a.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !a.Amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount: %s", a.Amount)
	}
	if a.Status < StatusAwaitingDeposit || a.Status > StatusCancelled {
		return errors.Wrapf(errors.ErrState, "invalid status: %d", a.Status)
	}
	return nil
}

// NewBucket returns the bucket all agreements are stored in,
// keyed by 8 byte big endian id
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName)
}

// Condition derives the custody identity for one agreement. The funds
// of a deposited agreement sit on this condition's address until they
// are disbursed.
func Condition(id []byte) keep.Condition {
	return keep.NewCondition("escrow", "seq", id)
}

// LoadAgreement is the read path: it returns the full agreement
// snapshot for the given id, or ErrNotFound for an unknown id.
func LoadAgreement(db keep.ReadOnlyKVStore, bucket orm.ModelBucket, id []byte) (*Agreement, error) {
	var agreement Agreement
	if err := bucket.One(db, id, &agreement); err != nil {
		return nil, errors.Wrapf(err, "agreement %X", id)
	}
	return &agreement, nil
}
