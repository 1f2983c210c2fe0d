package escrow

import (
	"github.com/cleareto/keep"
	"github.com/cleareto/keep/errors"
	"github.com/cleareto/keep/orm"
	"github.com/cleareto/keep/x/cash"
)

// deposit records the funded status and then pulls the full amount
// from the sender into the agreement's custody account. The status
// write is first; the surrounding savepoint throws both away when
// the transfer fails.
func deposit(db keep.KVStore, bucket orm.ModelBucket, ctrl cash.Controller, id []byte, a *Agreement) error {
	a.Status = StatusDeposited
	if err := bucket.Put(db, id, a); err != nil {
		return err
	}
	custody := Condition(id).Address()
	if err := ctrl.MoveCoins(db, a.Sender, custody, *a.Amount); err != nil {
		return errors.Wrap(err, "transfer failed")
	}
	return nil
}

// payout records the terminal status and then moves the full held
// amount out of the agreement's custody account. Same ordering and
// rollback contract as deposit.
func payout(db keep.KVStore, bucket orm.ModelBucket, ctrl cash.Controller, id []byte, a *Agreement, to keep.Address, status Status) error {
	a.Status = status
	if err := bucket.Put(db, id, a); err != nil {
		return err
	}
	custody := Condition(id).Address()
	if err := ctrl.MoveCoins(db, custody, to, *a.Amount); err != nil {
		return errors.Wrap(err, "transfer failed")
	}
	return nil
}
