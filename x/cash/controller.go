package cash

import (
	"github.com/cleareto/keep"
	"github.com/cleareto/keep/coin"
	"github.com/cleareto/keep/errors"
	"github.com/cleareto/keep/orm"
)

// Controller is the functionality needed by other extensions to move
// value around. This can be accessed with a controller instead of a
// handler, as the operations are always a side effect of some other
// transaction, never a transaction themselves.
type Controller interface {
	// MoveCoins removes amount from src and adds it to dest.
	MoveCoins(db keep.KVStore, src, dest keep.Address, amount coin.Coin) error
	// IssueCoins creates amount out of thin air on dest.
	IssueCoins(db keep.KVStore, dest keep.Address, amount coin.Coin) error
	// Balance returns everything the account holds. A missing account
	// is not an error, it holds nothing.
	Balance(db keep.KVStore, addr keep.Address) (coin.Coins, error)
}

// CashController implements Controller on top of a wallet bucket.
type CashController struct {
	bucket orm.ModelBucket
}

var _ Controller = CashController{}

// NewController returns a controller storing balances in the
// given bucket
func NewController(bucket orm.ModelBucket) CashController {
	return CashController{bucket: bucket}
}

// MoveCoins moves the given amount from src to dest.
// If an error occurs, no state is changed.
func (c CashController) MoveCoins(db keep.KVStore, src, dest keep.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive transfer: %s", amount)
	}

	var sender Set
	switch err := c.bucket.One(db, src, &sender); {
	case errors.ErrNotFound.Is(err):
		return errors.Wrapf(ErrEmptyAccount, "address %s", src)
	case err != nil:
		return errors.Wrap(err, "load sender")
	}
	if !sender.Balance().Contains(amount) {
		return errors.Wrapf(ErrInsufficientFunds, "balance %s, requested %s", sender.String(), amount)
	}
	if err := sender.Add(amount.Negative()); err != nil {
		return err
	}

	var receiver Set
	if err := c.bucket.One(db, dest, &receiver); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "load receiver")
	}
	if err := receiver.Add(amount); err != nil {
		return err
	}

	if err := c.bucket.Put(db, src, &sender); err != nil {
		return errors.Wrap(err, "store sender")
	}
	if err := c.bucket.Put(db, dest, &receiver); err != nil {
		return errors.Wrap(err, "store receiver")
	}
	return nil
}

// IssueCoins attempts to add the given amount of coins to
// the destination address, minting new value.
func (c CashController) IssueCoins(db keep.KVStore, dest keep.Address, amount coin.Coin) error {
	var receiver Set
	if err := c.bucket.One(db, dest, &receiver); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "load receiver")
	}
	if err := receiver.Add(amount); err != nil {
		return err
	}
	return c.bucket.Put(db, dest, &receiver)
}

// Balance returns the coins held by the account. Missing accounts
// return an empty balance.
func (c CashController) Balance(db keep.KVStore, addr keep.Address) (coin.Coins, error) {
	var acct Set
	switch err := c.bucket.One(db, addr, &acct); {
	case errors.ErrNotFound.Is(err):
		return nil, nil
	case err != nil:
		return nil, errors.Wrap(err, "load account")
	}
	return acct.Balance(), nil
}
