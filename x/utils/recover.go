package utils

import (
	"github.com/cleareto/keep"
	"github.com/cleareto/keep/errors"
)

// Recovery turns a panic anywhere below it into a normal error
// return, so one broken handler cannot take down the host.
type Recovery struct{}

var _ keep.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into errors
func (r Recovery) Check(ctx keep.Context, store keep.KVStore, tx keep.Tx, next keep.Checker) (res *keep.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into errors
func (r Recovery) Deliver(ctx keep.Context, store keep.KVStore, tx keep.Tx, next keep.Deliverer) (res *keep.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
