package cash

import (
	"github.com/cleareto/keep/errors"
)

var (
	// ErrInsufficientFunds is returned when the source account does
	// not hold enough to cover the requested movement.
	ErrInsufficientFunds = errors.Register(1020, "insufficient funds")

	// ErrEmptyAccount is returned when moving out of an account that
	// holds nothing at all.
	ErrEmptyAccount = errors.Register(1021, "empty account")
)
