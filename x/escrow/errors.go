package escrow

import (
	"github.com/cleareto/keep/errors"
)

var (
	// ErrInvalidReceiver is returned when creating an agreement with
	// a missing or malformed receiver identity.
	ErrInvalidReceiver = errors.Register(1010, "invalid receiver")

	// ErrAmountMismatch is returned when a deposit does not match the
	// agreed amount exactly.
	ErrAmountMismatch = errors.Register(1011, "amount mismatch")
)
