package utils

import (
	"time"

	"github.com/cleareto/keep"
)

// Logging reports the path, the duration and the outcome of every
// operation to the logger on the context.
type Logging struct{}

var _ keep.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs the duration and result of the check
func (l Logging) Check(ctx keep.Context, store keep.KVStore, tx keep.Tx, next keep.Checker) (*keep.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	l.log(ctx, "check", tx, start, err)
	return res, err
}

// Deliver logs the duration and result of the delivery
func (l Logging) Deliver(ctx keep.Context, store keep.KVStore, tx keep.Tx, next keep.Deliverer) (*keep.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	l.log(ctx, "deliver", tx, start, err)
	return res, err
}

func (Logging) log(ctx keep.Context, mode string, tx keep.Tx, start time.Time, err error) {
	logger := keep.GetLogger(ctx).With(
		"mode", mode,
		"path", keep.GetPath(tx),
		"duration", time.Since(start),
	)
	if err != nil {
		logger.Error("operation failed", "err", err)
	} else {
		logger.Info("operation succeeded")
	}
}
