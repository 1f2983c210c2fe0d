package utils

import (
	"github.com/cleareto/keep"
	"github.com/cleareto/keep/errors"
)

// Savepoint will isolate all data inside of the call, and commit or
// rollback the transaction based on the result. Every handler below
// this decorator is all or nothing: an error discards every write the
// handler made, including any state it stored before the failure.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ keep.Decorator = Savepoint{}

// NewSavepoint creates a savepoint decorator.
// Without calling OnCheck/OnDeliver it is a no-op.
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck returns a savepoint that isolates all Check calls
func (s Savepoint) OnCheck() Savepoint {
	return Savepoint{onCheck: true, onDeliver: s.onDeliver}
}

// OnDeliver returns a savepoint that isolates all Deliver calls
func (s Savepoint) OnDeliver() Savepoint {
	return Savepoint{onCheck: s.onCheck, onDeliver: true}
}

// Check uses a cache wrap to roll back on error
func (s Savepoint) Check(ctx keep.Context, store keep.KVStore, tx keep.Tx, next keep.Checker) (*keep.CheckResult, error) {
	if !s.onCheck {
		return next.Check(ctx, store, tx)
	}
	cache, err := cacheWrap(store)
	if err != nil {
		return nil, err
	}
	res, err := next.Check(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return res, err
	}
	return res, cache.Write()
}

// Deliver uses a cache wrap to roll back on error
func (s Savepoint) Deliver(ctx keep.Context, store keep.KVStore, tx keep.Tx, next keep.Deliverer) (*keep.DeliverResult, error) {
	if !s.onDeliver {
		return next.Deliver(ctx, store, tx)
	}
	cache, err := cacheWrap(store)
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return res, err
	}
	return res, cache.Write()
}

func cacheWrap(store keep.KVStore) (keep.KVCacheWrap, error) {
	cached, ok := store.(keep.CacheableKVStore)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "store cannot be cache wrapped")
	}
	return cached.CacheWrap(), nil
}
