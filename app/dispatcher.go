package app

import (
	"sync"

	"github.com/cleareto/keep"
)

// Dispatcher serializes all operations through one lock, so each
// invocation runs guard checks, state mutation and value transfer
// without interleaving. Concurrent creations therefore draw from the
// id sequence exclusively and the issued ids are dense.
type Dispatcher struct {
	mutex   sync.Mutex
	handler keep.Handler
}

var _ keep.Handler = (*Dispatcher)(nil)

// NewDispatcher wraps the handler with a serializing lock
func NewDispatcher(h keep.Handler) *Dispatcher {
	return &Dispatcher{handler: h}
}

// Check runs the wrapped check while holding the lock
func (d *Dispatcher) Check(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.CheckResult, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.handler.Check(ctx, db, tx)
}

// Deliver runs the wrapped delivery while holding the lock
func (d *Dispatcher) Deliver(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.DeliverResult, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.handler.Deliver(ctx, db, tx)
}
