package app

import (
	"github.com/cleareto/keep"
)

// Decorators holds a chain of decorators, not yet bound to a handler.
type Decorators struct {
	chain []keep.Decorator
}

// ChainDecorators takes a chain of decorators,
// to be used to wrap a handler. eg.
//
//   ChainDecorators(recovery, logging, savepoint).WithHandler(router)
//
// The first decorator in the list is the outermost one.
func ChainDecorators(chain ...keep.Decorator) Decorators {
	return Decorators{chain: cutNil(chain)}
}

// Chain appends more decorators to the end of the chain
func (d Decorators) Chain(chain ...keep.Decorator) Decorators {
	return Decorators{chain: append(d.chain, cutNil(chain)...)}
}

// WithHandler binds the chain to a handler and returns something
// that is itself a handler.
func (d Decorators) WithHandler(h keep.Handler) keep.Handler {
	return step{chain: d.chain, final: h}
}

// cutNil allows optional decorators to be passed as nil without
// polluting the chain
func cutNil(chain []keep.Decorator) []keep.Decorator {
	out := make([]keep.Decorator, 0, len(chain))
	for _, d := range chain {
		if d != nil {
			out = append(out, d)
		}
	}
	return out
}

// step is one location in the chain. It passes itself, minus the
// head, as the next handler to the head decorator.
type step struct {
	chain []keep.Decorator
	final keep.Handler
}

var _ keep.Handler = step{}

func (s step) Check(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.CheckResult, error) {
	if len(s.chain) == 0 {
		return s.final.Check(ctx, db, tx)
	}
	next := step{chain: s.chain[1:], final: s.final}
	return s.chain[0].Check(ctx, db, tx, next)
}

func (s step) Deliver(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.DeliverResult, error) {
	if len(s.chain) == 0 {
		return s.final.Deliver(ctx, db, tx)
	}
	next := step{chain: s.chain[1:], final: s.final}
	return s.chain[0].Deliver(ctx, db, tx, next)
}
