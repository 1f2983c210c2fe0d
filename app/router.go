package app

import (
	"fmt"
	"regexp"

	"github.com/cleareto/keep"
	"github.com/cleareto/keep/errors"
)

// isPath constrains what paths we allow to register
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/\-]{4,64}$`).MatchString

// Router allows us to register many handlers with different paths and
// then direct each message to the proper handler.
type Router struct {
	routes map[string]keep.Handler
}

var _ keep.Registry = Router{}
var _ keep.Handler = Router{}

// NewRouter initializes a router with no routes
func NewRouter() Router {
	return Router{
		routes: make(map[string]keep.Handler),
	}
}

// Handle implements keep.Registry. Adding a handler for an invalid
// path or a path already in use is a programmer error and panics.
func (r Router) Handle(m keep.Msg, h keep.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Check dispatches to the proper handler based on the message path
func (r Router) Check(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.CheckResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, db, tx)
}

// Deliver dispatches to the proper handler based on the message path
func (r Router) Deliver(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.DeliverResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, db, tx)
}

func (r Router) handler(tx keep.Tx) (keep.Handler, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get message")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrState, "transaction without message")
	}
	h, ok := r.routes[msg.Path()]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", msg.Path())
	}
	return h, nil
}
