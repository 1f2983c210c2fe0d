package app

import (
	"context"
	"testing"

	"github.com/cleareto/keep"
	"github.com/cleareto/keep/errors"
	"github.com/cleareto/keep/keeptest"
	"github.com/cleareto/keep/keeptest/assert"
	"github.com/cleareto/keep/store"
)

func TestRouterDispatch(t *testing.T) {
	r := NewRouter()
	good := &keeptest.Handler{}
	other := &keeptest.Handler{}
	r.Handle(&keeptest.Msg{RoutePath: "test/good"}, good)
	r.Handle(&keeptest.Msg{RoutePath: "test/other"}, other)

	ctx := context.Background()
	db := store.MemStore()

	tx := &keeptest.Tx{Msg: &keeptest.Msg{RoutePath: "test/good"}}
	_, err := r.Check(ctx, db, tx)
	assert.Nil(t, err)
	_, err = r.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, 2, good.CallCount())
	assert.Equal(t, 0, other.CallCount())

	// an unknown path reaches no handler
	miss := &keeptest.Tx{Msg: &keeptest.Msg{RoutePath: "test/missing"}}
	_, err = r.Deliver(ctx, db, miss)
	assert.Equal(t, true, errors.ErrNotFound.Is(err))
	assert.Equal(t, 2, good.CallCount())
	assert.Equal(t, 0, other.CallCount())
}

func TestRouterRegistration(t *testing.T) {
	r := NewRouter()
	r.Handle(&keeptest.Msg{RoutePath: "test/good"}, &keeptest.Handler{})

	assert.Panics(t, func() {
		r.Handle(&keeptest.Msg{RoutePath: "test/good"}, &keeptest.Handler{})
	})
	assert.Panics(t, func() {
		r.Handle(&keeptest.Msg{RoutePath: "no spaces allowed"}, &keeptest.Handler{})
	})
}

func TestChainDecorators(t *testing.T) {
	h := &keeptest.Handler{}
	var order []string
	chained := ChainDecorators(
		recorder{name: "outer", order: &order},
		nil,
		recorder{name: "inner", order: &order},
	).Chain(recorder{name: "last", order: &order}).WithHandler(h)

	_, err := chained.Deliver(context.Background(), store.MemStore(), &keeptest.Tx{})
	assert.Nil(t, err)
	assert.Equal(t, 1, h.DeliverCallCount())
	assert.Equal(t, []string{"outer", "inner", "last"}, order)
}

// recorder notes the order decorators were entered in
type recorder struct {
	name  string
	order *[]string
}

var _ keep.Decorator = recorder{}

func (r recorder) Check(ctx keep.Context, db keep.KVStore, tx keep.Tx, next keep.Checker) (*keep.CheckResult, error) {
	*r.order = append(*r.order, r.name)
	return next.Check(ctx, db, tx)
}

func (r recorder) Deliver(ctx keep.Context, db keep.KVStore, tx keep.Tx, next keep.Deliverer) (*keep.DeliverResult, error) {
	*r.order = append(*r.order, r.name)
	return next.Deliver(ctx, db, tx)
}
