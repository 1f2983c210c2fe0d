package app

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleareto/keep"
	"github.com/cleareto/keep/keeptest"
	"github.com/cleareto/keep/orm"
	"github.com/cleareto/keep/store"
)

// allocHandler draws the next value from a sequence on every Deliver,
// the same access pattern the escrow creation handler has.
type allocHandler struct {
	ids orm.Sequence
}

var _ keep.Handler = &allocHandler{}

func (h *allocHandler) Check(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.CheckResult, error) {
	return &keep.CheckResult{}, nil
}

func (h *allocHandler) Deliver(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.DeliverResult, error) {
	id, err := h.ids.NextVal(db)
	if err != nil {
		return nil, err
	}
	return &keep.DeliverResult{Data: id}, nil
}

func TestDispatcherSerializesAllocation(t *testing.T) {
	const workers = 50

	db := store.MemStore()
	d := NewDispatcher(&allocHandler{ids: orm.NewSequence("test", "id")})

	results := make([]int64, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			res, err := d.Deliver(context.Background(), db, &keeptest.Tx{})
			if !assert.NoError(t, err) {
				return
			}
			results[i] = orm.DecodeSequence(res.Data)
		}(i)
	}
	wg.Wait()

	// every worker got a distinct id and together they are dense,
	// starting at zero
	sort.Slice(results, func(i, j int) bool { return results[i] < results[j] })
	for i, got := range results {
		assert.Equal(t, int64(i), got)
	}
}

func TestChainInitializers(t *testing.T) {
	db := store.MemStore()
	opts := keep.Options{}

	var order []string
	init := ChainInitializers(
		nil,
		recordInit{name: "first", order: &order},
		recordInit{name: "second", order: &order},
	)
	require.NoError(t, init.FromGenesis(opts, db))
	assert.Equal(t, []string{"first", "second"}, order)
}

type recordInit struct {
	name  string
	order *[]string
}

func (r recordInit) FromGenesis(keep.Options, keep.KVStore) error {
	*r.order = append(*r.order, r.name)
	return nil
}
