package orm

import (
	"testing"

	"github.com/cleareto/keep/coin"
	"github.com/cleareto/keep/errors"
	"github.com/cleareto/keep/keeptest/assert"
	"github.com/cleareto/keep/store"
)

func TestModelBucketPutOne(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("pool")

	key := []byte("atlantic")
	assert.Nil(t, b.Put(db, key, coin.NewCoinp(42, 0, "FOO")))

	var got coin.Coin
	assert.Nil(t, b.One(db, key, &got))
	assert.Equal(t, coin.NewCoin(42, 0, "FOO"), got)
}

func TestModelBucketOneMissing(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("pool")

	var got coin.Coin
	err := b.One(db, []byte("unknown"), &got)
	if !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestModelBucketPutValidates(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("pool")

	// lower-case ticker must be rejected before anything is stored
	err := b.Put(db, []byte("k"), coin.NewCoinp(1, 0, "bad"))
	if err == nil {
		t.Fatal("want validation error")
	}
	has, err := b.Has(db, []byte("k"))
	assert.Nil(t, err)
	assert.Equal(t, false, has)
}

func TestModelBucketDelete(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("pool")

	key := []byte("k")
	assert.Nil(t, b.Put(db, key, coin.NewCoinp(1, 0, "FOO")))
	assert.Nil(t, b.Delete(db, key))

	if err := b.Delete(db, key); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestModelBucketPrefixIsolation(t *testing.T) {
	db := store.MemStore()
	a := NewModelBucket("alpha")
	b := NewModelBucket("beta")

	key := []byte("shared")
	assert.Nil(t, a.Put(db, key, coin.NewCoinp(1, 0, "FOO")))

	var got coin.Coin
	if err := b.One(db, key, &got); !errors.ErrNotFound.Is(err) {
		t.Fatalf("buckets must not share keyspace, got %+v", err)
	}
}

func TestModelBucketRejectsBadName(t *testing.T) {
	assert.Panics(t, func() { NewModelBucket("UPPER") })
	assert.Panics(t, func() { NewModelBucket("ab") })
}
