package orm

import (
	"testing"

	"github.com/cleareto/keep/keeptest/assert"
	"github.com/cleareto/keep/store"
)

func TestSequenceStartsAtZero(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("esc", "id")

	for want := int64(0); want < 5; want++ {
		got, err := seq.NextInt(db)
		assert.Nil(t, err)
		assert.Equal(t, want, got)
	}
}

func TestSequenceValEncoding(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("esc", "id")

	first, err := seq.NextVal(db)
	assert.Nil(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0}, first)

	second, err := seq.NextVal(db)
	assert.Nil(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1}, second)

	assert.Equal(t, int64(1), DecodeSequence(second))
}

func TestSequencesAreIndependent(t *testing.T) {
	db := store.MemStore()
	a := NewSequence("esc", "id")
	b := NewSequence("cash", "id")

	for i := 0; i < 3; i++ {
		if _, err := a.NextVal(db); err != nil {
			t.Fatalf("unexpected error: %+v", err)
		}
	}
	got, err := b.NextInt(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), got)
}
