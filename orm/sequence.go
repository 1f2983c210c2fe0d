package orm

import (
	"encoding/binary"

	"github.com/cleareto/keep"
)

// Sequence maintains a counter, and generates a
// series of keys. Each key is greater than the last,
// both NextInt() as well as bytes.Compare() on NextVal().
//
// The first value issued is 0, so a sequence of n allocations
// hands out exactly 0..n-1 with no gaps. Values are never reused.
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence counter. Sequence is using following pattern
// to construct a key:
//    _s.<bucket>:<name>
func NewSequence(bucket, name string) Sequence {
	id := "_s." + bucket + ":" + name
	return Sequence{
		id: []byte(id),
	}
}

// NextVal reserves the next free value of the sequence and returns
// it as 8 bytes.
func (s *Sequence) NextVal(db keep.KVStore) ([]byte, error) {
	val, err := s.increment(db)
	if err != nil {
		return nil, err
	}
	return EncodeSequence(val), nil
}

// NextInt reserves the next free value of the sequence and returns
// it as int.
func (s *Sequence) NextInt(db keep.KVStore) (int64, error) {
	return s.increment(db)
}

// increment returns the lowest value never issued before, and persists
// val+1 as the next free one. The stored counter is always an upper
// bound (exclusive) for every value handed out so far.
func (s *Sequence) increment(db keep.KVStore) (int64, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, err
	}
	val := DecodeSequence(raw)
	if err := db.Set(s.id, EncodeSequence(val+1)); err != nil {
		return 0, err
	}
	return val, nil
}

func DecodeSequence(bz []byte) int64 {
	if bz == nil {
		return 0
	}
	val := binary.BigEndian.Uint64(bz)
	return int64(val)
}

func EncodeSequence(val int64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(val))
	return bz
}
