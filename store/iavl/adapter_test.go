package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/cleareto/keep/keeptest/assert"
)

func tmpStore(t *testing.T) (*CommitStore, func()) {
	t.Helper()
	dir, err := ioutil.TempDir("", "iavl-adapter")
	if err != nil {
		t.Fatalf("cannot create tmpdir: %s", err)
	}
	return NewCommitStore(dir, "test"), func() { os.RemoveAll(dir) }
}

func TestCommitStoreReadWrite(t *testing.T) {
	s, cleanup := tmpStore(t)
	defer cleanup()
	assert.Nil(t, s.LoadLatestVersion())

	k, v := []byte("hello"), []byte("world")

	has, err := s.Has(k)
	assert.Nil(t, err)
	assert.Equal(t, false, has)

	assert.Nil(t, s.Set(k, v))
	got, err := s.Get(k)
	assert.Nil(t, err)
	assert.Equal(t, v, got)

	assert.Nil(t, s.Delete(k))
	got, err = s.Get(k)
	assert.Nil(t, err)
	assert.Nil(t, got)
}

func TestCommitStoreVersions(t *testing.T) {
	s, cleanup := tmpStore(t)
	defer cleanup()
	assert.Nil(t, s.LoadLatestVersion())

	first := s.LatestVersion().Version

	assert.Nil(t, s.Set([]byte("a"), []byte("1")))
	id, err := s.Commit()
	assert.Nil(t, err)
	assert.Equal(t, first+1, id.Version)
	if len(id.Hash) == 0 {
		t.Fatal("commit must produce a hash")
	}

	assert.Nil(t, s.Set([]byte("b"), []byte("2")))
	next, err := s.Commit()
	assert.Nil(t, err)
	assert.Equal(t, id.Version+1, next.Version)
}

func TestCommitStoreCacheWrap(t *testing.T) {
	s, cleanup := tmpStore(t)
	defer cleanup()
	assert.Nil(t, s.LoadLatestVersion())

	k, v := []byte("key"), []byte("value")

	// a discarded wrap leaves no trace
	cache := s.CacheWrap()
	assert.Nil(t, cache.Set(k, v))
	cache.Discard()
	got, err := s.Get(k)
	assert.Nil(t, err)
	assert.Nil(t, got)

	// a written wrap shows up in the parent
	cache = s.CacheWrap()
	assert.Nil(t, cache.Set(k, v))
	assert.Nil(t, cache.Write())
	got, err = s.Get(k)
	assert.Nil(t, err)
	assert.Equal(t, v, got)
}
