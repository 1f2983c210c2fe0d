package store

import "github.com/cleareto/keep"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = keep.ReadOnlyKVStore
type KVStore = keep.KVStore
type SetDeleter = keep.SetDeleter
type Batch = keep.Batch
type CacheableKVStore = keep.CacheableKVStore
type KVCacheWrap = keep.KVCacheWrap
type CommitKVStore = keep.CommitKVStore
type CommitID = keep.CommitID
