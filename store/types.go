package store

import "github.com/iov-one/swapkit"

// Move references for all storage types into this package
// for shorter names everywhere

type (
	ReadOnlyKVStore  = swapkit.ReadOnlyKVStore
	SetDeleter       = swapkit.SetDeleter
	KVStore          = swapkit.KVStore
	Batch            = swapkit.Batch
	Iterator         = swapkit.Iterator
	CacheableKVStore = swapkit.CacheableKVStore
	KVCacheWrap      = swapkit.KVCacheWrap
	CommitKVStore    = swapkit.CommitKVStore
	CommitID         = swapkit.CommitID
	Model            = swapkit.Model
)
