package store

import (
	"testing"

	"github.com/iov-one/swapkit/swaptest/assert"
)

// TestSuite provides store tests that can be called from package-specific
// test code. Only the constructor of the tested store is customized, the rest
// of the logic is generic to the CacheableKVStore interface.
//
// It is shared by btree_test.go and iavl/adapter_test.go.
type TestSuite struct {
	makeBase TestStoreConstructor
}

// TestStoreConstructor returns a fresh store and a function releasing it.
type TestStoreConstructor func() (base CacheableKVStore, cleanup func())

func NewTestSuite(constructor TestStoreConstructor) *TestSuite {
	return &TestSuite{
		makeBase: constructor,
	}
}

// GetSet ensures that writes are visible only in the layer they were made in
// until the layer is written.
func (s *TestSuite) GetSet(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	k, v := []byte("vault"), []byte("20")
	AssertGetHas(t, base, k, nil, false)
	assert.Nil(t, base.Set(k, v))
	AssertGetHas(t, base, k, v, true)

	cache := base.CacheWrap()
	AssertGetHas(t, cache, k, v, true)

	k2, v2 := []byte("receive"), []byte("10")
	assert.Nil(t, cache.Set(k2, v2))
	AssertGetHas(t, cache, k2, v2, true)
	AssertGetHas(t, base, k2, nil, false)

	assert.Nil(t, cache.Write())
	AssertGetHas(t, base, k2, v2, true)

	// a discarded layer leaves no trace
	k3, v3 := []byte("record"), []byte("escrow")
	c2 := base.CacheWrap()
	assert.Nil(t, c2.Set(k3, v3))
	assert.Nil(t, c2.Delete(k))
	AssertGetHas(t, c2, k, nil, false)
	c2.Discard()
	AssertGetHas(t, base, k, v, true)
	AssertGetHas(t, base, k3, nil, false)
}

// Delete ensures deletes shadow the parent value and are written through.
func (s *TestSuite) Delete(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	k, v := []byte("account"), []byte("open")
	assert.Nil(t, base.Set(k, v))

	cache := base.CacheWrap()
	assert.Nil(t, cache.Delete(k))
	AssertGetHas(t, cache, k, nil, false)
	AssertGetHas(t, base, k, v, true)

	// set after delete in the same layer revives the key
	assert.Nil(t, cache.Set(k, []byte("again")))
	AssertGetHas(t, cache, k, []byte("again"), true)
	assert.Nil(t, cache.Delete(k))

	assert.Nil(t, cache.Write())
	AssertGetHas(t, base, k, nil, false)
}

// Iterator ensures that iteration merges cached and parent data in both
// directions and skips deleted entries.
func (s *TestSuite) Iterator(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	for _, k := range []string{"a", "c", "e", "g"} {
		assert.Nil(t, base.Set([]byte(k), []byte("base-"+k)))
	}
	cache := base.CacheWrap()
	assert.Nil(t, cache.Set([]byte("b"), []byte("cache-b")))
	assert.Nil(t, cache.Set([]byte("e"), []byte("cache-e")))
	assert.Nil(t, cache.Delete([]byte("c")))
	assert.Nil(t, cache.Delete([]byte("g")))

	want := []Model{
		{Key: []byte("a"), Value: []byte("base-a")},
		{Key: []byte("b"), Value: []byte("cache-b")},
		{Key: []byte("e"), Value: []byte("cache-e")},
	}

	iter, err := cache.Iterator(nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, want, ReadAll(t, iter))

	iter, err = cache.ReverseIterator(nil, nil)
	assert.Nil(t, err)
	reversed := []Model{want[2], want[1], want[0]}
	assert.Equal(t, reversed, ReadAll(t, iter))

	iter, err = cache.Iterator([]byte("b"), []byte("e"))
	assert.Nil(t, err)
	assert.Equal(t, want[1:2], ReadAll(t, iter))
}

// AssertGetHas checks that Get and Has agree on the value of a key.
func AssertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.EqualBytes(t, val, got)
	exists, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, has, exists)
}

// ReadAll consumes the iterator and returns all models in iteration order.
func ReadAll(t testing.TB, iter Iterator) []Model {
	t.Helper()
	defer iter.Close()
	var res []Model
	for ; iter.Valid(); assert.Nil(t, iter.Next()) {
		res = append(res, Model{Key: iter.Key(), Value: iter.Value()})
	}
	return res
}
