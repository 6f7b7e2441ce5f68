package orm

import (
	"testing"

	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/errors"
	"github.com/iov-one/swapkit/store"
	"github.com/iov-one/swapkit/swaptest/assert"
)

func TestModelBucket(t *testing.T) {
	db := store.MemStore()

	b := NewModelBucket("cnts", &counter{})

	assert.Nil(t, b.Put(db, []byte("c1"), &counter{Count: 1}))

	var c1 counter
	assert.Nil(t, b.One(db, []byte("c1"), &c1))
	assert.Equal(t, int64(1), c1.Count)
	assert.Nil(t, b.Has(db, []byte("c1")))

	assert.IsErr(t, errors.ErrNotFound, b.One(db, []byte("unknown"), &c1))
	assert.IsErr(t, errors.ErrNotFound, b.Has(db, []byte("unknown")))

	assert.Nil(t, b.Delete(db, []byte("c1")))
	assert.IsErr(t, errors.ErrNotFound, b.Delete(db, []byte("c1")))
	assert.IsErr(t, errors.ErrNotFound, b.One(db, []byte("c1"), &c1))
}

func TestModelBucketPutRejects(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	assert.IsErr(t, errors.ErrType, b.Put(db, []byte("x"), &other{}))
	assert.IsErr(t, errors.ErrModel, b.Put(db, []byte("x"), &counter{Count: -1}))
	assert.IsErr(t, errors.ErrEmpty, b.Put(db, nil, &counter{Count: 2}))

	assert.Nil(t, b.Put(db, []byte("x"), &counter{Count: 2}))
	var o other
	assert.IsErr(t, errors.ErrType, b.One(db, []byte("x"), &o))
}

func TestBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})
	assert.Nil(t, b.Put(db, []byte("a1"), &counter{Count: 1}))
	assert.Nil(t, b.Put(db, []byte("a2"), &counter{Count: 2}))
	assert.Nil(t, b.Put(db, []byte("b1"), &counter{Count: 3}))

	qr := swapkit.NewQueryRouter()
	b.Register("counters", qr)
	h := qr.Handler("/counters")
	if h == nil {
		t.Fatal("handler not registered")
	}

	res, err := h.Query(db, swapkit.KeyQueryMod, []byte("a2"))
	assert.Nil(t, err)
	assert.Equal(t, 1, len(res))
	assert.EqualBytes(t, []byte("cnts:a2"), res[0].Key)

	res, err = h.Query(db, swapkit.KeyQueryMod, []byte("zz"))
	assert.Nil(t, err)
	assert.Equal(t, 0, len(res))

	res, err = h.Query(db, swapkit.PrefixQueryMod, []byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, 2, len(res))

	_, err = h.Query(db, "bogus", nil)
	assert.IsErr(t, errors.ErrInput, err)
}

func TestBucketNamePanics(t *testing.T) {
	assert.Panics(t, func() { NewBucket("X", NewSimpleObj(nil, &counter{})) })
}
