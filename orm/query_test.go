package orm

import (
	"fmt"
	"testing"

	"github.com/iov-one/swapkit"
	"github.com/iov-one/swapkit/store"
	"github.com/iov-one/swapkit/swaptest/assert"
)

func TestPrefixRange(t *testing.T) {
	cases := []struct {
		prefix []byte
		start  []byte
		end    []byte
	}{
		{nil, nil, nil},
		{[]byte{}, nil, nil},
		{[]byte{1}, []byte{1}, []byte{2}},
		{[]byte{7, 18}, []byte{7, 18}, []byte{7, 19}},
		{[]byte{12, 255}, []byte{12, 255}, []byte{13, 0}},
		{[]byte{12, 255, 255}, []byte{12, 255, 255}, []byte{13, 0, 0}},
		{[]byte{255, 255, 255, 255}, []byte{255, 255, 255, 255}, nil},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			start, end := prefixRange(tc.prefix)
			assert.EqualBytes(t, tc.start, start)
			assert.EqualBytes(t, tc.end, end)
		})
	}
}

func TestQueryPrefix(t *testing.T) {
	db := store.MemStore()
	assert.Nil(t, db.Set([]byte("abc"), []byte{1}))
	assert.Nil(t, db.Set([]byte("abd"), []byte{2}))
	assert.Nil(t, db.Set([]byte("ab"), []byte{3}))
	assert.Nil(t, db.Set([]byte("b"), []byte{4}))

	res, err := queryPrefix(db, []byte("ab"))
	assert.Nil(t, err)
	assert.Equal(t, []swapkit.Model{
		swapkit.Pair([]byte("ab"), []byte{3}),
		swapkit.Pair([]byte("abc"), []byte{1}),
		swapkit.Pair([]byte("abd"), []byte{2}),
	}, res)

	res, err = queryPrefix(db, []byte("c"))
	assert.Nil(t, err)
	assert.Equal(t, 0, len(res))
}
