package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/swapkit/store"
	"github.com/iov-one/swapkit/swaptest/assert"
	dbm "github.com/tendermint/tendermint/libs/db"
)

func makeBase() (store.CacheableKVStore, func()) {
	commit := NewCommitStoreFromDB(dbm.NewMemDB())
	return commit.Adapter(), func() {}
}

func TestAdapterSuite(t *testing.T) {
	suite := store.NewTestSuite(makeBase)
	t.Run("get set", suite.GetSet)
	t.Run("delete", suite.Delete)
	t.Run("iterator", suite.Iterator)
}

func TestCommitPersistsAcrossReload(t *testing.T) {
	dir, err := ioutil.TempDir("", "iavl-adapter-")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	commit := NewCommitStore(dir, "state")
	id, err := commit.LatestVersion()
	assert.Nil(t, err)
	assert.Equal(t, int64(0), id.Version)

	cache := commit.CacheWrap()
	assert.Nil(t, cache.Set([]byte("escrow"), []byte("initialized")))

	// staged but not yet committed
	got, err := commit.Get([]byte("escrow"))
	assert.Nil(t, err)
	assert.Nil(t, got)

	assert.Nil(t, cache.Write())
	id, err = commit.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), id.Version)

	got, err = commit.Get([]byte("escrow"))
	assert.Nil(t, err)
	assert.EqualBytes(t, []byte("initialized"), got)

	second := CommitStore{tree: commit.tree}
	latest, err := second.LatestVersion()
	assert.Nil(t, err)
	assert.EqualBytes(t, id.Hash, latest.Hash)
}

func TestLoadLatestVersion(t *testing.T) {
	db := dbm.NewMemDB()
	commit := NewCommitStoreFromDB(db)
	assert.Nil(t, commit.Adapter().Set([]byte("vault"), []byte("20")))
	want, err := commit.Commit()
	assert.Nil(t, err)

	reopened := NewCommitStoreFromDB(db)
	assert.Nil(t, reopened.LoadLatestVersion())
	got, err := reopened.LatestVersion()
	assert.Nil(t, err)
	assert.Equal(t, want.Version, got.Version)
	assert.EqualBytes(t, want.Hash, got.Hash)

	val, err := reopened.Get([]byte("vault"))
	assert.Nil(t, err)
	assert.EqualBytes(t, []byte("20"), val)
}
