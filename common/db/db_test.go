// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openBackends(t *testing.T) map[string]DB {
	dir := t.TempDir()
	dbs := make(map[string]DB)
	for _, backend := range []string{MemDBBackendStr, GoLevelDBBackendStr, GoBadgerDBBackendStr, BboltDBBackendStr} {
		db, err := NewDB(backend, backend, dir, 16)
		require.NoError(t, err, backend)
		t.Cleanup(db.Close)
		dbs[backend] = db
	}
	return dbs
}

func TestNewDBUnknown(t *testing.T) {
	_, err := NewDB("x", "cleveldb", t.TempDir(), 16)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestBackendKV(t *testing.T) {
	for name, db := range openBackends(t) {
		_, err := db.Get([]byte("a"))
		assert.Equal(t, ErrNotFoundInDb, err, name)

		require.NoError(t, db.Set([]byte("a"), []byte("1")), name)
		v, err := db.Get([]byte("a"))
		require.NoError(t, err, name)
		assert.Equal(t, []byte("1"), v, name)

		require.NoError(t, db.Delete([]byte("a")), name)
		_, err = db.Get([]byte("a"))
		assert.Equal(t, ErrNotFoundInDb, err, name)
		//删除不存在的 key
		require.NoError(t, db.Delete([]byte("a")), name)
	}
}

func TestBackendBatch(t *testing.T) {
	for name, db := range openBackends(t) {
		require.NoError(t, db.Set([]byte("old"), []byte("x")), name)
		batch := db.NewBatch(true)
		batch.Set([]byte("k1"), []byte("v1"))
		batch.Set([]byte("k2"), []byte("v2"))
		batch.Delete([]byte("old"))
		assert.True(t, batch.ValueSize() > 0, name)
		require.NoError(t, batch.Write(), name)

		v, err := db.Get([]byte("k2"))
		require.NoError(t, err, name)
		assert.Equal(t, []byte("v2"), v, name)
		_, err = db.Get([]byte("old"))
		assert.Equal(t, ErrNotFoundInDb, err, name)

		batch.Reset()
		assert.Equal(t, 0, batch.ValueSize(), name)
	}
}

func TestBackendIterator(t *testing.T) {
	for name, db := range openBackends(t) {
		require.NoError(t, db.Set([]byte("p-2"), []byte("2")))
		require.NoError(t, db.Set([]byte("p-1"), []byte("1")))
		require.NoError(t, db.Set([]byte("p-3"), []byte("3")))
		require.NoError(t, db.Set([]byte("q-1"), []byte("x")))

		var keys []string
		it := db.Iterator([]byte("p-"), false)
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Key()))
		}
		require.NoError(t, it.Error())
		it.Close()
		assert.Equal(t, []string{"p-1", "p-2", "p-3"}, keys, name)

		keys = keys[:0]
		it = db.Iterator([]byte("p-"), true)
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Key()))
		}
		it.Close()
		assert.Equal(t, []string{"p-3", "p-2", "p-1"}, keys, name)

		it = db.Iterator([]byte("p-"), true)
		assert.True(t, it.Seek([]byte("p-25")), name)
		assert.Equal(t, "p-2", string(it.Key()), name)
		assert.Equal(t, []byte("2"), it.ValueCopy(), name)
		it.Close()

		it = db.Iterator([]byte("p-"), false)
		assert.False(t, it.Seek([]byte("p-4")), name)
		assert.Nil(t, it.Key())
		assert.True(t, it.Seek([]byte("a")), name)
		assert.Equal(t, "p-1", string(it.Key()), name)
		it.Close()

		//反向 Seek 超出前缀范围时从最后一个开始
		it = db.Iterator([]byte("p-"), true)
		assert.True(t, it.Seek([]byte("q")), name)
		assert.Equal(t, "p-3", string(it.Key()), name)
		assert.True(t, it.Next(), name)
		assert.Equal(t, "p-2", string(it.Key()), name)
		assert.False(t, it.Seek([]byte("p-0")), name)
		it.Close()

		//前缀的上界本身不在范围内
		require.NoError(t, db.Set([]byte("p."), []byte("limit")))
		it = db.Iterator([]byte("p-"), true)
		assert.True(t, it.Rewind(), name)
		assert.Equal(t, "p-3", string(it.Key()), name)
		it.Close()
	}
}
