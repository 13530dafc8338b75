// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateDBCommit(t *testing.T) {
	for name, maindb := range openBackends(t) {
		sdb := NewStateDB(maindb)
		require.NoError(t, sdb.Set([]byte("a"), []byte("1")), name)

		require.NoError(t, sdb.Begin())
		assert.Equal(t, ErrTxAlreadyActive, sdb.Begin())
		require.NoError(t, sdb.Set([]byte("b"), []byte("2")))
		require.NoError(t, sdb.Delete([]byte("a")))

		//事务中可以读到自己的修改, 后端不变
		v, err := sdb.Get([]byte("b"))
		require.NoError(t, err)
		assert.Equal(t, []byte("2"), v)
		_, err = sdb.Get([]byte("a"))
		assert.Equal(t, ErrNotFoundInDb, err)
		_, err = maindb.Get([]byte("b"))
		assert.Equal(t, ErrNotFoundInDb, err, name)
		v, err = maindb.Get([]byte("a"))
		require.NoError(t, err)
		assert.Equal(t, []byte("1"), v)

		require.NoError(t, sdb.Commit())
		assert.NoError(t, sdb.Begin(), name)
		sdb.Rollback()
		v, err = maindb.Get([]byte("b"))
		require.NoError(t, err, name)
		assert.Equal(t, []byte("2"), v)
		_, err = maindb.Get([]byte("a"))
		assert.Equal(t, ErrNotFoundInDb, err, name)
	}
}

func TestStateDBRollback(t *testing.T) {
	maindb := NewGoMemDB("", "", 0)
	sdb := NewStateDB(maindb)
	require.NoError(t, sdb.Set([]byte("a"), []byte("1")))

	require.NoError(t, sdb.Begin())
	require.NoError(t, sdb.Set([]byte("a"), []byte("2")))
	require.NoError(t, sdb.Set([]byte("c"), []byte("3")))
	sdb.Rollback()

	v, err := sdb.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), v)
	_, err = sdb.Get([]byte("c"))
	assert.Equal(t, ErrNotFoundInDb, err)
	//没有事务时 commit 什么也不做
	require.NoError(t, sdb.Commit())
}

func TestStateDBList(t *testing.T) {
	maindb := NewGoMemDB("", "", 0)
	sdb := NewStateDB(maindb)
	require.NoError(t, sdb.Set([]byte("h-1"), []byte("1")))
	require.NoError(t, sdb.Begin())
	require.NoError(t, sdb.Set([]byte("h-2"), []byte("2")))
	values, err := sdb.List([]byte("h-"), nil, 0, ListASC)
	require.NoError(t, err)
	assert.Len(t, values, 1)
	require.NoError(t, sdb.Commit())
	values, err = sdb.List([]byte("h-"), nil, 0, ListASC)
	require.NoError(t, err)
	assert.Len(t, values, 2)
}
