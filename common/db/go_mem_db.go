// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/memdb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// memdb 应该无需区分同步与异步操作

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache), nil
	}
	RegisterDBCreator(MemDBBackendStr, dbCreator, false)
}

//GoMemDB db
type GoMemDB struct {
	db *memdb.DB
	// batch 写入需要原子
	mu sync.RWMutex
}

//NewGoMemDB new
func NewGoMemDB(name string, dir string, cache int) *GoMemDB {
	return &GoMemDB{
		db: memdb.New(comparer.DefaultComparer, 0),
	}
}

//Get get
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	v, err := db.db.Get(key)
	if err != nil {
		return nil, ErrNotFoundInDb
	}
	return CloneByte(v), nil
}

//Set set
func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.db.Put(key, value)
}

//Delete 删除
func (db *GoMemDB) Delete(key []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	err := db.db.Delete(key)
	if err != nil && err != errors.ErrNotFound {
		return err
	}
	return nil
}

//Close 关闭
func (db *GoMemDB) Close() {
}

//Iterator 迭代器, memdb 允许迭代的同时写入
func (db *GoMemDB) Iterator(prefix []byte, reverse bool) Iterator {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return &goLevelDBIt{db.db.NewIterator(util.BytesPrefix(prefix)), reverse}
}

//NewBatch new
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

type memBatch struct {
	db     *GoMemDB
	writes []kv
	size   int
}

func (b *memBatch) Set(key, value []byte) {
	if value == nil {
		value = []byte{}
	}
	b.writes = append(b.writes, kv{CloneByte(key), CloneByte(value)})
	b.size += len(key) + len(value)
}

func (b *memBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{CloneByte(key), nil})
	b.size += len(key)
}

func (b *memBatch) Write() error {
	b.db.mu.Lock()
	defer b.db.mu.Unlock()
	for _, w := range b.writes {
		if w.v == nil {
			if err := b.db.db.Delete(w.k); err != nil && err != errors.ErrNotFound {
				return err
			}
			continue
		}
		if err := b.db.db.Put(w.k, w.v); err != nil {
			return err
		}
	}
	return nil
}

func (b *memBatch) ValueSize() int {
	return b.size
}

func (b *memBatch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}
