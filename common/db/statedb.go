// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"sync"
)

// StateDB buffers writes of one transaction over a backend. Commit applies
// them through a single backend batch, Rollback discards them.
type StateDB struct {
	maindb  DB
	txcache *GoMemDB
	intx    bool
	mu      sync.RWMutex
}

//NewStateDB new
func NewStateDB(maindb DB) *StateDB {
	return &StateDB{maindb: maindb}
}

//Get 事务中先读 txcache
func (l *StateDB) Get(key []byte) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.intx {
		if value, err := l.txcache.Get(key); err == nil {
			if isdeleted(value) {
				return nil, ErrNotFoundInDb
			}
			return value, nil
		}
	}
	value, err := l.maindb.Get(key)
	if err != nil {
		return nil, err
	}
	if isdeleted(value) {
		return nil, ErrNotFoundInDb
	}
	return value, nil
}

//Set 事务外直接写后端
func (l *StateDB) Set(key []byte, value []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.intx {
		//value 为空代表 key 已经删除
		return l.txcache.Set(key, value)
	}
	if isdeleted(value) {
		return l.maindb.Delete(key)
	}
	return l.maindb.Set(key, value)
}

//Delete 删除
func (l *StateDB) Delete(key []byte) error {
	return l.Set(key, nil)
}

//List 只查询已经提交的数据
func (l *StateDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	return NewListHelper(l.maindb).List(prefix, key, count, direction)
}

//Begin 开启内存事务
func (l *StateDB) Begin() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.intx {
		return ErrTxAlreadyActive
	}
	l.intx = true
	l.txcache = NewGoMemDB("", "", 0)
	return nil
}

//Rollback 丢弃事务
func (l *StateDB) Rollback() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resetTx()
}

//Commit 一个 batch 写入后端, 失败时后端不变
func (l *StateDB) Commit() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.intx {
		return nil
	}
	defer l.resetTx()
	batch := l.maindb.NewBatch(true)
	it := l.txcache.Iterator(nil, false)
	for it.Rewind(); it.Valid(); it.Next() {
		if isdeleted(it.Value()) {
			batch.Delete(it.Key())
		} else {
			batch.Set(it.Key(), it.Value())
		}
	}
	err := it.Error()
	it.Close()
	if err != nil {
		return err
	}
	return batch.Write()
}

func (l *StateDB) resetTx() {
	l.intx = false
	l.txcache = nil
}

func isdeleted(d []byte) bool {
	return len(d) == 0
}
