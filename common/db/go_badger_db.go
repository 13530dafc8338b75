// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"fmt"
	"path"

	"github.com/dgraph-io/badger"
	log "github.com/inconshreveable/log15"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var blog = log.New("module", "db.gobadgerdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	RegisterDBCreator(GoBadgerDBBackendStr, dbCreator, false)
}

//GoBadgerDB badger
type GoBadgerDB struct {
	db *badger.DB
}

// badger 的日志转到 log15
type badgerLogger struct{}

func (badgerLogger) Errorf(f string, v ...interface{})   { blog.Error(fmt.Sprintf(f, v...)) }
func (badgerLogger) Warningf(f string, v ...interface{}) { blog.Warn(fmt.Sprintf(f, v...)) }
func (badgerLogger) Infof(f string, v ...interface{})    { blog.Debug(fmt.Sprintf(f, v...)) }
func (badgerLogger) Debugf(f string, v ...interface{})   { blog.Debug(fmt.Sprintf(f, v...)) }

//NewGoBadgerDB new
func NewGoBadgerDB(name string, dir string, cache int) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name+".db")
	opts := badger.DefaultOptions(dbPath).WithLogger(badgerLogger{})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

//Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFoundInDb
	}
	if err != nil {
		blog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

//Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
	}
	return err
}

//Delete 删除
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
	}
	return err
}

//Close 关闭
func (db *GoBadgerDB) Close() {
	if err := db.db.Close(); err != nil {
		blog.Error("Close", "error", err)
	}
}

//Iterator 迭代器, 只读事务在 Close 时释放
func (db *GoBadgerDB) Iterator(prefix []byte, reverse bool) Iterator {
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	return &goBadgerDBIt{txn: txn, it: txn.NewIterator(opts), prefix: prefix, reverse: reverse}
}

type goBadgerDBIt struct {
	txn     *badger.Txn
	it      *badger.Iterator
	prefix  []byte
	reverse bool
	err     error
}

func (dbit *goBadgerDBIt) Rewind() bool {
	if !dbit.reverse {
		dbit.it.Seek(dbit.prefix)
		return dbit.Valid()
	}
	limit := util.BytesPrefix(dbit.prefix).Limit
	if limit == nil {
		dbit.it.Rewind()
		return dbit.Valid()
	}
	//反向 Seek 到最后一个 <= limit, limit 本身不在前缀范围
	dbit.it.Seek(limit)
	if dbit.it.Valid() && bytes.Equal(dbit.it.Item().Key(), limit) {
		dbit.it.Next()
	}
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Next() bool {
	dbit.it.Next()
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Valid() bool {
	return dbit.err == nil && dbit.it.ValidForPrefix(dbit.prefix)
}

//Seek 正向到第一个 >= key, 反向到最后一个 <= key
func (dbit *goBadgerDBIt) Seek(key []byte) bool {
	if clampSeek(dbit.prefix, key, dbit.reverse) {
		return dbit.Rewind()
	}
	dbit.it.Seek(key)
	return dbit.Valid()
}

func (dbit *goBadgerDBIt) Key() []byte {
	if !dbit.Valid() {
		return nil
	}
	return dbit.it.Item().Key()
}

func (dbit *goBadgerDBIt) Value() []byte {
	if !dbit.Valid() {
		return nil
	}
	value, err := dbit.it.Item().ValueCopy(nil)
	if err != nil {
		blog.Error("Value", "error", err)
		dbit.err = err
		return nil
	}
	return value
}

func (dbit *goBadgerDBIt) ValueCopy() []byte {
	return dbit.Value()
}

func (dbit *goBadgerDBIt) Error() error {
	return dbit.err
}

func (dbit *goBadgerDBIt) Close() {
	dbit.it.Close()
	dbit.txn.Discard()
}

//NewBatch new
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &badgerBatch{db: db}
}

type badgerBatch struct {
	db     *GoBadgerDB
	writes []kv
	size   int
}

func (b *badgerBatch) Set(key, value []byte) {
	if value == nil {
		value = []byte{}
	}
	b.writes = append(b.writes, kv{CloneByte(key), CloneByte(value)})
	b.size += len(key) + len(value)
}

func (b *badgerBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{CloneByte(key), nil})
	b.size += len(key)
}

// Write 在一个 badger 事务里提交
func (b *badgerBatch) Write() error {
	err := b.db.db.Update(func(txn *badger.Txn) error {
		for _, w := range b.writes {
			var err error
			if w.v == nil {
				err = txn.Delete(w.k)
			} else {
				err = txn.Set(w.k, w.v)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		blog.Error("Write", "error", err)
	}
	return err
}

func (b *badgerBatch) ValueSize() int {
	return b.size
}

func (b *badgerBatch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}
