// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"os"
	"path"
	"time"

	log "github.com/inconshreveable/log15"
	"github.com/syndtr/goleveldb/leveldb/util"
	bolt "go.etcd.io/bbolt"
)

var bboltlog = log.New("module", "db.bboltdb")

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewBboltDB(name, dir, cache)
	}
	RegisterDBCreator(BboltDBBackendStr, dbCreator, false)
}

//BboltDB 所有 key 存在一个 bucket 里
type BboltDB struct {
	db     *bolt.DB
	bucket []byte
}

//NewBboltDB new
func NewBboltDB(name string, dir string, cache int) (*BboltDB, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path.Join(dir, name+".bolt"), 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	bucket := []byte(name)
	if len(bucket) == 0 {
		bucket = []byte("default")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BboltDB{db: db, bucket: bucket}, nil
}

//Get get
func (db *BboltDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(db.bucket).Get(key)
		if v == nil {
			return ErrNotFoundInDb
		}
		val = CloneByte(v)
		return nil
	})
	return val, err
}

//Set set
func (db *BboltDB) Set(key []byte, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	err := db.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(db.bucket).Put(key, value)
	})
	if err != nil {
		bboltlog.Error("Set", "error", err)
	}
	return err
}

//Delete 删除
func (db *BboltDB) Delete(key []byte) error {
	err := db.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(db.bucket).Delete(key)
	})
	if err != nil {
		bboltlog.Error("Delete", "error", err)
	}
	return err
}

//Close 关闭
func (db *BboltDB) Close() {
	if err := db.db.Close(); err != nil {
		bboltlog.Error("Close", "error", err)
	}
}

//Iterator 迭代器, 持有一个只读事务直到 Close
func (db *BboltDB) Iterator(prefix []byte, reverse bool) Iterator {
	tx, err := db.db.Begin(false)
	if err != nil {
		bboltlog.Error("Iterator", "error", err)
		return &bboltIt{prefix: prefix, reverse: reverse, err: err}
	}
	return &bboltIt{tx: tx, c: tx.Bucket(db.bucket).Cursor(), prefix: prefix, reverse: reverse}
}

type bboltIt struct {
	tx      *bolt.Tx
	c       *bolt.Cursor
	prefix  []byte
	reverse bool
	key     []byte
	value   []byte
	err     error
}

func (dbit *bboltIt) Rewind() bool {
	if dbit.err != nil {
		return false
	}
	if !dbit.reverse {
		dbit.key, dbit.value = dbit.c.Seek(dbit.prefix)
		return dbit.Valid()
	}
	limit := util.BytesPrefix(dbit.prefix).Limit
	if limit == nil {
		dbit.key, dbit.value = dbit.c.Last()
		return dbit.Valid()
	}
	return dbit.seekLE(limit, false)
}

// seekLE 定位到最后一个 <= key 的位置, inclusive 为 false 时不含 key
func (dbit *bboltIt) seekLE(key []byte, inclusive bool) bool {
	dbit.key, dbit.value = dbit.c.Seek(key)
	if dbit.key == nil {
		dbit.key, dbit.value = dbit.c.Last()
	} else if !inclusive || !bytes.Equal(dbit.key, key) {
		dbit.key, dbit.value = dbit.c.Prev()
	}
	return dbit.Valid()
}

func (dbit *bboltIt) Next() bool {
	if dbit.err != nil || dbit.key == nil {
		return false
	}
	if dbit.reverse {
		dbit.key, dbit.value = dbit.c.Prev()
	} else {
		dbit.key, dbit.value = dbit.c.Next()
	}
	return dbit.Valid()
}

func (dbit *bboltIt) Valid() bool {
	return dbit.err == nil && dbit.key != nil && bytes.HasPrefix(dbit.key, dbit.prefix)
}

//Seek 正向到第一个 >= key, 反向到最后一个 <= key
func (dbit *bboltIt) Seek(key []byte) bool {
	if dbit.err != nil {
		return false
	}
	if clampSeek(dbit.prefix, key, dbit.reverse) {
		return dbit.Rewind()
	}
	if dbit.reverse {
		return dbit.seekLE(key, true)
	}
	dbit.key, dbit.value = dbit.c.Seek(key)
	return dbit.Valid()
}

func (dbit *bboltIt) Key() []byte {
	if !dbit.Valid() {
		return nil
	}
	return dbit.key
}

func (dbit *bboltIt) Value() []byte {
	if !dbit.Valid() {
		return nil
	}
	return dbit.value
}

func (dbit *bboltIt) ValueCopy() []byte {
	return CloneByte(dbit.Value())
}

func (dbit *bboltIt) Error() error {
	return dbit.err
}

func (dbit *bboltIt) Close() {
	if dbit.tx != nil {
		if err := dbit.tx.Rollback(); err != nil {
			bboltlog.Error("Iterator Close", "error", err)
		}
		dbit.tx = nil
	}
}

//NewBatch new
func (db *BboltDB) NewBatch(sync bool) Batch {
	return &bboltBatch{db: db}
}

type bboltBatch struct {
	db     *BboltDB
	writes []kv
	size   int
}

func (b *bboltBatch) Set(key, value []byte) {
	if value == nil {
		value = []byte{}
	}
	b.writes = append(b.writes, kv{CloneByte(key), CloneByte(value)})
	b.size += len(key) + len(value)
}

func (b *bboltBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{CloneByte(key), nil})
	b.size += len(key)
}

func (b *bboltBatch) Write() error {
	err := b.db.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(b.db.bucket)
		for _, w := range b.writes {
			var err error
			if w.v == nil {
				err = bucket.Delete(w.k)
			} else {
				err = bucket.Put(w.k, w.v)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		bboltlog.Error("Write", "error", err)
	}
	return err
}

func (b *bboltBatch) ValueSize() int {
	return b.size
}

func (b *bboltBatch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}
