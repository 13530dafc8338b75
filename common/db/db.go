// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db kv 数据库后端接口, 列表查询以及事务状态库
package db

import (
	"bytes"
	"errors"

	log "github.com/inconshreveable/log15"
	pkgerr "github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var dlog = log.New("module", "db")

// 错误
var (
	ErrNotFoundInDb    = errors.New("ErrNotFoundInDb")
	ErrUnknownBackend  = errors.New("ErrUnknownBackend")
	ErrTxAlreadyActive = errors.New("ErrTxAlreadyActive")
)

//KV 读写接口
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
}

//KVDB 带列表查询的 kv, 用于本地数据库
type KVDB interface {
	KV
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
}

//IteratorDB 按前缀迭代
type IteratorDB interface {
	Iterator(prefix []byte, reverse bool) Iterator
}

//DB 数据库后端
type DB interface {
	KV
	IteratorDB
	Delete(key []byte) error
	NewBatch(sync bool) Batch
	Close()
}

//Batch 批量写, Write 要么全部成功要么全部失败
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

//Iterator 迭代器
type Iterator interface {
	Rewind() bool
	Next() bool
	Valid() bool
	Seek(key []byte) bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Close()
}

//const
const (
	LevelDBBackendStr    = "leveldb" // legacy, defaults to goleveldb.
	GoLevelDBBackendStr  = "goleveldb"
	MemDBBackendStr      = "memdb"
	GoBadgerDBBackendStr = "gobadgerdb"
	BboltDBBackendStr    = "bboltdb"
)

//DBCreator 后端构造函数
type DBCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]DBCreator{}

//RegisterDBCreator 注册后端
func RegisterDBCreator(backend string, creator DBCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB 按后端名称创建数据库
func NewDB(name string, backend string, dir string, cache int) (DB, error) {
	dbCreator, ok := backends[backend]
	if !ok {
		return nil, pkgerr.Wrapf(ErrUnknownBackend, "backend=%s", backend)
	}
	db, err := dbCreator(name, dir, cache)
	if err != nil {
		dlog.Error("NewDB", "backend", backend, "dir", dir, "err", err)
		return nil, pkgerr.Wrapf(err, "open %s", backend)
	}
	return db, nil
}

//CloneByte 复制
func CloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}

type kv struct {
	k, v []byte
}

//clampSeek 前缀范围之外的 key, 返回 true 表示应该直接 Rewind
func clampSeek(prefix, key []byte, reverse bool) bool {
	r := util.BytesPrefix(prefix)
	if !reverse {
		return bytes.Compare(key, r.Start) < 0
	}
	return r.Limit != nil && bytes.Compare(key, r.Limit) >= 0
}
