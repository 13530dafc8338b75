// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"

	log "github.com/inconshreveable/log15"
)

//ListHelper ...
type ListHelper struct {
	db IteratorDB
}

var listlog = log.New("module", "db.ListHelper")

//NewListHelper new
func NewListHelper(db IteratorDB) *ListHelper {
	return &ListHelper{db}
}

//const
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

//List 列表, key 为空时从头(ASC)或尾(DESC)开始, 否则从 key 之后开始(不含 key)
func (db *ListHelper) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	return db.scan(prefix, key, count, direction == ListDESC)
}

func (db *ListHelper) scan(prefix, key []byte, count int32, reverse bool) ([][]byte, error) {
	var values [][]byte
	it := db.db.Iterator(prefix, reverse)
	defer it.Close()
	if len(key) == 0 {
		it.Rewind()
	} else if it.Seek(key) && bytes.Equal(it.Key(), key) {
		it.Next()
	}
	var i int32
	for ; it.Valid(); it.Next() {
		values = append(values, it.ValueCopy())
		i++
		if i == count {
			break
		}
	}
	if err := it.Error(); err != nil {
		listlog.Error("List", "prefix", string(prefix), "error", err)
		return nil, err
	}
	return values, nil
}
