// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package client

import (
	"bytes"
	"errors"
	"testing"

	"github.com/33cn/guess/common"
	"github.com/33cn/guess/common/address"
	"github.com/33cn/guess/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memConfig(t *testing.T) *types.Config {
	cfg, sub, err := LoadConfig("")
	require.NoError(t, err)
	assert.Contains(t, string(sub.Exec["guess"]), "settleByParticipant")
	cfg.Store.Driver = "memdb"
	return cfg
}

func TestLoadConfig(t *testing.T) {
	cfg, _, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "goleveldb", cfg.Store.Driver)
	_, _, err = LoadConfig("not-exist.toml")
	assert.Error(t, err)
}

func TestClientAnonymous(t *testing.T) {
	c, err := New(memConfig(t), "")
	require.NoError(t, err)
	defer c.Close()
	_, err = c.Addr()
	assert.Equal(t, types.ErrSignatureRequired, err)
	_, _, err = c.SendTx("none", &types.KeyValue{})
	assert.Equal(t, types.ErrSignatureRequired, err)
	_, err = c.Query("none", "Any", &types.KeyValue{})
	assert.True(t, errors.Is(err, types.ErrExecNotFound))
}

func TestClientKey(t *testing.T) {
	_, err := New(memConfig(t), "zz")
	assert.True(t, errors.Is(err, types.ErrInvalidParam))

	priv, err := GenKey()
	require.NoError(t, err)
	c, err := New(memConfig(t), common.ToHex(priv.Bytes()))
	require.NoError(t, err)
	defer c.Close()
	addr, err := c.Addr()
	require.NoError(t, err)
	assert.Equal(t, address.PubKeyToAddr(priv.PubKey().Bytes()), addr)

	tx, _, err := c.SendTx("none", &types.KeyValue{})
	assert.True(t, errors.Is(err, types.ErrExecNotFound))
	assert.True(t, tx.CheckSign())
	assert.Equal(t, addr, tx.From())
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	PrintJSON(&buf, &types.KeyValue{Key: []byte("a")})
	assert.Contains(t, buf.String(), `"key": "YQ=="`)

	tx := &types.Transaction{Execer: []byte("guess")}
	r := NewResult(tx, &types.Receipt{Ty: types.ExecOk, Logs: []*types.ReceiptLog{{Ty: 1, Log: []byte{1}}}})
	assert.Equal(t, common.ToHex(tx.Hash()), r.Hash)
	assert.Equal(t, "0x01", r.Logs[0].Log)
}
