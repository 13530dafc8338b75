// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"encoding/json"
	"testing"

	"github.com/decred/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecAddress(t *testing.T) {
	addr := ExecAddress("guess")
	assert.NoError(t, CheckAddress(addr))
	assert.Equal(t, addr, ExecAddress("guess"))
	assert.NotEqual(t, addr, ExecAddress("coins"))
	assert.Equal(t, addr, ExecAddr("guess").String())
}

func TestCheckAddress(t *testing.T) {
	addr := PubKeyToAddress([]byte("pubkey")).String()
	require.NoError(t, CheckAddress(addr))
	//cache 命中
	require.NoError(t, CheckAddress(addr))

	a, err := NewAddrFromString(addr)
	require.NoError(t, err)
	assert.Equal(t, PubKeyToAddress([]byte("pubkey")).Hash160, a.Hash160)

	dec := base58.Decode(addr)
	dec[24] ^= 0xff
	assert.Equal(t, ErrAddressChecksum, CheckAddress(base58.Encode(dec)))
	assert.Equal(t, ErrAddressChecksum, CheckAddress(base58.Encode(dec)))
	assert.Equal(t, ErrAddressTooShort, CheckAddress(base58.Encode(dec[:20])))
	assert.Equal(t, ErrDecodeBase58, CheckAddress("0OIl"))
	assert.Equal(t, ErrDecodeBase58, CheckAddress(""))
}

func TestAddr(t *testing.T) {
	var zero Addr
	assert.True(t, zero.IsZero())

	a := PubKeyToAddr([]byte("pubkey"))
	b, err := ParseAddr(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.True(t, a == b)

	_, err = ParseAddr("notanaddress")
	assert.Error(t, err)
	assert.Panics(t, func() { MustParseAddr("bad") })

	data, err := json.Marshal(a)
	require.NoError(t, err)
	var c Addr
	require.NoError(t, json.Unmarshal(data, &c))
	assert.Equal(t, a, c)
	assert.Error(t, json.Unmarshal([]byte(`"xyz"`), &c))
}
