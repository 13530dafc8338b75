// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxU128 = "340282366920938463463374607431768211455"

func TestAmountArithmetic(t *testing.T) {
	a := NewAmount(100)
	b := NewAmount(50)
	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "150", sum.String())
	assert.Equal(t, NewAmount(150), sum)

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, NewAmount(50), diff)

	_, err = b.Sub(a)
	assert.Equal(t, ErrAmountUnderflow, err)

	assert.Equal(t, 1, a.Cmp(b))
	assert.Equal(t, -1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(NewAmount(100)))
	assert.True(t, Amount{}.IsZero())
	assert.False(t, a.IsZero())

	u, ok := a.Uint64()
	assert.True(t, ok)
	assert.Equal(t, uint64(100), u)
	_, ok = MaxAmount().Uint64()
	assert.False(t, ok)
}

func TestAmountOverflow(t *testing.T) {
	max := MaxAmount()
	assert.Equal(t, maxU128, max.String())

	_, err := max.Add(NewAmount(1))
	assert.Equal(t, ErrAmountOverflow, err)
	s, err := max.Add(Amount{})
	require.NoError(t, err)
	assert.Equal(t, max, s)

	parsed, err := ParseAmount(maxU128)
	require.NoError(t, err)
	assert.Equal(t, max, parsed)

	over := new(big.Int).Lsh(big.NewInt(1), 128)
	_, err = ParseAmount(over.String())
	assert.True(t, errors.Is(err, ErrAmountOverflow))
	_, err = ParseAmount("-1")
	assert.True(t, errors.Is(err, ErrAmountUnderflow))
	_, err = ParseAmount("1.5")
	assert.True(t, errors.Is(err, ErrAmount))
}

func TestAmountBytes(t *testing.T) {
	a := NewAmount(0x0102)
	b := a.Bytes()
	assert.Len(t, b, AmountSize)
	assert.Equal(t, byte(0x01), b[14])
	assert.Equal(t, byte(0x02), b[15])

	back, err := AmountFromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, a, back)

	back, err = AmountFromBytes(MaxAmount().Bytes())
	require.NoError(t, err)
	assert.Equal(t, MaxAmount(), back)

	zero, err := AmountFromBytes(nil)
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	_, err = AmountFromBytes(make([]byte, 17))
	assert.True(t, errors.Is(err, ErrAmountOverflow))
}

func TestAmountJSON(t *testing.T) {
	data, err := json.Marshal(MaxAmount())
	require.NoError(t, err)
	assert.Equal(t, `"`+maxU128+`"`, string(data))

	var a Amount
	require.NoError(t, json.Unmarshal(data, &a))
	assert.Equal(t, MaxAmount(), a)

	require.NoError(t, json.Unmarshal([]byte("42"), &a))
	assert.Equal(t, NewAmount(42), a)

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &a))
	assert.Error(t, json.Unmarshal([]byte(`-3`), &a))
}

func TestCoins(t *testing.T) {
	a, err := ParseCoins("1.5")
	require.NoError(t, err)
	assert.Equal(t, NewAmount(150000000), a)
	assert.Equal(t, "1.5", FormatCoins(a))

	a, err = ParseCoins("100")
	require.NoError(t, err)
	assert.Equal(t, NewAmount(uint64(100*Coin)), a)
	assert.Equal(t, "100", FormatCoins(a))
	assert.Equal(t, "0.00000001", FormatCoins(NewAmount(1)))

	_, err = ParseCoins("0.000000001")
	assert.True(t, errors.Is(err, ErrAmount))
	_, err = ParseCoins("x")
	assert.True(t, errors.Is(err, ErrAmount))
	_, err = ParseCoins("-1")
	assert.True(t, errors.Is(err, ErrAmountUnderflow))
}
