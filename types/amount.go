// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"bytes"
	"encoding/json"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// amountBits is the width of Amount. Values never exceed 2^128-1.
const amountBits = 128

// AmountSize is the length of the big-endian wire form.
const AmountSize = 16

// Amount is an unsigned 128-bit integer with checked arithmetic.
// The zero value is 0.
type Amount struct {
	v uint256.Int
}

var maxAmount = func() Amount {
	var a Amount
	for i := range a.v[:2] {
		a.v[i] = ^uint64(0)
	}
	return a
}()

//NewAmount from uint64
func NewAmount(u uint64) Amount {
	var a Amount
	a.v.SetUint64(u)
	return a
}

//MaxAmount 2^128-1
func MaxAmount() Amount {
	return maxAmount
}

//ParseAmount 十进制字符串
func ParseAmount(s string) (Amount, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, errors.Wrapf(ErrAmount, "parse %q", s)
	}
	return AmountFromBig(b)
}

//AmountFromBig big.Int -> Amount, 负数或者超过 128 位返回错误
func AmountFromBig(b *big.Int) (Amount, error) {
	if b.Sign() < 0 {
		return Amount{}, errors.Wrapf(ErrAmountUnderflow, "negative %s", b)
	}
	if b.BitLen() > amountBits {
		return Amount{}, errors.Wrapf(ErrAmountOverflow, "%s", b)
	}
	var a Amount
	a.v.SetFromBig(b)
	return a, nil
}

//Add checked addition
func (a Amount) Add(b Amount) (Amount, error) {
	var sum Amount
	if _, overflow := sum.v.AddOverflow(&a.v, &b.v); overflow || sum.v.BitLen() > amountBits {
		return Amount{}, ErrAmountOverflow
	}
	return sum, nil
}

//Sub checked subtraction
func (a Amount) Sub(b Amount) (Amount, error) {
	var diff Amount
	if _, underflow := diff.v.SubOverflow(&a.v, &b.v); underflow {
		return Amount{}, ErrAmountUnderflow
	}
	return diff, nil
}

//Cmp -1, 0, 1
func (a Amount) Cmp(b Amount) int {
	return a.v.Cmp(&b.v)
}

//IsZero 是否为 0
func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

//Big 转为 big.Int
func (a Amount) Big() *big.Int {
	return a.v.ToBig()
}

//Uint64 ok 为 false 表示超过 uint64
func (a Amount) Uint64() (uint64, bool) {
	return a.v.Uint64(), a.v.IsUint64()
}

func (a Amount) String() string {
	return a.v.ToBig().String()
}

//Bytes 16 字节 big-endian
func (a Amount) Bytes() []byte {
	b32 := a.v.Bytes32()
	out := make([]byte, AmountSize)
	copy(out, b32[32-AmountSize:])
	return out
}

//AmountFromBytes 最多 16 字节 big-endian
func AmountFromBytes(b []byte) (Amount, error) {
	if len(b) > AmountSize {
		return Amount{}, errors.Wrapf(ErrAmountOverflow, "%d bytes", len(b))
	}
	var a Amount
	a.v.SetBytes(b)
	return a, nil
}

//MarshalJSON 十进制字符串
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

//UnmarshalJSON 接受十进制字符串或者整数
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

var coinShift = int32(CoinPrecision)

//ParseCoins "1.5" -> 150000000
func ParseCoins(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, errors.Wrapf(ErrAmount, "parse coins %q", s)
	}
	units := d.Shift(coinShift)
	if !units.Equal(units.Truncate(0)) {
		return Amount{}, errors.Wrapf(ErrAmount, "too many decimals %q", s)
	}
	return ParseAmount(units.Truncate(0).String())
}

//FormatCoins 150000000 -> "1.5"
func FormatCoins(a Amount) string {
	return decimal.NewFromBigInt(a.Big(), -coinShift).String()
}
