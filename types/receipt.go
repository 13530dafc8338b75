// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//MergeReceipt 合并 receipt, r1 为空时返回 r2
func MergeReceipt(r1, r2 *Receipt) *Receipt {
	if r1 == nil {
		return r2
	}
	if r2 == nil {
		return r1
	}
	r1.KV = append(r1.KV, r2.KV...)
	r1.Logs = append(r1.Logs, r2.Logs...)
	return r1
}

//GetBalanceAmount 账户余额, 空表示 0
func (m *Account) GetBalanceAmount() (Amount, error) {
	return AmountFromBytes(m.GetBalance())
}

//SetBalanceAmount 设置余额
func (m *Account) SetBalanceAmount(a Amount) {
	m.Balance = a.Bytes()
}
