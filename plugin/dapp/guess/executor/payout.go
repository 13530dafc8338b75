// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/guess/types"
)

//IsOdd 负数同样按 n % 2 != 0 判断
func IsOdd(n int8) bool {
	return n%2 != 0
}

//Payout 猜中返回 stake + bonus, 否则返回 0. 溢出返回 ErrAmountOverflow
func Payout(isNumberOdd, guessedOdd bool, stake, bonus types.Amount) (types.Amount, error) {
	if isNumberOdd != guessedOdd {
		return types.Amount{}, nil
	}
	return stake.Add(bonus)
}
