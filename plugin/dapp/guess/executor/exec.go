// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	gty "github.com/33cn/guess/plugin/dapp/guess/types"
	"github.com/33cn/guess/types"
)

//Exec_Init 初始化合约
func (g *Guess) Exec_Init(payload *gty.GuessInit, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(g, tx).GuessInit(payload)
}

//Exec_Open 开始一轮
func (g *Guess) Exec_Open(payload *gty.GuessOpen, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(g, tx).GuessOpen(payload)
}

//Exec_Play 下注
func (g *Guess) Exec_Play(payload *gty.GuessPlay, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(g, tx).GuessPlay(payload)
}

//Exec_Settle 结算
func (g *Guess) Exec_Settle(payload *gty.GuessSettle, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(g, tx).GuessSettle(payload)
}

//Exec_Reset 重置
func (g *Guess) Exec_Reset(payload *gty.GuessReset, tx *types.Transaction, index int) (*types.Receipt, error) {
	return NewAction(g, tx).GuessReset(payload)
}
