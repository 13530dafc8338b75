// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//guess action ty
const (
	GuessActionInit = iota + 1
	GuessActionOpen
	GuessActionPlay
	GuessActionSettle
	GuessActionReset
)

// log ty
const (
	TyLogGuessInit = iota + 801
	TyLogGuessOpen
	TyLogGuessPlay
	TyLogGuessSettle
	TyLogGuessReset
)

const (
	//GuessX 执行器名字
	GuessX = "guess"

	//FuncNameGetRoundStatus 当前轮的状态
	FuncNameGetRoundStatus = "GetRoundStatus"
	//FuncNameGetRoundHistory 已经结算的轮次
	FuncNameGetRoundHistory = "GetRoundHistory"
	//FuncNameGetCustody 合约托管的余额
	FuncNameGetCustody = "GetCustody"

	ListDESC = int32(0)
	ListASC  = int32(1)

	DefaultCount = int32(20)  //默认一次取多少条记录
	MaxCount     = int32(100) //最多取100条
)

var (
	//ExecerGuess guess 执行器
	ExecerGuess = []byte(GuessX)

	//ActionName action 名字到 ty
	ActionName = map[string]int32{
		"Init":   GuessActionInit,
		"Open":   GuessActionOpen,
		"Play":   GuessActionPlay,
		"Settle": GuessActionSettle,
		"Reset":  GuessActionReset,
	}
)

// Phase 一轮游戏的阶段
type Phase int32

// Idle -> Open -> Guessed -> Settled -> Idle
const (
	PhaseIdle Phase = iota
	PhaseOpen
	PhaseGuessed
	PhaseSettled
)

var phaseNames = map[Phase]string{
	PhaseIdle:    "idle",
	PhaseOpen:    "open",
	PhaseGuessed: "guessed",
	PhaseSettled: "settled",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

//Valid 是否是已知的阶段
func (p Phase) Valid() bool {
	_, ok := phaseNames[p]
	return ok
}
