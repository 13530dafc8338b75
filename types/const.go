// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//Coin 1 coin = 1e8 base units
const Coin int64 = 1e8

//CoinPrecision 小数位数
const CoinPrecision = 8

//DefaultCoinSymbol 默认币种
const DefaultCoinSymbol = "bty"

// receipt 类型
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// 账户 log 类型
const (
	TyLogErr             = 1
	TyLogGenesisDeposit  = 2
	TyLogTransfer        = 3
	TyLogExecTransfer    = 4
	TyLogGenesisTransfer = 5
)

// 本地数据库前缀
const (
	LocalPrefix   = "LODB"
	StatePrefix   = "mavl"
	NonceKeyPrefx = "LODB-nonce-"
)
