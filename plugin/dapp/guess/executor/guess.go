// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 猜单双合约
//
// 玩法:
//
//  1. init: 发送者成为 owner, 只能执行一次
//  2. open: owner 提交一个数字和奖金, 奖金转入合约地址托管
//  3. play: 另一个地址猜单双, 赌注转入合约地址
//  4. settle: 猜中的话合约把 赌注+奖金 转给参与者, 猜错赌注留在合约
//  5. reset: owner 取回合约中剩余的资金, 开始下一轮
//
// 结算之前, 数字只对 owner 可见.
package executor

import (
	log "github.com/33cn/guess/common/log"
	gty "github.com/33cn/guess/plugin/dapp/guess/types"
	drivers "github.com/33cn/guess/system/dapp"
	"github.com/33cn/guess/types"
	"github.com/pkg/errors"
)

var glog = log.New("module", "execs.guess")

var driverName = gty.GuessX

//SubConfig [exec.sub.guess]
type SubConfig struct {
	//参与者是否可以结算
	SettleByParticipant bool `json:"settleByParticipant"`
	//奖金上限, 0 不限制
	MaxBonus types.Amount `json:"maxBonus"`
}

//DefaultSubConfig 没有配置时的默认值
func DefaultSubConfig() SubConfig {
	return SubConfig{SettleByParticipant: true}
}

//Init 注册执行器
func Init(name string, sub []byte) {
	if name != driverName {
		panic("guess can't be rename")
	}
	cfg := DefaultSubConfig()
	types.MustDecodeSubConfig(sub, &cfg)
	glog.Debug("Init", "settleByParticipant", cfg.SettleByParticipant, "maxBonus", cfg.MaxBonus)
	drivers.Register(driverName, func() drivers.Driver { return newGuess(cfg) })
}

//GetName 执行器名字
func GetName() string {
	return driverName
}

//Guess 执行器
type Guess struct {
	drivers.DriverBase
	cfg SubConfig
}

func newGuess(cfg SubConfig) drivers.Driver {
	g := &Guess{cfg: cfg}
	g.SetChild(g)
	return g
}

//GetDriverName 驱动名
func (g *Guess) GetDriverName() string {
	return driverName
}

//GetPayloadValue action 结构
func (g *Guess) GetPayloadValue() drivers.Action {
	return &gty.GuessAction{}
}

//GetTypeMap action 名字到 ty
func (g *Guess) GetTypeMap() map[string]int32 {
	return gty.ActionName
}

//CheckTx 检查参数, 不读状态
func (g *Guess) CheckTx(tx *types.Transaction, index int) error {
	var action gty.GuessAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return errors.Wrap(err, "decode guess action")
	}
	if action.GetValue() == nil {
		return types.ErrActionNotSupport
	}
	switch action.Ty {
	case gty.GuessActionOpen:
		open := action.Open
		if open.Number < -128 || open.Number > 127 {
			return errors.Wrapf(gty.ErrNumberRange, "%d", open.Number)
		}
		bonus, err := types.AmountFromBytes(open.Bonus)
		if err != nil {
			return errors.Wrap(err, "bonus")
		}
		if !g.cfg.MaxBonus.IsZero() && bonus.Cmp(g.cfg.MaxBonus) > 0 {
			return errors.Wrapf(gty.ErrBonusTooLarge, "bonus %s max %s", bonus, g.cfg.MaxBonus)
		}
	case gty.GuessActionPlay:
		if _, err := types.AmountFromBytes(action.Play.Amount); err != nil {
			return errors.Wrap(err, "stake")
		}
	}
	return nil
}

func (g *Guess) settlePolicy() SettlePolicy {
	return SettlePolicy{AllowParticipant: g.cfg.SettleByParticipant}
}
