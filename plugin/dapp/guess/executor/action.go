// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/guess/account"
	"github.com/33cn/guess/common"
	"github.com/33cn/guess/common/address"
	dbm "github.com/33cn/guess/common/db"
	gty "github.com/33cn/guess/plugin/dapp/guess/types"
	"github.com/33cn/guess/system/dapp"
	"github.com/33cn/guess/types"
	"github.com/pkg/errors"
)

// Action 一笔交易的执行环境: 先由 RoundState 检查并计算, 再转账, 最后写状态
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     address.Addr
	blocktime    int64
	height       int64
	execaddr     string
	policy       SettlePolicy
}

//NewAction new
func NewAction(g *Guess, tx *types.Transaction) *Action {
	return &Action{
		coinsAccount: g.GetCoinsAccount(),
		db:           g.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		blocktime:    g.GetBlockTime(),
		height:       g.GetHeight(),
		execaddr:     dapp.ExecAddress(string(tx.Execer)),
		policy:       g.settlePolicy(),
	}
}

func readRound(db dbm.KV) (RoundState, error) {
	value, err := db.Get(roundKey())
	if err == dbm.ErrNotFoundInDb {
		return RoundState{}, gty.ErrNotInitialized
	}
	if err != nil {
		return RoundState{}, errors.Wrap(err, "read round")
	}
	var r gty.Round
	if err := types.Decode(value, &r); err != nil {
		return RoundState{}, errors.Wrapf(gty.ErrCorruptState, "decode round: %v", err)
	}
	return RoundFromRecord(&r)
}

func (action *Action) saveRound(s RoundState) ([]*types.KeyValue, error) {
	kv := &types.KeyValue{Key: roundKey(), Value: types.Encode(s.Record())}
	if err := action.db.Set(kv.Key, kv.Value); err != nil {
		return nil, errors.Wrap(err, "save round")
	}
	return []*types.KeyValue{kv}, nil
}

func (action *Action) receiptLog(ty int32, s RoundState) *types.ReceiptLog {
	r := &gty.ReceiptGuess{
		Addr:   action.fromaddr.String(),
		Owner:  s.Owner.String(),
		Round:  s.Round,
		Phase:  int32(s.Phase),
		Bonus:  s.Bonus.Bytes(),
		Payout: s.Payout.Bytes(),
	}
	if p := s.Participant; p != nil {
		r.Participant = p.Addr.String()
		r.IsOdd = p.IsOdd
		r.Stake = p.Stake.Bytes()
	}
	//只有结算日志公开数字
	if ty == gty.TyLogGuessSettle {
		r.Revealed = true
		r.Number = int32(s.Number)
	}
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}

// commit 保存状态, 合并转账的 receipt
func (action *Action) commit(ty int32, next RoundState, transfer *types.Receipt) (*types.Receipt, error) {
	kv, err := action.saveRound(next)
	if err != nil {
		return nil, err
	}
	receipt := &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{action.receiptLog(ty, next)},
	}
	return types.MergeReceipt(receipt, transfer), nil
}

//GuessInit 初始化, 发送者成为 owner
func (action *Action) GuessInit(init *gty.GuessInit) (*types.Receipt, error) {
	_, err := readRound(action.db)
	if err == nil {
		return nil, gty.ErrAlreadyInitialized
	}
	if errors.Cause(err) != gty.ErrNotInitialized {
		return nil, err
	}
	glog.Info("GuessInit", "owner", action.fromaddr, "tx", common.ToHex(action.txhash))
	return action.commit(gty.TyLogGuessInit, NewRoundState(action.fromaddr), nil)
}

//GuessOpen 开始一轮, 奖金转入合约
func (action *Action) GuessOpen(open *gty.GuessOpen) (*types.Receipt, error) {
	s, err := readRound(action.db)
	if err != nil {
		return nil, err
	}
	if open.Number < -128 || open.Number > 127 {
		return nil, errors.Wrapf(gty.ErrNumberRange, "%d", open.Number)
	}
	bonus, err := types.AmountFromBytes(open.Bonus)
	if err != nil {
		return nil, errors.Wrap(err, "bonus")
	}
	next, err := s.Open(action.fromaddr, int8(open.Number), bonus)
	if err != nil {
		glog.Error("GuessOpen", "addr", action.fromaddr, "round", s.Round, "err", err)
		return nil, err
	}
	var transfer *types.Receipt
	if !bonus.IsZero() {
		transfer, err = action.coinsAccount.Transfer(action.fromaddr.String(), action.execaddr, bonus)
		if err != nil {
			glog.Error("GuessOpen.Transfer", "addr", action.fromaddr, "execaddr", action.execaddr, "amount", bonus, "err", err)
			return nil, errors.Wrap(err, "escrow bonus")
		}
	}
	return action.commit(gty.TyLogGuessOpen, next, transfer)
}

//GuessPlay 下注, 赌注转入合约
func (action *Action) GuessPlay(play *gty.GuessPlay) (*types.Receipt, error) {
	s, err := readRound(action.db)
	if err != nil {
		return nil, err
	}
	stake, err := types.AmountFromBytes(play.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "stake")
	}
	next, err := s.PlaceGuess(action.fromaddr, play.IsOdd, stake)
	if err != nil {
		glog.Error("GuessPlay", "addr", action.fromaddr, "round", s.Round, "err", err)
		return nil, err
	}
	transfer, err := action.coinsAccount.Transfer(action.fromaddr.String(), action.execaddr, stake)
	if err != nil {
		glog.Error("GuessPlay.Transfer", "addr", action.fromaddr, "execaddr", action.execaddr, "amount", stake, "err", err)
		return nil, errors.Wrap(err, "escrow stake")
	}
	return action.commit(gty.TyLogGuessPlay, next, transfer)
}

//GuessSettle 结算, 猜中时合约付给参与者 stake + bonus
func (action *Action) GuessSettle(settle *gty.GuessSettle) (*types.Receipt, error) {
	s, err := readRound(action.db)
	if err != nil {
		return nil, err
	}
	next, err := s.Settle(action.fromaddr, action.policy)
	if err != nil {
		glog.Error("GuessSettle", "addr", action.fromaddr, "round", s.Round, "err", err)
		return nil, err
	}
	var transfer *types.Receipt
	if !next.Payout.IsZero() {
		transfer, err = action.coinsAccount.Transfer(action.execaddr, next.Participant.Addr.String(), next.Payout)
		if err != nil {
			glog.Error("GuessSettle.Transfer", "execaddr", action.execaddr, "to", next.Participant.Addr, "amount", next.Payout, "err", err)
			return nil, errors.Wrap(err, "pay out")
		}
	}
	glog.Info("GuessSettle", "round", next.Round, "height", action.height, "won", next.Won(), "payout", next.Payout)
	return action.commit(gty.TyLogGuessSettle, next, transfer)
}

//GuessReset 回到 idle, 合约中剩余的资金还给 owner
func (action *Action) GuessReset(reset *gty.GuessReset) (*types.Receipt, error) {
	s, err := readRound(action.db)
	if err != nil {
		return nil, err
	}
	next, err := s.Reset(action.fromaddr)
	if err != nil {
		glog.Error("GuessReset", "addr", action.fromaddr, "round", s.Round, "err", err)
		return nil, err
	}
	custody, err := action.coinsAccount.LoadAccount(action.execaddr)
	if err != nil {
		return nil, err
	}
	balance, err := custody.GetBalanceAmount()
	if err != nil {
		return nil, err
	}
	var transfer *types.Receipt
	if !balance.IsZero() {
		transfer, err = action.coinsAccount.Transfer(action.execaddr, s.Owner.String(), balance)
		if err != nil {
			glog.Error("GuessReset.Transfer", "execaddr", action.execaddr, "to", s.Owner, "amount", balance, "err", err)
			return nil, errors.Wrap(err, "sweep custody")
		}
	}
	return action.commit(gty.TyLogGuessReset, next, transfer)
}
