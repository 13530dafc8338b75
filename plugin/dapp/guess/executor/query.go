// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	gty "github.com/33cn/guess/plugin/dapp/guess/types"
	"github.com/33cn/guess/system/dapp"
	"github.com/33cn/guess/types"
	"github.com/pkg/errors"
)

//Query_GetRoundStatus 当前轮的状态
func (g *Guess) Query_GetRoundStatus(in *gty.ReqNil) (types.Message, error) {
	s, err := readRound(g.GetStateDB())
	if err != nil {
		return nil, err
	}
	reply := &gty.ReplyRoundStatus{
		Owner:     s.Owner.String(),
		Phase:     s.Phase.String(),
		IsPlaying: s.IsPlaying(),
		IsSettled: s.IsSettled(),
		Stake:     "0",
		Bonus:     s.Bonus.String(),
		Payout:    s.Payout.String(),
		Round:     s.Round,
	}
	if p := s.Participant; p != nil {
		reply.Participant = p.Addr.String()
		reply.IsOdd = p.IsOdd
		reply.Stake = p.Stake.String()
	}
	//结算前只有 owner 可以看到数字
	if s.IsSettled() || (!g.GetCaller().IsZero() && g.GetCaller() == s.Owner) {
		reply.NumberVisible = true
		reply.Number = int32(s.Number)
	}
	return reply, nil
}

//Query_GetRoundHistory 分页查询已经结算的轮次
func (g *Guess) Query_GetRoundHistory(in *gty.ReqRoundHistory) (types.Message, error) {
	count := in.Count
	if count <= 0 {
		count = gty.DefaultCount
	}
	if count > gty.MaxCount {
		count = gty.MaxCount
	}
	if in.Direction != gty.ListDESC && in.Direction != gty.ListASC {
		return nil, errors.Wrapf(types.ErrInvalidParam, "direction %d", in.Direction)
	}
	var key []byte
	if in.Round > 0 {
		key = historyKey(in.Round)
	}
	values, err := g.GetLocalDB().List(historyPrefix(), key, count, in.Direction)
	if err != nil {
		return nil, err
	}
	reply := &gty.ReplyRoundHistory{}
	for _, value := range values {
		var record gty.RoundRecord
		if err := types.Decode(value, &record); err != nil {
			return nil, errors.Wrap(err, "decode round record")
		}
		info, err := roundInfo(&record)
		if err != nil {
			return nil, err
		}
		reply.Records = append(reply.Records, info)
	}
	return reply, nil
}

func roundInfo(r *gty.RoundRecord) (*gty.RoundInfo, error) {
	var amounts [3]types.Amount
	for i, b := range [][]byte{r.Stake, r.Bonus, r.Payout} {
		a, err := types.AmountFromBytes(b)
		if err != nil {
			return nil, errors.Wrapf(err, "round %d", r.Round)
		}
		amounts[i] = a
	}
	return &gty.RoundInfo{
		Round:       r.Round,
		Owner:       r.Owner,
		Participant: r.Participant,
		Number:      r.Number,
		IsOdd:       r.IsOdd,
		Stake:       amounts[0].String(),
		Bonus:       amounts[1].String(),
		Payout:      amounts[2].String(),
		Won:         r.Won,
		Height:      r.Height,
		BlockTime:   r.BlockTime,
		TxHash:      r.TxHash,
	}, nil
}

//Query_GetCustody 合约地址的余额
func (g *Guess) Query_GetCustody(in *gty.ReqNil) (types.Message, error) {
	execaddr := dapp.ExecAddress(driverName)
	acc, err := g.GetCoinsAccount().LoadAccount(execaddr)
	if err != nil {
		return nil, err
	}
	balance, err := acc.GetBalanceAmount()
	if err != nil {
		return nil, err
	}
	return &gty.ReplyCustody{Addr: execaddr, Balance: balance.String()}, nil
}
