// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/guess/common/address"
	gty "github.com/33cn/guess/plugin/dapp/guess/types"
	"github.com/33cn/guess/types"
	"github.com/pkg/errors"
)

//Participant 本轮唯一的参与者
type Participant struct {
	Addr  address.Addr
	IsOdd bool
	Stake types.Amount
}

//SettlePolicy 谁可以结算
type SettlePolicy struct {
	//为 true 时本轮的参与者也可以结算, owner 总是可以结算
	AllowParticipant bool
}

func (p SettlePolicy) allowed(s RoundState, caller address.Addr) bool {
	if caller == s.Owner {
		return true
	}
	return p.AllowParticipant && s.Participant != nil && caller == s.Participant.Addr
}

//RoundState 合约的状态. 所有的状态转换都返回新的值, 出错时原值不变
type RoundState struct {
	Owner       address.Addr
	Phase       gty.Phase
	Participant *Participant
	Number      int8
	Bonus       types.Amount
	Payout      types.Amount
	Round       uint64
}

//NewRoundState 合约初始化
func NewRoundState(owner address.Addr) RoundState {
	return RoundState{Owner: owner, Phase: gty.PhaseIdle}
}

//IsPlaying 开始之后, 结算之前
func (s RoundState) IsPlaying() bool {
	return s.Phase == gty.PhaseOpen || s.Phase == gty.PhaseGuessed
}

//IsSettled 已结算, 还没有 reset
func (s RoundState) IsSettled() bool {
	return s.Phase == gty.PhaseSettled
}

//Won 参与者是否猜中
func (s RoundState) Won() bool {
	return s.Participant != nil && IsOdd(s.Number) == s.Participant.IsOdd
}

//Open owner 提交数字和奖金, Idle -> Open
func (s RoundState) Open(caller address.Addr, number int8, bonus types.Amount) (RoundState, error) {
	if caller != s.Owner {
		return s, gty.ErrUnauthorized
	}
	if s.Phase != gty.PhaseIdle {
		return s, gty.ErrRoundInProgress
	}
	next := s
	next.Phase = gty.PhaseOpen
	next.Number = number
	next.Bonus = bonus
	next.Payout = types.Amount{}
	next.Participant = nil
	next.Round = s.Round + 1
	return next, nil
}

//PlaceGuess 参与者下注, Open -> Guessed
func (s RoundState) PlaceGuess(caller address.Addr, isOdd bool, stake types.Amount) (RoundState, error) {
	if !s.IsPlaying() {
		return s, gty.ErrNoActiveRound
	}
	if s.Participant != nil {
		return s, gty.ErrAlreadyGuessed
	}
	if stake.IsZero() {
		return s, gty.ErrZeroStake
	}
	if caller == s.Owner {
		return s, gty.ErrOwnerCannotPlay
	}
	next := s
	next.Phase = gty.PhaseGuessed
	next.Participant = &Participant{Addr: caller, IsOdd: isOdd, Stake: stake}
	return next, nil
}

//Settle 计算奖金, Guessed -> Settled
func (s RoundState) Settle(caller address.Addr, policy SettlePolicy) (RoundState, error) {
	if s.Phase != gty.PhaseGuessed {
		return s, gty.ErrNotReadyToSettle
	}
	if !policy.allowed(s, caller) {
		return s, gty.ErrUnauthorized
	}
	//stake + bonus 必须可以表示, 不论输赢
	if _, err := s.Participant.Stake.Add(s.Bonus); err != nil {
		return s, err
	}
	payout, err := Payout(IsOdd(s.Number), s.Participant.IsOdd, s.Participant.Stake, s.Bonus)
	if err != nil {
		return s, err
	}
	next := s
	next.Phase = gty.PhaseSettled
	next.Payout = payout
	return next, nil
}

//Reset owner 清空本轮, Settled -> Idle
func (s RoundState) Reset(caller address.Addr) (RoundState, error) {
	if caller != s.Owner {
		return s, gty.ErrUnauthorized
	}
	if s.Phase != gty.PhaseSettled {
		return s, gty.ErrNothingToReset
	}
	next := NewRoundState(s.Owner)
	next.Round = s.Round
	return next, nil
}

//Validate 检查各个阶段的不变量
func (s RoundState) Validate() error {
	if s.Owner.IsZero() {
		return errors.Wrap(gty.ErrCorruptState, "empty owner")
	}
	p := s.Participant
	if p != nil {
		if p.Stake.IsZero() || p.Addr.IsZero() {
			return errors.Wrap(gty.ErrCorruptState, "participant without stake")
		}
		if p.Addr == s.Owner {
			return errors.Wrap(gty.ErrCorruptState, "owner is participant")
		}
	}
	switch s.Phase {
	case gty.PhaseIdle:
		if p != nil || !s.Bonus.IsZero() || !s.Payout.IsZero() || s.Number != 0 {
			return errors.Wrap(gty.ErrCorruptState, "idle round with data")
		}
	case gty.PhaseOpen:
		if p != nil || !s.Payout.IsZero() {
			return errors.Wrap(gty.ErrCorruptState, "open round with participant")
		}
	case gty.PhaseGuessed:
		if p == nil || !s.Payout.IsZero() {
			return errors.Wrap(gty.ErrCorruptState, "guessed round without participant")
		}
	case gty.PhaseSettled:
		if p == nil {
			return errors.Wrap(gty.ErrCorruptState, "settled round without participant")
		}
		want, err := Payout(IsOdd(s.Number), p.IsOdd, p.Stake, s.Bonus)
		if err != nil || want.Cmp(s.Payout) != 0 {
			return errors.Wrap(gty.ErrCorruptState, "payout mismatch")
		}
	default:
		return errors.Wrapf(gty.ErrCorruptState, "phase %d", s.Phase)
	}
	return nil
}

//Record 保存到状态数据库的格式
func (s RoundState) Record() *gty.Round {
	r := &gty.Round{
		Owner:  s.Owner.String(),
		Phase:  int32(s.Phase),
		Number: int32(s.Number),
		Bonus:  s.Bonus.Bytes(),
		Payout: s.Payout.Bytes(),
		Round:  s.Round,
	}
	if p := s.Participant; p != nil {
		r.Participant = p.Addr.String()
		r.IsOdd = p.IsOdd
		r.Stake = p.Stake.Bytes()
	}
	return r
}

func recordAmount(name string, b []byte) (types.Amount, error) {
	a, err := types.AmountFromBytes(b)
	if err != nil {
		return types.Amount{}, errors.Wrapf(gty.ErrCorruptState, "%s: %v", name, err)
	}
	return a, nil
}

//RoundFromRecord 解析并检查状态数据库中的记录
func RoundFromRecord(r *gty.Round) (RoundState, error) {
	owner, err := address.ParseAddr(r.Owner)
	if err != nil {
		return RoundState{}, errors.Wrapf(gty.ErrCorruptState, "owner %s: %v", r.Owner, err)
	}
	if r.Number < -128 || r.Number > 127 {
		return RoundState{}, errors.Wrapf(gty.ErrCorruptState, "number %d", r.Number)
	}
	bonus, err := recordAmount("bonus", r.Bonus)
	if err != nil {
		return RoundState{}, err
	}
	payout, err := recordAmount("payout", r.Payout)
	if err != nil {
		return RoundState{}, err
	}
	stake, err := recordAmount("stake", r.Stake)
	if err != nil {
		return RoundState{}, err
	}
	s := RoundState{
		Owner:  owner,
		Phase:  gty.Phase(r.Phase),
		Number: int8(r.Number),
		Bonus:  bonus,
		Payout: payout,
		Round:  r.Round,
	}
	if r.Participant != "" {
		addr, err := address.ParseAddr(r.Participant)
		if err != nil {
			return RoundState{}, errors.Wrapf(gty.ErrCorruptState, "participant %s: %v", r.Participant, err)
		}
		s.Participant = &Participant{Addr: addr, IsOdd: r.IsOdd, Stake: stake}
	} else if r.IsOdd || !stake.IsZero() {
		return RoundState{}, errors.Wrap(gty.ErrCorruptState, "guess without participant")
	}
	if err := s.Validate(); err != nil {
		return RoundState{}, err
	}
	return s, nil
}
