// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// source: proto/guess.proto

package types

import (
	proto "github.com/golang/protobuf/proto"
)

type GuessAction struct {
	Ty     int32        `protobuf:"varint,1,opt,name=ty,proto3" json:"ty,omitempty"`
	Init   *GuessInit   `protobuf:"bytes,2,opt,name=init,proto3" json:"init,omitempty"`
	Open   *GuessOpen   `protobuf:"bytes,3,opt,name=open,proto3" json:"open,omitempty"`
	Play   *GuessPlay   `protobuf:"bytes,4,opt,name=play,proto3" json:"play,omitempty"`
	Settle *GuessSettle `protobuf:"bytes,5,opt,name=settle,proto3" json:"settle,omitempty"`
	Reset_ *GuessReset  `protobuf:"bytes,6,opt,name=reset,proto3" json:"reset,omitempty"`
}

func (m *GuessAction) Reset()         { *m = GuessAction{} }
func (m *GuessAction) String() string { return proto.CompactTextString(m) }
func (*GuessAction) ProtoMessage()    {}

func (m *GuessAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

func (m *GuessAction) GetInit() *GuessInit {
	if m != nil {
		return m.Init
	}
	return nil
}

func (m *GuessAction) GetOpen() *GuessOpen {
	if m != nil {
		return m.Open
	}
	return nil
}

func (m *GuessAction) GetPlay() *GuessPlay {
	if m != nil {
		return m.Play
	}
	return nil
}

func (m *GuessAction) GetSettle() *GuessSettle {
	if m != nil {
		return m.Settle
	}
	return nil
}

func (m *GuessAction) GetReset_() *GuessReset {
	if m != nil {
		return m.Reset_
	}
	return nil
}

type GuessInit struct {
}

func (m *GuessInit) Reset()         { *m = GuessInit{} }
func (m *GuessInit) String() string { return proto.CompactTextString(m) }
func (*GuessInit) ProtoMessage()    {}

type GuessOpen struct {
	Number int32  `protobuf:"zigzag32,1,opt,name=number,proto3" json:"number,omitempty"`
	Bonus  []byte `protobuf:"bytes,2,opt,name=bonus,proto3" json:"bonus,omitempty"`
}

func (m *GuessOpen) Reset()         { *m = GuessOpen{} }
func (m *GuessOpen) String() string { return proto.CompactTextString(m) }
func (*GuessOpen) ProtoMessage()    {}

func (m *GuessOpen) GetNumber() int32 {
	if m != nil {
		return m.Number
	}
	return 0
}

func (m *GuessOpen) GetBonus() []byte {
	if m != nil {
		return m.Bonus
	}
	return nil
}

type GuessPlay struct {
	IsOdd  bool   `protobuf:"varint,1,opt,name=isOdd,proto3" json:"isOdd,omitempty"`
	Amount []byte `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *GuessPlay) Reset()         { *m = GuessPlay{} }
func (m *GuessPlay) String() string { return proto.CompactTextString(m) }
func (*GuessPlay) ProtoMessage()    {}

func (m *GuessPlay) GetIsOdd() bool {
	if m != nil {
		return m.IsOdd
	}
	return false
}

func (m *GuessPlay) GetAmount() []byte {
	if m != nil {
		return m.Amount
	}
	return nil
}

type GuessSettle struct {
}

func (m *GuessSettle) Reset()         { *m = GuessSettle{} }
func (m *GuessSettle) String() string { return proto.CompactTextString(m) }
func (*GuessSettle) ProtoMessage()    {}

type GuessReset struct {
}

func (m *GuessReset) Reset()         { *m = GuessReset{} }
func (m *GuessReset) String() string { return proto.CompactTextString(m) }
func (*GuessReset) ProtoMessage()    {}

// 状态数据库中的当前轮
type Round struct {
	Owner       string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Phase       int32  `protobuf:"varint,2,opt,name=phase,proto3" json:"phase,omitempty"`
	Number      int32  `protobuf:"zigzag32,3,opt,name=number,proto3" json:"number,omitempty"`
	Bonus       []byte `protobuf:"bytes,4,opt,name=bonus,proto3" json:"bonus,omitempty"`
	Participant string `protobuf:"bytes,5,opt,name=participant,proto3" json:"participant,omitempty"`
	IsOdd       bool   `protobuf:"varint,6,opt,name=isOdd,proto3" json:"isOdd,omitempty"`
	Stake       []byte `protobuf:"bytes,7,opt,name=stake,proto3" json:"stake,omitempty"`
	Payout      []byte `protobuf:"bytes,8,opt,name=payout,proto3" json:"payout,omitempty"`
	Round       uint64 `protobuf:"varint,9,opt,name=round,proto3" json:"round,omitempty"`
}

func (m *Round) Reset()         { *m = Round{} }
func (m *Round) String() string { return proto.CompactTextString(m) }
func (*Round) ProtoMessage()    {}

func (m *Round) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

func (m *Round) GetPhase() int32 {
	if m != nil {
		return m.Phase
	}
	return 0
}

func (m *Round) GetNumber() int32 {
	if m != nil {
		return m.Number
	}
	return 0
}

func (m *Round) GetBonus() []byte {
	if m != nil {
		return m.Bonus
	}
	return nil
}

func (m *Round) GetParticipant() string {
	if m != nil {
		return m.Participant
	}
	return ""
}

func (m *Round) GetIsOdd() bool {
	if m != nil {
		return m.IsOdd
	}
	return false
}

func (m *Round) GetStake() []byte {
	if m != nil {
		return m.Stake
	}
	return nil
}

func (m *Round) GetPayout() []byte {
	if m != nil {
		return m.Payout
	}
	return nil
}

func (m *Round) GetRound() uint64 {
	if m != nil {
		return m.Round
	}
	return 0
}

// number 只在结算的日志中公开
type ReceiptGuess struct {
	Addr        string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Owner       string `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Round       uint64 `protobuf:"varint,3,opt,name=round,proto3" json:"round,omitempty"`
	Phase       int32  `protobuf:"varint,4,opt,name=phase,proto3" json:"phase,omitempty"`
	Participant string `protobuf:"bytes,5,opt,name=participant,proto3" json:"participant,omitempty"`
	IsOdd       bool   `protobuf:"varint,6,opt,name=isOdd,proto3" json:"isOdd,omitempty"`
	Stake       []byte `protobuf:"bytes,7,opt,name=stake,proto3" json:"stake,omitempty"`
	Bonus       []byte `protobuf:"bytes,8,opt,name=bonus,proto3" json:"bonus,omitempty"`
	Revealed    bool   `protobuf:"varint,9,opt,name=revealed,proto3" json:"revealed,omitempty"`
	Number      int32  `protobuf:"zigzag32,10,opt,name=number,proto3" json:"number,omitempty"`
	Payout      []byte `protobuf:"bytes,11,opt,name=payout,proto3" json:"payout,omitempty"`
}

func (m *ReceiptGuess) Reset()         { *m = ReceiptGuess{} }
func (m *ReceiptGuess) String() string { return proto.CompactTextString(m) }
func (*ReceiptGuess) ProtoMessage()    {}

func (m *ReceiptGuess) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *ReceiptGuess) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

func (m *ReceiptGuess) GetRound() uint64 {
	if m != nil {
		return m.Round
	}
	return 0
}

func (m *ReceiptGuess) GetPhase() int32 {
	if m != nil {
		return m.Phase
	}
	return 0
}

func (m *ReceiptGuess) GetParticipant() string {
	if m != nil {
		return m.Participant
	}
	return ""
}

func (m *ReceiptGuess) GetIsOdd() bool {
	if m != nil {
		return m.IsOdd
	}
	return false
}

func (m *ReceiptGuess) GetStake() []byte {
	if m != nil {
		return m.Stake
	}
	return nil
}

func (m *ReceiptGuess) GetBonus() []byte {
	if m != nil {
		return m.Bonus
	}
	return nil
}

func (m *ReceiptGuess) GetRevealed() bool {
	if m != nil {
		return m.Revealed
	}
	return false
}

func (m *ReceiptGuess) GetNumber() int32 {
	if m != nil {
		return m.Number
	}
	return 0
}

func (m *ReceiptGuess) GetPayout() []byte {
	if m != nil {
		return m.Payout
	}
	return nil
}

// 本地数据库中已经结算的一轮
type RoundRecord struct {
	Round       uint64 `protobuf:"varint,1,opt,name=round,proto3" json:"round,omitempty"`
	Owner       string `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Participant string `protobuf:"bytes,3,opt,name=participant,proto3" json:"participant,omitempty"`
	Number      int32  `protobuf:"zigzag32,4,opt,name=number,proto3" json:"number,omitempty"`
	IsOdd       bool   `protobuf:"varint,5,opt,name=isOdd,proto3" json:"isOdd,omitempty"`
	Stake       []byte `protobuf:"bytes,6,opt,name=stake,proto3" json:"stake,omitempty"`
	Bonus       []byte `protobuf:"bytes,7,opt,name=bonus,proto3" json:"bonus,omitempty"`
	Payout      []byte `protobuf:"bytes,8,opt,name=payout,proto3" json:"payout,omitempty"`
	Won         bool   `protobuf:"varint,9,opt,name=won,proto3" json:"won,omitempty"`
	Height      int64  `protobuf:"varint,10,opt,name=height,proto3" json:"height,omitempty"`
	BlockTime   int64  `protobuf:"varint,11,opt,name=blockTime,proto3" json:"blockTime,omitempty"`
	TxHash      string `protobuf:"bytes,12,opt,name=txHash,proto3" json:"txHash,omitempty"`
}

func (m *RoundRecord) Reset()         { *m = RoundRecord{} }
func (m *RoundRecord) String() string { return proto.CompactTextString(m) }
func (*RoundRecord) ProtoMessage()    {}

func (m *RoundRecord) GetRound() uint64 {
	if m != nil {
		return m.Round
	}
	return 0
}

func (m *RoundRecord) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

func (m *RoundRecord) GetParticipant() string {
	if m != nil {
		return m.Participant
	}
	return ""
}

func (m *RoundRecord) GetNumber() int32 {
	if m != nil {
		return m.Number
	}
	return 0
}

func (m *RoundRecord) GetIsOdd() bool {
	if m != nil {
		return m.IsOdd
	}
	return false
}

func (m *RoundRecord) GetStake() []byte {
	if m != nil {
		return m.Stake
	}
	return nil
}

func (m *RoundRecord) GetBonus() []byte {
	if m != nil {
		return m.Bonus
	}
	return nil
}

func (m *RoundRecord) GetPayout() []byte {
	if m != nil {
		return m.Payout
	}
	return nil
}

func (m *RoundRecord) GetWon() bool {
	if m != nil {
		return m.Won
	}
	return false
}

func (m *RoundRecord) GetHeight() int64 {
	if m != nil {
		return m.Height
	}
	return 0
}

func (m *RoundRecord) GetBlockTime() int64 {
	if m != nil {
		return m.BlockTime
	}
	return 0
}

func (m *RoundRecord) GetTxHash() string {
	if m != nil {
		return m.TxHash
	}
	return ""
}

type ReqNil struct {
}

func (m *ReqNil) Reset()         { *m = ReqNil{} }
func (m *ReqNil) String() string { return proto.CompactTextString(m) }
func (*ReqNil) ProtoMessage()    {}

// 金额是十进制字符串
type ReplyRoundStatus struct {
	Owner         string `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Phase         string `protobuf:"bytes,2,opt,name=phase,proto3" json:"phase,omitempty"`
	IsPlaying     bool   `protobuf:"varint,3,opt,name=isPlaying,proto3" json:"isPlaying,omitempty"`
	IsSettled     bool   `protobuf:"varint,4,opt,name=isSettled,proto3" json:"isSettled,omitempty"`
	Participant   string `protobuf:"bytes,5,opt,name=participant,proto3" json:"participant,omitempty"`
	IsOdd         bool   `protobuf:"varint,6,opt,name=isOdd,proto3" json:"isOdd,omitempty"`
	Stake         string `protobuf:"bytes,7,opt,name=stake,proto3" json:"stake,omitempty"`
	Bonus         string `protobuf:"bytes,8,opt,name=bonus,proto3" json:"bonus,omitempty"`
	Payout        string `protobuf:"bytes,9,opt,name=payout,proto3" json:"payout,omitempty"`
	Round         uint64 `protobuf:"varint,10,opt,name=round,proto3" json:"round,omitempty"`
	NumberVisible bool   `protobuf:"varint,11,opt,name=numberVisible,proto3" json:"numberVisible,omitempty"`
	Number        int32  `protobuf:"zigzag32,12,opt,name=number,proto3" json:"number,omitempty"`
}

func (m *ReplyRoundStatus) Reset()         { *m = ReplyRoundStatus{} }
func (m *ReplyRoundStatus) String() string { return proto.CompactTextString(m) }
func (*ReplyRoundStatus) ProtoMessage()    {}

func (m *ReplyRoundStatus) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

func (m *ReplyRoundStatus) GetPhase() string {
	if m != nil {
		return m.Phase
	}
	return ""
}

func (m *ReplyRoundStatus) GetIsPlaying() bool {
	if m != nil {
		return m.IsPlaying
	}
	return false
}

func (m *ReplyRoundStatus) GetIsSettled() bool {
	if m != nil {
		return m.IsSettled
	}
	return false
}

func (m *ReplyRoundStatus) GetParticipant() string {
	if m != nil {
		return m.Participant
	}
	return ""
}

func (m *ReplyRoundStatus) GetIsOdd() bool {
	if m != nil {
		return m.IsOdd
	}
	return false
}

func (m *ReplyRoundStatus) GetStake() string {
	if m != nil {
		return m.Stake
	}
	return ""
}

func (m *ReplyRoundStatus) GetBonus() string {
	if m != nil {
		return m.Bonus
	}
	return ""
}

func (m *ReplyRoundStatus) GetPayout() string {
	if m != nil {
		return m.Payout
	}
	return ""
}

func (m *ReplyRoundStatus) GetRound() uint64 {
	if m != nil {
		return m.Round
	}
	return 0
}

func (m *ReplyRoundStatus) GetNumberVisible() bool {
	if m != nil {
		return m.NumberVisible
	}
	return false
}

func (m *ReplyRoundStatus) GetNumber() int32 {
	if m != nil {
		return m.Number
	}
	return 0
}

type ReqRoundHistory struct {
	Round     uint64 `protobuf:"varint,1,opt,name=round,proto3" json:"round,omitempty"`
	Count     int32  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	Direction int32  `protobuf:"varint,3,opt,name=direction,proto3" json:"direction,omitempty"`
}

func (m *ReqRoundHistory) Reset()         { *m = ReqRoundHistory{} }
func (m *ReqRoundHistory) String() string { return proto.CompactTextString(m) }
func (*ReqRoundHistory) ProtoMessage()    {}

func (m *ReqRoundHistory) GetRound() uint64 {
	if m != nil {
		return m.Round
	}
	return 0
}

func (m *ReqRoundHistory) GetCount() int32 {
	if m != nil {
		return m.Count
	}
	return 0
}

func (m *ReqRoundHistory) GetDirection() int32 {
	if m != nil {
		return m.Direction
	}
	return 0
}

type RoundInfo struct {
	Round       uint64 `protobuf:"varint,1,opt,name=round,proto3" json:"round,omitempty"`
	Owner       string `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
	Participant string `protobuf:"bytes,3,opt,name=participant,proto3" json:"participant,omitempty"`
	Number      int32  `protobuf:"zigzag32,4,opt,name=number,proto3" json:"number,omitempty"`
	IsOdd       bool   `protobuf:"varint,5,opt,name=isOdd,proto3" json:"isOdd,omitempty"`
	Stake       string `protobuf:"bytes,6,opt,name=stake,proto3" json:"stake,omitempty"`
	Bonus       string `protobuf:"bytes,7,opt,name=bonus,proto3" json:"bonus,omitempty"`
	Payout      string `protobuf:"bytes,8,opt,name=payout,proto3" json:"payout,omitempty"`
	Won         bool   `protobuf:"varint,9,opt,name=won,proto3" json:"won,omitempty"`
	Height      int64  `protobuf:"varint,10,opt,name=height,proto3" json:"height,omitempty"`
	BlockTime   int64  `protobuf:"varint,11,opt,name=blockTime,proto3" json:"blockTime,omitempty"`
	TxHash      string `protobuf:"bytes,12,opt,name=txHash,proto3" json:"txHash,omitempty"`
}

func (m *RoundInfo) Reset()         { *m = RoundInfo{} }
func (m *RoundInfo) String() string { return proto.CompactTextString(m) }
func (*RoundInfo) ProtoMessage()    {}

func (m *RoundInfo) GetRound() uint64 {
	if m != nil {
		return m.Round
	}
	return 0
}

func (m *RoundInfo) GetOwner() string {
	if m != nil {
		return m.Owner
	}
	return ""
}

func (m *RoundInfo) GetParticipant() string {
	if m != nil {
		return m.Participant
	}
	return ""
}

func (m *RoundInfo) GetNumber() int32 {
	if m != nil {
		return m.Number
	}
	return 0
}

func (m *RoundInfo) GetIsOdd() bool {
	if m != nil {
		return m.IsOdd
	}
	return false
}

func (m *RoundInfo) GetStake() string {
	if m != nil {
		return m.Stake
	}
	return ""
}

func (m *RoundInfo) GetBonus() string {
	if m != nil {
		return m.Bonus
	}
	return ""
}

func (m *RoundInfo) GetPayout() string {
	if m != nil {
		return m.Payout
	}
	return ""
}

func (m *RoundInfo) GetWon() bool {
	if m != nil {
		return m.Won
	}
	return false
}

func (m *RoundInfo) GetHeight() int64 {
	if m != nil {
		return m.Height
	}
	return 0
}

func (m *RoundInfo) GetBlockTime() int64 {
	if m != nil {
		return m.BlockTime
	}
	return 0
}

func (m *RoundInfo) GetTxHash() string {
	if m != nil {
		return m.TxHash
	}
	return ""
}

type ReplyRoundHistory struct {
	Records []*RoundInfo `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
}

func (m *ReplyRoundHistory) Reset()         { *m = ReplyRoundHistory{} }
func (m *ReplyRoundHistory) String() string { return proto.CompactTextString(m) }
func (*ReplyRoundHistory) ProtoMessage()    {}

func (m *ReplyRoundHistory) GetRecords() []*RoundInfo {
	if m != nil {
		return m.Records
	}
	return nil
}

type ReplyCustody struct {
	Addr    string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Balance string `protobuf:"bytes,2,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *ReplyCustody) Reset()         { *m = ReplyCustody{} }
func (m *ReplyCustody) String() string { return proto.CompactTextString(m) }
func (*ReplyCustody) ProtoMessage()    {}

func (m *ReplyCustody) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *ReplyCustody) GetBalance() string {
	if m != nil {
		return m.Balance
	}
	return ""
}
