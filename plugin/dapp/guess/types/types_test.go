// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"testing"

	"github.com/33cn/guess/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuessActionValue(t *testing.T) {
	open := &GuessAction{Ty: GuessActionOpen, Open: &GuessOpen{Number: -7, Bonus: types.NewAmount(100).Bytes()}}
	var decoded GuessAction
	require.NoError(t, types.Decode(types.Encode(open), &decoded))
	assert.Equal(t, open.Open, decoded.GetValue())

	//空的子 action 也要能还原
	settle := &GuessAction{Ty: GuessActionSettle, Settle: &GuessSettle{}}
	require.NoError(t, types.Decode(types.Encode(settle), &decoded))
	assert.NotNil(t, decoded.GetValue())
	assert.Equal(t, int32(GuessActionSettle), decoded.GetTy())

	reset := &GuessAction{Ty: GuessActionReset, Reset_: &GuessReset{}}
	require.NoError(t, types.Decode(types.Encode(reset), &decoded))
	assert.Equal(t, reset.Reset_, decoded.GetValue())

	//ty 和子 action 不一致
	bad := &GuessAction{Ty: GuessActionPlay, Open: &GuessOpen{Number: 1}}
	require.NoError(t, types.Decode(types.Encode(bad), &decoded))
	assert.Nil(t, decoded.GetValue())

	err := types.Decode([]byte{0x1a, 0x05}, &decoded)
	assert.ErrorIs(t, err, types.ErrDecode)
}

func TestPhase(t *testing.T) {
	assert.Equal(t, "guessed", PhaseGuessed.String())
	assert.Equal(t, "unknown", Phase(9).String())
	assert.False(t, Phase(9).Valid())
	assert.True(t, PhaseSettled.Valid())

	b, err := json.Marshal(&ReplyRoundStatus{Phase: PhaseOpen.String(), Stake: types.NewAmount(5).String()})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"phase":"open"`)
	assert.Contains(t, string(b), `"stake":"5"`)
}

func TestRoundRecordCodec(t *testing.T) {
	max := types.MaxAmount().Bytes()
	rec := &RoundRecord{Round: 3, Owner: "a", Participant: "b", Number: -128, IsOdd: true, Stake: max, Payout: max, Won: true, Height: 9, TxHash: "0x01"}
	var back RoundRecord
	require.NoError(t, types.Decode(types.Encode(rec), &back))
	assert.Equal(t, rec.Number, back.Number)
	assert.Equal(t, rec.Payout, back.Payout)
	assert.Equal(t, rec.TxHash, back.TxHash)

	info := &RoundInfo{Round: 3, Owner: "a", Stake: types.MaxAmount().String(), Payout: "0"}
	var reply ReplyRoundHistory
	require.NoError(t, types.Decode(types.Encode(&ReplyRoundHistory{Records: []*RoundInfo{info, info}}), &reply))
	require.Len(t, reply.Records, 2)
	assert.Equal(t, info.Stake, reply.Records[1].Stake)

	var round Round
	r := &Round{Owner: "a", Phase: int32(PhaseSettled), Number: 127, Participant: "b", Stake: types.NewAmount(1).Bytes(), Round: 1}
	require.NoError(t, types.Decode(types.Encode(r), &round))
	assert.Equal(t, r.Stake, round.Stake)
	assert.Equal(t, r.Number, round.Number)
	assert.Equal(t, r.Phase, round.Phase)
}
