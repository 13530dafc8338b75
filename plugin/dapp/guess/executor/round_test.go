// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"errors"
	"testing"

	"github.com/33cn/guess/common/address"
	gty "github.com/33cn/guess/plugin/dapp/guess/types"
	"github.com/33cn/guess/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	owner  = address.PubKeyToAddr([]byte("owner"))
	player = address.PubKeyToAddr([]byte("player"))
	other  = address.PubKeyToAddr([]byte("other"))

	ownerOnly = SettlePolicy{}
	anyPlayer = SettlePolicy{AllowParticipant: true}
)

func amount(v uint64) types.Amount {
	return types.NewAmount(v)
}

func guessed(t *testing.T, number int8, bonus, stake uint64, isOdd bool) RoundState {
	s, err := NewRoundState(owner).Open(owner, number, amount(bonus))
	require.NoError(t, err)
	s, err = s.PlaceGuess(player, isOdd, amount(stake))
	require.NoError(t, err)
	require.NoError(t, s.Validate())
	return s
}

func TestRoundWin(t *testing.T) {
	s := guessed(t, 7, 100, 50, true)
	s, err := s.Settle(owner, ownerOnly)
	require.NoError(t, err)
	assert.Equal(t, gty.PhaseSettled, s.Phase)
	assert.True(t, s.IsSettled())
	assert.False(t, s.IsPlaying())
	assert.True(t, s.Won())
	assert.Equal(t, amount(150), s.Payout)
	assert.NoError(t, s.Validate())
}

func TestRoundLose(t *testing.T) {
	s := guessed(t, 4, 100, 50, true)
	s, err := s.Settle(owner, ownerOnly)
	require.NoError(t, err)
	assert.Equal(t, gty.PhaseSettled, s.Phase)
	assert.False(t, s.Won())
	assert.True(t, s.Payout.IsZero())
	assert.Equal(t, amount(50), s.Participant.Stake)
}

func TestRoundOwnerCannotPlay(t *testing.T) {
	s, err := NewRoundState(owner).Open(owner, 3, amount(10))
	require.NoError(t, err)
	next, err := s.PlaceGuess(owner, true, amount(5))
	assert.Equal(t, gty.ErrOwnerCannotPlay, err)
	assert.Equal(t, s, next)
}

func TestRoundNoActiveRound(t *testing.T) {
	s := NewRoundState(owner)
	_, err := s.PlaceGuess(player, true, amount(5))
	assert.Equal(t, gty.ErrNoActiveRound, err)

	settled, err := guessed(t, 1, 1, 1, true).Settle(owner, ownerOnly)
	require.NoError(t, err)
	_, err = settled.PlaceGuess(other, true, amount(5))
	assert.Equal(t, gty.ErrNoActiveRound, err)
}

func TestRoundSettleOverflow(t *testing.T) {
	for _, isOdd := range []bool{true, false} {
		s, err := NewRoundState(owner).Open(owner, 7, amount(1))
		require.NoError(t, err)
		s, err = s.PlaceGuess(player, isOdd, types.MaxAmount())
		require.NoError(t, err)
		next, err := s.Settle(owner, ownerOnly)
		assert.True(t, errors.Is(err, types.ErrAmountOverflow))
		assert.Equal(t, s, next)
		assert.Equal(t, gty.PhaseGuessed, s.Phase)
	}
}

func TestNoDoubleParticipation(t *testing.T) {
	s := guessed(t, 2, 10, 10, false)
	_, err := s.PlaceGuess(other, true, amount(10))
	assert.Equal(t, gty.ErrAlreadyGuessed, err)
	_, err = s.PlaceGuess(player, true, amount(10))
	assert.Equal(t, gty.ErrAlreadyGuessed, err)

	s, err = s.Settle(owner, ownerOnly)
	require.NoError(t, err)
	s, err = s.Reset(owner)
	require.NoError(t, err)
	s, err = s.Open(owner, 3, amount(1))
	require.NoError(t, err)
	_, err = s.PlaceGuess(other, true, amount(10))
	assert.NoError(t, err)
}

func TestSettleTwice(t *testing.T) {
	s, err := guessed(t, 5, 10, 10, true).Settle(owner, ownerOnly)
	require.NoError(t, err)
	next, err := s.Settle(owner, ownerOnly)
	assert.Equal(t, gty.ErrNotReadyToSettle, err)
	assert.Equal(t, s, next)

	_, err = NewRoundState(owner).Settle(owner, ownerOnly)
	assert.Equal(t, gty.ErrNotReadyToSettle, err)
	open, err := NewRoundState(owner).Open(owner, 1, amount(1))
	require.NoError(t, err)
	_, err = open.Settle(owner, ownerOnly)
	assert.Equal(t, gty.ErrNotReadyToSettle, err)
}

func TestResetClearsRound(t *testing.T) {
	s, err := guessed(t, 9, 10, 20, true).Settle(owner, ownerOnly)
	require.NoError(t, err)
	s, err = s.Reset(owner)
	require.NoError(t, err)
	assert.Equal(t, owner, s.Owner)
	assert.Nil(t, s.Participant)
	assert.True(t, s.Bonus.IsZero())
	assert.True(t, s.Payout.IsZero())
	assert.Equal(t, int8(0), s.Number)
	assert.False(t, s.IsPlaying())
	assert.False(t, s.IsSettled())
	assert.Equal(t, uint64(1), s.Round)
	assert.NoError(t, s.Validate())
}

func TestOwnerImmutable(t *testing.T) {
	s := NewRoundState(owner)
	steps := []func(RoundState) (RoundState, error){
		func(s RoundState) (RoundState, error) { return s.Open(other, 1, amount(1)) },
		func(s RoundState) (RoundState, error) { return s.Open(owner, 1, amount(1)) },
		func(s RoundState) (RoundState, error) { return s.PlaceGuess(player, true, amount(1)) },
		func(s RoundState) (RoundState, error) { return s.Settle(player, anyPlayer) },
		func(s RoundState) (RoundState, error) { return s.Reset(other) },
		func(s RoundState) (RoundState, error) { return s.Reset(owner) },
	}
	for _, step := range steps {
		next, _ := step(s)
		assert.Equal(t, owner, next.Owner)
		s = next
	}
	assert.Equal(t, gty.PhaseIdle, s.Phase)
}

func TestAuthorization(t *testing.T) {
	s := NewRoundState(owner)
	_, err := s.Open(player, 1, amount(1))
	assert.Equal(t, gty.ErrUnauthorized, err)

	open, err := s.Open(owner, 1, amount(1))
	require.NoError(t, err)
	_, err = open.Open(owner, 2, amount(1))
	assert.Equal(t, gty.ErrRoundInProgress, err)
	_, err = open.PlaceGuess(player, true, types.Amount{})
	assert.Equal(t, gty.ErrZeroStake, err)
	_, err = open.Reset(owner)
	assert.Equal(t, gty.ErrNothingToReset, err)
	_, err = open.Reset(player)
	assert.Equal(t, gty.ErrUnauthorized, err)

	g := guessed(t, 1, 1, 1, true)
	_, err = g.Settle(player, ownerOnly)
	assert.Equal(t, gty.ErrUnauthorized, err)
	_, err = g.Settle(other, anyPlayer)
	assert.Equal(t, gty.ErrUnauthorized, err)
	settled, err := g.Settle(player, anyPlayer)
	require.NoError(t, err)
	_, err = settled.Open(owner, 1, amount(1))
	assert.Equal(t, gty.ErrRoundInProgress, err)
}

func TestTransitionKeepsInput(t *testing.T) {
	open, err := NewRoundState(owner).Open(owner, -3, amount(8))
	require.NoError(t, err)
	g, err := open.PlaceGuess(player, true, amount(2))
	require.NoError(t, err)
	assert.Nil(t, open.Participant)
	assert.Equal(t, gty.PhaseOpen, open.Phase)

	settled, err := g.Settle(owner, ownerOnly)
	require.NoError(t, err)
	assert.Equal(t, gty.PhaseGuessed, g.Phase)
	assert.True(t, g.Payout.IsZero())
	assert.Equal(t, amount(10), settled.Payout)
}

func TestRecordRoundTrip(t *testing.T) {
	s, err := guessed(t, -128, 3, 4, false).Settle(owner, ownerOnly)
	require.NoError(t, err)
	var r gty.Round
	require.NoError(t, types.Decode(types.Encode(s.Record()), &r))
	back, err := RoundFromRecord(&r)
	require.NoError(t, err)
	assert.Equal(t, s, back)

	idle := NewRoundState(owner)
	back, err = RoundFromRecord(idle.Record())
	require.NoError(t, err)
	assert.Equal(t, idle, back)
}

func TestValidate(t *testing.T) {
	bad := []*gty.Round{
		{Owner: "bad"},
		{Owner: owner.String(), Phase: 9},
		{Owner: owner.String(), Phase: int32(gty.PhaseIdle), Bonus: amount(1).Bytes()},
		{Owner: owner.String(), Phase: int32(gty.PhaseOpen), Participant: player.String(), Stake: amount(1).Bytes()},
		{Owner: owner.String(), Phase: int32(gty.PhaseGuessed)},
		{Owner: owner.String(), Phase: int32(gty.PhaseGuessed), Participant: player.String()},
		{Owner: owner.String(), Phase: int32(gty.PhaseGuessed), Participant: owner.String(), Stake: amount(1).Bytes()},
		{Owner: owner.String(), Phase: int32(gty.PhaseOpen), IsOdd: true},
		{Owner: owner.String(), Phase: int32(gty.PhaseSettled), Number: 1, Participant: player.String(), IsOdd: true, Stake: amount(1).Bytes()},
		{Owner: owner.String(), Phase: int32(gty.PhaseOpen), Number: 300},
		{Owner: owner.String(), Phase: int32(gty.PhaseOpen), Bonus: make([]byte, 17)},
		{Owner: owner.String(), Phase: int32(gty.PhaseSettled), Payout: make([]byte, 20)},
	}
	for i, r := range bad {
		_, err := RoundFromRecord(r)
		assert.True(t, errors.Is(err, gty.ErrCorruptState), "case %d", i)
	}
}
