// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/guess/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsOdd(t *testing.T) {
	odd := []int8{1, 7, -1, -7, 127, -127}
	even := []int8{0, 4, -2, -128, 126}
	for _, n := range odd {
		assert.True(t, IsOdd(n), n)
	}
	for _, n := range even {
		assert.False(t, IsOdd(n), n)
	}
}

func TestPayout(t *testing.T) {
	p, err := Payout(true, true, types.NewAmount(50), types.NewAmount(100))
	require.NoError(t, err)
	assert.Equal(t, types.NewAmount(150), p)

	p, err = Payout(false, false, types.NewAmount(50), types.Amount{})
	require.NoError(t, err)
	assert.Equal(t, types.NewAmount(50), p)

	p, err = Payout(false, true, types.NewAmount(50), types.NewAmount(100))
	require.NoError(t, err)
	assert.True(t, p.IsZero())

	_, err = Payout(true, true, types.MaxAmount(), types.NewAmount(1))
	assert.Equal(t, types.ErrAmountOverflow, err)
	//猜错时不需要计算
	p, err = Payout(true, false, types.MaxAmount(), types.NewAmount(1))
	require.NoError(t, err)
	assert.True(t, p.IsZero())
}
