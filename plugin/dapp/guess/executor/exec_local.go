// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/guess/common"
	gty "github.com/33cn/guess/plugin/dapp/guess/types"
	"github.com/33cn/guess/types"
	"github.com/pkg/errors"
)

//ExecLocal_Settle 结算的轮次写入本地历史
func (g *Guess) ExecLocal_Settle(payload *gty.GuessSettle, tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.Ty != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		if item.Ty != gty.TyLogGuessSettle {
			continue
		}
		var r gty.ReceiptGuess
		if err := types.Decode(item.Log, &r); err != nil {
			return nil, errors.Wrap(err, "decode settle log")
		}
		payout, err := types.AmountFromBytes(r.Payout)
		if err != nil {
			return nil, errors.Wrap(err, "settle payout")
		}
		record := &gty.RoundRecord{
			Round:       r.Round,
			Owner:       r.Owner,
			Participant: r.Participant,
			Number:      r.Number,
			IsOdd:       r.IsOdd,
			Stake:       r.Stake,
			Bonus:       r.Bonus,
			Payout:      r.Payout,
			Won:         !payout.IsZero(),
			Height:      g.GetHeight(),
			BlockTime:   g.GetBlockTime(),
			TxHash:      common.ToHex(tx.Hash()),
		}
		set.KV = append(set.KV, &types.KeyValue{Key: historyKey(r.Round), Value: types.Encode(record)})
	}
	return set, nil
}
