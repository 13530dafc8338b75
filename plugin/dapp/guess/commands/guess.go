// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands guess 合约的命令行
package commands

import (
	"strings"

	"github.com/33cn/guess/client"
	gty "github.com/33cn/guess/plugin/dapp/guess/types"
	"github.com/33cn/guess/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//Cmd guess 命令
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Parity guess game",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(
		InitCmd(),
		OpenCmd(),
		PlayCmd(),
		SettleCmd(),
		ResetCmd(),
		StatusCmd(),
		HistoryCmd(),
		CustodyCmd(),
	)
	return cmd
}

func sendAction(cmd *cobra.Command, action *gty.GuessAction) error {
	c, err := client.Open(cmd)
	if err != nil {
		return err
	}
	defer c.Close()
	tx, receipt, err := c.SendTx(gty.GuessX, action)
	if err != nil {
		return err
	}
	client.PrintJSON(cmd.OutOrStdout(), client.NewResult(tx, receipt))
	return nil
}

func query(cmd *cobra.Command, funcName string, req types.Message) error {
	c, err := client.Open(cmd)
	if err != nil {
		return err
	}
	defer c.Close()
	reply, err := c.Query(gty.GuessX, funcName, req)
	if err != nil {
		return err
	}
	client.PrintJSON(cmd.OutOrStdout(), reply)
	return nil
}

//InitCmd 初始化合约
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the game, the signer becomes owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			return sendAction(cmd, &gty.GuessAction{Ty: gty.GuessActionInit, Init: &gty.GuessInit{}})
		},
	}
}

//OpenCmd 开始一轮
func OpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a round with a secret number and a bonus",
		RunE:  openRound,
	}
	cmd.Flags().Int8P("number", "n", 0, "secret number (-128 ~ 127)")
	cmd.MarkFlagRequired("number")
	cmd.Flags().StringP("bonus", "b", "0", "bonus in coins")
	return cmd
}

func openRound(cmd *cobra.Command, args []string) error {
	number, _ := cmd.Flags().GetInt8("number")
	bonusStr, _ := cmd.Flags().GetString("bonus")
	bonus, err := types.ParseCoins(bonusStr)
	if err != nil {
		return err
	}
	return sendAction(cmd, &gty.GuessAction{
		Ty:   gty.GuessActionOpen,
		Open: &gty.GuessOpen{Number: int32(number), Bonus: bonus.Bytes()},
	})
}

//PlayCmd 下注
func PlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Guess odd or even and pay the stake",
		RunE:  play,
	}
	cmd.Flags().StringP("parity", "p", "", "odd or even")
	cmd.MarkFlagRequired("parity")
	cmd.Flags().StringP("amount", "a", "", "stake in coins")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func parseParity(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "odd":
		return true, nil
	case "even":
		return false, nil
	}
	return false, errors.Wrapf(types.ErrInvalidParam, "parity %q", s)
}

func play(cmd *cobra.Command, args []string) error {
	parity, _ := cmd.Flags().GetString("parity")
	amountStr, _ := cmd.Flags().GetString("amount")
	isOdd, err := parseParity(parity)
	if err != nil {
		return err
	}
	amount, err := types.ParseCoins(amountStr)
	if err != nil {
		return err
	}
	return sendAction(cmd, &gty.GuessAction{
		Ty:   gty.GuessActionPlay,
		Play: &gty.GuessPlay{IsOdd: isOdd, Amount: amount.Bytes()},
	})
}

//SettleCmd 结算
func SettleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settle",
		Short: "Settle the guessed round",
		RunE: func(cmd *cobra.Command, args []string) error {
			return sendAction(cmd, &gty.GuessAction{Ty: gty.GuessActionSettle, Settle: &gty.GuessSettle{}})
		},
	}
}

//ResetCmd 重置
func ResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the settled round, custody is returned to owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			return sendAction(cmd, &gty.GuessAction{Ty: gty.GuessActionReset, Reset_: &gty.GuessReset{}})
		},
	}
}

//StatusCmd 当前轮
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current round, the number is hidden unless signed by owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			return query(cmd, gty.FuncNameGetRoundStatus, &gty.ReqNil{})
		},
	}
}

//HistoryCmd 已结算的轮次
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List settled rounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			round, _ := cmd.Flags().GetUint64("round")
			count, _ := cmd.Flags().GetInt32("count")
			direction, _ := cmd.Flags().GetInt32("direction")
			return query(cmd, gty.FuncNameGetRoundHistory, &gty.ReqRoundHistory{Round: round, Count: count, Direction: direction})
		},
	}
	cmd.Flags().Uint64P("round", "r", 0, "start after this round, 0 from the first/last")
	cmd.Flags().Int32P("count", "c", gty.DefaultCount, "max records")
	cmd.Flags().Int32P("direction", "d", gty.ListDESC, "0: desc, 1: asc")
	return cmd
}

//CustodyCmd 合约托管的余额
func CustodyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "custody",
		Short: "Show the balance held by the game",
		RunE: func(cmd *cobra.Command, args []string) error {
			return query(cmd, gty.FuncNameGetCustody, &gty.ReqNil{})
		},
	}
}
