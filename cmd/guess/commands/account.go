// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/guess/client"
	"github.com/33cn/guess/types"
	"github.com/spf13/cobra"
)

//AccountCmd 账户
func AccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account balance and local faucet",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(FaucetCmd(), BalanceCmd())
	return cmd
}

type balanceResult struct {
	Addr    string       `json:"addr"`
	Symbol  string       `json:"symbol"`
	Balance types.Amount `json:"balance"`
	Coins   string       `json:"coins"`
}

//FaucetCmd 本地发币
func FaucetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "faucet",
		Short: "Deposit coins to an address (local only)",
		RunE:  faucet,
	}
	cmd.Flags().StringP("addr", "a", "", "address")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().StringP("amount", "m", "", "amount in coins")
	cmd.MarkFlagRequired("amount")
	return cmd
}

func faucet(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	amountStr, _ := cmd.Flags().GetString("amount")
	amount, err := types.ParseCoins(amountStr)
	if err != nil {
		return err
	}
	c, err := client.Open(cmd)
	if err != nil {
		return err
	}
	defer c.Close()
	if _, err := c.Executor().Genesis(addr, amount); err != nil {
		return err
	}
	return printBalance(cmd, c, addr)
}

//BalanceCmd 余额
func BalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the balance of an address, default the address of --key",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			c, err := client.Open(cmd)
			if err != nil {
				return err
			}
			defer c.Close()
			if addr == "" {
				self, err := c.Addr()
				if err != nil {
					return err
				}
				addr = self.String()
			}
			return printBalance(cmd, c, addr)
		},
	}
	cmd.Flags().StringP("addr", "a", "", "address")
	return cmd
}

func printBalance(cmd *cobra.Command, c *client.Client, addr string) error {
	acc, err := c.Executor().Balance(addr)
	if err != nil {
		return err
	}
	balance, err := acc.GetBalanceAmount()
	if err != nil {
		return err
	}
	client.PrintJSON(cmd.OutOrStdout(), &balanceResult{
		Addr:    acc.Addr,
		Symbol:  c.Executor().Symbol(),
		Balance: balance,
		Coins:   types.FormatCoins(balance),
	})
	return nil
}
