// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands 通用命令: 私钥, 账户, 版本
package commands

import (
	"github.com/33cn/guess/client"
	"github.com/33cn/guess/common"
	"github.com/33cn/guess/common/address"
	"github.com/spf13/cobra"
)

//KeyCmd 私钥
func KeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Private key tools",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.AddCommand(GenKeyCmd(), AddrCmd())
	return cmd
}

type keyResult struct {
	PrivKey string `json:"privkey,omitempty"`
	PubKey  string `json:"pubkey"`
	Addr    string `json:"addr"`
}

//GenKeyCmd 生成私钥
func GenKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen",
		Short: "Generate a secp256k1 private key",
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := client.GenKey()
			if err != nil {
				return err
			}
			pub := priv.PubKey().Bytes()
			client.PrintJSON(cmd.OutOrStdout(), &keyResult{
				PrivKey: common.ToHex(priv.Bytes()),
				PubKey:  common.ToHex(pub),
				Addr:    address.PubKeyToAddr(pub).String(),
			})
			return nil
		},
	}
}

//AddrCmd --key 对应的地址
func AddrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "addr",
		Short: "Show the address of --key",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, _ := cmd.Flags().GetString(client.FlagKey)
			priv, err := client.ParsePrivKey(key)
			if err != nil {
				return err
			}
			pub := priv.PubKey().Bytes()
			client.PrintJSON(cmd.OutOrStdout(), &keyResult{
				PubKey: common.ToHex(pub),
				Addr:   address.PubKeyToAddr(pub).String(),
			})
			return nil
		},
	}
}
