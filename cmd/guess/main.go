// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/33cn/guess/client"
	"github.com/33cn/guess/cmd/guess/commands"
	"github.com/33cn/guess/common/log"
	"github.com/33cn/guess/pluginmgr"
	"github.com/spf13/cobra"

	_ "github.com/33cn/guess/plugin/dapp/init"
)

var rootCmd = &cobra.Command{
	Use:           "guess",
	Short:         "parity guess game tools",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	client.AddFlags(rootCmd)
	rootCmd.AddCommand(
		commands.KeyCmd(),
		commands.AccountCmd(),
		commands.VersionCmd(),
	)
	pluginmgr.AddCmd(rootCmd)
}

func main() {
	log.SetLogLevel("error")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
