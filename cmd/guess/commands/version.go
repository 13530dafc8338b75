// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/33cn/guess/common/version"
	"github.com/spf13/cobra"
)

//VersionCmd 版本
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Get version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetVersion())
		},
	}
}
