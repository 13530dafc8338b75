// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package guess 猜单双插件
package guess

import (
	"github.com/33cn/guess/plugin/dapp/guess/commands"
	"github.com/33cn/guess/plugin/dapp/guess/executor"
	gty "github.com/33cn/guess/plugin/dapp/guess/types"
	"github.com/33cn/guess/pluginmgr"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     gty.GuessX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.Cmd,
	})
}
