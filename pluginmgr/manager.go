// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"sort"
	"sync"

	log "github.com/33cn/guess/common/log"
	"github.com/spf13/cobra"
)

var (
	mgrlog      = log.New("module", "plugin.manager")
	pluginItems = make(map[string]Plugin)
	once        = &sync.Once{}
)

//InitExec 初始化所有插件的执行器, 只执行一次
func InitExec(sub map[string][]byte) {
	once.Do(func() {
		for _, name := range names() {
			mgrlog.Debug("InitExec", "plugin", name)
			pluginItems[name].InitExec(sub)
		}
	})
}

//HasExec 是否有这个执行器
func HasExec(name string) bool {
	for _, item := range pluginItems {
		if item.GetExecutorName() == name {
			return true
		}
	}
	return false
}

//Register 注册插件
func Register(p Plugin) {
	if p == nil {
		panic("plugin param is nil")
	}
	packageName := p.GetName()
	if len(packageName) == 0 {
		panic("plugin package name is empty")
	}
	if _, ok := pluginItems[packageName]; ok {
		panic("execute plugin item is existed. name = " + packageName)
	}
	pluginItems[packageName] = p
}

//AddCmd 添加所有插件的命令行
func AddCmd(rootCmd *cobra.Command) {
	for _, name := range names() {
		pluginItems[name].AddCmd(rootCmd)
	}
}

func names() []string {
	list := make([]string, 0, len(pluginItems))
	for name := range pluginItems {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}
