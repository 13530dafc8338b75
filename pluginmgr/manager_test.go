// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestPluginManager(t *testing.T) {
	var gotName string
	var gotSub []byte
	Register(&PluginBase{
		Name:     "demo",
		ExecName: "demo",
		Exec: func(name string, sub []byte) {
			gotName = name
			gotSub = sub
		},
		Cmd: func() *cobra.Command { return &cobra.Command{Use: "demo"} },
	})
	Register(&PluginBase{Name: "nocmd", ExecName: "nocmd", Exec: func(string, []byte) {}})
	assert.Panics(t, func() { Register(&PluginBase{Name: "demo"}) })
	assert.Panics(t, func() { Register(&PluginBase{}) })
	assert.True(t, HasExec("demo"))
	assert.False(t, HasExec("none"))

	InitExec(map[string][]byte{"demo": []byte(`{"a":1}`)})
	assert.Equal(t, "demo", gotName)
	assert.Equal(t, `{"a":1}`, string(gotSub))
	//只初始化一次
	InitExec(map[string][]byte{"demo": []byte(`{}`)})
	assert.Equal(t, `{"a":1}`, string(gotSub))

	root := &cobra.Command{Use: "root"}
	AddCmd(root)
	assert.Len(t, root.Commands(), 1)
	assert.Equal(t, "demo", root.Commands()[0].Use)
}
