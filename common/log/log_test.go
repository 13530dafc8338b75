// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/33cn/guess/types"
	log15 "github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, log15.LvlDebug, getLevel("debug"))
	assert.Equal(t, log15.LvlInfo, getLevel("info"))
	assert.Equal(t, log15.LvlError, getLevel("nolevel"))
	assert.Equal(t, log15.LvlError, getLevel(""))
}

func TestSetFileLog(t *testing.T) {
	defer log15.Root().SetHandler(log15.DiscardHandler())
	file := filepath.Join(t.TempDir(), "guess.log")
	cfg := &types.Log{LogFile: file, Loglevel: "info", CallerFile: true}
	SetFileLog(cfg)
	assert.Equal(t, "eror", cfg.LogConsoleLevel)

	New("module", "test").Info("hello", "k", 1)
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "module=test")

	SetLogLevel("crit")
	SetFileLog(&types.Log{})
}
