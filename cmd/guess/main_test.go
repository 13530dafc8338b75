// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/33cn/guess/client"
	"github.com/33cn/guess/common"
	"github.com/33cn/guess/common/address"
	gty "github.com/33cn/guess/plugin/dapp/guess/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
Title="test"
[log]
loglevel = "error"
logConsoleLevel = "error"
logFile = ""
[store]
name = "guess"
driver = "%s"
dbPath = "%s"
[exec]
coinSymbol = "bty"
[exec.sub.guess]
settleByParticipant = false
`

func writeConfig(t *testing.T, driver string) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "guess.toml")
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf(testConfig, driver, filepath.Join(dir, "datadir"))), 0600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	out, err := run(t, args...)
	require.NoError(t, err, out)
	return out
}

func newKey(t *testing.T) (string, string) {
	priv, err := client.GenKey()
	require.NoError(t, err)
	return common.ToHex(priv.Bytes()), address.PubKeyToAddr(priv.PubKey().Bytes()).String()
}

func TestKeyGen(t *testing.T) {
	out := mustRun(t, "key", "gen")
	var key struct {
		PrivKey string `json:"privkey"`
		Addr    string `json:"addr"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &key))
	assert.NoError(t, address.CheckAddress(key.Addr))

	out = mustRun(t, "key", "addr", "--key", key.PrivKey)
	assert.Contains(t, out, key.Addr)
}

func TestGameFlow(t *testing.T) {
	for _, driver := range []string{"goleveldb", "bboltdb"} {
		conf := writeConfig(t, driver)
		ownerKey, ownerAddr := newKey(t)
		playerKey, playerAddr := newKey(t)

		mustRun(t, "account", "faucet", "--conf", conf, "--key", ownerKey, "--addr", ownerAddr, "--amount", "10")
		out := mustRun(t, "account", "faucet", "--conf", conf, "--key", ownerKey, "--addr", playerAddr, "--amount", "10")
		assert.Contains(t, out, `"coins": "10"`)

		mustRun(t, "game", "init", "--conf", conf, "--key", ownerKey)
		mustRun(t, "game", "open", "--conf", conf, "--key", ownerKey, "--number", "7", "--bonus", "1.5")

		var st gty.ReplyRoundStatus
		out = mustRun(t, "game", "status", "--conf", conf, "--key", playerKey)
		require.NoError(t, json.Unmarshal([]byte(out), &st))
		assert.False(t, st.NumberVisible)
		assert.Equal(t, "150000000", st.Bonus)
		assert.Equal(t, gty.PhaseOpen.String(), st.Phase)

		mustRun(t, "game", "play", "--conf", conf, "--key", playerKey, "--parity", "odd", "--amount", "2")
		_, err := run(t, "game", "settle", "--conf", conf, "--key", playerKey)
		assert.True(t, errors.Is(err, gty.ErrUnauthorized), driver)
		mustRun(t, "game", "settle", "--conf", conf, "--key", ownerKey)

		out = mustRun(t, "account", "balance", "--conf", conf, "--key", playerKey)
		assert.Contains(t, out, `"coins": "11.5"`)
		out = mustRun(t, "game", "history", "--conf", conf, "--key", ownerKey)
		assert.Contains(t, out, `"won": true`)
		out = mustRun(t, "game", "custody", "--conf", conf, "--metrics")
		assert.Contains(t, out, `"balance": "0"`)
		assert.Contains(t, out, "executor.query")

		_, err = run(t, "game", "play", "--conf", conf, "--key", playerKey, "--parity", "big", "--amount", "1")
		assert.Error(t, err)
	}
}
