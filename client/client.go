// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package client 本地客户端: 读取配置, 打开数据库, 签名并执行交易
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/33cn/guess/common"
	"github.com/33cn/guess/common/address"
	"github.com/33cn/guess/common/crypto"
	dbm "github.com/33cn/guess/common/db"
	log "github.com/33cn/guess/common/log"
	"github.com/33cn/guess/executor"
	"github.com/33cn/guess/pluginmgr"
	"github.com/33cn/guess/system/crypto/secp256k1"
	"github.com/33cn/guess/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var clog = log.New("module", "client")

// 全局参数
const (
	FlagConf    = "conf"
	FlagKey     = "key"
	FlagMetrics = "metrics"
)

//AddFlags 根命令的全局参数
func AddFlags(root *cobra.Command) {
	root.PersistentFlags().String(FlagConf, "", "config file, default config when empty")
	root.PersistentFlags().String(FlagKey, "", "hex private key used to sign")
	root.PersistentFlags().Bool(FlagMetrics, false, "print executor metrics on exit")
}

//Client 本地执行环境
type Client struct {
	cfg     *types.Config
	exec    *executor.Executor
	priv    crypto.PrivKey
	metrics io.Writer
}

//LoadConfig 配置文件为空时使用默认配置
func LoadConfig(path string) (*types.Config, *types.ConfigSubModule, error) {
	if path == "" {
		return types.InitCfgString(types.DefaultConfig)
	}
	return types.InitCfg(path)
}

//Open 根据命令行参数创建客户端
func Open(cmd *cobra.Command) (*Client, error) {
	confPath, _ := cmd.Flags().GetString(FlagConf)
	key, _ := cmd.Flags().GetString(FlagKey)
	withMetrics, _ := cmd.Flags().GetBool(FlagMetrics)

	cfg, sub, err := LoadConfig(confPath)
	if err != nil {
		return nil, err
	}
	log.SetFileLog(cfg.Log)
	pluginmgr.InitExec(sub.Exec)

	c, err := New(cfg, key)
	if err != nil {
		return nil, err
	}
	if withMetrics {
		c.metrics = cmd.ErrOrStderr()
	}
	return c, nil
}

//New 打开数据库, key 为空时只能做匿名查询
func New(cfg *types.Config, key string) (*Client, error) {
	var priv crypto.PrivKey
	if key != "" {
		var err error
		if priv, err = ParsePrivKey(key); err != nil {
			return nil, err
		}
	}
	db, err := dbm.NewDB(cfg.Store.Name, cfg.Store.Driver, cfg.Store.DbPath, int(cfg.Store.DbCache))
	if err != nil {
		return nil, errors.Wrapf(err, "open store %s", cfg.Store.Driver)
	}
	exec, err := executor.New(db, cfg.Exec.CoinSymbol)
	if err != nil {
		db.Close()
		return nil, err
	}
	clog.Debug("Open", "driver", cfg.Store.Driver, "path", cfg.Store.DbPath, "height", exec.Height())
	return &Client{cfg: cfg, exec: exec, priv: priv}, nil
}

//ParsePrivKey 十六进制私钥
func ParsePrivKey(key string) (crypto.PrivKey, error) {
	c, err := crypto.New(secp256k1.Name)
	if err != nil {
		return nil, err
	}
	b, err := common.FromHex(key)
	if err != nil {
		return nil, errors.Wrap(types.ErrInvalidParam, "private key is not hex")
	}
	return c.PrivKeyFromBytes(b)
}

//GenKey 生成新的私钥
func GenKey() (crypto.PrivKey, error) {
	c, err := crypto.New(secp256k1.Name)
	if err != nil {
		return nil, err
	}
	return c.GenKey()
}

//Executor 执行器环境
func (c *Client) Executor() *executor.Executor {
	return c.exec
}

//Addr 签名私钥对应的地址
func (c *Client) Addr() (address.Addr, error) {
	if c.priv == nil {
		return address.Addr{}, types.ErrSignatureRequired
	}
	return address.PubKeyToAddr(c.priv.PubKey().Bytes()), nil
}

//SendTx 签名并执行一笔交易
func (c *Client) SendTx(execer string, action types.Message) (*types.Transaction, *types.Receipt, error) {
	if c.priv == nil {
		return nil, nil, types.ErrSignatureRequired
	}
	tx := &types.Transaction{
		Execer:  []byte(execer),
		Payload: types.Encode(action),
		Nonce:   time.Now().UnixNano(),
	}
	tx.Sign(crypto.GetType(secp256k1.Name), c.priv)
	receipt, err := c.exec.ExecTx(tx)
	if err != nil {
		return tx, nil, err
	}
	return tx, receipt, nil
}

//Query 查询, 有私钥时签名
func (c *Client) Query(execer, funcName string, req types.Message) (types.Message, error) {
	q := &types.Query{
		Execer:   []byte(execer),
		FuncName: funcName,
		Payload:  types.Encode(req),
		Nonce:    time.Now().UnixNano(),
	}
	if c.priv != nil {
		q.Sign(crypto.GetType(secp256k1.Name), c.priv)
	}
	return c.exec.Query(q)
}

//Close 关闭数据库
func (c *Client) Close() {
	if c.metrics != nil {
		c.exec.WriteMetrics(c.metrics)
	}
	c.exec.Close()
}

//PrintJSON 格式化输出
func PrintJSON(w io.Writer, v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Fprintln(w, string(data))
}

//Result 交易执行结果
type Result struct {
	Hash string      `json:"hash"`
	From string      `json:"from"`
	Ty   int32       `json:"ty"`
	Logs []LogResult `json:"logs"`
}

//LogResult 日志
type LogResult struct {
	Ty  int32  `json:"ty"`
	Log string `json:"log"`
}

//NewResult 输出用的交易结果
func NewResult(tx *types.Transaction, receipt *types.Receipt) *Result {
	r := &Result{Hash: common.ToHex(tx.Hash()), From: tx.From().String(), Ty: receipt.Ty}
	for _, l := range receipt.Logs {
		r.Logs = append(r.Logs, LogResult{Ty: l.Ty, Log: common.ToHex(l.Log)})
	}
	return r
}
