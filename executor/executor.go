// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor 串行执行交易, 一笔交易的状态修改和资金转移一起提交或者一起回滚
package executor

import (
	"io"
	"sync"
	"time"

	"github.com/33cn/guess/account"
	"github.com/33cn/guess/common"
	"github.com/33cn/guess/common/address"
	dbm "github.com/33cn/guess/common/db"
	log "github.com/33cn/guess/common/log"
	"github.com/33cn/guess/system/dapp"
	"github.com/33cn/guess/types"
	"github.com/go-stack/stack"
	"github.com/pkg/errors"
	metrics "github.com/rcrowley/go-metrics"

	// 交易签名驱动
	_ "github.com/33cn/guess/system/crypto/secp256k1"
)

var elog = log.New("module", "execs")

var heightKey = []byte("LODB-executor-height")

//Executor 执行器环境
type Executor struct {
	mu      sync.Mutex
	maindb  dbm.DB
	statedb *dbm.StateDB
	symbol  string
	height  int64
	now     func() time.Time

	registry  metrics.Registry
	txOk      metrics.Counter
	txFail    metrics.Counter
	queries   metrics.Counter
	execTimer metrics.Timer
}

//New 创建执行器环境, symbol 为 coins 的币种
func New(maindb dbm.DB, symbol string) (*Executor, error) {
	if symbol == "" {
		symbol = types.DefaultCoinSymbol
	}
	if _, err := account.NewCoinsAccount(symbol, maindb); err != nil {
		return nil, err
	}
	registry := metrics.NewRegistry()
	exec := &Executor{
		maindb:    maindb,
		statedb:   dbm.NewStateDB(maindb),
		symbol:    symbol,
		now:       time.Now,
		registry:  registry,
		txOk:      metrics.NewRegisteredCounter("executor.tx.ok", registry),
		txFail:    metrics.NewRegisteredCounter("executor.tx.fail", registry),
		queries:   metrics.NewRegisteredCounter("executor.query", registry),
		execTimer: metrics.NewRegisteredTimer("executor.tx.time", registry),
	}
	height, err := exec.loadHeight()
	if err != nil {
		return nil, err
	}
	exec.height = height
	return exec, nil
}

func (e *Executor) loadHeight() (int64, error) {
	v, err := e.maindb.Get(heightKey)
	if err == dbm.ErrNotFoundInDb {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return decodeHeight(v)
}

func encodeHeight(h int64) []byte {
	return types.Encode(&types.Int64{Data: h})
}

func decodeHeight(b []byte) (int64, error) {
	var h types.Int64
	if err := types.Decode(b, &h); err != nil {
		return 0, err
	}
	return h.Data, nil
}

//Height 已经执行的交易数
func (e *Executor) Height() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.height
}

//Symbol coins 币种
func (e *Executor) Symbol() string {
	return e.symbol
}

//Metrics 计数器和计时器
func (e *Executor) Metrics() metrics.Registry {
	return e.registry
}

//WriteMetrics 输出一次当前的统计
func (e *Executor) WriteMetrics(w io.Writer) {
	metrics.WriteOnce(e.registry, w)
}

//Close 关闭数据库
func (e *Executor) Close() {
	e.maindb.Close()
}

//ExecTx 验证签名, 执行交易, 全部成功才提交
func (e *Executor) ExecTx(tx *types.Transaction) (receipt *types.Receipt, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	start := time.Now()
	defer func() {
		e.execTimer.UpdateSince(start)
		if err != nil {
			e.txFail.Inc(1)
			elog.Info("ExecTx failed", "execer", string(tx.Execer), "hash", common.ToHex(tx.Hash()), "err", err)
		} else {
			e.txOk.Inc(1)
		}
	}()

	if !tx.CheckSign() {
		return nil, types.ErrSign
	}
	driver, err := dapp.LoadDriver(string(tx.Execer))
	if err != nil {
		return nil, err
	}
	if err := e.statedb.Begin(); err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			e.statedb.Rollback()
		}
	}()

	hash := tx.Hash()
	nonce := nonceKey(tx.From(), hash)
	if _, err := e.statedb.Get(nonce); err == nil {
		return nil, errors.Wrapf(types.ErrNonceUsed, "tx %s", common.ToHex(hash))
	}
	if err := e.prepare(driver); err != nil {
		return nil, err
	}
	receipt, err = e.runTx(driver, tx)
	if err != nil {
		return nil, err
	}
	if err := e.statedb.Set(nonce, []byte{1}); err != nil {
		return nil, err
	}
	if err := e.statedb.Set(heightKey, encodeHeight(e.height+1)); err != nil {
		return nil, err
	}
	if err := e.statedb.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit")
	}
	committed = true
	e.height++
	elog.Debug("ExecTx", "execer", string(tx.Execer), "action", driver.GetActionName(tx), "from", tx.From(), "height", e.height, "kvs", len(receipt.KV))
	return receipt, nil
}

func (e *Executor) prepare(driver dapp.Driver) error {
	acc, err := account.NewCoinsAccount(e.symbol, e.statedb)
	if err != nil {
		return err
	}
	driver.SetStateDB(e.statedb)
	driver.SetLocalDB(e.statedb)
	driver.SetCoinsAccount(acc)
	driver.SetEnv(e.height+1, e.now().Unix())
	return nil
}

// runTx 驱动的 panic 转为 ErrExecPanic, 由调用者回滚
func (e *Executor) runTx(driver dapp.Driver, tx *types.Transaction) (receipt *types.Receipt, err error) {
	defer func() {
		if r := recover(); r != nil {
			elog.Error("runTx panic", "execer", string(tx.Execer), "info", r, "stack", stack.Trace().TrimRuntime().String())
			receipt = nil
			err = errors.Wrapf(types.ErrExecPanic, "%v", r)
		}
	}()
	if err := driver.CheckTx(tx, 0); err != nil {
		return nil, err
	}
	receipt, err = driver.Exec(tx, 0)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, errors.Wrap(types.ErrEmpty, "nil receipt")
	}
	for _, kv := range receipt.KV {
		if err := e.statedb.Set(kv.Key, kv.Value); err != nil {
			return nil, err
		}
	}
	set, err := driver.ExecLocal(tx, &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs}, 0)
	if err != nil {
		return nil, errors.Wrap(err, "exec local")
	}
	for _, kv := range set.KV {
		if err := e.statedb.Set(kv.Key, kv.Value); err != nil {
			return nil, err
		}
	}
	return receipt, nil
}

//Query 只读查询, 签名的查询带上调用者
func (e *Executor) Query(q *types.Query) (types.Message, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.queries.Inc(1)
	caller, err := q.Caller()
	if err != nil {
		return nil, err
	}
	driver, err := dapp.LoadDriver(string(q.Execer))
	if err != nil {
		return nil, err
	}
	if err := e.prepare(driver); err != nil {
		return nil, err
	}
	driver.SetCaller(caller)
	return driver.Query(q.FuncName, q.Payload)
}

//Genesis 给地址发币(本地水龙头), 执行器地址的余额只能通过交易改变
func (e *Executor) Genesis(addr string, amount types.Amount) (*types.Receipt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if dapp.IsDriverAddress(addr) {
		return nil, errors.Wrapf(types.ErrInvalidAddress, "exec address %s", addr)
	}
	if err := e.statedb.Begin(); err != nil {
		return nil, err
	}
	acc, err := account.NewCoinsAccount(e.symbol, e.statedb)
	if err != nil {
		e.statedb.Rollback()
		return nil, err
	}
	receipt, err := acc.GenesisDeposit(addr, amount)
	if err != nil {
		e.statedb.Rollback()
		return nil, err
	}
	if err := e.statedb.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit")
	}
	elog.Info("Genesis", "addr", addr, "amount", amount)
	return receipt, nil
}

//Balance coins 余额
func (e *Executor) Balance(addr string) (*types.Account, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := address.CheckAddress(addr); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidAddress, "%s: %v", addr, err)
	}
	acc, err := account.NewCoinsAccount(e.symbol, e.statedb)
	if err != nil {
		return nil, err
	}
	return acc.LoadAccount(addr)
}

// nonceKey 不同的签名者可以发送相同内容的交易
func nonceKey(from address.Addr, hash []byte) []byte {
	key := []byte(types.NonceKeyPrefx + from.String() + "-")
	return append(key, hash...)
}
