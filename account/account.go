// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package account 币的账户: 余额读写, 转账, 创世发币
package account

import (
	"fmt"
	"strings"

	"github.com/33cn/guess/common/address"
	dbm "github.com/33cn/guess/common/db"
	log "github.com/33cn/guess/common/log"
	"github.com/33cn/guess/types"
	"github.com/pkg/errors"
)

var alog = log.New("module", "account")

// DB for account
type DB struct {
	db               dbm.KV
	accountKeyPerfix []byte
	execer           string
	symbol           string
}

//NewCoinsAccount coins 执行器的账户
func NewCoinsAccount(symbol string, db dbm.KV) (*DB, error) {
	return NewAccountDB("coins", symbol, db)
}

//NewAccountDB new
func NewAccountDB(execer string, symbol string, db dbm.KV) (*DB, error) {
	//如果execer 和  symbol 中存在 "-", 那么创建失败
	if strings.ContainsRune(execer, '-') {
		return nil, types.ErrExecNameNotAllow
	}
	if strings.ContainsRune(symbol, '-') || symbol == "" {
		return nil, types.ErrSymbolNameNotAllow
	}
	return &DB{
		db:               db,
		accountKeyPerfix: []byte(SymbolPrefix(execer, symbol)),
		execer:           execer,
		symbol:           symbol,
	}, nil
}

//SetDB 切换数据库
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

//Symbol 币种
func (acc *DB) Symbol() string {
	return acc.symbol
}

//LoadAccount 账户不存在返回余额为0的账户
func (acc *DB) LoadAccount(addr string) (*types.Account, error) {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err == dbm.ErrNotFoundInDb {
		return &types.Account{Addr: addr}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load account %s", addr)
	}
	var acc1 types.Account
	if err = types.Decode(value, &acc1); err != nil {
		alog.Error("LoadAccount decode", "addr", addr, "err", err)
		return nil, errors.Wrapf(err, "decode account %s", addr)
	}
	return &acc1, nil
}

//CheckTransfer 检查余额
func (acc *DB) CheckTransfer(from, to string, amount types.Amount) error {
	if amount.IsZero() {
		return types.ErrAmount
	}
	if from == to {
		return types.ErrSendSameToRecv
	}
	accFrom, err := acc.LoadAccount(from)
	if err != nil {
		return err
	}
	balance, err := accFrom.GetBalanceAmount()
	if err != nil {
		return errors.Wrapf(err, "balance of %s", from)
	}
	if balance.Cmp(amount) < 0 {
		return types.ErrNoBalance
	}
	return nil
}

//Transfer 转账, 余额不足返回 ErrNoBalance
func (acc *DB) Transfer(from, to string, amount types.Amount) (*types.Receipt, error) {
	if err := acc.CheckTransfer(from, to, amount); err != nil {
		return nil, err
	}
	if err := address.CheckAddress(to); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidAddress, "to %s: %v", to, err)
	}
	accFrom, err := acc.LoadAccount(from)
	if err != nil {
		return nil, err
	}
	accTo, err := acc.LoadAccount(to)
	if err != nil {
		return nil, err
	}
	copyfrom := *accFrom
	copyto := *accTo

	fromBalance, err := accFrom.GetBalanceAmount()
	if err != nil {
		return nil, errors.Wrapf(err, "balance of %s", from)
	}
	toBalance, err := accTo.GetBalanceAmount()
	if err != nil {
		return nil, errors.Wrapf(err, "balance of %s", to)
	}
	if fromBalance, err = fromBalance.Sub(amount); err != nil {
		return nil, types.ErrNoBalance
	}
	if toBalance, err = toBalance.Add(amount); err != nil {
		return nil, err
	}
	accFrom.SetBalanceAmount(fromBalance)
	accTo.SetBalanceAmount(toBalance)

	receiptBalanceFrom := &types.ReceiptAccountTransfer{
		Prev:    &copyfrom,
		Current: accFrom,
	}
	receiptBalanceTo := &types.ReceiptAccountTransfer{
		Prev:    &copyto,
		Current: accTo,
	}
	if err := acc.SaveAccount(accFrom); err != nil {
		return nil, err
	}
	if err := acc.SaveAccount(accTo); err != nil {
		return nil, err
	}
	alog.Debug("Transfer", "from", from, "to", to, "amount", amount)
	return acc.transferReceipt(accFrom, accTo, receiptBalanceFrom, receiptBalanceTo), nil
}

//GenesisDeposit 创世发币(本地水龙头)
func (acc *DB) GenesisDeposit(addr string, amount types.Amount) (*types.Receipt, error) {
	if amount.IsZero() {
		return nil, types.ErrAmount
	}
	if err := address.CheckAddress(addr); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidAddress, "%s: %v", addr, err)
	}
	acc1, err := acc.LoadAccount(addr)
	if err != nil {
		return nil, err
	}
	copyacc := *acc1
	balance, err := acc1.GetBalanceAmount()
	if err != nil {
		return nil, errors.Wrapf(err, "balance of %s", addr)
	}
	if balance, err = balance.Add(amount); err != nil {
		return nil, err
	}
	acc1.SetBalanceAmount(balance)
	receiptBalance := &types.ReceiptAccountTransfer{
		Prev:    &copyacc,
		Current: acc1,
	}
	if err := acc.SaveAccount(acc1); err != nil {
		return nil, err
	}
	log1 := &types.ReceiptLog{
		Ty:  types.TyLogGenesisDeposit,
		Log: types.Encode(receiptBalance),
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   acc.GetKVSet(acc1),
		Logs: []*types.ReceiptLog{log1},
	}, nil
}

func (acc *DB) transferReceipt(accFrom, accTo *types.Account, receiptFrom, receiptTo types.Message) *types.Receipt {
	log1 := &types.ReceiptLog{
		Ty:  types.TyLogTransfer,
		Log: types.Encode(receiptFrom),
	}
	log2 := &types.ReceiptLog{
		Ty:  types.TyLogTransfer,
		Log: types.Encode(receiptTo),
	}
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1, log2},
	}
}

//SaveAccount 保存账户
func (acc *DB) SaveAccount(acc1 *types.Account) error {
	for _, kv := range acc.GetKVSet(acc1) {
		if err := acc.db.Set(kv.Key, kv.Value); err != nil {
			return errors.Wrapf(err, "save account %s", acc1.Addr)
		}
	}
	return nil
}

//GetKVSet 账户的 kv
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	return append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: types.Encode(acc1),
	})
}

// AccountKey return the key of address in DB
func (acc *DB) AccountKey(address string) (key []byte) {
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address)...)
	return key
}

//SymbolPrefix 账户 key 前缀
func SymbolPrefix(execer string, symbol string) string {
	return fmt.Sprintf("mavl-%s-%s-", execer, symbol)
}
