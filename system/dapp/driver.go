// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 执行器驱动接口, DriverBase 以及驱动注册
package dapp

import (
	"reflect"

	"github.com/33cn/guess/account"
	"github.com/33cn/guess/common/address"
	dbm "github.com/33cn/guess/common/db"
	log "github.com/33cn/guess/common/log"
	"github.com/33cn/guess/types"
	"github.com/pkg/errors"
)

var blog = log.New("module", "execs.base")

// Action is an executor payload carrying exactly one typed sub action.
type Action interface {
	types.Message
	GetTy() int32
	GetValue() interface{}
}

//Driver 执行器驱动
type Driver interface {
	SetStateDB(dbm.KV)
	GetStateDB() dbm.KV
	SetLocalDB(dbm.KVDB)
	GetLocalDB() dbm.KVDB
	SetCoinsAccount(*account.DB)
	GetCoinsAccount() *account.DB
	//驱动的名字，这个名称是固定的
	GetDriverName() string
	SetEnv(height, blocktime int64)
	//查询调用者, 匿名查询为空地址
	SetCaller(address.Addr)
	GetCaller() address.Addr
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
	GetActionName(tx *types.Transaction) string
	//子类实现
	GetPayloadValue() Action
	GetTypeMap() map[string]int32
}

//DriverBase 执行器的公共部分, 子类通过 SetChild 注册 Exec_/ExecLocal_/Query_ 方法
type DriverBase struct {
	statedb      dbm.KV
	localdb      dbm.KVDB
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	caller       address.Addr
	child        Driver
	childValue   reflect.Value
	funcmap      map[string]reflect.Method
}

//SetChild 设置子类
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
	d.funcmap = ListMethod(e)
}

//SetEnv 设置执行环境
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

//GetHeight 高度, 每执行一笔交易加一
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

//GetBlockTime 执行时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

//SetCaller 设置查询调用者
func (d *DriverBase) SetCaller(caller address.Addr) {
	d.caller = caller
}

//GetCaller 查询调用者
func (d *DriverBase) GetCaller() address.Addr {
	return d.caller
}

//SetStateDB 设置状态数据库, coins 账户使用同一个数据库
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
	if d.coinsaccount != nil {
		d.coinsaccount.SetDB(db)
	}
}

//GetStateDB 状态数据库
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

//SetLocalDB 设置本地数据库
func (d *DriverBase) SetLocalDB(db dbm.KVDB) {
	d.localdb = db
}

//GetLocalDB 本地数据库
func (d *DriverBase) GetLocalDB() dbm.KVDB {
	return d.localdb
}

//SetCoinsAccount 设置 coins 账户
func (d *DriverBase) SetCoinsAccount(acc *account.DB) {
	d.coinsaccount = acc
	if d.statedb != nil {
		acc.SetDB(d.statedb)
	}
}

//GetCoinsAccount coins 账户
func (d *DriverBase) GetCoinsAccount() *account.DB {
	return d.coinsaccount
}

//CheckTx 默认不检查
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	return nil
}

//DecodePayloadValue 解析 action, 返回 action 名字和子 action
func (d *DriverBase) DecodePayloadValue(tx *types.Transaction) (string, reflect.Value, error) {
	action := d.child.GetPayloadValue()
	if err := types.Decode(tx.Payload, action); err != nil {
		return "", reflect.Value{}, errors.Wrap(err, "decode payload")
	}
	name := actionName(d.child.GetTypeMap(), action.GetTy())
	value := action.GetValue()
	if name == "" || value == nil {
		return "", reflect.Value{}, types.ErrActionNotSupport
	}
	return name, reflect.ValueOf(value), nil
}

//GetActionName 交易的 action 名字
func (d *DriverBase) GetActionName(tx *types.Transaction) string {
	name, _, err := d.DecodePayloadValue(tx)
	if err != nil {
		return "unknown"
	}
	return name
}

func actionName(typemap map[string]int32, ty int32) string {
	for name, t := range typemap {
		if t == ty {
			return name
		}
	}
	return ""
}

//Exec 调用子类的 Exec_<ActionName>
func (d *DriverBase) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	name, value, err := d.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	method, ok := d.funcmap["Exec_"+name]
	if !ok {
		return nil, types.ErrActionNotSupport
	}
	valueret := method.Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(index)})
	r1, err := returnValues(valueret)
	if err != nil {
		return nil, err
	}
	receipt, _ := r1.(*types.Receipt)
	return receipt, nil
}

//ExecLocal 调用子类的 ExecLocal_<ActionName>, 子类没有实现时返回空
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	name, value, err := d.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	method, ok := d.funcmap["ExecLocal_"+name]
	if !ok {
		blog.Debug("ExecLocal not implemented", "execer", string(tx.Execer), "action", name)
		return set, nil
	}
	valueret := method.Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(receipt), reflect.ValueOf(index)})
	r1, err := returnValues(valueret)
	if err != nil {
		return nil, err
	}
	if lset, ok := r1.(*types.LocalDBSet); ok && lset != nil {
		set.KV = append(set.KV, lset.KV...)
	}
	return set, nil
}

//Query 调用子类的 Query_<funcName>, 参数类型由方法签名决定
func (d *DriverBase) Query(funcName string, params []byte) (types.Message, error) {
	method, ok := d.funcmap["Query_"+funcName]
	if !ok {
		blog.Debug("Query not support", "func", funcName)
		return nil, errors.Wrapf(types.ErrQueryNotSupport, "%s", funcName)
	}
	argType := method.Type.In(1)
	if argType.Kind() != reflect.Ptr {
		return nil, types.ErrQueryNotSupport
	}
	arg := reflect.New(argType.Elem())
	msg, ok := arg.Interface().(types.Message)
	if !ok {
		return nil, types.ErrQueryNotSupport
	}
	if err := types.Decode(params, msg); err != nil {
		return nil, errors.Wrap(err, "decode query params")
	}
	valueret := method.Func.Call([]reflect.Value{d.childValue, arg})
	r1, err := returnValues(valueret)
	if err != nil {
		return nil, err
	}
	reply, ok := r1.(types.Message)
	if !ok {
		return nil, types.ErrQueryNotSupport
	}
	return reply, nil
}

func returnValues(valueret []reflect.Value) (interface{}, error) {
	if len(valueret) != 2 {
		return nil, ErrMethodReturnType
	}
	if !valueret[1].IsNil() {
		err, ok := valueret[1].Interface().(error)
		if !ok {
			return nil, ErrMethodReturnType
		}
		return nil, err
	}
	k := valueret[0].Kind()
	if (k == reflect.Ptr || k == reflect.Interface) && valueret[0].IsNil() {
		return nil, nil
	}
	return valueret[0].Interface(), nil
}
