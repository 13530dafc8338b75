// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"

	"github.com/33cn/guess/common"
	"github.com/33cn/guess/common/address"
	"github.com/33cn/guess/common/crypto"
)

//Hash 交易的hash不包含签名，用户通过修改签名无法重新发送交易
func (tx *Transaction) Hash() []byte {
	copytx := *tx
	copytx.Signature = nil
	return common.Sha256(Encode(&copytx))
}

//Sign 交易签名
func (tx *Transaction) Sign(ty int32, priv crypto.PrivKey) {
	tx.Signature = nil
	tx.Signature = sign(Encode(tx), ty, priv)
}

//CheckSign 检查签名
func (tx *Transaction) CheckSign() bool {
	if tx.Signature == nil {
		return false
	}
	copytx := *tx
	copytx.Signature = nil
	return CheckSign(Encode(&copytx), tx.Signature)
}

//From 交易from地址, 由签名公钥推导
func (tx *Transaction) From() address.Addr {
	if tx.Signature == nil {
		return address.Addr{}
	}
	return address.PubKeyToAddr(tx.Signature.Pubkey)
}

//JSON 便于日志和命令行输出
func (tx *Transaction) JSON() string {
	type jsonTx struct {
		Execer  string `json:"execer"`
		Payload string `json:"payload"`
		Nonce   int64  `json:"nonce"`
		From    string `json:"from"`
		Hash    string `json:"hash"`
	}
	data, _ := json.Marshal(&jsonTx{
		Execer:  string(tx.Execer),
		Payload: common.ToHex(tx.Payload),
		Nonce:   tx.Nonce,
		From:    tx.From().String(),
		Hash:    common.ToHex(tx.Hash()),
	})
	return string(data)
}

//Sign 查询签名
func (q *Query) Sign(ty int32, priv crypto.PrivKey) {
	q.Signature = nil
	q.Signature = sign(Encode(q), ty, priv)
}

//Caller 校验签名后返回调用者; 未签名返回空地址, 签名错误返回 ErrSign
func (q *Query) Caller() (address.Addr, error) {
	if q.Signature == nil {
		return address.Addr{}, nil
	}
	copyq := *q
	copyq.Signature = nil
	if !CheckSign(Encode(&copyq), q.Signature) {
		return address.Addr{}, ErrSign
	}
	return address.PubKeyToAddr(q.Signature.Pubkey), nil
}

func sign(data []byte, ty int32, priv crypto.PrivKey) *Signature {
	return &Signature{
		Ty:        ty,
		Pubkey:    priv.PubKey().Bytes(),
		Signature: priv.Sign(data).Bytes(),
	}
}

//CheckSign 按签名类型加载驱动并验证
func CheckSign(data []byte, sign *Signature) bool {
	c, err := crypto.New(crypto.GetName(sign.Ty))
	if err != nil {
		return false
	}
	pub, err := c.PubKeyFromBytes(sign.Pubkey)
	if err != nil {
		return false
	}
	signbytes, err := c.SignatureFromBytes(sign.Signature)
	if err != nil {
		return false
	}
	return pub.VerifyBytes(data, signbytes)
}
