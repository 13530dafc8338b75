// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package address base58check 地址, 执行器地址以及校验过的 Addr 类型
package address

import (
	"bytes"
	"encoding/hex"
	"errors"

	"github.com/33cn/guess/common"
	"github.com/decred/base58"
	lru "github.com/hashicorp/golang-lru"
)

var addrSeed = []byte("address seed bytes for public key")
var addressCache *lru.Cache
var checkAddressCache *lru.Cache

//MaxExecNameLength 执行器名最大长度
const MaxExecNameLength = 100

// 地址错误
var (
	ErrDecodeBase58     = errors.New("ErrDecodeBase58")
	ErrAddressTooShort  = errors.New("ErrAddressTooShort")
	ErrAddressChecksum  = errors.New("ErrAddressChecksum")
	ErrAddressVersion   = errors.New("ErrAddressVersion")
	ErrExecNameTooLong  = errors.New("ErrExecNameTooLong")
	errCheckAddressNone = errors.New("none")
)

func init() {
	addressCache, _ = lru.New(10240)
	checkAddressCache, _ = lru.New(10240)
}

//ExecPubkey 计算执行器的公钥
func ExecPubkey(name string) []byte {
	if len(name) > MaxExecNameLength {
		panic(ErrExecNameTooLong)
	}
	var bname [200]byte
	buf := append(bname[:0], addrSeed...)
	buf = append(buf, []byte(name)...)
	hash := common.Sha2Sum(buf)
	return hash[:]
}

//ExecAddress 计算量有点大，做一次cache
func ExecAddress(name string) string {
	if value, ok := addressCache.Get(name); ok {
		return value.(string)
	}
	addrstr := PubKeyToAddress(ExecPubkey(name)).String()
	addressCache.Add(name, addrstr)
	return addrstr
}

//PubKeyToAddress 公钥转为地址
func PubKeyToAddress(in []byte) *Address {
	a := new(Address)
	a.Pubkey = common.CopyBytes(in)
	a.Version = 0
	a.Hash160 = common.Rimp160AfterSha256(in)
	return a
}

//CheckAddress 检查地址, 结果缓存
func CheckAddress(addr string) error {
	if value, ok := checkAddressCache.Get(addr); ok {
		if value.(error) == errCheckAddressNone {
			return nil
		}
		return value.(error)
	}
	_, err := decode(addr)
	if err == nil {
		checkAddressCache.Add(addr, errCheckAddressNone)
	} else {
		checkAddressCache.Add(addr, err)
	}
	return err
}

//NewAddrFromString new 地址
func NewAddrFromString(hs string) (*Address, error) {
	dec, err := decode(hs)
	if err != nil {
		return nil, err
	}
	a := new(Address)
	a.Version = dec[0]
	copy(a.Hash160[:], dec[1:21])
	a.Checksum = common.CopyBytes(dec[21:25])
	a.Enc58str = hs
	return a, nil
}

func decode(addr string) ([]byte, error) {
	dec := base58.Decode(addr)
	if len(dec) == 0 {
		return nil, ErrDecodeBase58
	}
	if len(dec) != 25 {
		return nil, ErrAddressTooShort
	}
	if dec[0] != 0 {
		return nil, ErrAddressVersion
	}
	sh := common.Sha2Sum(dec[0:21])
	if !bytes.Equal(sh[:4], dec[21:25]) {
		return nil, ErrAddressChecksum
	}
	return dec, nil
}

//Address 地址
type Address struct {
	Version  byte
	Hash160  [20]byte
	Checksum []byte
	Pubkey   []byte
	Enc58str string
}

func (a *Address) String() string {
	if a.Enc58str == "" {
		var ad [25]byte
		ad[0] = a.Version
		copy(ad[1:21], a.Hash160[:])
		if a.Checksum == nil {
			sh := common.Sha2Sum(ad[0:21])
			a.Checksum = make([]byte, 4)
			copy(a.Checksum, sh[:4])
		}
		copy(ad[21:25], a.Checksum[:])
		a.Enc58str = base58.Encode(ad[:])
	}
	return a.Enc58str
}

//HashHex hash160 的 hex
func (a *Address) HashHex() string {
	return hex.EncodeToString(a.Hash160[:])
}
