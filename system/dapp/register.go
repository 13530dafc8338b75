// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"sync"

	"github.com/33cn/guess/common/address"
	log "github.com/33cn/guess/common/log"
	"github.com/33cn/guess/types"
	"github.com/pkg/errors"
)

var elog = log.New("module", "execs")

// DriverCreate defines a drivercreate function
type DriverCreate func() Driver

var (
	registedExecDriver = make(map[string]DriverCreate)
	execAddressNameMap = make(map[string]string)
	mu                 sync.RWMutex
)

// Register register driver by name
func Register(name string, create DriverCreate) {
	mu.Lock()
	defer mu.Unlock()
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	if name == "" {
		panic("Execute: Register empty name")
	}
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	registedExecDriver[name] = create
	execAddressNameMap[address.ExecAddress(name)] = name
}

// LoadDriver load driver
func LoadDriver(name string) (Driver, error) {
	mu.RLock()
	c, ok := registedExecDriver[name]
	mu.RUnlock()
	if !ok {
		elog.Debug("LoadDriver", "driver", name)
		return nil, errors.Wrapf(types.ErrExecNotFound, "%s", name)
	}
	return c(), nil
}

// IsDriverAddress whether or not execdrivers by address
func IsDriverAddress(addr string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := execAddressNameMap[addr]
	return ok
}

// ExecAddress return exec address
func ExecAddress(name string) string {
	return address.ExecAddress(name)
}
