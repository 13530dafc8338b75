// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

//ErrMethodReturnType 方法返回值不是 (value, error)
var ErrMethodReturnType = errors.New("ErrMethodReturnType")

var funcPrefixes = []string{"Exec_", "ExecLocal_", "Query_"}

var methodCache sync.Map

// Is this an exported - upper case - name?
func isExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

//ListMethod 列出执行器的 Exec_, ExecLocal_, Query_ 方法, 按类型缓存
func ListMethod(action interface{}) map[string]reflect.Method {
	typ := reflect.TypeOf(action)
	if cached, ok := methodCache.Load(typ); ok {
		return cached.(map[string]reflect.Method)
	}
	methods := make(map[string]reflect.Method)
	for m := 0; m < typ.NumMethod(); m++ {
		method := typ.Method(m)
		// Method must be exported.
		if method.PkgPath != "" || !isExported(method.Name) {
			continue
		}
		for _, prefix := range funcPrefixes {
			if strings.HasPrefix(method.Name, prefix) {
				methods[method.Name] = method
				break
			}
		}
	}
	methodCache.Store(typ, methods)
	return methods
}
