// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// 公共错误
var (
	ErrAmountOverflow     = errors.New("ErrAmountOverflow")
	ErrAmountUnderflow    = errors.New("ErrAmountUnderflow")
	ErrAmount             = errors.New("ErrAmount")
	ErrNoBalance          = errors.New("ErrNoBalance")
	ErrSign               = errors.New("ErrSign")
	ErrExecNotFound       = errors.New("ErrExecNotFound")
	ErrActionNotSupport   = errors.New("ErrActionNotSupport")
	ErrQueryNotSupport    = errors.New("ErrQueryNotSupport")
	ErrInvalidParam       = errors.New("ErrInvalidParam")
	ErrInvalidAddress     = errors.New("ErrInvalidAddress")
	ErrDecode             = errors.New("ErrDecode")
	ErrNotFound           = errors.New("ErrNotFound")
	ErrEmpty              = errors.New("ErrEmpty")
	ErrExecPanic          = errors.New("ErrExecPanic")
	ErrNonceUsed          = errors.New("ErrNonceUsed")
	ErrConfigInvalid      = errors.New("ErrConfigInvalid")
	ErrAnonymousCaller    = errors.New("ErrAnonymousCaller")
	ErrSignatureRequired  = errors.New("ErrSignatureRequired")
	ErrSendSameToRecv     = errors.New("ErrSendSameToRecv")
	ErrSymbolNameNotAllow = errors.New("ErrSymbolNameNotAllow")
	ErrExecNameNotAllow   = errors.New("ErrExecNameNotAllow")
)
