// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types guess 合约的 action, 状态记录, 日志和查询结构
package types

//GetValue 和 Ty 对应的子 action, 没有时返回 nil
func (m *GuessAction) GetValue() interface{} {
	switch {
	case m.Ty == GuessActionInit && m.Init != nil:
		return m.Init
	case m.Ty == GuessActionOpen && m.Open != nil:
		return m.Open
	case m.Ty == GuessActionPlay && m.Play != nil:
		return m.Play
	case m.Ty == GuessActionSettle && m.Settle != nil:
		return m.Settle
	case m.Ty == GuessActionReset && m.Reset_ != nil:
		return m.Reset_
	}
	return nil
}
