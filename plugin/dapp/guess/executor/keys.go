// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"fmt"
)

// 状态数据库只有一条记录
func roundKey() []byte {
	return []byte("mavl-" + driverName + "-round")
}

func historyPrefix() []byte {
	return []byte("LODB-" + driverName + "-round-")
}

// 按轮次排序
func historyKey(round uint64) []byte {
	return []byte(fmt.Sprintf("LODB-%s-round-%020d", driverName, round))
}
