// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/json"
	"os"

	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

//Config 配置
type Config struct {
	Title string `toml:"Title"`
	Log   *Log   `toml:"log"`
	Store *Store `toml:"store"`
	Exec  *Exec  `toml:"exec"`
}

//Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	// 日志文件名，可带目录，所有生成的日志文件都放到此目录下
	LogFile string `toml:"logFile"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize"`
	MaxBackups  uint32 `toml:"maxBackups"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge         uint32 `toml:"maxAge"`
	LocalTime      bool   `toml:"localTime"`
	Compress       bool   `toml:"compress"`
	CallerFile     bool   `toml:"callerFile"`
	CallerFunction bool   `toml:"callerFunction"`
}

//Store 存储配置
type Store struct {
	Name    string `toml:"name"`
	Driver  string `toml:"driver"`
	DbPath  string `toml:"dbPath"`
	DbCache int32  `toml:"dbCache"`
}

//Exec 执行器配置
type Exec struct {
	CoinSymbol string `toml:"coinSymbol"`
}

//ConfigSubModule 子模块配置, 每个子模块是一段 json
type ConfigSubModule struct {
	Store map[string][]byte
	Exec  map[string][]byte
}

// subModule 子模块结构体
type subModule struct {
	Store map[string]interface{}
	Exec  map[string]interface{}
}

//DefaultConfig 没有配置文件时使用
const DefaultConfig = `
Title="local"

[log]
loglevel = "info"
logConsoleLevel = "error"
logFile = "logs/guess.log"
maxFileSize = 300
maxBackups = 100
maxAge = 28
localTime = true
compress = true

[store]
name = "guess"
driver = "goleveldb"
dbPath = "datadir"
dbCache = 64

[exec]
coinSymbol = "bty"

[exec.sub.guess]
settleByParticipant = true
`

// InitCfg 读取配置文件
func InitCfg(path string) (*Config, *ConfigSubModule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read config %s", path)
	}
	return InitCfgString(string(data))
}

// InitCfgString 解析配置, 并补充默认值
func InitCfgString(cfgstring string) (*Config, *ConfigSubModule, error) {
	var cfg Config
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, nil, errors.Wrap(err, "decode config")
	}
	fillDefault(&cfg)
	if cfg.Store.Driver == "" {
		return nil, nil, errors.Wrap(ErrConfigInvalid, "store.driver")
	}
	var sub subModule
	if _, err := tml.Decode(cfgstring, &sub); err != nil {
		return nil, nil, errors.Wrap(err, "decode sub module")
	}
	return &cfg, &ConfigSubModule{Store: parseItem(sub.Store), Exec: parseItem(sub.Exec)}, nil
}

func fillDefault(cfg *Config) {
	if cfg.Log == nil {
		cfg.Log = &Log{}
	}
	if cfg.Store == nil {
		cfg.Store = &Store{Name: "guess", Driver: "goleveldb", DbPath: "datadir"}
	}
	if cfg.Store.Name == "" {
		cfg.Store.Name = "guess"
	}
	if cfg.Exec == nil {
		cfg.Exec = &Exec{}
	}
	if cfg.Exec.CoinSymbol == "" {
		cfg.Exec.CoinSymbol = DefaultCoinSymbol
	}
}

func parseItem(data map[string]interface{}) map[string][]byte {
	subconfig := make(map[string][]byte)
	if len(data) == 0 {
		return subconfig
	}
	subcfg, ok := data["sub"].(map[string]interface{})
	if !ok {
		return subconfig
	}
	for k := range subcfg {
		subconfig[k], _ = json.Marshal(subcfg[k])
	}
	return subconfig
}

//MustDecodeSubConfig 解析子模块 json, 空配置保持 cfg 的默认值
func MustDecodeSubConfig(sub []byte, cfg interface{}) {
	if len(sub) == 0 {
		return
	}
	if err := json.Unmarshal(sub, cfg); err != nil {
		panic(err)
	}
}
