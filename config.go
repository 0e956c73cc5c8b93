package main

import (
	"github.com/spf13/viper"
)

func init() {
	// server
	viper.SetDefault("server.addr", "0.0.0.0:18888")
	viper.SetDefault("server.name", "A股数据服务")
}
