package util

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Addr string
		Name string
	}
	Upstream struct {
		Source      string
		Timeout     time.Duration
		Placeholder bool
		Eastmoney   struct {
			Push2      string
			Push2His   string
			Datacenter string
			Search     string
		}
		Sina struct {
			HQ string
		}
	}
	News struct {
		Keyword string
	}
	Futures struct {
		Symbols []string
	}
	Log struct {
		Level string
	}
}

func init() {
	// upstream
	viper.SetDefault("upstream.source", "eastmoney")
	viper.SetDefault("upstream.timeout", time.Second*10)
	viper.SetDefault("upstream.placeholder", false)
	viper.SetDefault("upstream.eastmoney.push2", "https://push2.eastmoney.com")
	viper.SetDefault("upstream.eastmoney.push2his", "https://push2his.eastmoney.com")
	viper.SetDefault("upstream.eastmoney.datacenter", "https://datacenter-web.eastmoney.com")
	viper.SetDefault("upstream.eastmoney.search", "https://search-api-web.eastmoney.com")
	viper.SetDefault("upstream.sina.hq", "https://hq.sinajs.cn")

	// news & futures
	viper.SetDefault("news.keyword", "300059")
	viper.SetDefault("futures.symbols", []string{
		"RB0", "HC0", "I0", "J0", "JM0", "CU0", "AL0", "ZN0", "AU0", "AG0",
		"SC0", "FU0", "RU0", "M0", "Y0", "P0", "C0", "SR0", "CF0", "TA0", "MA0",
	})

	viper.SetDefault("log.level", "info")
}

// LoadConfig reads the optional config file and ASTOCK_* env overrides
func LoadConfig(file string) (*Config, error) {
	viper.SetEnvPrefix("astock")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if file == "" {
		file = viper.GetString("config")
	}
	if file != "" {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := new(Config)
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
