package model

import (
	"strings"
	"unicode"

	"astock/util"

	"github.com/mozillazg/go-pinyin"
)

var PinyinArg = pinyin.NewArgs()

func init() {
	PinyinArg.Fallback = func(r rune, a pinyin.Args) []string {
		return []string{string(r)}
	}
}

// Quote is a point-in-time snapshot of a stock, index or etf
type Quote struct {
	Symbol string   `json:"symbol" mapstructure:"symbol"`
	Name   string   `json:"name" mapstructure:"name"`
	Price  *float64 `json:"price" mapstructure:"price"`   // 最新价
	Change float64  `json:"change" mapstructure:"change"` // 涨跌幅

	Volume    *float64 `json:"volume,omitempty" mapstructure:"volume"`       // 成交量
	Amount    *float64 `json:"amount,omitempty" mapstructure:"amount"`       // 成交额
	Amplitude *float64 `json:"amplitude,omitempty" mapstructure:"amplitude"` // 振幅
	High      *float64 `json:"high,omitempty" mapstructure:"high"`
	Low       *float64 `json:"low,omitempty" mapstructure:"low"`
	Open      *float64 `json:"open,omitempty" mapstructure:"open"`
	PrevClose *float64 `json:"prev_close,omitempty" mapstructure:"prev_close"` // 昨收

	Pinyin     string `json:"-" mapstructure:"-"` // 拼音
	LazyPinyin string `json:"-" mapstructure:"-"` // 简单拼音
}

// BoardEntry is a concept or industry board
type BoardEntry struct {
	Name      string   `json:"name" mapstructure:"name"`
	Code      string   `json:"code,omitempty" mapstructure:"code"`
	Change    float64  `json:"change" mapstructure:"change"`
	Amount    *float64 `json:"amount,omitempty" mapstructure:"amount"`
	UpCount   *int     `json:"up_count,omitempty" mapstructure:"up_count"`
	DownCount *int     `json:"down_count,omitempty" mapstructure:"down_count"`
}

// KlineBar is one trading session
type KlineBar struct {
	Date   string   `json:"date" mapstructure:"date"`
	Open   *float64 `json:"open" mapstructure:"open"`
	High   *float64 `json:"high" mapstructure:"high"`
	Low    *float64 `json:"low" mapstructure:"low"`
	Close  *float64 `json:"close" mapstructure:"close"`
	Volume float64  `json:"volume" mapstructure:"volume"`
	Amount float64  `json:"amount" mapstructure:"amount"`
}

type NewsItem struct {
	Title    string `json:"title" mapstructure:"title"`
	Datetime string `json:"datetime" mapstructure:"datetime"`
	Source   string `json:"source,omitempty" mapstructure:"source"`
	Url      string `json:"url,omitempty" mapstructure:"url"`
}

// FundFlow is one day of net inflows, in yuan
type FundFlow struct {
	Date          string  `json:"date" mapstructure:"date"`
	MainNet       float64 `json:"main_net" mapstructure:"main_net"`               // 主力净流入
	SuperLargeNet float64 `json:"super_large_net" mapstructure:"super_large_net"` // 超大单
	LargeNet      float64 `json:"large_net" mapstructure:"large_net"`             // 大单
	MediumNet     float64 `json:"medium_net" mapstructure:"medium_net"`           // 中单
	SmallNet      float64 `json:"small_net" mapstructure:"small_net"`             // 小单
}

type Futures struct {
	Symbol       string   `json:"symbol" mapstructure:"symbol"`
	Name         string   `json:"name" mapstructure:"name"`
	LatestPrice  *float64 `json:"latest_price" mapstructure:"latest_price"`
	Change       float64  `json:"change" mapstructure:"change"`
	Volume       *float64 `json:"volume,omitempty" mapstructure:"volume"`
	OpenInterest *float64 `json:"open_interest,omitempty" mapstructure:"open_interest"` // 持仓量
}

type GDP struct {
	Quarter string   `json:"quarter" mapstructure:"quarter"`
	GDP     *float64 `json:"gdp" mapstructure:"gdp"`         // 亿元
	GDPYoy  *float64 `json:"gdp_yoy" mapstructure:"gdp_yoy"` // 同比增长
}

type CPI struct {
	Month  string   `json:"month" mapstructure:"month"`
	CPI    *float64 `json:"cpi" mapstructure:"cpi"`
	CPIYoy *float64 `json:"cpi_yoy" mapstructure:"cpi_yoy"`
}

// AddPinyin fills the pinyin keys used by search
func (s *Quote) AddPinyin() {
	if s.Pinyin != "" || !util.HasChinese(s.Name) {
		return
	}
	for _, c := range pinyin.LazyPinyin(s.Name, PinyinArg) {
		// drop marks such as * in *ST
		if c == "" || !unicode.IsLetter([]rune(c)[0]) && !unicode.IsDigit([]rune(c)[0]) {
			continue
		}
		s.Pinyin += c
		s.LazyPinyin += string([]rune(c)[0])
	}
	s.Pinyin = strings.ToLower(s.Pinyin)
	s.LazyPinyin = strings.ToLower(s.LazyPinyin)
}
