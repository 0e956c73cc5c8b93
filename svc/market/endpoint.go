package market

import (
	"astock/model"
	"astock/svc/normalize"
	"astock/svc/source"
)

// Surface decides the record caps
type Surface uint8

const (
	Service Surface = iota // http
	Query                  // dataquery cli
)

type Endpoint struct {
	Name    string
	Usage   string
	Desc    string
	Dataset source.Dataset
	Caps    [2]int // by Surface, 0 = uncapped
	Symbol  string // used when the query has none
	Single  bool   // returns one record, not a list

	// served instead of an upstream failure when placeholders are on
	placeholder func(q source.Query) []map[string]any
	decode      func(recs []map[string]any) (any, error)
}

var endpoints = []*Endpoint{
	{
		Name: "stock", Usage: "stock", Desc: "A股实时行情",
		Dataset: source.StockSpot, Caps: [2]int{100, 100},
		decode: decodeAs[model.Quote],
	},
	{
		Name: "quote", Usage: "quote <symbol>", Desc: "个股行情",
		Dataset: source.Quote, Caps: [2]int{1, 1}, Single: true,
		placeholder: func(q source.Query) []map[string]any {
			return []map[string]any{{"symbol": q.Symbol, "name": "股票", "price": 10.0, "change": 0.0}}
		},
		decode: decodeAs[model.Quote],
	},
	{
		Name: "kline", Usage: "kline <symbol> [period]", Desc: "K线数据",
		Dataset: source.Kline, Symbol: "000001",
		decode: decodeAs[model.KlineBar],
	},
	{
		Name: "fundflow", Usage: "fundflow <symbol>", Desc: "资金流向",
		Dataset: source.FundFlow, Caps: [2]int{10, 10}, Symbol: "000001",
		decode: decodeAs[model.FundFlow],
	},
	{
		Name: "index", Usage: "index", Desc: "指数行情",
		Dataset: source.IndexSpot, Caps: [2]int{10, 20},
		placeholder: func(source.Query) []map[string]any {
			return []map[string]any{{"symbol": "000001", "name": "上证指数", "price": 3388.0, "change": 0.5}}
		},
		decode: decodeAs[model.Quote],
	},
	{
		Name: "futures", Usage: "futures [symbol]", Desc: "期货行情",
		Dataset: source.Futures, Caps: [2]int{20, 20},
		decode: decodeAs[model.Futures],
	},
	{
		Name: "etf", Usage: "etf", Desc: "ETF行情",
		Dataset: source.ETFSpot, Caps: [2]int{30, 30},
		decode: decodeAs[model.Quote],
	},
	{
		Name: "concept", Usage: "concept", Desc: "概念板块",
		Dataset: source.ConceptBoard, Caps: [2]int{20, 30},
		placeholder: func(source.Query) []map[string]any {
			return []map[string]any{{"name": "人工智能", "change": 3.25}, {"name": "芯片概念", "change": 2.18}}
		},
		decode: decodeAs[model.BoardEntry],
	},
	{
		Name: "industry", Usage: "industry", Desc: "行业板块",
		Dataset: source.IndustryBoard, Caps: [2]int{20, 30},
		placeholder: func(source.Query) []map[string]any {
			return []map[string]any{{"name": "电子元件", "change": 1.85}, {"name": "软件服务", "change": 1.62}}
		},
		decode: decodeAs[model.BoardEntry],
	},
	{
		Name: "gdp", Usage: "gdp", Desc: "GDP数据",
		Dataset: source.GDP,
		decode:  decodeAs[model.GDP],
	},
	{
		Name: "cpi", Usage: "cpi", Desc: "CPI数据",
		Dataset: source.CPI,
		decode:  decodeAs[model.CPI],
	},
	{
		Name: "news", Usage: "news [keyword]", Desc: "财经新闻",
		Dataset: source.News, Caps: [2]int{10, 20},
		decode: decodeAs[model.NewsItem],
	},
}

func decodeAs[T any](recs []map[string]any) (any, error) {
	out := make([]T, 0, len(recs))
	if err := normalize.Decode(recs, &out); err != nil {
		return nil, err
	}
	return out, nil
}
