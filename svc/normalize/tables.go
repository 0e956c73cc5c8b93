package normalize

import (
	"astock/svc/source"
)

func num(to, from string) Field  { return Field{To: to, From: from, Kind: Number, Default: Null} }
func zero(to, from string) Field { return Field{To: to, From: from, Kind: Number, Default: Zero} }
func str(to, from string) Field  { return Field{To: to, From: from, Kind: String} }
func count(to, from string) Field {
	return Field{To: to, From: from, Kind: Int, Default: Null}
}

var eastmoneySpot = Table{
	str("symbol", "f12"), str("name", "f14"), num("price", "f2"), zero("change", "f3"),
	num("volume", "f5"), num("amount", "f6"), num("amplitude", "f7"),
	num("high", "f15"), num("low", "f16"), num("open", "f17"), num("prev_close", "f18"),
}

var eastmoneyTables = map[source.Dataset]Table{
	source.StockSpot: eastmoneySpot,
	source.IndexSpot: eastmoneySpot,
	source.ETFSpot:   eastmoneySpot,
	source.Quote: {
		str("symbol", "f57"), str("name", "f58"), num("price", "f43"), zero("change", "f170"),
		num("volume", "f47"), num("amount", "f48"), num("amplitude", "f171"),
		num("high", "f44"), num("low", "f45"), num("open", "f46"), num("prev_close", "f60"),
	},
	source.ConceptBoard:  eastmoneyBoard,
	source.IndustryBoard: eastmoneyBoard,
	source.Kline: {
		str("date", "f51"), num("open", "f52"), num("close", "f53"),
		num("high", "f54"), num("low", "f55"), zero("volume", "f56"), zero("amount", "f57"),
	},
	source.FundFlow: {
		str("date", "f51"), zero("main_net", "f52"), zero("small_net", "f53"),
		zero("medium_net", "f54"), zero("large_net", "f55"), zero("super_large_net", "f56"),
	},
	source.Futures: {
		str("symbol", "symbol"), str("name", "name"), num("latest_price", "price"),
		zero("change", "pct"), num("volume", "volume"), num("open_interest", "hold"),
	},
	source.News: {
		str("title", "title"), str("datetime", "date"), str("source", "mediaName"), str("url", "url"),
	},
	source.GDP: {
		str("quarter", "TIME"), num("gdp", "DOMESTICL_PRODUCT_BASE"), num("gdp_yoy", "SUM_SAME"),
	},
	source.CPI: {
		str("month", "TIME"), num("cpi", "NATIONAL_BASE"), num("cpi_yoy", "NATIONAL_SAME"),
	},
}

var eastmoneyBoard = Table{
	str("name", "f14"), str("code", "f12"), zero("change", "f3"),
	num("amount", "f6"), count("up_count", "f104"), count("down_count", "f105"),
}

var akshareSpot = Table{
	str("symbol", "代码"), str("name", "名称"), num("price", "最新价"), zero("change", "涨跌幅"),
	num("volume", "成交量"), num("amount", "成交额"), num("amplitude", "振幅"),
	num("high", "最高"), num("low", "最低"), num("open", "今开"), num("prev_close", "昨收"),
}

var akshareBoard = Table{
	str("name", "板块名称"), str("code", "板块代码"), zero("change", "涨跌幅"),
	num("amount", "成交额"), count("up_count", "上涨家数"), count("down_count", "下跌家数"),
}

var akshareTables = map[source.Dataset]Table{
	source.StockSpot:     akshareSpot,
	source.IndexSpot:     akshareSpot,
	source.ETFSpot:       akshareSpot,
	source.Quote:         akshareSpot,
	source.ConceptBoard:  akshareBoard,
	source.IndustryBoard: akshareBoard,
	source.Kline: {
		str("date", "日期"), num("open", "开盘"), num("close", "收盘"),
		num("high", "最高"), num("low", "最低"), zero("volume", "成交量"), zero("amount", "成交额"),
	},
	source.FundFlow: {
		str("date", "日期"), zero("main_net", "主力净流入-净额"), zero("small_net", "小单净流入-净额"),
		zero("medium_net", "中单净流入-净额"), zero("large_net", "大单净流入-净额"),
		zero("super_large_net", "超大单净流入-净额"),
	},
	source.Futures: {
		str("symbol", "代码"), str("name", "名称"), num("latest_price", "current_price"),
		zero("change", "涨跌幅"), num("volume", "volume"), num("open_interest", "hold"),
	},
	source.News: {
		str("title", "新闻标题"), str("datetime", "发布时间"), str("source", "文章来源"), str("url", "新闻链接"),
	},
	source.GDP: {
		str("quarter", "季度"), num("gdp", "国内生产总值-绝对值"), num("gdp_yoy", "国内生产总值-同比增长"),
	},
	source.CPI: {
		str("month", "月份"), num("cpi", "全国-当月"), num("cpi_yoy", "全国-同比增长"),
	},
}

// Lookup the table mapping a source's rows of dataset ds
func Lookup(src string, ds source.Dataset) (Table, bool) {
	var tables map[source.Dataset]Table
	switch src {
	case source.EASTMONEY:
		tables = eastmoneyTables
	case source.AKSHARE:
		tables = akshareTables
	}
	t, ok := tables[ds]
	return t, ok
}
