package source

import (
	"context"
	"fmt"
	"strconv"

	"astock/svc/eastmoney"
	"astock/svc/sina"
	"astock/util"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// column label <- raw key
type column struct {
	Label string
	From  string
}

var (
	spotLabels = []column{
		{"代码", "f12"}, {"名称", "f14"}, {"最新价", "f2"}, {"涨跌幅", "f3"},
		{"成交量", "f5"}, {"成交额", "f6"}, {"振幅", "f7"},
		{"最高", "f15"}, {"最低", "f16"}, {"今开", "f17"}, {"昨收", "f18"},
	}
	boardLabels = []column{
		{"板块名称", "f14"}, {"板块代码", "f12"}, {"最新价", "f2"}, {"涨跌幅", "f3"},
		{"成交额", "f6"}, {"上涨家数", "f104"}, {"下跌家数", "f105"},
	}
	klineLabels = []column{
		{"日期", "f51"}, {"开盘", "f52"}, {"收盘", "f53"}, {"最高", "f54"}, {"最低", "f55"},
		{"成交量", "f56"}, {"成交额", "f57"}, {"振幅", "f58"}, {"涨跌幅", "f59"},
		{"涨跌额", "f60"}, {"换手率", "f61"},
	}
	flowLabels = []column{
		{"日期", "f51"}, {"主力净流入-净额", "f52"}, {"小单净流入-净额", "f53"},
		{"中单净流入-净额", "f54"}, {"大单净流入-净额", "f55"}, {"超大单净流入-净额", "f56"},
	}
	futuresLabels = []column{
		{"代码", "symbol"}, {"名称", "name"}, {"current_price", "price"},
		{"last_settle_price", "prev_settle"}, {"hold", "hold"}, {"volume", "volume"},
		{"涨跌幅", "pct"},
	}
	newsLabels = []column{
		{"新闻标题", "title"}, {"新闻内容", "content"}, {"发布时间", "date"},
		{"文章来源", "mediaName"}, {"新闻链接", "url"},
	}
	gdpLabels = []column{
		{"季度", "TIME"}, {"国内生产总值-绝对值", "DOMESTICL_PRODUCT_BASE"},
		{"国内生产总值-同比增长", "SUM_SAME"},
	}
	cpiLabels = []column{
		{"月份", "TIME"}, {"全国-当月", "NATIONAL_BASE"}, {"全国-同比增长", "NATIONAL_SAME"},
	}
)

// whole-market snapshot sizes, the library always pulls everything
const (
	spotSnapshot  = 6000
	boardSnapshot = 1000
	fundSnapshot  = 2000
)

// Akshare reshapes upstream payloads into labelled frames the way the
// python akshare library does, quote lookups filter the spot snapshot.
type Akshare struct {
	base
}

func NewAkshare(em *eastmoney.Client, sn *sina.Client, futures []string) *Akshare {
	return &Akshare{base{em: em, sina: sn, futures: futures}}
}

func (*Akshare) Name() string { return AKSHARE }

func (s *Akshare) Fetch(ctx context.Context, ds Dataset, q Query) (Rows, error) {
	var (
		rows   Rows
		labels []column
		err    error
	)

	switch ds {
	case StockSpot:
		rows, err = s.em.CList(ctx, eastmoney.FsStock, spotFields, spotSnapshot)
		labels = spotLabels

	case Quote:
		return s.quote(ctx, q)

	case IndexSpot:
		rows, err = s.em.CList(ctx, eastmoney.FsIndex, spotFields, boardSnapshot)
		labels = spotLabels

	case ConceptBoard:
		rows, err = s.em.CList(ctx, eastmoney.FsConcept, boardFields, boardSnapshot)
		labels = boardLabels

	case IndustryBoard:
		rows, err = s.em.CList(ctx, eastmoney.FsIndustry, boardFields, boardSnapshot)
		labels = boardLabels

	case ETFSpot:
		rows, err = s.em.CList(ctx, eastmoney.FsETF, spotFields, fundSnapshot)
		labels = spotLabels

	case Kline:
		rows, err = s.kline(ctx, q)
		labels = klineLabels

	case FundFlow:
		rows, err = s.fundFlow(ctx, q)
		labels = flowLabels

	case Futures:
		rows, err = s.futuresRows(ctx, q)
		labels = futuresLabels

	case News:
		rows, err = s.news(ctx, q)
		labels = newsLabels

	case GDP:
		rows, err = s.report(ctx, ds)
		labels = gdpLabels

	case CPI:
		rows, err = s.report(ctx, ds)
		labels = cpiLabels

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDataset, ds)
	}
	if err != nil {
		return nil, err
	}

	df, err := frame(rows, labels)
	if err != nil {
		return nil, err
	}
	return df.Maps(), nil
}

// quote filters the full spot snapshot by 代码
func (s *Akshare) quote(ctx context.Context, q Query) (Rows, error) {
	code := util.StripCode(q.Symbol)

	rows, err := s.em.CList(ctx, eastmoney.FsStock, spotFields, spotSnapshot)
	if err != nil {
		return nil, err
	}
	df, err := frame(rows, spotLabels)
	if err != nil {
		return nil, err
	}

	df = df.Filter(dataframe.F{Colname: "代码", Comparator: series.Eq, Comparando: code})
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, df.Err)
	}
	if df.Nrow() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, code)
	}
	return df.Maps()[:1], nil
}

// frame loads rows into a string frame with the given labels, nil cells become NaN
func frame(rows Rows, labels []column) (dataframe.DataFrame, error) {
	header := make([]string, len(labels))
	for i, c := range labels {
		header[i] = c.Label
	}
	if len(rows) == 0 {
		cols := make([]series.Series, len(labels))
		for i, label := range header {
			cols[i] = series.New([]string{}, series.String, label)
		}
		return dataframe.New(cols...), nil
	}

	records := make([][]string, 0, len(rows)+1)
	records = append(records, header)
	for _, row := range rows {
		record := make([]string, len(labels))
		for i, c := range labels {
			record[i] = cell(row[c.From])
		}
		records = append(records, record)
	}

	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return df, fmt.Errorf("%w: %v", ErrUnparseable, df.Err)
	}
	return df, nil
}

func cell(v any) string {
	switch val := v.(type) {
	case nil:
		return "NaN"
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	}
	return fmt.Sprint(v)
}
