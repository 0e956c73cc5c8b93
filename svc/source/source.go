// Package source fetches raw market rows from one of two interchangeable
// upstream flavours. Rows are untyped, the normalize package maps them.
package source

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"astock/svc/eastmoney"
	"astock/svc/sina"
	"astock/util"
)

type Dataset string

const (
	StockSpot     Dataset = "stock_spot"
	Quote         Dataset = "quote"
	IndexSpot     Dataset = "index_spot"
	ConceptBoard  Dataset = "concept_board"
	IndustryBoard Dataset = "industry_board"
	ETFSpot       Dataset = "etf_spot"
	Kline         Dataset = "kline"
	FundFlow      Dataset = "fund_flow"
	Futures       Dataset = "futures"
	News          Dataset = "news"
	GDP           Dataset = "gdp"
	CPI           Dataset = "cpi"
)

// source names
const (
	EASTMONEY = "eastmoney"
	AKSHARE   = "akshare"
)

var (
	ErrUnavailable    = util.ErrUnavailable
	ErrUnparseable    = util.ErrUnparseable
	ErrNotFound       = util.ErrNotFound
	ErrUnknownDataset = errors.New("unknown dataset")
)

type Rows = []map[string]any

type Query struct {
	Symbol  string
	Period  string // daily weekly monthly
	Days    int    // kline look back
	Keyword string
	Limit   int
}

type Source interface {
	Name() string
	Fetch(ctx context.Context, ds Dataset, q Query) (Rows, error)
}

// New builds the source named by upstream.source
func New(cfg *util.Config) (Source, error) {
	em := eastmoney.NewClient(eastmoney.Config{
		Push2:      cfg.Upstream.Eastmoney.Push2,
		Push2His:   cfg.Upstream.Eastmoney.Push2His,
		Datacenter: cfg.Upstream.Eastmoney.Datacenter,
		Search:     cfg.Upstream.Eastmoney.Search,
		Timeout:    cfg.Upstream.Timeout,
	})
	sn := sina.NewClient(sina.Config{
		HQ:      cfg.Upstream.Sina.HQ,
		Timeout: cfg.Upstream.Timeout,
	})

	switch strings.ToLower(cfg.Upstream.Source) {
	case EASTMONEY, "":
		return NewEastmoney(em, sn, cfg.Futures.Symbols), nil
	case AKSHARE:
		return NewAkshare(em, sn, cfg.Futures.Symbols), nil
	}
	return nil, fmt.Errorf("unknown source %q", cfg.Upstream.Source)
}

// base holds what both flavours fetch the same way
type base struct {
	em      *eastmoney.Client
	sina    *sina.Client
	futures []string
}

func (b *base) kline(ctx context.Context, q Query) (Rows, error) {
	klt := eastmoney.KltDaily
	switch q.Period {
	case "weekly":
		klt = eastmoney.KltWeekly
	case "monthly":
		klt = eastmoney.KltMonthly
	}
	days := util.Exp(q.Days > 0, q.Days, 30)
	beg := time.Now().AddDate(0, 0, -days).Format("20060102")

	return b.em.Kline(ctx, util.SecID(q.Symbol), klt, 1, beg)
}

func (b *base) fundFlow(ctx context.Context, q Query) (Rows, error) {
	return b.em.FundFlow(ctx, util.SecID(q.Symbol), 10)
}

// futuresRows a named contract that has no quote is not found
func (b *base) futuresRows(ctx context.Context, q Query) (Rows, error) {
	symbols := b.futures
	if q.Symbol != "" {
		symbols = []string{q.Symbol}
	}
	rows, err := b.sina.Futures(ctx, symbols)
	if err != nil {
		return nil, err
	}
	if q.Symbol != "" && len(rows) == 0 {
		return nil, fmt.Errorf("%w: futures %s", ErrNotFound, q.Symbol)
	}
	return rows, nil
}

func (b *base) news(ctx context.Context, q Query) (Rows, error) {
	keyword := util.Exp(q.Keyword != "", q.Keyword, "300059")
	return b.em.News(ctx, keyword, util.Exp(q.Limit > 0, q.Limit, 10))
}

func (b *base) report(ctx context.Context, ds Dataset) (Rows, error) {
	if ds == GDP {
		return b.em.Report(ctx, eastmoney.ReportGDP, gdpColumns, 2000)
	}
	return b.em.Report(ctx, eastmoney.ReportCPI, cpiColumns, 2000)
}
