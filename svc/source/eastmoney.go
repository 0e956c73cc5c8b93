package source

import (
	"context"
	"fmt"

	"astock/svc/eastmoney"
	"astock/svc/sina"
	"astock/util"
)

var (
	spotFields  = []string{"f12", "f14", "f2", "f3", "f5", "f6", "f7", "f15", "f16", "f17", "f18"}
	quoteFields = []string{"f57", "f58", "f43", "f170", "f47", "f48", "f171", "f44", "f45", "f46", "f60"}
	boardFields = []string{"f12", "f14", "f2", "f3", "f6", "f104", "f105"}
	gdpColumns  = []string{"REPORT_DATE", "TIME", "DOMESTICL_PRODUCT_BASE", "SUM_SAME"}
	cpiColumns  = []string{"REPORT_DATE", "TIME", "NATIONAL_BASE", "NATIONAL_SAME"}
)

// Eastmoney calls the eastmoney api directly, rows keep the f-codes
type Eastmoney struct {
	base
}

func NewEastmoney(em *eastmoney.Client, sn *sina.Client, futures []string) *Eastmoney {
	return &Eastmoney{base{em: em, sina: sn, futures: futures}}
}

func (*Eastmoney) Name() string { return EASTMONEY }

func (s *Eastmoney) Fetch(ctx context.Context, ds Dataset, q Query) (Rows, error) {
	size := util.Exp(q.Limit > 0, q.Limit, 100)

	switch ds {
	case StockSpot:
		return s.em.CList(ctx, eastmoney.FsStock, spotFields, size)

	case Quote:
		row, err := s.em.Stock(ctx, util.SecID(q.Symbol), quoteFields)
		if err != nil {
			return nil, err
		}
		if _, ok := row["f57"]; !ok {
			row["f57"] = util.StripCode(q.Symbol)
		}
		return Rows{row}, nil

	case IndexSpot:
		return s.em.UList(ctx, eastmoney.MajorIndex, spotFields)

	case ConceptBoard:
		return s.em.CList(ctx, eastmoney.FsConcept, boardFields, size)

	case IndustryBoard:
		return s.em.CList(ctx, eastmoney.FsIndustry, boardFields, size)

	case ETFSpot:
		return s.em.CList(ctx, eastmoney.FsETF, spotFields, size)

	case Kline:
		return s.kline(ctx, q)

	case FundFlow:
		return s.fundFlow(ctx, q)

	case Futures:
		return s.futuresRows(ctx, q)

	case News:
		return s.news(ctx, q)

	case GDP, CPI:
		return s.report(ctx, ds)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownDataset, ds)
}
