package eastmoney

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"astock/util"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// kline period
const (
	KltDaily   = 101
	KltWeekly  = 102
	KltMonthly = 103
)

var (
	klineFields = fieldRange(51, 61)
	flowFields  = fieldRange(51, 65)
)

type klines struct {
	Code   string   `json:"code"`
	Name   string   `json:"name"`
	Klines []string `json:"klines"`
}

// Kline history bars since beg (yyyymmdd), rows keyed f51..f61
func (c *Client) Kline(ctx context.Context, secid string, klt, fqt int, beg string) ([]map[string]any, error) {
	query := url.Values{}
	query.Set("secid", secid)
	query.Set("ut", klineUT)
	query.Set("fields1", "f1,f2,f3,f4,f5,f6")
	query.Set("fields2", strings.Join(klineFields, ","))
	query.Set("klt", strconv.Itoa(klt))
	query.Set("fqt", strconv.Itoa(fqt))
	query.Set("beg", beg)
	query.Set("end", "20500101")

	body, err := c.get(ctx, c.cfg.Push2His, "/api/qt/stock/kline/get", query)
	if err != nil {
		return nil, err
	}
	return parseLines(body, secid, klineFields)
}

// FundFlow daily net inflow of the last lmt days, rows keyed f51..f65
func (c *Client) FundFlow(ctx context.Context, secid string, lmt int) ([]map[string]any, error) {
	query := url.Values{}
	query.Set("secid", secid)
	query.Set("ut", flowUT)
	query.Set("lmt", strconv.Itoa(lmt))
	query.Set("klt", "101")
	query.Set("fields1", "f1,f2,f3,f7")
	query.Set("fields2", strings.Join(flowFields, ","))

	body, err := c.get(ctx, c.cfg.Push2His, "/api/qt/stock/fflow/daykline/get", query)
	if err != nil {
		return nil, err
	}
	return parseLines(body, secid, flowFields)
}

// parseLines loads comma-joined lines into a frame with header, short lines are padded
func parseLines(body []byte, secid string, header []string) ([]map[string]any, error) {
	var data *klines
	if err := util.UnmarshalJSON(body, &data, "data"); err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %s", util.ErrNotFound, secid)
	}
	if len(data.Klines) == 0 {
		return []map[string]any{}, nil
	}

	records := make([][]string, 0, len(data.Klines)+1)
	records = append(records, header)
	for _, line := range data.Klines {
		cols := strings.Split(line, ",")
		row := make([]string, len(header))
		copy(row, cols)
		records = append(records, row)
	}

	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrUnparseable, df.Err)
	}
	return df.Maps(), nil
}

func fieldRange(from, to int) []string {
	fields := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		fields = append(fields, "f"+strconv.Itoa(i))
	}
	return fields
}
