// Package sina reads domestic futures quotes from the sina hq feed.
package sina

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"astock/util"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

var hqLine = regexp.MustCompile(`var hq_str_nf_(\w+)="([^"]*)"`)

// leading columns of an nf_ quote, the feed has more
var header = []string{
	"name", "time", "open", "high", "low", "prev_close", "bid", "ask",
	"price", "settle", "prev_settle", "bid_vol", "ask_vol", "hold", "volume",
}

type futuresLine struct {
	Name       string `csv:"name"`
	Time       string `csv:"time"`
	Open       string `csv:"open"`
	High       string `csv:"high"`
	Low        string `csv:"low"`
	PrevClose  string `csv:"prev_close"`
	Bid        string `csv:"bid"`
	Ask        string `csv:"ask"`
	Price      string `csv:"price"`
	Settle     string `csv:"settle"`
	PrevSettle string `csv:"prev_settle"` // 昨结算
	BidVol     string `csv:"bid_vol"`
	AskVol     string `csv:"ask_vol"`
	Hold       string `csv:"hold"` // 持仓量
	Volume     string `csv:"volume"`
}

type Config struct {
	HQ      string
	Timeout time.Duration
}

type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config, client ...*http.Client) *Client {
	c := &Client{cfg: cfg}
	if len(client) > 0 && client[0] != nil {
		c.http = client[0]
	} else {
		c.http = &http.Client{Timeout: cfg.Timeout}
	}
	return c
}

// Futures continuous contracts such as RB0, symbols without data are skipped
func (c *Client) Futures(ctx context.Context, symbols []string) ([]map[string]any, error) {
	list := make([]string, len(symbols))
	wanted := make(map[string]bool, len(symbols))
	for i, s := range symbols {
		s = strings.ToUpper(s)
		list[i] = "nf_" + s
		wanted[s] = true
	}

	u := strings.TrimRight(c.cfg.HQ, "/") + "/list=" + strings.Join(list, ",")
	body, err := util.GetAndRead(ctx, c.http, u, map[string]string{
		"Referer": "https://finance.sina.com.cn",
	})
	if err != nil {
		return nil, err
	}

	body, err = io.ReadAll(transform.NewReader(bytes.NewReader(body), simplifiedchinese.GBK.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrUnparseable, err)
	}

	codes := make([]string, 0, len(symbols))
	lines := make([]string, 0, len(symbols))
	for _, m := range hqLine.FindAllStringSubmatch(string(body), -1) {
		// the feed may carry contracts nobody asked for
		if m[2] == "" || !wanted[strings.ToUpper(m[1])] {
			continue
		}
		cols := strings.Split(m[2], ",")
		row := make([]string, len(header))
		copy(row, cols)
		codes = append(codes, m[1])
		lines = append(lines, strings.Join(row, ","))
	}

	rows := make([]map[string]any, 0, len(lines))
	if len(lines) == 0 {
		return rows, nil
	}

	var quotes []*futuresLine
	src := strings.Join(header, ",") + "\n" + strings.Join(lines, "\n")
	if err = gocsv.UnmarshalString(src, &quotes); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrUnparseable, err)
	}

	for i, q := range quotes {
		rows = append(rows, map[string]any{
			"symbol":      codes[i],
			"name":        q.Name,
			"price":       q.Price,
			"prev_settle": q.PrevSettle,
			"volume":      q.Volume,
			"hold":        q.Hold,
			"pct":         pctChange(q.Price, q.PrevSettle),
		})
	}
	return rows, nil
}

// pctChange nil when either side is missing
func pctChange(price, base string) any {
	p, err1 := strconv.ParseFloat(price, 64)
	b, err2 := strconv.ParseFloat(base, 64)
	if err1 != nil || err2 != nil || b == 0 || p == 0 {
		return nil
	}
	return math.Round((p-b)/b*10000) / 100
}
