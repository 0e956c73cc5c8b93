package eastmoney

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"astock/util"
)

// market filters for clist, spaces are sent as '+'
const (
	FsStock    = "m:0 t:6,m:0 t:80,m:1 t:2,m:1 t:23,m:0 t:81 s:2048"
	FsIndex    = "m:1 s:2,m:0 t:5"
	FsConcept  = "m:90 t:3 f:!50"
	FsIndustry = "m:90 t:2 f:!50"
	FsETF      = "b:MK0021,b:MK0022,b:MK0023,b:MK0024"
)

// MajorIndex the basket returned by UList
var MajorIndex = []string{
	"1.000001", "0.399001", "0.399006", "1.000300",
	"1.000016", "1.000905", "0.399101", "0.399102",
}

type diff struct {
	Total int              `json:"total"`
	Diff  []map[string]any `json:"diff"`
}

// CList a page of securities under filter fs, sorted by change desc
func (c *Client) CList(ctx context.Context, fs string, fields []string, size int) ([]map[string]any, error) {
	query := url.Values{}
	query.Set("pn", "1")
	query.Set("pz", strconv.Itoa(size))
	query.Set("po", "1")
	query.Set("np", "1")
	query.Set("ut", listUT)
	query.Set("fltt", "2")
	query.Set("invt", "2")
	query.Set("fid", "f3")
	query.Set("fs", fs)
	query.Set("fields", strings.Join(fields, ","))

	body, err := c.get(ctx, c.cfg.Push2, "/api/qt/clist/get", query)
	if err != nil {
		return nil, err
	}
	return parseDiff(body)
}

// UList a fixed basket of securities
func (c *Client) UList(ctx context.Context, secids []string, fields []string) ([]map[string]any, error) {
	query := url.Values{}
	query.Set("fltt", "2")
	query.Set("invt", "2")
	query.Set("ut", listUT)
	query.Set("secids", strings.Join(secids, ","))
	query.Set("fields", strings.Join(fields, ","))

	body, err := c.get(ctx, c.cfg.Push2, "/api/qt/ulist.np/get", query)
	if err != nil {
		return nil, err
	}
	return parseDiff(body)
}

// Stock a single security, data:null means the secid does not exist
func (c *Client) Stock(ctx context.Context, secid string, fields []string) (map[string]any, error) {
	query := url.Values{}
	query.Set("secid", secid)
	query.Set("fltt", "2")
	query.Set("invt", "2")
	query.Set("ut", listUT)
	query.Set("fields", strings.Join(fields, ","))

	body, err := c.get(ctx, c.cfg.Push2, "/api/qt/stock/get", query)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err = util.UnmarshalJSON(body, &data, "data"); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", util.ErrNotFound, secid)
	}
	return data, nil
}

func parseDiff(body []byte) ([]map[string]any, error) {
	var data *diff
	if err := util.UnmarshalJSON(body, &data, "data"); err != nil {
		return nil, err
	}
	if data == nil || data.Diff == nil {
		return []map[string]any{}, nil
	}
	return data.Diff, nil
}
