package eastmoney

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"astock/util"
)

// data center reports
const (
	ReportGDP = "RPT_ECONOMY_GDP"
	ReportCPI = "RPT_ECONOMY_CPI"
)

// Report newest first; result:null (unknown report) yields no rows
func (c *Client) Report(ctx context.Context, name string, columns []string, size int) ([]map[string]any, error) {
	query := url.Values{}
	query.Set("reportName", name)
	query.Set("columns", strings.Join(columns, ","))
	query.Set("pageNumber", "1")
	query.Set("pageSize", strconv.Itoa(size))
	query.Set("sortColumns", "REPORT_DATE")
	query.Set("sortTypes", "-1")
	query.Set("source", "WEB")
	query.Set("client", "WEB")

	body, err := c.get(ctx, c.cfg.Datacenter, "/api/data/v1/get", query)
	if err != nil {
		return nil, err
	}

	var result *struct {
		Data []map[string]any `json:"data"`
	}
	if err = util.UnmarshalJSON(body, &result, "result"); err != nil {
		return nil, err
	}
	if result == nil || result.Data == nil {
		return []map[string]any{}, nil
	}
	return result.Data, nil
}
