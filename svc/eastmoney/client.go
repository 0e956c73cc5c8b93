// Package eastmoney talks to the public eastmoney quote, history, search and
// data-center endpoints. Rows keep eastmoney's own field codes (f12, f14 ...).
package eastmoney

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"astock/util"
)

const (
	listUT  = "bd1d9ddb04089700cf9c27f6f7426281"
	klineUT = "7eea3edcaed734bea9cbfc24409ed989"
	flowUT  = "b2884a393a59ad64002292a3e90d46a5"
)

type Config struct {
	Push2      string // quote host
	Push2His   string // history host
	Datacenter string
	Search     string
	Timeout    time.Duration
}

type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient uses http client if given, otherwise one with cfg.Timeout
func NewClient(cfg Config, client ...*http.Client) *Client {
	c := &Client{cfg: cfg}
	if len(client) > 0 && client[0] != nil {
		c.http = client[0]
	} else {
		c.http = &http.Client{Timeout: cfg.Timeout}
	}
	return c
}

func (c *Client) get(ctx context.Context, host, path string, query url.Values) ([]byte, error) {
	u := strings.TrimRight(host, "/") + path + "?" + query.Encode()
	return util.GetAndRead(ctx, c.http, u, map[string]string{
		"Referer": "https://quote.eastmoney.com/",
	})
}
