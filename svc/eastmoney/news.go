package eastmoney

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"astock/util"

	"github.com/bytedance/sonic"
)

const newsCallback = "jQuery3510"

var tagReplacer = strings.NewReplacer("<em>", "", "</em>", "", "　", "", "\r\n", " ")

type newsParam struct {
	Uid           string              `json:"uid"`
	Keyword       string              `json:"keyword"`
	Type          []string            `json:"type"`
	Client        string              `json:"client"`
	ClientType    string              `json:"clientType"`
	ClientVersion string              `json:"clientVersion"`
	Param         map[string]newsPage `json:"param"`
}

type newsPage struct {
	SearchScope string `json:"searchScope"`
	Sort        string `json:"sort"`
	PageIndex   int    `json:"pageIndex"`
	PageSize    int    `json:"pageSize"`
	PreTag      string `json:"preTag"`
	PostTag     string `json:"postTag"`
}

// News articles matching keyword, newest first
func (c *Client) News(ctx context.Context, keyword string, size int) ([]map[string]any, error) {
	param, err := sonic.MarshalString(newsParam{
		Keyword:       keyword,
		Type:          []string{"cmsArticleWebOld"},
		Client:        "web",
		ClientType:    "web",
		ClientVersion: "curr",
		Param: map[string]newsPage{
			"cmsArticleWebOld": {
				SearchScope: "default",
				Sort:        "default",
				PageIndex:   1,
				PageSize:    size,
				PreTag:      "<em>",
				PostTag:     "</em>",
			},
		},
	})
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("cb", newsCallback)
	query.Set("param", param)
	query.Set("_", strconv.FormatInt(time.Now().UnixMilli(), 10))

	body, err := c.get(ctx, c.cfg.Search, "/search/jsonp", query)
	if err != nil {
		return nil, err
	}

	body, err = trimJSONP(body)
	if err != nil {
		return nil, err
	}

	var articles []map[string]any
	if err = util.UnmarshalJSON(body, &articles, "result", "cmsArticleWebOld"); err != nil {
		return nil, err
	}
	if articles == nil {
		return []map[string]any{}, nil
	}

	for _, a := range articles {
		for _, k := range []string{"title", "content"} {
			if s, ok := a[k].(string); ok {
				a[k] = tagReplacer.Replace(s)
			}
		}
		if _, ok := a["url"]; !ok {
			if code, ok := a["code"].(string); ok && code != "" {
				a["url"] = "http://finance.eastmoney.com/a/" + code + ".html"
			}
		}
	}
	return articles, nil
}

// trimJSONP cb({...}) -> {...}
func trimJSONP(body []byte) ([]byte, error) {
	start := bytes.IndexByte(body, '(')
	end := bytes.LastIndexByte(body, ')')
	if start < 0 || end <= start {
		return nil, fmt.Errorf("%w: not a jsonp body", util.ErrUnparseable)
	}
	return body[start+1 : end], nil
}
