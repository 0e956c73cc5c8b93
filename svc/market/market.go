// Package market resolves named endpoints to a source fetch, a normalization
// table and a typed output, applying per-surface record caps.
package market

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"astock/model"
	"astock/svc/normalize"
	"astock/svc/source"

	"github.com/rs/zerolog/log"
)

const searchLimit = 10

var (
	ErrUnknownEndpoint = errors.New("unknown endpoint")
	ErrMissingSymbol   = errors.New("symbol required")
)

type Dispatcher struct {
	src         source.Source
	placeholder bool
	keyword     string
	endpoints   map[string]*Endpoint
}

type Option func(*Dispatcher)

// WithPlaceholder serves canned records when the upstream fails
func WithPlaceholder(on bool) Option {
	return func(d *Dispatcher) { d.placeholder = on }
}

// WithNewsKeyword default news search keyword
func WithNewsKeyword(keyword string) Option {
	return func(d *Dispatcher) {
		if keyword != "" {
			d.keyword = keyword
		}
	}
}

func New(src source.Source, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		src:       src,
		keyword:   "300059",
		endpoints: make(map[string]*Endpoint, len(endpoints)),
	}
	for _, ep := range endpoints {
		d.endpoints[ep.Name] = ep
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Source name of the underlying source
func (d *Dispatcher) Source() string {
	return d.src.Name()
}

func (d *Dispatcher) Lookup(name string) (*Endpoint, bool) {
	ep, ok := d.endpoints[name]
	return ep, ok
}

// Usage maps every command line usage to its description
func (d *Dispatcher) Usage() map[string]string {
	m := make(map[string]string, len(endpoints)+1)
	for _, ep := range endpoints {
		m[ep.Usage] = ep.Desc
	}
	m["search <keyword>"] = "股票搜索"
	return m
}

// Do fetches, normalizes and decodes endpoint name.
// The result is a slice of model structs, or one struct for single endpoints.
func (d *Dispatcher) Do(ctx context.Context, surface Surface, name string, q source.Query) (any, error) {
	ep, ok := d.endpoints[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEndpoint, name)
	}

	if q.Symbol == "" {
		q.Symbol = ep.Symbol
	}
	if ep.Single && q.Symbol == "" {
		return nil, ErrMissingSymbol
	}
	if ep.Dataset == source.News && q.Keyword == "" {
		q.Keyword = d.keyword
	}
	limit := ep.Caps[surface]
	q.Limit = limit

	var recs []map[string]any
	rows, err := d.src.Fetch(ctx, ep.Dataset, q)
	switch {
	case err == nil:
		table, ok := normalize.Lookup(d.src.Name(), ep.Dataset)
		if !ok {
			return nil, fmt.Errorf("no table for %s %s", d.src.Name(), ep.Dataset)
		}
		recs = normalize.Apply(rows, table, limit)

	case d.fallback(ep, err):
		log.Warn().Str("endpoint", name).Msgf("serving placeholder: %v", err)
		recs = ep.placeholder(q)

	default:
		return nil, err
	}

	out, err := ep.decode(recs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrUnparseable, err)
	}
	if ep.Single {
		return first(out, q.Symbol)
	}
	return out, nil
}

// fallback never hides a missing security
func (d *Dispatcher) fallback(ep *Endpoint, err error) bool {
	if !d.placeholder || ep.placeholder == nil {
		return false
	}
	return errors.Is(err, source.ErrUnavailable) || errors.Is(err, source.ErrUnparseable)
}

func first(out any, symbol string) (any, error) {
	if quotes, ok := out.([]model.Quote); ok {
		if len(quotes) == 0 {
			return nil, fmt.Errorf("%w: %s", source.ErrNotFound, symbol)
		}
		return quotes[0], nil
	}
	return out, nil
}

// Search the spot snapshot by code prefix, name, full pinyin or pinyin initials
func (d *Dispatcher) Search(ctx context.Context, keyword string) ([]model.Quote, error) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	res := make([]model.Quote, 0, searchLimit)
	if keyword == "" {
		return res, nil
	}

	rows, err := d.src.Fetch(ctx, source.StockSpot, source.Query{Limit: 6000})
	if err != nil {
		return nil, err
	}
	table, _ := normalize.Lookup(d.src.Name(), source.StockSpot)

	var quotes []model.Quote
	if err = normalize.Decode(normalize.Apply(rows, table, 0), &quotes); err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrUnparseable, err)
	}

	digits := strings.IndexFunc(keyword, func(r rune) bool { return !unicode.IsDigit(r) }) < 0
	for i := range quotes {
		q := &quotes[i]
		var hit bool
		if digits {
			hit = strings.HasPrefix(q.Symbol, keyword)
		} else {
			q.AddPinyin()
			hit = strings.Contains(strings.ToLower(q.Name), keyword) ||
				strings.HasPrefix(q.Pinyin, keyword) ||
				strings.HasPrefix(q.LazyPinyin, keyword)
		}
		if hit {
			res = append(res, *q)
			if len(res) == searchLimit {
				break
			}
		}
	}
	return res, nil
}
