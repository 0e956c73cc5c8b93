// dataquery prints one market dataset as a json envelope on stdout.
//
//	dataquery [-config file] <command> [args]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"astock/model"
	"astock/svc/market"
	"astock/svc/source"
	"astock/util"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.Config{EscapeHTML: false, SortMapKeys: true}.Froze()

func main() {
	file := flag.String("config", "", "config file")
	flag.Parse()

	d, timeout, err := setup(*file)
	if err != nil {
		// still a valid envelope for the caller
		if err = fail(os.Stdout, err); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout+5*time.Second)
	defer cancel()

	if err = run(ctx, d, flag.Args(), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(file string) (*market.Dispatcher, time.Duration, error) {
	cfg, err := util.LoadConfig(file)
	if err != nil {
		return nil, 0, err
	}
	util.InitLogger(cfg.Log.Level)

	src, err := source.New(cfg)
	if err != nil {
		return nil, 0, err
	}
	d := market.New(src,
		market.WithPlaceholder(cfg.Upstream.Placeholder),
		market.WithNewsKeyword(cfg.News.Keyword),
	)
	return d, cfg.Upstream.Timeout, nil
}

func fail(out io.Writer, err error) error {
	return write(out, model.Result{
		Error:     err.Error(),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// run a command, command failures are reported in the envelope, not returned
func run(ctx context.Context, d *market.Dispatcher, args []string, out io.Writer) error {
	arg := func(i int) string {
		if len(args) > i {
			return args[i]
		}
		return ""
	}
	cmd := arg(0)

	var (
		data any
		err  error
	)
	if cmd == "search" {
		data, err = d.Search(ctx, arg(1))
	} else {
		if _, ok := d.Lookup(cmd); !ok {
			return write(out, map[string]any{"commands": d.Usage()})
		}

		var q source.Query
		switch cmd {
		case "kline":
			q.Symbol = arg(1)
			q.Period = util.Exp(arg(2) != "", arg(2), "daily")
		case "fundflow", "quote", "futures":
			q.Symbol = arg(1)
		case "news":
			q.Keyword = arg(1)
		}
		data, err = d.Do(ctx, market.Query, cmd, q)
	}

	res := model.Result{Timestamp: time.Now().Format(time.RFC3339)}
	if err != nil {
		res.Error = err.Error()
	} else {
		res.Success = true
		res.Data = data
		res.Source = d.Source()
	}
	return write(out, res)
}

func write(out io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = out.Write(append(b, '\n'))
	return err
}
