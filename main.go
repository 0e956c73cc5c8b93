package main

import (
	"flag"

	"astock/midware"
	"astock/svc/market"
	"astock/svc/source"
	"astock/svc/stock"
	"astock/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("config", "", "config file")
	flag.Parse()

	cfg, err := util.LoadConfig(*file)
	if err != nil {
		panic(err)
	}
	util.InitLogger(cfg.Log.Level)

	src, err := source.New(cfg)
	if err != nil {
		panic(err)
	}
	d := market.New(src,
		market.WithPlaceholder(cfg.Upstream.Placeholder),
		market.WithNewsKeyword(cfg.News.Keyword),
	)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(midware.Logger, midware.Recovery)
	stock.Register(r, d, cfg.Server.Name)

	log.Info().Msgf("%s listening on %s, source %s", cfg.Server.Name, cfg.Server.Addr, src.Name())
	panic(r.Run(cfg.Server.Addr))
}
