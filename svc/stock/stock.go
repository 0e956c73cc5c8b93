package stock

import (
	"errors"
	"net/http"
	"strconv"

	"astock/midware"
	"astock/svc/market"
	"astock/svc/source"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	d    *market.Dispatcher
	name string
}

// Register mounts every route on r
func Register(r *gin.Engine, d *market.Dispatcher, name string) {
	h := &Handler{d: d, name: name}

	r.GET("/health", h.Health)

	r.Group("/stock").
		GET("/realtime/:symbol", h.Realtime).
		GET("/index/realtime", h.list("index")).
		GET("/news", h.News).
		GET("/concept", h.list("concept")).
		GET("/industry", h.list("industry")).
		GET("/etf", h.list("etf")).
		GET("/kline/:symbol", h.Kline).
		GET("/fundflow/:symbol", h.FundFlow).
		GET("/search", h.Search)

	r.GET("/futures/realtime", h.Futures)

	r.Group("/macro").
		GET("/gdp", h.list("gdp")).
		GET("/cpi", h.list("cpi"))

	r.NoRoute(func(c *gin.Context) {
		midware.Write(c, http.StatusNotFound, gin.H{"error": "Unknown endpoint"})
	})
}

func (h *Handler) Health(c *gin.Context) {
	midware.Success(c, gin.H{
		"status": "ok", "service": h.name, "source": h.d.Source(),
	})
}

// 全市场行情 or 个股行情
func (h *Handler) Realtime(c *gin.Context) {
	symbol := c.Param("symbol")
	if symbol == "all" {
		h.do(c, "stock", source.Query{})
		return
	}
	h.do(c, "quote", source.Query{Symbol: symbol})
}

func (h *Handler) News(c *gin.Context) {
	h.do(c, "news", source.Query{Keyword: c.Query("keyword")})
}

func (h *Handler) Kline(c *gin.Context) {
	days, _ := strconv.Atoi(c.Query("days"))
	h.do(c, "kline", source.Query{
		Symbol: c.Param("symbol"),
		Period: c.DefaultQuery("period", "daily"),
		Days:   days,
	})
}

func (h *Handler) FundFlow(c *gin.Context) {
	h.do(c, "fundflow", source.Query{Symbol: c.Param("symbol")})
}

func (h *Handler) Futures(c *gin.Context) {
	h.do(c, "futures", source.Query{Symbol: c.Query("symbol")})
}

func (h *Handler) Search(c *gin.Context) {
	data, err := h.d.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		midware.Error(c, err)
		return
	}
	midware.Success(c, data)
}

func (h *Handler) list(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.do(c, name, source.Query{})
	}
}

func (h *Handler) do(c *gin.Context, name string, q source.Query) {
	data, err := h.d.Do(c.Request.Context(), market.Service, name, q)
	switch {
	case errors.Is(err, market.ErrMissingSymbol):
		midware.Error(c, err, http.StatusBadRequest)
	case err != nil:
		midware.Error(c, err)
	default:
		midware.Success(c, data)
	}
}
