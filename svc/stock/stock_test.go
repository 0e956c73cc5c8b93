package stock

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"astock/svc/eastmoney"
	"astock/svc/market"
	"astock/svc/sina"
	"astock/svc/source"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
)

const futuresFeed = `var hq_str_nf_RB0="螺纹钢连续,145959,3650.000,3672.000,3640.000,3655.000,3660.000,3661.000,3661.000,3658.000,3650.000,120,85,1825412.000,962310.000";
var hq_str_nf_CU0="沪铜连续,145959,68000.000,68200.000,67900.000,68010.000,68100.000,68110.000,68110.000,68050.000,68000.000,3,4,200000.000,50000.000";
`

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func fakeUpstream(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		// sina hq, always answers with every contract it knows
		if strings.HasPrefix(r.URL.Path, "/list=") {
			b, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(futuresFeed))
			assert.NoError(t, err)
			w.Write(b)
			return
		}

		switch r.URL.Path {
		case "/api/qt/clist/get":
			switch q.Get("fs") {
			case eastmoney.FsConcept:
				w.Write([]byte(`{"data":{"diff":[{"f14":"人工智能","f3":3.25}]}}`))
			case eastmoney.FsIndustry:
				w.Write([]byte(`{"data":{"diff":[{"f12":"BK0475","f14":"银行","f3":-0.52,"f6":1500000000,"f104":0,"f105":42}]}}`))
			case eastmoney.FsETF:
				w.Write([]byte(`{"data":{"diff":[{"f12":"510300","f14":"沪深300ETF","f2":3.512,"f3":0.46}]}}`))
			default:
				w.Write([]byte(`{"data":{"diff":[{"f12":"600000","f14":"浦发银行","f2":7.12,"f3":1.28},{"f12":"600519","f14":"贵州茅台","f2":1700,"f3":"-"}]}}`))
			}
		case "/api/qt/stock/get":
			if q.Get("secid") == "1.600000" {
				w.Write([]byte(`{"data":{"f57":"600000","f58":"浦发银行","f43":7.12,"f170":1.28}}`))
				return
			}
			w.Write([]byte(`{"data":null}`))
		case "/api/qt/stock/kline/get":
			assert.Equal(t, "103", q.Get("klt"))
			w.Write([]byte(`{"data":{"klines":["2024-01-31,7.00,7.05,7.10,6.98,123456,87654321.00"]}}`))
		case "/api/qt/stock/fflow/daykline/get":
			if q.Get("secid") != "1.600519" {
				w.Write([]byte(`{"data":null}`))
				return
			}
			w.Write([]byte(`{"data":{"klines":["2024-01-02,1000,-200,-300,-400,1400"]}}`))
		case "/search/jsonp":
			assert.Contains(t, q.Get("param"), "茅台")
			w.Write([]byte(`jQuery3510({"result":{"cmsArticleWebOld":[{"title":"<em>茅台</em>一季度业绩","date":"2024-04-26 18:30:00","mediaName":"证券时报","code":"202404263061"}]}})`))
		case "/api/data/v1/get":
			switch q.Get("reportName") {
			case eastmoney.ReportGDP:
				w.Write([]byte(`{"result":{"data":[{"TIME":"2024年第1季度","DOMESTICL_PRODUCT_BASE":296299,"SUM_SAME":5.3}]}}`))
			case eastmoney.ReportCPI:
				w.Write([]byte(`{"result":{"data":[{"TIME":"2024年03月份","NATIONAL_BASE":100.1,"NATIONAL_SAME":"-"}]}}`))
			default:
				w.Write([]byte(`{"result":null}`))
			}
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newRouter(t *testing.T, opts ...market.Option) *gin.Engine {
	srv := fakeUpstream(t)
	em := eastmoney.NewClient(eastmoney.Config{
		Push2: srv.URL, Push2His: srv.URL, Datacenter: srv.URL, Search: srv.URL, Timeout: time.Second,
	})
	sn := sina.NewClient(sina.Config{HQ: srv.URL, Timeout: time.Second})

	r := gin.New()
	Register(r, market.New(source.NewEastmoney(em, sn, []string{"RB0"}), opts...), "A股数据服务")
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealth(t *testing.T) {
	w := get(newRouter(t), "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","service":"A股数据服务","source":"eastmoney"}`, w.Body.String())
}

func TestConcept(t *testing.T) {
	w := get(newRouter(t), "/stock/concept")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `[{"name":"人工智能","change":3.25}]`, w.Body.String())
}

func TestBoards(t *testing.T) {
	r := newRouter(t)

	w := get(r, "/stock/industry")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"name":"银行","code":"BK0475","change":-0.52,"amount":1500000000,"up_count":0,"down_count":42}]`, w.Body.String())

	w = get(r, "/stock/etf")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"symbol":"510300","name":"沪深300ETF","price":3.512,"change":0.46}]`, w.Body.String())
}

func TestNews(t *testing.T) {
	w := get(newRouter(t), "/stock/news?keyword=茅台")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{
		"title":"茅台一季度业绩","datetime":"2024-04-26 18:30:00","source":"证券时报",
		"url":"http://finance.eastmoney.com/a/202404263061.html"
	}]`, w.Body.String())
}

func TestFundFlow(t *testing.T) {
	r := newRouter(t)

	w := get(r, "/stock/fundflow/600519")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"date":"2024-01-02","main_net":1000,"small_net":-200,"medium_net":-300,"large_net":-400,"super_large_net":1400}]`, w.Body.String())

	w = get(r, "/stock/fundflow/688999")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFutures(t *testing.T) {
	r := newRouter(t)

	// only the configured contracts
	w := get(r, "/futures/realtime")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"symbol":"RB0","name":"螺纹钢连续","latest_price":3661,"change":0.3,"volume":962310,"open_interest":1825412}]`, w.Body.String())

	w = get(r, "/futures/realtime?symbol=cu0")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"symbol":"CU0","name":"沪铜连续","latest_price":68110,"change":0.16,"volume":50000,"open_interest":200000}]`, w.Body.String())

	w = get(r, "/futures/realtime?symbol=ZZ0")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

func TestMacro(t *testing.T) {
	r := newRouter(t)

	w := get(r, "/macro/gdp")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"quarter":"2024年第1季度","gdp":296299,"gdp_yoy":5.3}]`, w.Body.String())

	w = get(r, "/macro/cpi")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"month":"2024年03月份","cpi":100.1,"cpi_yoy":null}]`, w.Body.String())
}

func TestRealtime(t *testing.T) {
	r := newRouter(t)

	w := get(r, "/stock/realtime/sh600000")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"symbol":"600000","name":"浦发银行","price":7.12,"change":1.28}`, w.Body.String())

	w = get(r, "/stock/realtime/all")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"symbol":"600000","name":"浦发银行","price":7.12,"change":1.28},
		{"symbol":"600519","name":"贵州茅台","price":1700,"change":0}
	]`, w.Body.String())
}

func TestRealtimeNotFound(t *testing.T) {
	w := get(newRouter(t), "/stock/realtime/688999")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
}

func TestKline(t *testing.T) {
	w := get(newRouter(t), "/stock/kline/600000?period=monthly&days=90")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"date":"2024-01-31","open":7,"close":7.05,"high":7.1,"low":6.98,"volume":123456,"amount":87654321}]`, w.Body.String())
}

func TestUpstreamDown(t *testing.T) {
	w := get(newRouter(t), "/stock/index/realtime")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "upstream unavailable")

	// opt-in canned data
	w = get(newRouter(t, market.WithPlaceholder(true)), "/stock/index/realtime")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"symbol":"000001","name":"上证指数","price":3388,"change":0.5}]`, w.Body.String())
}

func TestSearch(t *testing.T) {
	w := get(newRouter(t), "/stock/search?q=gzmt")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"symbol":"600519","name":"贵州茅台","price":1700,"change":0}]`, w.Body.String())
}

func TestUnknownEndpoint(t *testing.T) {
	for _, path := range []string{"/stock", "/stock/unknown/x", "/foo/concept"} {
		w := get(newRouter(t), path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.JSONEq(t, `{"error":"Unknown endpoint"}`, w.Body.String())
	}
}
