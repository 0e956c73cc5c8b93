package sina

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"astock/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
)

const feed = `var hq_str_nf_RB0="螺纹钢连续,145959,3650.000,3672.000,3640.000,3655.000,3660.000,3661.000,3661.000,3658.000,3650.000,120,85,1825412.000,962310.000,沪,螺纹钢,2024-01-02,1";
var hq_str_nf_XX0="";
var hq_str_nf_CU0="沪铜连续,145959,68000.000,68200.000,67900.000,68010.000,68100.000,68110.000,68110.000,68050.000,0.000,3,4,200000.000,50000.000";
`

func gbk(t *testing.T, s string) []byte {
	b, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func TestFutures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/list=nf_RB0,nf_XX0,nf_CU0", r.URL.Path)
		assert.Equal(t, "https://finance.sina.com.cn", r.Header.Get("Referer"))
		w.Write(gbk(t, feed))
	}))
	defer srv.Close()

	c := NewClient(Config{HQ: srv.URL, Timeout: time.Second})
	rows, err := c.Futures(context.Background(), []string{"RB0", "xx0", "CU0"})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "RB0", rows[0]["symbol"])
	assert.Equal(t, "螺纹钢连续", rows[0]["name"])
	assert.Equal(t, "3661.000", rows[0]["price"])
	assert.Equal(t, "962310.000", rows[0]["volume"])
	assert.Equal(t, "1825412.000", rows[0]["hold"])
	assert.Equal(t, 0.3, rows[0]["pct"])

	// no prior settlement
	assert.Equal(t, "CU0", rows[1]["symbol"])
	assert.Nil(t, rows[1]["pct"])
}

func TestFuturesOnlyRequested(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(gbk(t, feed))
	}))
	defer srv.Close()

	c := NewClient(Config{HQ: srv.URL, Timeout: time.Second})

	rows, err := c.Futures(context.Background(), []string{"ZZ0"})
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = c.Futures(context.Background(), []string{"cu0"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "CU0", rows[0]["symbol"])
}

func TestFuturesEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`var hq_str_nf_ZZ0="";`))
	}))
	defer srv.Close()

	rows, err := NewClient(Config{HQ: srv.URL, Timeout: time.Second}).Futures(context.Background(), []string{"ZZ0"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFuturesUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewClient(Config{HQ: srv.URL, Timeout: time.Second}).Futures(context.Background(), []string{"RB0"})
	assert.ErrorIs(t, err, util.ErrUnavailable)
}

func TestPctChange(t *testing.T) {
	assert.Equal(t, -1.0, pctChange("99", "100"))
	assert.Nil(t, pctChange("", "100"))
	assert.Nil(t, pctChange("100", "0"))
}
