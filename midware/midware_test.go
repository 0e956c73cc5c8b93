package midware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"astock/util"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func router() *gin.Engine {
	r := gin.New()
	r.Use(Logger, Recovery)
	r.GET("/ok", func(c *gin.Context) {
		Success(c, gin.H{"name": "人工智能", "tag": "<em>"})
	})
	r.GET("/missing", func(c *gin.Context) {
		Error(c, fmt.Errorf("%w: 688999", util.ErrNotFound))
	})
	r.GET("/fail", func(c *gin.Context) {
		Error(c, errors.New("upstream unavailable"))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func get(r http.Handler, path string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSuccess(t *testing.T) {
	w := get(router(), "/ok")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `{"name":"人工智能","tag":"<em>"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestID))
}

func TestError(t *testing.T) {
	w := get(router(), "/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found: 688999"}`, w.Body.String())

	w = get(router(), "/fail")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"upstream unavailable"}`, w.Body.String())
}

func TestRecovery(t *testing.T) {
	w := get(router(), "/panic")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
}

func TestZstd(t *testing.T) {
	w := get(router(), "/ok", "Accept-Encoding", "gzip, zstd")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "zstd", w.Header().Get("Content-Encoding"))

	dec, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer dec.Close()

	body, err := dec.DecodeAll(w.Body.Bytes(), nil)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"人工智能","tag":"<em>"}`, string(body))
}
