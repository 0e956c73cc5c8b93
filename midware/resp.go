package midware

import (
	"errors"
	"net/http"
	"strings"

	"astock/util"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/klauspost/compress/zstd"
)

const contentType = "application/json; charset=utf-8"

var (
	// keep chinese and <em> as is
	json = jsoniter.Config{EscapeHTML: false, SortMapKeys: true}.Froze()

	// fast encode
	encoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
)

func Success(c *gin.Context, data any) {
	Write(c, http.StatusOK, data)
}

// Error writes {"error": msg}, 404 for not found and 500 otherwise unless code is given
func Error(c *gin.Context, err error, code ...int) {
	status := http.StatusInternalServerError
	if len(code) > 0 {
		status = code[0]
	} else if errors.Is(err, util.ErrNotFound) {
		status = http.StatusNotFound
	}
	Write(c, status, gin.H{"error": err.Error()})
}

// Write encodes data and aborts the chain, zstd when the client accepts it
func Write(c *gin.Context, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error":"encode response failed"}`)
	}

	if strings.Contains(c.GetHeader("Accept-Encoding"), "zstd") {
		c.Header("Content-Encoding", "zstd")
		c.Header("Vary", "Accept-Encoding")
		body = Zip(body)
	}
	c.Data(status, contentType, body)
	c.Abort()
}

func Zip(src []byte) []byte {
	return encoder.EncodeAll(src, nil)
}
