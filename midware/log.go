package midware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const RequestID = "X-Request-Id"

// Logger access log with a request id
func Logger(c *gin.Context) {
	start := time.Now()
	id := uuid.NewString()
	c.Set(RequestID, id)
	c.Header(RequestID, id)

	c.Next()

	status := c.Writer.Status()
	ev := log.Info()
	if status >= http.StatusInternalServerError {
		ev = log.Warn()
	}
	ev.Str("id", id).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Dur("latency", time.Since(start)).
		Msg("request")
}

// Recovery turns a panic into a json 500
var Recovery = gin.CustomRecovery(func(c *gin.Context, err any) {
	log.Error().Str("id", c.GetString(RequestID)).Msgf("panic: %v", err)
	Error(c, errors.New("internal error"), http.StatusInternalServerError)
})
