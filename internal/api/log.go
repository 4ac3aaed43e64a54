package api

import (
	"time"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/kataras/golog"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func logFields(args map[string]any) string {
	output, _ := json.MarshalToString(args)
	return output
}

// requestLogger writes one structured line per request. Failed
// requests are raised to warning level.
func requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		started := time.Now()
		ctx.Next()
		fields := logFields(map[string]any{
			"method":  ctx.Request.Method,
			"path":    ctx.Request.URL.Path,
			"status":  ctx.Writer.Status(),
			"elapsed": time.Since(started).String(),
			"from":    ctx.ClientIP(),
		})
		if ctx.Writer.Status() >= 400 {
			golog.Warnf(fields)
		} else {
			golog.Infof(fields)
		}
	}
}
