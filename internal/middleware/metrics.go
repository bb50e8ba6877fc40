package middleware

import (
	"time"

	"restUriHub/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// ErrorCodeKey 由 API 层写入的业务错误码
const ErrorCodeKey = "errorCode"

// Metrics 记录请求数量、耗时与错误码，未匹配的路由统一记为 unmatched
func Metrics(reg *metrics.Registry) gin.HandlerFunc {
	return func(context *gin.Context) {
		start := time.Now()

		context.Next()

		route := context.FullPath()
		if route == "" {
			route = "unmatched"
		}
		reg.ObserveRequest(context.Request.Method, route, context.Writer.Status(), time.Since(start))

		if code := context.GetString(ErrorCodeKey); code != "" {
			reg.ObserveError(code)
		}
	}
}
