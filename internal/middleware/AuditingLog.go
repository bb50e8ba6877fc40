package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"restUriHub/pkg/idutil"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logc"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	RequestIdHeaderKey = "X-Request-Id"
	RequestIdKey       = "requestId"

	// 请求体超过该长度时不记录
	maxLoggedBody = 4096
)

// AuditingLog 为每个请求生成 requestId 并写入日志上下文，请求结束后记录访问日志
// 写操作额外记录请求体
func AuditingLog() gin.HandlerFunc {
	return func(context *gin.Context) {
		start := time.Now()

		requestId := context.Request.Header.Get(RequestIdHeaderKey)
		if requestId == "" {
			requestId = idutil.GenerateRequestId()
		}
		context.Set(RequestIdKey, requestId)
		context.Header(RequestIdHeaderKey, requestId)

		ctx := logx.ContextWithFields(context.Request.Context(),
			logx.Field(RequestIdKey, requestId),
			logx.Field("method", context.Request.Method),
			logx.Field("path", context.Request.URL.Path),
		)
		context.Request = context.Request.WithContext(ctx)

		var readBody []byte
		if isWrite(context.Request.Method) && context.Request.Body != nil &&
			context.Request.ContentLength >= 0 && context.Request.ContentLength <= maxLoggedBody {
			body, err := io.ReadAll(context.Request.Body)
			if err != nil {
				logc.Errorf(ctx, "[Request] read body failed: %s", err.Error())
			}
			readBody = body
			// 将 body 数据放回请求中
			context.Request.Body = io.NopCloser(bytes.NewBuffer(readBody))
		}

		context.Next()

		status := context.Writer.Status()
		latency := time.Since(start)
		if len(readBody) > 0 {
			logc.Infof(ctx, "[Request] %s %s %d %v ip=%s body=%s",
				context.Request.Method, context.Request.URL.Path, status, latency, context.ClientIP(), string(readBody))
			return
		}
		logc.Infof(ctx, "[Request] %s %s %d %v ip=%s",
			context.Request.Method, context.Request.URL.Path, status, latency, context.ClientIP())
	}
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
