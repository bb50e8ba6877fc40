package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"restUriHub/internal/errcode"
	"restUriHub/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logc"
)

// Recovery 捕获 panic，返回 500 INTERNAL_ERROR
// debug 为 true 时响应中带上 panic 信息
func Recovery(debugMode bool) gin.HandlerFunc {
	return func(context *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logc.Errorf(context.Request.Context(), "[Recovery] panic recovered: %v\n%s", r, debug.Stack())

				detail := "Internal server error"
				if debugMode {
					detail = fmt.Sprintf("panic: %v", r)
				}
				context.Set(ErrorCodeKey, string(errcode.CodeInternal))
				if !context.Writer.Written() {
					response.Fail(context, http.StatusInternalServerError, string(errcode.CodeInternal), detail)
				}
				context.Abort()
			}
		}()

		context.Next()
	}
}
