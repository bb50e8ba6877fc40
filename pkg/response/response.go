package response

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
)

const contentType = "application/json; charset=utf-8"

// ErrorBody 错误响应体
type ErrorBody struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

// Success 返回业务数据本身，不额外包装
func Success(ctx *gin.Context, status int, data interface{}) {
	write(ctx, status, data)
}

// Fail 返回 {"code": ..., "detail": ...}
func Fail(ctx *gin.Context, status int, code, detail string) {
	write(ctx, status, ErrorBody{Code: code, Detail: detail})
	ctx.Abort()
}

func write(ctx *gin.Context, status int, data interface{}) {
	body, err := sonic.Marshal(data)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"code":"INTERNAL_ERROR","detail":"response encoding failed"}`)
	}
	ctx.Data(status, contentType, body)
}
