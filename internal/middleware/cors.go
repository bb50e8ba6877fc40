package middleware

import (
	"net/http"
	"strings"

	"restUriHub/config"

	"github.com/gin-gonic/gin"
)

const (
	defaultMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	defaultHeaders = "Content-Type, Authorization"
)

// Cors 按配置返回跨域响应头，OPTIONS 预检请求直接返回 204
func Cors(cfg config.Cors) gin.HandlerFunc {
	allowAll := contains(cfg.AllowOrigins, "*")
	methods := defaultMethods
	if len(cfg.AllowMethods) > 0 && !contains(cfg.AllowMethods, "*") {
		methods = strings.Join(cfg.AllowMethods, ", ")
	}
	headers := defaultHeaders
	if contains(cfg.AllowHeaders, "*") {
		headers = "*"
	} else if len(cfg.AllowHeaders) > 0 {
		headers = strings.Join(cfg.AllowHeaders, ", ")
	}

	return func(context *gin.Context) {
		origin := context.Request.Header.Get("Origin")
		if origin == "" {
			context.Next()
			return
		}

		if !allowAll && !contains(cfg.AllowOrigins, origin) {
			context.Next()
			return
		}

		h := context.Writer.Header()
		// 携带凭证时不能返回 *
		if allowAll && !cfg.AllowCredentials {
			h.Set("Access-Control-Allow-Origin", "*")
		} else {
			h.Set("Access-Control-Allow-Origin", origin)
			h.Add("Vary", "Origin")
		}
		if cfg.AllowCredentials {
			h.Set("Access-Control-Allow-Credentials", "true")
		}

		if context.Request.Method == http.MethodOptions {
			h.Set("Access-Control-Allow-Methods", methods)
			if headers == "*" {
				if req := context.Request.Header.Get("Access-Control-Request-Headers"); req != "" {
					h.Set("Access-Control-Allow-Headers", req)
				}
			} else {
				h.Set("Access-Control-Allow-Headers", headers)
			}
			context.AbortWithStatus(http.StatusNoContent)
			return
		}

		context.Next()
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
