package api

import (
	"net/http"
	"time"

	"restUriHub/internal/global"
	"restUriHub/internal/types"
	"restUriHub/pkg/health"
	"restUriHub/pkg/response"

	"github.com/gin-gonic/gin"
)

type systemController struct {
	checker *health.Checker
}

var SystemController = new(systemController)

/*
系统 API
/healthz
*/
func (systemController *systemController) API(gin *gin.RouterGroup) {
	gin.GET("healthz", systemController.Healthz)
}

// WithChecker 设置数据库健康检查器，未设置时数据库状态为 unknown
func (systemController *systemController) WithChecker(c *health.Checker) *systemController {
	systemController.checker = c
	return systemController
}

// Healthz 进程存活即返回 200，数据库状态取最近一次探测结果
func (systemController *systemController) Healthz(ctx *gin.Context) {
	r := types.ResponseHealth{
		Status:   "ok",
		Database: "unknown",
		Version:  global.Version,
	}

	if c := systemController.checker; c != nil {
		s := c.Status()
		if s.Checked {
			r.Database = "down"
			if s.Up {
				r.Database = "up"
			}
			r.LastCheck = s.LastCheck.Format(time.RFC3339)
			r.Error = s.Err
		}
	}

	response.Success(ctx, http.StatusOK, r)
}
