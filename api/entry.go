package api

import (
	"context"
	"errors"
	"net/http"

	"restUriHub/internal/ctx"
	"restUriHub/internal/errcode"
	"restUriHub/internal/global"
	"restUriHub/internal/middleware"
	"restUriHub/internal/repo"
	"restUriHub/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logc"
)

const internalDetail = "Internal server error"

// Service 在单个事务中执行业务逻辑
// fn 返回错误或 panic 时回滚；成功时先提交再写响应，提交失败同样按错误返回
func Service(c *gin.Context, status int, fn func(tx repo.InterEntryRepo) (interface{}, error)) {
	reqCtx := c.Request.Context()

	db := dbRepo()
	if db == nil {
		Fail(c, errcode.NewUnavailable("Database unavailable", errors.New("database client is not initialized")))
		return
	}

	if timeout := global.Config.Database.QueryTimeout; timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(reqCtx, timeout)
		defer cancel()
	}

	var data interface{}
	err := db.Transaction(reqCtx, func(tx repo.InterEntryRepo) error {
		var err error
		data, err = fn(tx)
		return err
	})
	if err != nil {
		Fail(c, repo.ErrorFromGormError(err))
		return
	}

	response.Success(c, status, data)
}

// BindJson 绑定并校验请求体，失败时直接写 400 并返回 false
func BindJson(c *gin.Context, r interface{}) bool {
	if err := c.ShouldBindJSON(r); err != nil {
		Fail(c, errcode.NewValidation("%s", bindErrorMessage(err)))
		return false
	}
	return true
}

// Fail 按错误码写错误响应
func Fail(c *gin.Context, err error) {
	code := errcode.CodeOf(err)
	status := StatusOf(code)

	detail := errcode.MessageOf(err)
	if code == errcode.CodeInternal {
		logc.Errorf(c.Request.Context(), "[API] %s %s failed: %s", c.Request.Method, c.Request.URL.Path, err.Error())
		if !global.Config.Server.IsDebug() {
			detail = internalDetail
		}
	} else if code == errcode.CodeUnavailable || code == errcode.CodeConstraint {
		logc.Errorf(c.Request.Context(), "[API] %s %s failed: %s", c.Request.Method, c.Request.URL.Path, err.Error())
	} else {
		logc.Infof(c.Request.Context(), "[API] %s %s rejected: %s", c.Request.Method, c.Request.URL.Path, detail)
	}

	c.Set(middleware.ErrorCodeKey, string(code))
	response.Fail(c, status, string(code), detail)
}

// StatusOf 错误码到 HTTP 状态码的映射
func StatusOf(code errcode.Code) int {
	switch code {
	case errcode.CodeValidation, errcode.CodeDuplicate:
		return http.StatusBadRequest
	case errcode.CodeNotFound:
		return http.StatusNotFound
	case errcode.CodeConstraint:
		return http.StatusConflict
	case errcode.CodeUnavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func dbRepo() repo.InterEntryRepo {
	c := ctx.DO()
	if c == nil {
		return nil
	}
	return c.Repo()
}
