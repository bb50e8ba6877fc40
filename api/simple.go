package api

import (
	"net/http"

	"restUriHub/internal/types"
	"restUriHub/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logc"
)

type simpleController struct{}

var SimpleController = new(simpleController)

/*
示例 API，不访问数据库
/api/v1/simple
*/
func (simpleController simpleController) API(gin *gin.RouterGroup) {
	a := gin.Group("simple")
	{
		a.GET("/", simpleController.Hello)
		a.POST("/", simpleController.Echo)
	}
}

func (simpleController simpleController) Hello(ctx *gin.Context) {
	logc.Info(ctx.Request.Context(), "[Simple] handle get")
	response.Success(ctx, http.StatusOK, types.ResponseSimple{
		Status:  http.StatusOK,
		Message: "hello world",
	})
}

func (simpleController simpleController) Echo(ctx *gin.Context) {
	r := new(types.RequestSimplePayload)
	if !BindJson(ctx, r) {
		return
	}

	logc.Infof(ctx.Request.Context(), "[Simple] handle post, name: %s", r.Name)
	response.Success(ctx, http.StatusOK, types.ResponseSimple{
		Status:   http.StatusOK,
		Message:  "hello world",
		RecvData: r,
	})
}
