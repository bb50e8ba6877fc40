package api

import (
	"net/http"

	"restUriHub/internal/repo"
	"restUriHub/internal/services"
	"restUriHub/internal/types"

	"github.com/gin-gonic/gin"
)

type uriDefController struct{}

var UriDefController = new(uriDefController)

/*
REST API 定义 API
/api/v1/uri-defs
*/
func (uriDefController uriDefController) API(gin *gin.RouterGroup) {
	a := gin.Group("uri-defs")
	{
		a.POST("", uriDefController.Create)
		a.GET(":api_id", uriDefController.Get)
		a.DELETE(":api_id", uriDefController.Delete)
	}
}

func (uriDefController uriDefController) Create(ctx *gin.Context) {
	r := new(types.RequestDefCreate)
	if !BindJson(ctx, r) {
		return
	}

	def, err := r.ToModel()
	if err != nil {
		Fail(ctx, err)
		return
	}

	Service(ctx, http.StatusCreated, func(tx repo.InterEntryRepo) (interface{}, error) {
		saved, err := services.UriDefService.CreateDef(ctx.Request.Context(), tx, def)
		if err != nil {
			return nil, err
		}
		return types.NewResponseDef(*saved), nil
	})
}

func (uriDefController uriDefController) Get(ctx *gin.Context) {
	apiId := ctx.Param("api_id")

	Service(ctx, http.StatusOK, func(tx repo.InterEntryRepo) (interface{}, error) {
		def, err := services.UriDefService.GetDefByApiId(ctx.Request.Context(), tx, apiId)
		if err != nil {
			return nil, err
		}
		return types.NewResponseDef(*def), nil
	})
}

func (uriDefController uriDefController) Delete(ctx *gin.Context) {
	apiId := ctx.Param("api_id")

	Service(ctx, http.StatusOK, func(tx repo.InterEntryRepo) (interface{}, error) {
		count, err := services.UriDefService.DeleteDef(ctx.Request.Context(), tx, apiId)
		if err != nil {
			return nil, err
		}
		return types.ResponseDefDelete{ApiId: apiId, PathCount: count}, nil
	})
}
