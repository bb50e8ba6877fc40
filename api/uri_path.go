package api

import (
	"net/http"

	"restUriHub/internal/repo"
	"restUriHub/internal/services"
	"restUriHub/internal/types"

	"github.com/gin-gonic/gin"
)

type uriPathController struct{}

var UriPathController = new(uriPathController)

/*
URI 路径 API
/api/v1/uri-paths
*/
func (uriPathController uriPathController) API(gin *gin.RouterGroup) {
	a := gin.Group("uri-paths")
	{
		a.GET("api/:api_id", uriPathController.ListByApiId)
		a.GET(":obj_id", uriPathController.Get)
		a.POST("", uriPathController.Create)
	}
}

func (uriPathController uriPathController) ListByApiId(ctx *gin.Context) {
	apiId := ctx.Param("api_id")

	Service(ctx, http.StatusOK, func(tx repo.InterEntryRepo) (interface{}, error) {
		paths, err := services.UriPathService.GetPathsByApiId(ctx.Request.Context(), tx, apiId)
		if err != nil {
			return nil, err
		}
		return types.NewResponsePaths(paths), nil
	})
}

func (uriPathController uriPathController) Get(ctx *gin.Context) {
	objId := ctx.Param("obj_id")

	Service(ctx, http.StatusOK, func(tx repo.InterEntryRepo) (interface{}, error) {
		path, err := services.UriPathService.GetPathById(ctx.Request.Context(), tx, objId)
		if err != nil {
			return nil, err
		}
		return types.NewResponsePath(*path), nil
	})
}

func (uriPathController uriPathController) Create(ctx *gin.Context) {
	r := new(types.RequestPathCreate)
	if !BindJson(ctx, r) {
		return
	}

	req, err := r.ToPathCreate()
	if err != nil {
		Fail(ctx, err)
		return
	}

	Service(ctx, http.StatusCreated, func(tx repo.InterEntryRepo) (interface{}, error) {
		path, err := services.UriPathService.CreatePath(ctx.Request.Context(), tx, req)
		if err != nil {
			return nil, err
		}
		return types.NewResponsePath(*path), nil
	})
}
