package services

import (
	"context"

	"restUriHub/internal/errcode"
	"restUriHub/internal/models"
	"restUriHub/internal/repo"
	"restUriHub/internal/types"

	"github.com/zeromicro/go-zero/core/logc"
)

type uriPathService struct{}

type InterUriPathService interface {
	GetPathsByApiId(ctx context.Context, tx repo.InterEntryRepo, apiId string) ([]models.RestUriPath, error)
	GetPathById(ctx context.Context, tx repo.InterEntryRepo, objId string) (*models.RestUriPath, error)
	CreatePath(ctx context.Context, tx repo.InterEntryRepo, req types.PathCreate) (*models.RestUriPath, error)
}

func newInterUriPathService() InterUriPathService {
	return &uriPathService{}
}

// GetPathsByApiId 按 path_order 升序返回 API 下的路径，没有时返回空列表
func (s uriPathService) GetPathsByApiId(ctx context.Context, tx repo.InterEntryRepo, apiId string) ([]models.RestUriPath, error) {
	logc.Infof(ctx, "[UriPathService] GetPathsByApiId api_id: %s", apiId)

	paths, err := tx.UriPath().FindByApiId(apiId)
	if err != nil {
		logc.Errorf(ctx, "[UriPathService] GetPathsByApiId failed, api_id: %s, err: %s", apiId, err.Error())
		return nil, err
	}

	logc.Infof(ctx, "[UriPathService] GetPathsByApiId found %d paths", len(paths))
	for i, p := range paths {
		logc.Debugf(ctx, "[UriPathService] path %d: %s", i+1, p.String())
	}

	return paths, nil
}

// GetPathById 按主键查询，不存在返回 NOT_FOUND
func (s uriPathService) GetPathById(ctx context.Context, tx repo.InterEntryRepo, objId string) (*models.RestUriPath, error) {
	logc.Infof(ctx, "[UriPathService] GetPathById obj_id: %s", objId)

	path, err := tx.UriPath().FindById(objId)
	if err != nil {
		logc.Errorf(ctx, "[UriPathService] GetPathById failed, obj_id: %s, err: %s", objId, err.Error())
		return nil, err
	}
	if path == nil {
		logc.Infof(ctx, "[UriPathService] path not found, obj_id: %s", objId)
		return nil, errcode.NewNotFound("Path with id %s not found", objId)
	}

	return path, nil
}

// CreatePath 创建路径段
// 先检查 (api_id, path_order) 是否已存在；并发插入由数据库唯一约束兜底，返回 CONSTRAINT_VIOLATION
func (s uriPathService) CreatePath(ctx context.Context, tx repo.InterEntryRepo, req types.PathCreate) (*models.RestUriPath, error) {
	logc.Infof(ctx, "[UriPathService] CreatePath api_id: %s, path_order: %d, path_value: %s",
		req.ApiId, req.PathOrder, req.PathValue)

	existing, err := tx.UriPath().FindByApiIdAndPathOrder(req.ApiId, req.PathOrder)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logc.Infof(ctx, "[UriPathService] duplicate path, api_id: %s, path_order: %d", req.ApiId, req.PathOrder)
		return nil, errcode.NewDuplicate("Path with api_id '%s' and path_order '%d' already exists", req.ApiId, req.PathOrder)
	}

	status := models.UseStatusUsable
	if req.UseStatCd != nil {
		status = *req.UseStatCd
	}

	path := models.NewRestUriPath(req.ApiId, req.PathOrder, req.PathValue)
	path.IsParamUse = req.IsParamUse
	path.ParamNm = req.ParamNm
	path.ParamTyp = req.ParamTyp
	path.ParamDesc = req.ParamDesc
	path.ExampleVal = req.ExampleVal
	path.UseStatCd = status.Ptr()
	path.CrtUserId = req.CrtUserId
	path.MdfyUserId = req.MdfyUserId
	path.Tid = req.Tid
	path.RsnCd = req.RsnCd
	path.TrnsCm = req.TrnsCm

	saved, err := tx.UriPath().Save(path)
	if err != nil {
		logc.Errorf(ctx, "[UriPathService] CreatePath failed, api_id: %s, path_order: %d, err: %s",
			req.ApiId, req.PathOrder, err.Error())
		return nil, err
	}

	logc.Infof(ctx, "[UriPathService] path created, obj_id: %s, api_id: %s, path_order: %d",
		saved.GetObjId(), saved.ApiId, saved.PathOrder)
	return saved, nil
}
