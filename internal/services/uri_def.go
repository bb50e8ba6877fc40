package services

import (
	"context"

	"restUriHub/internal/errcode"
	"restUriHub/internal/models"
	"restUriHub/internal/repo"

	"github.com/zeromicro/go-zero/core/logc"
)

type uriDefService struct{}

type InterUriDefService interface {
	CreateDef(ctx context.Context, tx repo.InterEntryRepo, def *models.RestUriDef) (*models.RestUriDef, error)
	GetDefByApiId(ctx context.Context, tx repo.InterEntryRepo, apiId string) (*models.RestUriDef, error)
	DeleteDef(ctx context.Context, tx repo.InterEntryRepo, apiId string) (int64, error)
}

func newInterUriDefService() InterUriDefService {
	return &uriDefService{}
}

// CreateDef 创建 API 定义，api_id 重复时返回 DUPLICATE_RESOURCE
func (s uriDefService) CreateDef(ctx context.Context, tx repo.InterEntryRepo, def *models.RestUriDef) (*models.RestUriDef, error) {
	logc.Infof(ctx, "[UriDefService] CreateDef api_id: %s, site_id: %s, srv_nm: %s", def.ApiId, def.SiteId, def.SrvNm)

	existing, err := tx.UriDef().FindByApiId(def.ApiId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errcode.NewDuplicate("Api definition with api_id '%s' already exists", def.ApiId)
	}

	if def.UseStatCd == nil {
		def.UseStatCd = models.UseStatusUsable.Ptr()
	}

	saved, err := tx.UriDef().Save(def)
	if err != nil {
		logc.Errorf(ctx, "[UriDefService] CreateDef failed, api_id: %s, err: %s", def.ApiId, err.Error())
		return nil, err
	}

	logc.Infof(ctx, "[UriDefService] definition created, obj_id: %s, api_id: %s", saved.GetObjId(), saved.ApiId)
	return saved, nil
}

func (s uriDefService) GetDefByApiId(ctx context.Context, tx repo.InterEntryRepo, apiId string) (*models.RestUriDef, error) {
	def, err := tx.UriDef().FindByApiId(apiId)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, errcode.NewNotFound("Api definition with api_id %s not found", apiId)
	}
	return def, nil
}

// DeleteDef 删除 API 定义及其全部路径，返回被级联删除的路径数量
func (s uriDefService) DeleteDef(ctx context.Context, tx repo.InterEntryRepo, apiId string) (int64, error) {
	if _, err := s.GetDefByApiId(ctx, tx, apiId); err != nil {
		return 0, err
	}

	count, err := tx.UriPath().CountByApiId(apiId)
	if err != nil {
		return 0, err
	}

	deleted, err := tx.UriDef().DeleteByApiId(apiId)
	if err != nil {
		logc.Errorf(ctx, "[UriDefService] DeleteDef failed, api_id: %s, err: %s", apiId, err.Error())
		return 0, err
	}
	if !deleted {
		return 0, errcode.NewNotFound("Api definition with api_id %s not found", apiId)
	}

	logc.Infof(ctx, "[UriDefService] definition deleted, api_id: %s, cascaded paths: %d", apiId, count)
	return count, nil
}
