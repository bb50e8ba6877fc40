package repo

import (
	"errors"

	"restUriHub/internal/models"

	"gorm.io/gorm"
)

type (
	uriPathRepo struct {
		BaseRepo[models.RestUriPath, *models.RestUriPath]
		db *gorm.DB
	}

	InterUriPathRepo interface {
		InterBaseRepo[models.RestUriPath, *models.RestUriPath]

		FindByApiId(apiId string) ([]models.RestUriPath, error)
		FindByApiIdAndPathOrder(apiId string, pathOrder int) (*models.RestUriPath, error)
		FindByUseStatus(status models.UseStatus) ([]models.RestUriPath, error)
		FindUsablePaths() ([]models.RestUriPath, error)
		FindUnusablePaths() ([]models.RestUriPath, error)
		FindByApiIdAndUseStatus(apiId string, status models.UseStatus) ([]models.RestUriPath, error)
		CountByApiId(apiId string) (int64, error)
	}
)

func newUriPathRepo(db *gorm.DB) InterUriPathRepo {
	return &uriPathRepo{
		BaseRepo: NewBaseRepo[models.RestUriPath, *models.RestUriPath](db),
		db:       db,
	}
}

// FindByApiId 查询 API 下的全部路径，按 path_order 升序
func (r uriPathRepo) FindByApiId(apiId string) ([]models.RestUriPath, error) {
	paths := make([]models.RestUriPath, 0)
	err := r.db.Model(&models.RestUriPath{}).
		Where("api_id = ?", apiId).
		Order("path_order ASC").
		Find(&paths).Error
	if err != nil {
		return nil, ErrorFromGormError(err)
	}
	return paths, nil
}

// FindByApiIdAndPathOrder 按 (api_id, path_order) 查询单条，用于重复检查
func (r uriPathRepo) FindByApiIdAndPathOrder(apiId string, pathOrder int) (*models.RestUriPath, error) {
	var path models.RestUriPath
	err := r.db.Model(&models.RestUriPath{}).
		Where("api_id = ? AND path_order = ?", apiId, pathOrder).
		Take(&path).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, ErrorFromGormError(err)
	}
	return &path, nil
}

// FindByUseStatus 按使用状态查询，按 api_id、path_order 排序
func (r uriPathRepo) FindByUseStatus(status models.UseStatus) ([]models.RestUriPath, error) {
	paths := make([]models.RestUriPath, 0)
	err := r.db.Model(&models.RestUriPath{}).
		Where("use_stat_cd = ?", string(status)).
		Order("api_id ASC").
		Order("path_order ASC").
		Find(&paths).Error
	if err != nil {
		return nil, ErrorFromGormError(err)
	}
	return paths, nil
}

func (r uriPathRepo) FindUsablePaths() ([]models.RestUriPath, error) {
	return r.FindByUseStatus(models.UseStatusUsable)
}

func (r uriPathRepo) FindUnusablePaths() ([]models.RestUriPath, error) {
	return r.FindByUseStatus(models.UseStatusUnusable)
}

// FindByApiIdAndUseStatus 按 API 与使用状态查询，按 path_order 升序
func (r uriPathRepo) FindByApiIdAndUseStatus(apiId string, status models.UseStatus) ([]models.RestUriPath, error) {
	paths := make([]models.RestUriPath, 0)
	err := r.db.Model(&models.RestUriPath{}).
		Where("api_id = ? AND use_stat_cd = ?", apiId, string(status)).
		Order("path_order ASC").
		Find(&paths).Error
	if err != nil {
		return nil, ErrorFromGormError(err)
	}
	return paths, nil
}

// CountByApiId 统计 API 下的路径数量
func (r uriPathRepo) CountByApiId(apiId string) (int64, error) {
	var count int64
	err := r.db.Model(&models.RestUriPath{}).
		Where("api_id = ?", apiId).
		Count(&count).Error
	if err != nil {
		return 0, ErrorFromGormError(err)
	}
	return count, nil
}
