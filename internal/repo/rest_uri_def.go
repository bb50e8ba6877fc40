package repo

import (
	"errors"

	"restUriHub/internal/models"

	"gorm.io/gorm"
)

type (
	uriDefRepo struct {
		BaseRepo[models.RestUriDef, *models.RestUriDef]
		db *gorm.DB
	}

	InterUriDefRepo interface {
		InterBaseRepo[models.RestUriDef, *models.RestUriDef]

		FindByApiId(apiId string) (*models.RestUriDef, error)
		DeleteByApiId(apiId string) (bool, error)
	}
)

func newUriDefRepo(db *gorm.DB) InterUriDefRepo {
	return &uriDefRepo{
		BaseRepo: NewBaseRepo[models.RestUriDef, *models.RestUriDef](db),
		db:       db,
	}
}

// FindByApiId 按 api_id 查询定义，不存在时返回 nil, nil
func (r uriDefRepo) FindByApiId(apiId string) (*models.RestUriDef, error) {
	var def models.RestUriDef
	err := r.db.Model(&models.RestUriDef{}).
		Where("api_id = ?", apiId).
		Take(&def).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, ErrorFromGormError(err)
	}
	return &def, nil
}

// DeleteByApiId 删除定义，路径由外键 ON DELETE CASCADE 级联删除
func (r uriDefRepo) DeleteByApiId(apiId string) (bool, error) {
	result := r.db.Where("api_id = ?", apiId).Delete(&models.RestUriDef{})
	if result.Error != nil {
		return false, ErrorFromGormError(result.Error)
	}
	return result.RowsAffected > 0, nil
}
