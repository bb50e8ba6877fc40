package repo

import (
	"errors"

	"restUriHub/internal/models"
	"restUriHub/pkg/idutil"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entity 可由 BaseRepo 管理的实体
type Entity interface {
	models.RestUriDef | models.RestUriPath
}

// entityPtr 约束实体指针类型，要求可读写字符串主键
type entityPtr[M any] interface {
	*M
	GetObjId() string
	SetObjId(id string)
}

// InterBaseRepo 通用 CRUD，P 为实体指针类型，例如 *models.RestUriPath
// 所有方法都在构造时传入的会话（通常是事务）上执行，不负责提交或回滚
type InterBaseRepo[M Entity, P entityPtr[M]] interface {
	FindById(id string) (P, error)
	FindAll() ([]M, error)
	Save(entity P) (P, error)
	SaveAll(entities []P) ([]P, error)
	Delete(entity P) error
	DeleteById(id string) (bool, error)
	ExistsById(id string) (bool, error)
	Count() (int64, error)
}

type BaseRepo[M Entity, P entityPtr[M]] struct {
	db *gorm.DB
}

func NewBaseRepo[M Entity, P entityPtr[M]](db *gorm.DB) BaseRepo[M, P] {
	return BaseRepo[M, P]{db: db}
}

// FindById 按主键查询，不存在时返回 nil, nil
func (r BaseRepo[M, P]) FindById(id string) (P, error) {
	var entity M
	err := r.db.Where("obj_id = ?", id).Take(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, ErrorFromGormError(err)
	}
	return &entity, nil
}

// FindAll 查询全部记录
func (r BaseRepo[M, P]) FindAll() ([]M, error) {
	entities := make([]M, 0)
	if err := r.db.Find(&entities).Error; err != nil {
		return nil, ErrorFromGormError(err)
	}
	return entities, nil
}

// Save 主键不存在时插入，存在时更新（crt_dt 不覆盖）
// 写入后重新读取，返回带有数据库生成字段的实体
func (r BaseRepo[M, P]) Save(entity P) (P, error) {
	if entity.GetObjId() == "" {
		entity.SetObjId(idutil.NewObjId())
	}

	exists, err := r.ExistsById(entity.GetObjId())
	if err != nil {
		return nil, err
	}

	if exists {
		err = r.db.Omit("crt_dt", clause.Associations).Save(entity).Error
	} else {
		err = r.db.Omit(clause.Associations).Create(entity).Error
	}
	if err != nil {
		return nil, ErrorFromGormError(err)
	}

	return r.refresh(entity)
}

// SaveAll 逐条保存，任一失败即返回
func (r BaseRepo[M, P]) SaveAll(entities []P) ([]P, error) {
	saved := make([]P, 0, len(entities))
	for _, entity := range entities {
		s, err := r.Save(entity)
		if err != nil {
			return nil, err
		}
		saved = append(saved, s)
	}
	return saved, nil
}

// Delete 删除实体
func (r BaseRepo[M, P]) Delete(entity P) error {
	if err := r.db.Where("obj_id = ?", entity.GetObjId()).Delete(new(M)).Error; err != nil {
		return ErrorFromGormError(err)
	}
	return nil
}

// DeleteById 按主键删除，返回记录是否存在并被删除
func (r BaseRepo[M, P]) DeleteById(id string) (bool, error) {
	result := r.db.Where("obj_id = ?", id).Delete(new(M))
	if result.Error != nil {
		return false, ErrorFromGormError(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ExistsById 判断主键是否存在
func (r BaseRepo[M, P]) ExistsById(id string) (bool, error) {
	var count int64
	if err := r.db.Model(new(M)).Where("obj_id = ?", id).Count(&count).Error; err != nil {
		return false, ErrorFromGormError(err)
	}
	return count > 0, nil
}

// Count 记录总数
func (r BaseRepo[M, P]) Count() (int64, error) {
	var count int64
	if err := r.db.Model(new(M)).Count(&count).Error; err != nil {
		return 0, ErrorFromGormError(err)
	}
	return count, nil
}

func (r BaseRepo[M, P]) refresh(entity P) (P, error) {
	fresh, err := r.FindById(entity.GetObjId())
	if err != nil {
		return nil, err
	}
	if fresh == nil {
		return nil, ErrorFromGormError(gorm.ErrRecordNotFound)
	}
	*entity = *fresh
	return entity, nil
}
