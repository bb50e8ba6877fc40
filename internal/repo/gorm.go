package repo

import (
	"context"

	"gorm.io/gorm"
)

type GormDBCli struct {
	db *gorm.DB
}

type InterGormDBCli interface {
	Transaction(ctx context.Context, operation func(tx *gorm.DB) error) error
}

func NewInterGormDBCli(db *gorm.DB) InterGormDBCli {
	return &GormDBCli{
		db: db,
	}
}

// Transaction 在单个事务中执行 operation
// operation 返回错误或发生 panic 时回滚，否则提交；提交失败同样返回错误
func (g GormDBCli) Transaction(ctx context.Context, operation func(tx *gorm.DB) error) error {
	return g.executeTransaction(ctx, operation)
}

// executeTransaction 执行事务并处理错误
func (g GormDBCli) executeTransaction(ctx context.Context, operation func(tx *gorm.DB) error) (err error) {
	tx := g.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return ErrorFromGormError(tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := operation(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ErrorFromGormError(err)
	}

	return nil
}
