package repo

import (
	"context"

	"gorm.io/gorm"
)

type (
	entryRepo struct {
		g    InterGormDBCli
		db   *gorm.DB
		inTx bool
	}

	// InterEntryRepo 数据访问入口，各实体仓库共享同一个会话
	InterEntryRepo interface {
		DB() *gorm.DB
		UriDef() InterUriDefRepo
		UriPath() InterUriPathRepo
		// Transaction 开启事务，fn 收到绑定到该事务的入口；已处于事务中时直接复用
		Transaction(ctx context.Context, fn func(tx InterEntryRepo) error) error
	}
)

func NewRepoEntry(db *gorm.DB) InterEntryRepo {
	return &entryRepo{
		g:  NewInterGormDBCli(db),
		db: db,
	}
}

func (e *entryRepo) DB() *gorm.DB {
	return e.db
}

func (e *entryRepo) UriDef() InterUriDefRepo {
	return newUriDefRepo(e.db)
}

func (e *entryRepo) UriPath() InterUriPathRepo {
	return newUriPathRepo(e.db)
}

func (e *entryRepo) Transaction(ctx context.Context, fn func(tx InterEntryRepo) error) error {
	if e.inTx {
		return fn(e)
	}
	return e.g.Transaction(ctx, func(tx *gorm.DB) error {
		return fn(&entryRepo{
			g:    NewInterGormDBCli(tx),
			db:   tx,
			inTx: true,
		})
	})
}
