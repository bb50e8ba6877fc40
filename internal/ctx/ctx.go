package ctx

import (
	"context"
	"sync"

	"restUriHub/internal/repo"
)

type Context struct {
	DB  repo.InterEntryRepo
	Ctx context.Context
	Mux sync.RWMutex
}

var (
	current *Context
	mu      sync.Mutex
)

// NewContext 创建全局上下文，DB 为 nil 表示数据库不可用
func NewContext(ctx context.Context, db repo.InterEntryRepo) *Context {
	mu.Lock()
	defer mu.Unlock()

	current = &Context{
		DB:  db,
		Ctx: ctx,
	}
	return current
}

// DO 返回全局上下文
func DO() *Context {
	mu.Lock()
	defer mu.Unlock()

	return current
}

// Repo 返回数据访问入口
func (c *Context) Repo() repo.InterEntryRepo {
	c.Mux.RLock()
	defer c.Mux.RUnlock()

	return c.DB
}

// SetRepo 替换数据访问入口，用于数据库延迟连接成功后
func (c *Context) SetRepo(db repo.InterEntryRepo) {
	c.Mux.Lock()
	defer c.Mux.Unlock()

	c.DB = db
}
