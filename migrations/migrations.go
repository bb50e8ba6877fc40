package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql mysql/*.sql sqlite3/*.sql
var migrationsFS embed.FS

// goose 的方言与 FS 是包级状态
var mu sync.Mutex

// Dialect 将配置中的驱动名转换为 goose 方言，同时也是迁移文件所在目录
func Dialect(driver string) (string, error) {
	switch strings.ToLower(driver) {
	case "postgres":
		return "postgres", nil
	case "mysql":
		return "mysql", nil
	case "sqlite", "sqlite3":
		return "sqlite3", nil
	}
	return "", fmt.Errorf("unsupported migration driver: %q", driver)
}

// Up 执行全部未应用的迁移
func Up(ctx context.Context, db *sql.DB, driver string) error {
	return run(driver, func(dir string) error {
		return goose.UpContext(ctx, db, dir)
	})
}

// Down 回滚最近一次迁移
func Down(ctx context.Context, db *sql.DB, driver string) error {
	return run(driver, func(dir string) error {
		return goose.DownContext(ctx, db, dir)
	})
}

// Status 打印迁移状态
func Status(ctx context.Context, db *sql.DB, driver string) error {
	return run(driver, func(dir string) error {
		return goose.StatusContext(ctx, db, dir)
	})
}

// Version 当前数据库版本
func Version(ctx context.Context, db *sql.DB, driver string) (int64, error) {
	var version int64
	err := run(driver, func(dir string) error {
		v, err := goose.GetDBVersionContext(ctx, db)
		version = v
		return err
	})
	return version, err
}

func run(driver string, fn func(dir string) error) error {
	dialect, err := Dialect(driver)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)

	return fn(dialect)
}
