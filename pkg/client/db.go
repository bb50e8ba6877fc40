package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"restUriHub/config"
	"restUriHub/internal/models"

	"github.com/zeromicro/go-zero/core/logc"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// NewDBClient 创建数据库连接池
// 不在启动时 ping 数据库，数据库暂时不可用时服务照常启动，请求返回 503
func NewDBClient(cfg config.Database, debug bool) (*gorm.DB, error) {
	dia, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dia, &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               NewGormLogger(cfg.SlowThreshold, debug),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.PoolSize > 0 {
		sqlDB.SetMaxIdleConns(cfg.PoolSize)
		sqlDB.SetMaxOpenConns(cfg.PoolSize + cfg.MaxOverflow)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	return db, nil
}

// Dialector 按驱动类型构造 gorm 方言
func Dialector(cfg config.Database) (gorm.Dialector, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(cfg.Driver) {
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverMySQL:
		return mysql.New(mysql.Config{
			DSN:                       dsn,
			SkipInitializeWithVersion: true,
		}), nil
	case DriverSQLite:
		return sqlite.Dialector{
			DriverName: "sqlite",
			DSN:        dsn,
		}, nil
	}
	return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
}

// DSN 生成连接串
func DSN(cfg config.Database) (string, error) {
	switch strings.ToLower(cfg.Driver) {
	case DriverPostgres:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s",
			cfg.Host,
			cfg.User,
			cfg.Pass,
			cfg.DBName,
			cfg.Port)
		if cfg.SSLMode != "" {
			dsn += " sslmode=" + cfg.SSLMode
		}
		if secs := timeoutSeconds(cfg.Timeout); secs > 0 {
			dsn += fmt.Sprintf(" connect_timeout=%d", secs)
		}
		return dsn, nil
	case DriverMySQL:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=True&loc=Local",
			cfg.User,
			cfg.Pass,
			cfg.Host,
			cfg.Port,
			cfg.DBName)
		if cfg.Timeout != "" {
			dsn += "&timeout=" + cfg.Timeout
		}
		return dsn, nil
	case DriverSQLite:
		return SQLiteDSN(cfg.DBName), nil
	}
	return "", fmt.Errorf("unsupported database driver: %q", cfg.Driver)
}

// SQLiteDSN 打开外键约束，否则级联删除不生效
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// AutoMigrate 按模型同步表结构
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&models.RestUriDef{},
		&models.RestUriPath{},
	)
	if err != nil {
		logc.Errorf(ctx, "[Database] auto migrate failed: %s", err.Error())
		return err
	}

	logc.Info(ctx, "[Database] auto migrate done")
	return nil
}

// Ping 检查数据库连通性
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func timeoutSeconds(timeout string) int {
	if timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return 0
	}
	return int(d.Seconds())
}
