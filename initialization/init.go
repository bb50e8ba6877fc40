package initialization

import (
	"context"
	"fmt"

	"restUriHub/api"
	"restUriHub/config"
	"restUriHub/internal/ctx"
	"restUriHub/internal/global"
	"restUriHub/internal/repo"
	"restUriHub/internal/services"
	"restUriHub/pkg/client"
	"restUriHub/pkg/health"
	"restUriHub/pkg/metrics"

	"github.com/zeromicro/go-zero/core/logc"
	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/gorm"
)

// Basic 启动期创建的共享组件，供路由与关闭流程使用
type Basic struct {
	Ctx     *ctx.Context
	Metrics *metrics.Registry
	Checker *health.Checker
}

func InitBasic(confPath string) *Basic {

	// 初始化配置
	global.Config = config.InitConfig(confPath)

	if err := SetUpLog(global.Config.Log); err != nil {
		fmt.Printf("init log failed: %s\n", err.Error())
	}

	c := ctx.NewContext(context.Background(), nil)
	services.NewServices()

	b := &Basic{
		Ctx:     c,
		Metrics: metrics.NewRegistry(),
	}

	// 数据库连接失败不阻止启动，由健康检查重试
	if db, err := openDatabase(c.Ctx, global.Config.Database); err != nil {
		logc.Errorf(c.Ctx, "[Init] database not ready: %s", err.Error())
	} else {
		b.attach(db)
	}

	b.Checker = health.NewChecker("database", b.probe)
	b.Checker.Check(c.Ctx)
	if err := b.Checker.Start(global.Config.Health.PingSpec); err != nil {
		logc.Errorf(c.Ctx, "[Init] start health check failed, spec: %s, err: %s", global.Config.Health.PingSpec, err.Error())
	}
	api.SystemController.WithChecker(b.Checker)

	logc.Infof(c.Ctx, "[Init] %s %s initialized, driver: %s", global.Config.Server.Title, global.Version, global.Config.Database.Driver)
	return b
}

// SetUpLog 按配置初始化 logx
func SetUpLog(cfg config.Log) error {
	return logx.SetUp(logx.LogConf{
		ServiceName: cfg.ServiceName,
		Mode:        cfg.Mode,
		Encoding:    cfg.Encoding,
		Path:        cfg.Path,
		Level:       cfg.Level,
		TimeFormat:  global.Layout,
	})
}

func openDatabase(c context.Context, cfg config.Database) (*gorm.DB, error) {
	db, err := client.NewDBClient(cfg, global.Config.Server.IsDebug())
	if err != nil {
		return nil, err
	}
	if err := client.Ping(c, db); err != nil {
		if sqlDB, e := db.DB(); e == nil {
			_ = sqlDB.Close()
		}
		return nil, err
	}

	if cfg.AutoMigrate {
		// 迁移失败时表可能已由 migrate 命令创建，继续提供服务
		_ = client.AutoMigrate(c, db)
	}
	return db, nil
}

func (b *Basic) attach(db *gorm.DB) {
	b.Ctx.SetRepo(repo.NewRepoEntry(db))

	if sqlDB, err := db.DB(); err == nil {
		if err := b.Metrics.RegisterDB(sqlDB, global.Config.Database.DBName); err != nil {
			logc.Errorf(b.Ctx.Ctx, "[Init] register db metrics failed: %s", err.Error())
		}
	}
	logc.Info(b.Ctx.Ctx, "[Init] database connected")
}

// probe 已连接时 ping 数据库，未连接时尝试重新建立连接
func (b *Basic) probe(c context.Context) error {
	if r := b.Ctx.Repo(); r != nil {
		return client.Ping(c, r.DB())
	}

	db, err := openDatabase(c, global.Config.Database)
	if err != nil {
		return err
	}
	b.attach(db)
	return nil
}

// Close 停止健康检查并关闭数据库连接
func (b *Basic) Close() error {
	if b.Checker != nil {
		b.Checker.Stop()
	}
	if r := b.Ctx.Repo(); r != nil {
		sqlDB, err := r.DB().DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
