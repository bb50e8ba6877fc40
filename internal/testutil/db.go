package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"restUriHub/config"
	"restUriHub/internal/models"
	"restUriHub/pkg/client"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewTestDB 在 t.TempDir() 中创建启用外键的 SQLite 数据库并同步表结构
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := client.NewDBClient(config.Database{
		Driver:   client.DriverSQLite,
		DBName:   filepath.Join(t.TempDir(), "resturihub_test.db"),
		PoolSize: 1,
	}, false)
	require.NoError(t, err)
	require.NoError(t, client.AutoMigrate(context.Background(), db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// SeedDef 插入一条 API 定义
func SeedDef(t *testing.T, db *gorm.DB, apiId string) *models.RestUriDef {
	t.Helper()

	def := models.NewRestUriDef(apiId, "SITE01", "svc")
	def.UseStatCd = models.UseStatusUsable.Ptr()
	require.NoError(t, db.Create(def).Error)
	return def
}
