package client

import (
	"context"
	"errors"
	"time"

	"github.com/zeromicro/go-zero/core/logc"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormLogger 将 gorm 的 SQL 日志转发到 logc
// debug 模式记录全部 SQL，否则只记录慢查询与错误
type gormLogger struct {
	level         logger.LogLevel
	slowThreshold time.Duration
}

func NewGormLogger(slowThreshold time.Duration, debug bool) logger.Interface {
	level := logger.Warn
	if debug {
		level = logger.Info
	}
	return &gormLogger{
		level:         level,
		slowThreshold: slowThreshold,
	}
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	n := *l
	n.level = level
	return &n
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Info {
		logc.Infof(ctx, "[Gorm] "+msg, args...)
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Warn {
		logc.Infof(ctx, "[Gorm] "+msg, args...)
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= logger.Error {
		logc.Errorf(ctx, "[Gorm] "+msg, args...)
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		logc.Errorf(ctx, "[Gorm] %s [%.3fms] [rows:%d] %s", err.Error(), float64(elapsed.Microseconds())/1000, rows, sql)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		sql, rows := fc()
		logc.Slowf(ctx, "[Gorm] slow sql >= %v [%.3fms] [rows:%d] %s", l.slowThreshold, float64(elapsed.Microseconds())/1000, rows, sql)
	case l.level >= logger.Info:
		sql, rows := fc()
		logc.Debugf(ctx, "[Gorm] [%.3fms] [rows:%d] %s", float64(elapsed.Microseconds())/1000, rows, sql)
	}
}
