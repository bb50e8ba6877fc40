package repo

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"restUriHub/internal/errcode"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// MySQL 错误号
const (
	mysqlDupEntry          = 1062
	mysqlRowIsReferenced   = 1451
	mysqlNoReferencedRow   = 1452
	mysqlCheckConstraint   = 3819
	mysqlLockWaitTimeout   = 1205
	mysqlTooManyConnection = 1040
)

// ErrorFromGormError 将驱动错误统一转换为 errcode 错误
// 约束冲突 -> CONSTRAINT_VIOLATION，连接/超时 -> DATABASE_UNAVAILABLE，其余原样返回
func ErrorFromGormError(err error) error {
	if err == nil {
		return nil
	}

	var coded *errcode.Error
	if errors.As(err, &coded) {
		return err
	}

	if isConstraintViolation(err) {
		return errcode.NewConstraint("Database constraint violation: "+rootMessage(err), err)
	}
	if isUnavailable(err) {
		return errcode.NewUnavailable("Database unavailable", err)
	}
	return err
}

func isConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation, pgCheckViolation:
			return true
		}
		return false
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDupEntry, mysqlRowIsReferenced, mysqlNoReferencedRow, mysqlCheckConstraint:
			return true
		}
		return false
	}

	// sqlite 驱动只暴露错误文本
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed") ||
		strings.Contains(msg, "CHECK constraint failed")
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, mysql.ErrInvalidConn) {
		return true
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlLockWaitTimeout || myErr.Number == mysqlTooManyConnection
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "sql: database is closed")
}

// rootMessage 取错误链最底层的描述
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
