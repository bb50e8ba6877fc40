// Package errcode 定义业务错误类型及其错误码，API 层据此映射 HTTP 状态码
package errcode

import (
	"errors"
	"fmt"
)

// Code 错误类别
type Code string

const (
	// CodeValidation 请求参数不合法或枚举值非法
	CodeValidation Code = "VALIDATION_ERROR"
	// CodeNotFound 资源不存在
	CodeNotFound Code = "NOT_FOUND"
	// CodeDuplicate 写入前唯一性预检查失败
	CodeDuplicate Code = "DUPLICATE_RESOURCE"
	// CodeConstraint 数据库约束（唯一、外键、检查）拒绝写入
	CodeConstraint Code = "CONSTRAINT_VIOLATION"
	// CodeUnavailable 数据库连接失败或超时
	CodeUnavailable Code = "DATABASE_UNAVAILABLE"
	// CodeInternal 其他未处理错误
	CodeInternal Code = "INTERNAL_ERROR"
)

// Error 带错误码的业务错误
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is 错误码相同即视为同一类错误
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// 用于 errors.Is 判断的哨兵值
var (
	ErrValidation  = &Error{Code: CodeValidation}
	ErrNotFound    = &Error{Code: CodeNotFound}
	ErrDuplicate   = &Error{Code: CodeDuplicate}
	ErrConstraint  = &Error{Code: CodeConstraint}
	ErrUnavailable = &Error{Code: CodeUnavailable}
	ErrInternal    = &Error{Code: CodeInternal}
)

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func NewValidation(format string, args ...interface{}) *Error {
	return New(CodeValidation, fmt.Sprintf(format, args...))
}

func NewNotFound(format string, args ...interface{}) *Error {
	return New(CodeNotFound, fmt.Sprintf(format, args...))
}

func NewDuplicate(format string, args ...interface{}) *Error {
	return New(CodeDuplicate, fmt.Sprintf(format, args...))
}

func NewConstraint(message string, cause error) *Error {
	return Wrap(CodeConstraint, message, cause)
}

func NewUnavailable(message string, cause error) *Error {
	return Wrap(CodeUnavailable, message, cause)
}

// CodeOf 返回错误链上第一个 *Error 的错误码，没有则视为内部错误
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// MessageOf 返回面向调用方的错误描述
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
