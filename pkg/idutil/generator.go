package idutil

import (
	"encoding/hex"

	"github.com/google/uuid"
	"github.com/rs/xid"
)

// NewObjId 生成记录主键：128 位随机值，32 位十六进制
func NewObjId() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// GenerateRequestId 生成请求ID，按时间有序便于日志检索
func GenerateRequestId() string {
	return xid.New().String()
}
