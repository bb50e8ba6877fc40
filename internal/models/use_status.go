package models

import (
	"fmt"
	"strings"
)

// UseStatus 使用状态，数据库中以字符串存储
type UseStatus string

const (
	UseStatusUsable   UseStatus = "USABLE"   // 可用
	UseStatusUnusable UseStatus = "UNUSABLE" // 不可用
)

var useStatuses = []UseStatus{UseStatusUsable, UseStatusUnusable}

// ParseUseStatus 将文本解析为 UseStatus，忽略大小写，非法值返回错误
func ParseUseStatus(value string) (UseStatus, error) {
	for _, s := range useStatuses {
		if string(s) == strings.ToUpper(value) {
			return s, nil
		}
	}
	return "", fmt.Errorf("Invalid use_stat_cd: %s. Must be 'USABLE' or 'UNUSABLE'", value)
}

func (s UseStatus) String() string {
	return string(s)
}

func (s UseStatus) Ptr() *UseStatus {
	return &s
}
