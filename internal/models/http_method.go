package models

import (
	"fmt"
	"strings"
)

// HttpMethod 接口的 HTTP 方法，与表上的 CHECK 约束保持一致
type HttpMethod string

const (
	HttpMethodGet    HttpMethod = "GET"
	HttpMethodPost   HttpMethod = "POST"
	HttpMethodPut    HttpMethod = "PUT"
	HttpMethodDelete HttpMethod = "DELETE"
	HttpMethodPatch  HttpMethod = "PATCH"
)

var httpMethods = []HttpMethod{HttpMethodGet, HttpMethodPost, HttpMethodPut, HttpMethodDelete, HttpMethodPatch}

// ParseHttpMethod 忽略大小写解析 HTTP 方法
func ParseHttpMethod(value string) (HttpMethod, error) {
	for _, m := range httpMethods {
		if string(m) == strings.ToUpper(value) {
			return m, nil
		}
	}
	return "", fmt.Errorf("Invalid method_nm: %s. Must be one of: GET, POST, PUT, DELETE, PATCH", value)
}

func (m HttpMethod) String() string {
	return string(m)
}
