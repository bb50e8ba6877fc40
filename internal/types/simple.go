package types

// RequestSimplePayload 示例接口请求体
type RequestSimplePayload struct {
	Name string `json:"name" binding:"required"`
}

// ResponseSimple 示例接口响应
type ResponseSimple struct {
	Status   int                   `json:"status"`
	Message  string                `json:"message"`
	RecvData *RequestSimplePayload `json:"recv_data,omitempty"`
}

// ResponseHealth 健康检查结果
type ResponseHealth struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	LastCheck string `json:"last_check,omitempty"`
	Error     string `json:"error,omitempty"`
	Version   string `json:"version"`
}
