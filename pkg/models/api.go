package models

// RootResponse GET / 的响应
type RootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Version string `json:"version"`
}

// HealthResponse GET /health 的响应
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"` // RFC3339
}

// TriggerResponse 手动触发任务的响应，RunID 是模拟生成的，不会落库
type TriggerResponse struct {
	Message string `json:"message"`
	RunID   int    `json:"run_id"`
	Status  Status `json:"status"`
}

// CancelResponse 取消运行的响应
type CancelResponse struct {
	Message string `json:"message"`
	Status  Status `json:"status"`
}

// ErrorResponse 错误响应统一格式
type ErrorResponse struct {
	Error string `json:"error"`
}
