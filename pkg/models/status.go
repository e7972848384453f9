package models

import "strings"

// Status 运行状态枚举，和 Databricks 返回的状态字符串保持一致
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusRunning   Status = "RUNNING"
	StatusSuccess   Status = "SUCCESS"
	StatusFailed    Status = "FAILED"
	StatusCancelled Status = "CANCELLED"

	// StatusCancelling 取消请求已受理，仅出现在 cancel 接口的响应里
	StatusCancelling Status = "CANCELLING"
)

// AllStatuses 合法的运行状态集合
var AllStatuses = []Status{
	StatusPending,
	StatusRunning,
	StatusSuccess,
	StatusFailed,
	StatusCancelled,
}

// ParseStatus 忽略大小写解析状态，非法输入返回 false
func ParseStatus(s string) (Status, bool) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	for _, valid := range AllStatuses {
		if status == valid {
			return status, true
		}
	}
	return "", false
}

// IsTerminal 终态：SUCCESS / FAILED / CANCELLED，之后不再流转
func (s Status) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailed || s == StatusCancelled
}
