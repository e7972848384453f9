package utils

import (
	"math"
	"time"
)

// FormatTimestamp 接口响应里统一使用 RFC3339 时间戳
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

// Round2 保留两位小数
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}
