package models

// JobSummary 运行记录的状态汇总
// 各状态计数互斥，相加等于 TotalJobs
type JobSummary struct {
	TotalJobs   int     `json:"total_jobs"`
	Running     int     `json:"running"`
	Success     int     `json:"success"`
	Failed      int     `json:"failed"`
	Pending     int     `json:"pending"`
	Cancelled   int     `json:"cancelled"`
	SuccessRate float64 `json:"success_rate"` // success/(success+failed)*100，保留两位小数
}
