package models

import "time"

// Job 一个已配置的调度任务
type Job struct {
	JobID         int        `json:"job_id"`
	JobName       string     `json:"job_name"`
	Schedule      string     `json:"schedule"` // cron 表达式
	LastRunStatus Status     `json:"last_run_status"`
	NextRunTime   *time.Time `json:"next_run_time,omitempty"`
	CreatedBy     string     `json:"created_by"` // 归属团队
}

// JobRun 任务的一次执行记录
// job_name 是冗余字段，直接从任务目录拷贝，方便前端免 join 展示
type JobRun struct {
	RunID           int        `json:"run_id"`
	JobID           int        `json:"job_id"`
	JobName         string     `json:"job_name"`
	Status          Status     `json:"status"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`          // 仅终态有值
	DurationSeconds *int       `json:"duration_seconds,omitempty"`  // 仅终态有值
	ClusterName     string     `json:"cluster_name"`
	TriggeredBy     string     `json:"triggered_by"`
	ErrorMessage    *string    `json:"error_message,omitempty"` // 仅 FAILED 有值
}
