package catalog

import (
	"fmt"
	"time"

	"github.com/iceymoss/jobtrack/pkg/errors"
	"github.com/iceymoss/jobtrack/pkg/models"
	"github.com/iceymoss/jobtrack/pkg/xerr"

	"github.com/robfig/cron/v3"
)

// entry 目录项：任务定义 + 解析好的 cron 调度
type entry struct {
	job      models.Job
	schedule cron.Schedule
}

// 固定任务目录，和 dashboard 前端约定好的演示数据
// job_id 从 101 开始，顺序不要改
var entries = mustBuild([]models.Job{
	{JobID: 101, JobName: "ETL_Sales_Daily", Schedule: "0 6 * * *", LastRunStatus: models.StatusSuccess, CreatedBy: "data_team"},
	{JobID: 102, JobName: "ML_Model_Training", Schedule: "0 0 * * 0", LastRunStatus: models.StatusRunning, CreatedBy: "ml_team"},
	{JobID: 103, JobName: "Data_Quality_Check", Schedule: "0 */4 * * *", LastRunStatus: models.StatusFailed, CreatedBy: "data_team"},
	{JobID: 104, JobName: "Customer_Segmentation", Schedule: "0 12 * * *", LastRunStatus: models.StatusSuccess, CreatedBy: "analytics_team"},
	{JobID: 105, JobName: "Report_Generation", Schedule: "0 8 * * 1-5", LastRunStatus: models.StatusSuccess, CreatedBy: "bi_team"},
	{JobID: 106, JobName: "Log_Aggregation", Schedule: "*/30 * * * *", LastRunStatus: models.StatusPending, CreatedBy: "devops_team"},
	{JobID: 107, JobName: "Inventory_Sync", Schedule: "0 */2 * * *", LastRunStatus: models.StatusCancelled, CreatedBy: "supply_chain"},
	{JobID: 108, JobName: "Fraud_Detection", Schedule: "*/15 * * * *", LastRunStatus: models.StatusRunning, CreatedBy: "security_team"},
})

func mustBuild(jobs []models.Job) []entry {
	list := make([]entry, 0, len(jobs))
	for _, job := range jobs {
		sched, err := cron.ParseStandard(job.Schedule)
		if err != nil {
			panic(fmt.Sprintf("catalog: bad schedule %q for job %d: %v", job.Schedule, job.JobID, err))
		}
		list = append(list, entry{job: job, schedule: sched})
	}
	return list
}

// Size 目录中的任务数
func Size() int {
	return len(entries)
}

// List 返回全部任务，next_run_time 按 cron 表达式现算
func List(now time.Time) []models.Job {
	jobs := make([]models.Job, 0, len(entries))
	for _, e := range entries {
		jobs = append(jobs, withNextRun(e, now))
	}
	return jobs
}

// Get 按 job_id 查找任务
func Get(jobID int, now time.Time) (models.Job, error) {
	for _, e := range entries {
		if e.job.JobID == jobID {
			return withNextRun(e, now), nil
		}
	}
	return models.Job{}, errors.Newf(xerr.ErrNotFound, "Job %d not found", jobID)
}

// NameByIndex 按目录下标取任务名，生成运行记录时用来做 job_id -> job_name 的冗余拷贝
func NameByIndex(i int) (int, string) {
	e := entries[i%len(entries)]
	return e.job.JobID, e.job.JobName
}

func withNextRun(e entry, now time.Time) models.Job {
	job := e.job
	next := e.schedule.Next(now)
	job.NextRunTime = &next
	return job
}
