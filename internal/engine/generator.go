package engine

import (
	"math/rand"
	"sort"
	"time"

	"github.com/iceymoss/jobtrack/internal/catalog"
	"github.com/iceymoss/jobtrack/pkg/models"
)

// 状态池，SUCCESS 占三份权重，贴近真实集群里大部分任务跑成功的分布
var statusPool = []models.Status{
	models.StatusSuccess,
	models.StatusSuccess,
	models.StatusSuccess,
	models.StatusFailed,
	models.StatusRunning,
	models.StatusPending,
	models.StatusCancelled,
}

var clusterNames = []string{"etl-cluster", "ml-cluster", "analytics-cluster", "general-cluster"}

var triggerUsers = []string{"scheduler", "admin", "data_engineer", "analyst"}

// FailedRunMessage FAILED 记录统一使用的占位错误信息
const FailedRunMessage = "Task failed due to cluster timeout"

const (
	baseRunID          = 10000
	minDurationSeconds = 60
	maxDurationSeconds = 7200
)

// GenerateRuns 生成一批模拟运行记录，按开始时间倒序返回
// 随机源由调用方传入，固定 seed 就能复现同一批数据
// duration/end_time 只在终态出现，error_message 只在 FAILED 出现
func GenerateRuns(rng *rand.Rand, now time.Time, count, maxAgeHours int) []models.JobRun {
	runs := make([]models.JobRun, 0, count)
	for i := 0; i < count; i++ {
		status := statusPool[rng.Intn(len(statusPool))]
		jobID, jobName := catalog.NameByIndex(i)
		start := now.Add(-time.Duration(1+rng.Intn(maxAgeHours)) * time.Hour)

		run := models.JobRun{
			RunID:       baseRunID + i,
			JobID:       jobID,
			JobName:     jobName,
			Status:      status,
			StartTime:   start,
			ClusterName: clusterNames[rng.Intn(len(clusterNames))],
			TriggeredBy: triggerUsers[rng.Intn(len(triggerUsers))],
		}

		if status.IsTerminal() {
			duration := minDurationSeconds + rng.Intn(maxDurationSeconds-minDurationSeconds+1)
			end := start.Add(time.Duration(duration) * time.Second)
			run.DurationSeconds = &duration
			run.EndTime = &end
		}
		if status == models.StatusFailed {
			msg := FailedRunMessage
			run.ErrorMessage = &msg
		}

		runs = append(runs, run)
	}

	// 最近的排前面
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartTime.After(runs[j].StartTime)
	})
	return runs
}
