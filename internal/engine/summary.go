package engine

import (
	"github.com/iceymoss/jobtrack/pkg/models"
	"github.com/iceymoss/jobtrack/pkg/utils"
)

// Summary 重新生成一批运行记录并按状态汇总
// 每条记录有且只有一个状态，所以各计数相加一定等于总数
func (s *Service) Summary() models.JobSummary {
	return Summarize(s.generate())
}

// Summarize 对给定的运行记录集合做状态汇总
// success_rate = success / (success + failed) * 100，没有完成的记录时为 0
func Summarize(runs []models.JobRun) models.JobSummary {
	summary := models.JobSummary{TotalJobs: len(runs)}
	for _, run := range runs {
		switch run.Status {
		case models.StatusRunning:
			summary.Running++
		case models.StatusSuccess:
			summary.Success++
		case models.StatusFailed:
			summary.Failed++
		case models.StatusPending:
			summary.Pending++
		case models.StatusCancelled:
			summary.Cancelled++
		}
	}

	completed := summary.Success + summary.Failed
	if completed > 0 {
		summary.SuccessRate = utils.Round2(float64(summary.Success) / float64(completed) * 100)
	}
	return summary
}
