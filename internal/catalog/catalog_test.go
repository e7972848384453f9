package catalog_test

import (
	"testing"
	"time"

	"github.com/iceymoss/jobtrack/internal/catalog"
	"github.com/iceymoss/jobtrack/pkg/errors"
	"github.com/iceymoss/jobtrack/pkg/models"
	"github.com/iceymoss/jobtrack/pkg/xerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)

func TestListCatalog(t *testing.T) {
	jobs := catalog.List(testNow)
	require.Len(t, jobs, catalog.Size())
	require.Len(t, jobs, 8)

	// job_id 从 101 连续编号
	for i, job := range jobs {
		assert.Equal(t, 101+i, job.JobID)
		assert.NotEmpty(t, job.JobName)
		assert.NotEmpty(t, job.Schedule)
		assert.NotEmpty(t, job.CreatedBy)
	}
}

func TestGetJob(t *testing.T) {
	job, err := catalog.Get(101, testNow)
	require.NoError(t, err)
	assert.Equal(t, "ETL_Sales_Daily", job.JobName)
	assert.Equal(t, "0 6 * * *", job.Schedule)
	assert.Equal(t, "data_team", job.CreatedBy)
	assert.Equal(t, models.StatusSuccess, job.LastRunStatus)
}

func TestGetJobNotFound(t *testing.T) {
	_, err := catalog.Get(999999, testNow)
	require.Error(t, err)

	cm, ok := errors.FromError(err)
	require.True(t, ok)
	assert.Equal(t, xerr.ErrNotFound, cm.Code)
	assert.Equal(t, "Job 999999 not found", cm.Msg)
}

// next_run_time 按 cron 表达式现算，一定晚于当前时间
func TestNextRunTimeFollowsSchedule(t *testing.T) {
	for _, job := range catalog.List(testNow) {
		require.NotNil(t, job.NextRunTime, "任务 %d 应有下次运行时间", job.JobID)
		assert.True(t, job.NextRunTime.After(testNow), "任务 %d 的下次运行时间应晚于 now", job.JobID)
	}

	// "*/30 * * * *"：下一次一定在 30 分钟之内
	job, err := catalog.Get(106, testNow)
	require.NoError(t, err)
	assert.LessOrEqual(t, job.NextRunTime.Sub(testNow), 30*time.Minute)
}
