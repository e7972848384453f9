package engine

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/iceymoss/jobtrack/internal/catalog"
	"github.com/iceymoss/jobtrack/internal/conf"
	"github.com/iceymoss/jobtrack/pkg/errors"
	"github.com/iceymoss/jobtrack/pkg/logger"
	"github.com/iceymoss/jobtrack/pkg/models"
	"github.com/iceymoss/jobtrack/pkg/xerr"

	"go.uber.org/zap"
)

const (
	// DefaultRunsLimit GET /runs 的默认条数
	DefaultRunsLimit = 20
	// DefaultJobRunsLimit GET /runs/job/:job_id 的默认条数
	DefaultJobRunsLimit = 10

	triggerRunIDBase = 20000
	triggerRunIDSpan = 9999 // run_id 落在 [20000, 29999)
)

// Service 运行记录查询服务
// 没有任何持久化：每次调用都现生成一批数据再做过滤聚合，调用之间互不相关
type Service struct {
	cfg     conf.DataConfig
	newRand func() *rand.Rand
	now     func() time.Time
}

// Option 测试用注入点
type Option func(*Service)

// WithRandSource 固定随机源，生成结果可复现
func WithRandSource(newRand func() *rand.Rand) Option {
	return func(s *Service) { s.newRand = newRand }
}

// WithClock 固定时钟
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(cfg conf.DataConfig, opts ...Option) *Service {
	if cfg.RunCount <= 0 {
		cfg.RunCount = conf.DefaultRunCount
	}
	if cfg.MaxAgeHours <= 0 {
		cfg.MaxAgeHours = conf.DefaultMaxAgeHours
	}
	s := &Service{
		cfg: cfg,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// generate 重新生成一批运行记录
func (s *Service) generate() []models.JobRun {
	return GenerateRuns(s.newRand(), s.now(), s.cfg.RunCount, s.cfg.MaxAgeHours)
}

// ListJobs 任务目录
func (s *Service) ListJobs() []models.Job {
	return catalog.List(s.now())
}

// GetJob 按 job_id 查任务
func (s *Service) GetJob(jobID int) (models.Job, error) {
	return catalog.Get(jobID, s.now())
}

// ListRuns 查询运行记录
// status 和 jobID 是两个独立的过滤条件，同时给则取交集；status 忽略大小写
// limit <= 0 使用默认值；jobID <= 0 表示不过滤
func (s *Service) ListRuns(limit int, status string, jobID int) []models.JobRun {
	if limit <= 0 {
		limit = DefaultRunsLimit
	}

	runs := s.generate()

	if status != "" {
		want := models.Status(strings.ToUpper(strings.TrimSpace(status)))
		runs = filterRuns(runs, func(r models.JobRun) bool { return r.Status == want })
	}
	if jobID > 0 {
		runs = filterRuns(runs, func(r models.JobRun) bool { return r.JobID == jobID })
	}

	if len(runs) > limit {
		runs = runs[:limit]
	}
	return runs
}

// GetRun 按 run_id 查运行记录
// 注意：数据是每次调用现生成的，上一次响应里见到的 run_id 这一次可能查不到，
// 这是演示数据的既有行为，不是 bug
func (s *Service) GetRun(runID int) (models.JobRun, error) {
	for _, run := range s.generate() {
		if run.RunID == runID {
			return run, nil
		}
	}
	return models.JobRun{}, errors.Newf(xerr.ErrNotFound, "Run %d not found", runID)
}

// ListRunsByJob 某个任务的运行历史
func (s *Service) ListRunsByJob(jobID, limit int) []models.JobRun {
	if limit <= 0 {
		limit = DefaultJobRunsLimit
	}
	runs := filterRuns(s.generate(), func(r models.JobRun) bool { return r.JobID == jobID })
	if len(runs) > limit {
		runs = runs[:limit]
	}
	return runs
}

// TriggerJob 手动触发任务（模拟）
// 只校验任务存在并返回一个随机 run_id，不会真的创建运行记录
func (s *Service) TriggerJob(jobID int) (models.TriggerResponse, error) {
	job, err := catalog.Get(jobID, s.now())
	if err != nil {
		return models.TriggerResponse{}, err
	}

	runID := triggerRunIDBase + s.newRand().Intn(triggerRunIDSpan)
	logger.Info("job triggered", zap.Int("job_id", jobID), zap.Int("run_id", runID))

	return models.TriggerResponse{
		Message: "Job '" + job.JobName + "' triggered successfully",
		RunID:   runID,
		Status:  models.StatusPending,
	}, nil
}

// CancelRun 取消运行（模拟）
// 既有契约：不校验 run_id 是否存在，任何 id 都返回 CANCELLING，
// 和 TriggerJob 的校验行为不对称，dashboard 依赖这个无条件响应
func (s *Service) CancelRun(runID int) models.CancelResponse {
	logger.Info("run cancellation requested", zap.Int("run_id", runID))
	return models.CancelResponse{
		Message: fmt.Sprintf("Run %d cancellation requested", runID),
		Status:  models.StatusCancelling,
	}
}

func filterRuns(runs []models.JobRun, keep func(models.JobRun) bool) []models.JobRun {
	out := runs[:0:0]
	for _, r := range runs {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
